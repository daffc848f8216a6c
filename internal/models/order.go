package models

import "time"

const (
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Order is one purchase transaction. Amount is defined even for cancelled
// orders; share calculations divide counts, not value.
type Order struct {
	OrderID   string
	UserID    string
	OrderDate time.Time
	Amount    float64
	Status    string
}

func (o *Order) IsCompleted() bool {
	return o.Status == StatusCompleted
}

func (o *Order) IsCancelled() bool {
	return o.Status == StatusCancelled
}
