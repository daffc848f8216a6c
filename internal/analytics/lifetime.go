package analytics

import (
	"context"

	"vivid-analytics/internal/models"
	"vivid-analytics/internal/shared/loggers"
)

// CustomerLifetimeValue computes the average lifetime revenue per customer
// registered within the range. Revenue sums the amounts of each customer's
// completed orders regardless of order date: lifetime, not windowed.
// Customers without orders count in the denominator with zero revenue. Fails
// with a division-undefined error when no customers registered in the range.
func CustomerLifetimeValue(ctx context.Context, users []*models.User, orders []*models.Order, r models.DateRange) (*models.LifetimeValueResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldStartDate, r.Start.Format(models.DateLayout)).
		Str(loggers.FieldEndDate, r.End.Format(models.DateLayout)).
		Msg("started calculating customer lifetime value")

	customers := usersRegisteredIn(users, r)
	if len(customers) == 0 {
		return nil, errDivisionUndefined("registered customers")
	}

	revenueByUser := make(map[string]float64)
	for _, order := range orders {
		if order.IsCompleted() {
			revenueByUser[order.UserID] += order.Amount
		}
	}

	var totalRevenue float64
	for _, customer := range customers {
		totalRevenue += revenueByUser[customer.UserID]
	}

	result := &models.LifetimeValueResult{
		AverageValue: round2(totalRevenue / float64(len(customers))),
		TotalRevenue: round2(totalRevenue),
		Customers:    len(customers),
	}

	logger.Info().
		Float64("average_clv", result.AverageValue).
		Float64("total_revenue", result.TotalRevenue).
		Int("customers", result.Customers).
		Msg("completed customer lifetime value")

	return result, nil
}
