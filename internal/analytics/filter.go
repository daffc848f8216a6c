package analytics

import (
	"time"

	"vivid-analytics/internal/models"
)

// filterInRange returns the records whose timestamp lies within r, inclusive
// on both ends. Records whose timestamp is missing (ok=false) are excluded,
// never included by default. The input slice is not mutated.
func filterInRange[R any](records []R, r models.DateRange, timestamp func(R) (time.Time, bool)) []R {
	filtered := make([]R, 0, len(records))
	for _, record := range records {
		t, ok := timestamp(record)
		if !ok {
			continue
		}
		if r.Contains(t) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// usersRegisteredIn returns users whose registration date falls within r.
func usersRegisteredIn(users []*models.User, r models.DateRange) []*models.User {
	return filterInRange(users, r, func(u *models.User) (time.Time, bool) {
		return u.RegistrationDate, !u.RegistrationDate.IsZero()
	})
}

// usersFirstVisitedIn returns users whose first visit date falls within r.
// Users without a recorded first visit are excluded.
func usersFirstVisitedIn(users []*models.User, r models.DateRange) []*models.User {
	return filterInRange(users, r, func(u *models.User) (time.Time, bool) {
		if u.FirstVisitDate == nil {
			return time.Time{}, false
		}
		return *u.FirstVisitDate, true
	})
}

// ordersPlacedIn returns orders whose order date falls within r.
func ordersPlacedIn(orders []*models.Order, r models.DateRange) []*models.Order {
	return filterInRange(orders, r, func(o *models.Order) (time.Time, bool) {
		return o.OrderDate, !o.OrderDate.IsZero()
	})
}
