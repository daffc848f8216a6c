package analytics

import (
	"context"

	"vivid-analytics/internal/models"
	"vivid-analytics/internal/shared/loggers"
)

// RegistrationToPurchaseConversionRate computes the percentage of users
// registered within the range who placed at least one completed order within
// windowDays of their registration date (both bounds inclusive). Fails with a
// division-undefined error when no users registered in the range.
func RegistrationToPurchaseConversionRate(ctx context.Context, users []*models.User, orders []*models.Order, r models.DateRange, windowDays int) (*models.ConversionResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldStartDate, r.Start.Format(models.DateLayout)).
		Str(loggers.FieldEndDate, r.End.Format(models.DateLayout)).
		Int("conversion_window_days", windowDays).
		Msg("started calculating registration to purchase conversion rate")

	registered := usersRegisteredIn(users, r)
	if len(registered) == 0 {
		return nil, errDivisionUndefined("registered users")
	}

	completedByUser := make(map[string][]*models.Order)
	for _, order := range orders {
		if order.IsCompleted() {
			completedByUser[order.UserID] = append(completedByUser[order.UserID], order)
		}
	}

	converted := 0
	for _, user := range registered {
		windowEnd := user.RegistrationDate.AddDate(0, 0, windowDays)
		for _, order := range completedByUser[user.UserID] {
			if !order.OrderDate.Before(user.RegistrationDate) && !order.OrderDate.After(windowEnd) {
				converted++
				break
			}
		}
	}

	result := &models.ConversionResult{
		Rate:            round2(float64(converted) / float64(len(registered)) * 100),
		RegisteredUsers: len(registered),
		ConvertedUsers:  converted,
	}

	logger.Info().
		Float64("conversion_rate", result.Rate).
		Int("registered_users", result.RegisteredUsers).
		Int("converted_users", result.ConvertedUsers).
		Msg("completed registration to purchase conversion rate")

	return result, nil
}

// UsersWithoutOrdersByRegion counts users registered within the range who
// placed zero orders within the range (any status counts as an order),
// broken down by region. The headline scalar is the total.
func UsersWithoutOrdersByRegion(ctx context.Context, users []*models.User, orders []*models.Order, r models.DateRange) *models.RegionBreakdown {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldStartDate, r.Start.Format(models.DateLayout)).
		Str(loggers.FieldEndDate, r.End.Format(models.DateLayout)).
		Msg("started calculating users without orders by region")

	registered := usersRegisteredIn(users, r)

	hasOrder := make(map[string]bool)
	for _, order := range ordersPlacedIn(orders, r) {
		hasOrder[order.UserID] = true
	}

	byRegion := make(map[string]int)
	total := 0
	for _, user := range registered {
		if !hasOrder[user.UserID] {
			byRegion[user.RegionOrOther()]++
			total++
		}
	}

	logger.Info().
		Int("users_without_orders", total).
		Int("registered_users", len(registered)).
		Msg("completed users without orders by region")

	return &models.RegionBreakdown{Total: total, ByRegion: byRegion}
}

// VisitorsWithoutPurchase counts users whose first visit falls within the
// range and who placed no order within the range, with the share over all
// visitors in range. Fails with a division-undefined error when no visitors
// exist in the range.
func VisitorsWithoutPurchase(ctx context.Context, users []*models.User, orders []*models.Order, r models.DateRange) (*models.VisitorsResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldStartDate, r.Start.Format(models.DateLayout)).
		Str(loggers.FieldEndDate, r.End.Format(models.DateLayout)).
		Msg("started calculating visitors without purchase")

	visitors := usersFirstVisitedIn(users, r)
	if len(visitors) == 0 {
		return nil, errDivisionUndefined("visitors")
	}

	hasOrder := make(map[string]bool)
	for _, order := range ordersPlacedIn(orders, r) {
		hasOrder[order.UserID] = true
	}

	withoutPurchase := 0
	for _, visitor := range visitors {
		if !hasOrder[visitor.UserID] {
			withoutPurchase++
		}
	}

	result := &models.VisitorsResult{
		Visitors:        len(visitors),
		WithoutPurchase: withoutPurchase,
		Percentage:      round2(float64(withoutPurchase) / float64(len(visitors)) * 100),
	}

	logger.Info().
		Int("visitors", result.Visitors).
		Int("without_purchase", result.WithoutPurchase).
		Float64("percentage", result.Percentage).
		Msg("completed visitors without purchase")

	return result, nil
}
