package analytics

import (
	"context"

	"vivid-analytics/internal/models"
	"vivid-analytics/internal/shared/loggers"
)

// AverageOrderCheckByRegion computes the pooled mean amount over completed
// orders within the range. The headline average covers every qualifying
// order; the per-region breakdown joins orders to user regions and drops
// orders whose user is unknown, since region is a user attribute. Fails with
// a division-undefined error when no completed orders exist in the range.
func AverageOrderCheckByRegion(ctx context.Context, users []*models.User, orders []*models.Order, r models.DateRange) (*models.AverageCheckResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldStartDate, r.Start.Format(models.DateLayout)).
		Str(loggers.FieldEndDate, r.End.Format(models.DateLayout)).
		Msg("started calculating average order check by region")

	completed := make([]*models.Order, 0)
	for _, order := range ordersPlacedIn(orders, r) {
		if order.IsCompleted() {
			completed = append(completed, order)
		}
	}
	if len(completed) == 0 {
		return nil, errDivisionUndefined("completed orders")
	}

	regions, err := regionIndex(users)
	if err != nil {
		return nil, err
	}

	var totalAmount float64
	regionSums := make(map[string]float64)
	regionCounts := make(map[string]int)
	for _, order := range completed {
		totalAmount += order.Amount
		region, known := regions[order.UserID]
		if !known {
			continue // unmatched orders are excluded from the region breakdown
		}
		regionSums[region] += order.Amount
		regionCounts[region]++
	}

	byRegion := make(map[string]float64, len(regionSums))
	for region, sum := range regionSums {
		byRegion[region] = round2(sum / float64(regionCounts[region]))
	}

	result := &models.AverageCheckResult{
		Average:  round2(totalAmount / float64(len(completed))),
		Orders:   len(completed),
		ByRegion: byRegion,
	}

	logger.Info().
		Float64("average_check", result.Average).
		Int("orders", result.Orders).
		Int("regions", len(byRegion)).
		Msg("completed average order check by region")

	return result, nil
}

// CancelledOrdersShare computes the percentage of orders within the range
// with cancelled status. Fails with a division-undefined error when no
// orders exist in the range.
func CancelledOrdersShare(ctx context.Context, orders []*models.Order, r models.DateRange) (float64, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldStartDate, r.Start.Format(models.DateLayout)).
		Str(loggers.FieldEndDate, r.End.Format(models.DateLayout)).
		Msg("started calculating cancelled orders share")

	inRange := ordersPlacedIn(orders, r)
	if len(inRange) == 0 {
		return 0, errDivisionUndefined("orders")
	}

	cancelled := 0
	for _, order := range inRange {
		if order.IsCancelled() {
			cancelled++
		}
	}

	share := round2(float64(cancelled) / float64(len(inRange)) * 100)

	logger.Info().
		Float64("cancelled_share", share).
		Int("cancelled_orders", cancelled).
		Int("total_orders", len(inRange)).
		Msg("completed cancelled orders share")

	return share, nil
}

// RepeatCustomersPercentage computes, among distinct users with at least one
// order within the range, the percentage who placed two or more orders within
// the range. Fails with a division-undefined error when no orders exist in
// the range.
func RepeatCustomersPercentage(ctx context.Context, orders []*models.Order, r models.DateRange) (float64, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldStartDate, r.Start.Format(models.DateLayout)).
		Str(loggers.FieldEndDate, r.End.Format(models.DateLayout)).
		Msg("started calculating repeat customers percentage")

	ordersPerUser := make(map[string]int)
	for _, order := range ordersPlacedIn(orders, r) {
		ordersPerUser[order.UserID]++
	}
	if len(ordersPerUser) == 0 {
		return 0, errDivisionUndefined("customers with orders")
	}

	repeat := 0
	for _, count := range ordersPerUser {
		if count >= 2 {
			repeat++
		}
	}

	percentage := round2(float64(repeat) / float64(len(ordersPerUser)) * 100)

	logger.Info().
		Float64("repeat_percentage", percentage).
		Int("repeat_customers", repeat).
		Int("customers", len(ordersPerUser)).
		Msg("completed repeat customers percentage")

	return percentage, nil
}
