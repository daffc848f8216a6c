package analytics

import (
	"context"
	"errors"
	"fmt"

	"vivid-analytics/internal/datasets"
	"vivid-analytics/internal/models"
	"vivid-analytics/internal/shared/loggers"
	"vivid-analytics/internal/shared/metrics"
	"vivid-analytics/internal/shared/svcerrors"
	"vivid-analytics/internal/shared/validators"
)

// Catalogue metric names. The dispatcher recognizes exactly these.
const (
	MetricActiveUsersByRegion     = "active_users_by_region"
	MetricConversionRate          = "registration_to_purchase_conversion_rate"
	MetricAverageOrderCheck       = "average_order_check_by_region"
	MetricUsersWithoutOrders      = "users_without_orders_by_region"
	MetricTopRegions              = "top_regions_by_registrations"
	MetricCancelledOrdersShare    = "cancelled_orders_share"
	MetricLifetimeValue           = "customer_lifetime_value"
	MetricRepeatCustomers         = "repeat_customers_percentage"
	MetricRegistrationDynamic     = "registration_dynamic"
	MetricVisitorsWithoutPurchase = "visitors_without_purchase"
)

// MetricQuery is the tagged-variant command every caller dispatches through:
// a metric name, a date range, and the metric-specific parameters. Zero-value
// parameters take the configured defaults.
type MetricQuery struct {
	Metric               string `json:"metric" validate:"required"`
	StartDate            string `json:"startDate" validate:"required"`
	EndDate              string `json:"endDate" validate:"required"`
	ConversionWindowDays int    `json:"conversionWindowDays,omitempty" validate:"omitempty,min=1"`
	Frequency            string `json:"frequency,omitempty" validate:"omitempty,oneof=daily weekly monthly"`
	TopN                 int    `json:"topN,omitempty" validate:"omitempty,min=1"`
}

// MetricResult pairs the computed value with the metric that produced it.
// Result is one of the canonical shapes: a scalar, a breakdown mapping, or a
// ranked list.
type MetricResult struct {
	Metric string `json:"metric"`
	Result any    `json:"result"`
}

// Defaults are applied to queries that omit an optional parameter.
type Defaults struct {
	ConversionWindowDays int
	TopN                 int
	Frequency            models.Frequency
}

//go:generate mockgen -source=service.go -destination=./mocks/analytics_service_mock.go -package=mocks
type AnalyticsService interface {
	// Execute validates the query and dispatches it to the catalogue
	// function named by query.Metric.
	Execute(ctx context.Context, query *MetricQuery) (*MetricResult, error)
}

type analyticsService struct {
	dataset  *datasets.Dataset
	defaults Defaults
	validate *validators.Validate
}

func NewAnalyticsService(dataset *datasets.Dataset, defaults Defaults) AnalyticsService {
	return &analyticsService{
		dataset:  dataset,
		defaults: defaults,
		validate: validators.New(),
	}
}

func (s *analyticsService) Execute(ctx context.Context, query *MetricQuery) (*MetricResult, error) {
	result, err := s.execute(ctx, query)
	if err != nil {
		code := ""
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			code = svcErr.Code
		}
		metricComputationsTotal.WithLabelValues(s.metricLabel(query), code).Inc()
		return nil, err
	}
	metricComputationsTotal.WithLabelValues(query.Metric, metrics.ValueNoError).Inc()
	return result, nil
}

func (s *analyticsService) execute(ctx context.Context, query *MetricQuery) (*MetricResult, error) {
	logger := loggers.Ctx(ctx)

	if query == nil {
		return nil, errQueryValidationFailed("empty metric query", nil)
	}
	if err := s.validate.Struct(query); err != nil {
		return nil, errQueryValidationFailed(fmt.Sprintf("invalid metric query: %v", err), err)
	}

	r, err := models.NewDateRange(query.StartDate, query.EndDate)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRange) {
			return nil, errInvalidRange(err)
		}
		return nil, errInvalidDate(err)
	}

	logger.Debug().
		Str(loggers.FieldMetric, query.Metric).
		Str(loggers.FieldStartDate, query.StartDate).
		Str(loggers.FieldEndDate, query.EndDate).
		Msg("dispatching metric query")

	users, orders := s.dataset.Users, s.dataset.Orders

	var value any
	switch query.Metric {
	case MetricActiveUsersByRegion:
		value = ActiveUsersByRegion(ctx, users, r)

	case MetricConversionRate:
		value, err = RegistrationToPurchaseConversionRate(ctx, users, orders, r, s.conversionWindowDays(query))

	case MetricAverageOrderCheck:
		value, err = AverageOrderCheckByRegion(ctx, users, orders, r)

	case MetricUsersWithoutOrders:
		value = UsersWithoutOrdersByRegion(ctx, users, orders, r)

	case MetricTopRegions:
		value = TopRegionsByRegistrations(ctx, users, r, s.topN(query))

	case MetricCancelledOrdersShare:
		value, err = CancelledOrdersShare(ctx, orders, r)

	case MetricLifetimeValue:
		value, err = CustomerLifetimeValue(ctx, users, orders, r)

	case MetricRepeatCustomers:
		value, err = RepeatCustomersPercentage(ctx, orders, r)

	case MetricRegistrationDynamic:
		frequency, freqErr := s.frequency(query)
		if freqErr != nil {
			return nil, freqErr
		}
		value = RegistrationDynamic(ctx, users, r, frequency)

	case MetricVisitorsWithoutPurchase:
		value, err = VisitorsWithoutPurchase(ctx, users, orders, r)

	default:
		return nil, errQueryValidationFailed(fmt.Sprintf("unknown metric: %q", query.Metric), nil)
	}
	if err != nil {
		return nil, err
	}

	return &MetricResult{Metric: query.Metric, Result: value}, nil
}

func (s *analyticsService) conversionWindowDays(query *MetricQuery) int {
	if query.ConversionWindowDays > 0 {
		return query.ConversionWindowDays
	}
	return s.defaults.ConversionWindowDays
}

func (s *analyticsService) topN(query *MetricQuery) int {
	if query.TopN > 0 {
		return query.TopN
	}
	return s.defaults.TopN
}

func (s *analyticsService) frequency(query *MetricQuery) (models.Frequency, error) {
	if query.Frequency == "" {
		return s.defaults.Frequency, nil
	}
	frequency, err := models.NewFrequencyFromString(query.Frequency)
	if err != nil {
		return "", errQueryValidationFailed(err.Error(), err)
	}
	return frequency, nil
}

// metricLabel keeps the prometheus label space bounded: unrecognized metric
// names collapse into a single bucket.
func (s *analyticsService) metricLabel(query *MetricQuery) string {
	if query == nil {
		return "unknown"
	}
	switch query.Metric {
	case MetricActiveUsersByRegion, MetricConversionRate, MetricAverageOrderCheck,
		MetricUsersWithoutOrders, MetricTopRegions, MetricCancelledOrdersShare,
		MetricLifetimeValue, MetricRepeatCustomers, MetricRegistrationDynamic,
		MetricVisitorsWithoutPurchase:
		return query.Metric
	default:
		return "unknown"
	}
}
