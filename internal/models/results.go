package models

// RegionBreakdown is a count metric with a per-region side artifact.
// Total always equals the sum of ByRegion values.
type RegionBreakdown struct {
	Total    int            `json:"total"`
	ByRegion map[string]int `json:"byRegion"`
}

// ConversionResult holds the registration-to-purchase conversion rate with
// its auxiliary counts.
type ConversionResult struct {
	Rate            float64 `json:"rate"`
	RegisteredUsers int     `json:"registeredUsers"`
	ConvertedUsers  int     `json:"convertedUsers"`
}

// AverageCheckResult is the pooled mean order value over completed orders in
// range. ByRegion holds per-region means for orders whose user is known;
// orders from unknown users are excluded there, so the breakdown is a side
// artifact rather than a partition of the headline.
type AverageCheckResult struct {
	Average  float64            `json:"average"`
	Orders   int                `json:"orders"`
	ByRegion map[string]float64 `json:"byRegion"`
}

// RankedRegion is one entry of a ranked list. Rank is 1-based and contiguous.
type RankedRegion struct {
	Rank          int     `json:"rank"`
	Region        string  `json:"region"`
	Registrations int     `json:"registrations"`
	Percentage    float64 `json:"percentage"`
}

// LifetimeValueResult holds the average lifetime revenue per customer
// registered in the window, plus the auxiliary totals.
type LifetimeValueResult struct {
	AverageValue float64 `json:"averageValue"`
	TotalRevenue float64 `json:"totalRevenue"`
	Customers    int     `json:"customers"`
}

// PeriodCount is one bucket of a registration time series.
type PeriodCount struct {
	Period string `json:"period"`
	Count  int    `json:"count"`
}

// RegistrationDynamics is a sparse time series of registration counts:
// empty buckets are omitted and Periods is ordered by period ascending.
type RegistrationDynamics struct {
	Total      int           `json:"total"`
	Frequency  Frequency     `json:"frequency"`
	Periods    []PeriodCount `json:"periods"`
	PeakPeriod string        `json:"peakPeriod,omitempty"`
	PeakCount  int           `json:"peakCount,omitempty"`
}

// VisitorsResult counts visitors in range who never placed an order in range.
type VisitorsResult struct {
	Visitors        int     `json:"visitors"`
	WithoutPurchase int     `json:"withoutPurchase"`
	Percentage      float64 `json:"percentage"`
}
