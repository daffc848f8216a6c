package analytics

import (
	"context"
	"sort"
	"time"

	"vivid-analytics/internal/models"
	"vivid-analytics/internal/shared/loggers"
)

// ActiveUsersByRegion counts users registered within the range, grouped by
// region. The headline scalar is the total; the per-region counts are a side
// artifact and always sum to it.
func ActiveUsersByRegion(ctx context.Context, users []*models.User, r models.DateRange) *models.RegionBreakdown {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldStartDate, r.Start.Format(models.DateLayout)).
		Str(loggers.FieldEndDate, r.End.Format(models.DateLayout)).
		Msg("started calculating active users by region")

	active := usersRegisteredIn(users, r)

	byRegion := make(map[string]int)
	for _, user := range active {
		byRegion[user.RegionOrOther()]++
	}

	logger.Info().
		Int("active_users", len(active)).
		Int("regions", len(byRegion)).
		Msg("completed active users by region")

	return &models.RegionBreakdown{Total: len(active), ByRegion: byRegion}
}

// TopRegionsByRegistrations ranks regions by registration count within the
// range and returns at most topN entries. Ranks are 1-based and contiguous;
// ties break by region name ascending so the ranking is reproducible.
// Percentages are computed over all registrations in range, so they sum to
// 100 only when topN covers every region present.
func TopRegionsByRegistrations(ctx context.Context, users []*models.User, r models.DateRange, topN int) []models.RankedRegion {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldStartDate, r.Start.Format(models.DateLayout)).
		Str(loggers.FieldEndDate, r.End.Format(models.DateLayout)).
		Int("top_n", topN).
		Msg("started ranking top regions by registrations")

	registered := usersRegisteredIn(users, r)
	ranked := []models.RankedRegion{}
	if len(registered) == 0 || topN <= 0 {
		logger.Info().Int("regions", 0).Msg("completed top regions by registrations")
		return ranked
	}

	counts := make(map[string]int)
	for _, user := range registered {
		counts[user.RegionOrOther()]++
	}

	regions := make([]string, 0, len(counts))
	for region := range counts {
		regions = append(regions, region)
	}
	sort.Slice(regions, func(i, j int) bool {
		if counts[regions[i]] != counts[regions[j]] {
			return counts[regions[i]] > counts[regions[j]]
		}
		return regions[i] < regions[j]
	})

	if len(regions) > topN {
		regions = regions[:topN]
	}

	total := len(registered)
	for i, region := range regions {
		ranked = append(ranked, models.RankedRegion{
			Rank:          i + 1,
			Region:        region,
			Registrations: counts[region],
			Percentage:    round2(float64(counts[region]) / float64(total) * 100),
		})
	}

	logger.Info().
		Int("regions", len(ranked)).
		Int("total_registrations", total).
		Msg("completed top regions by registrations")

	return ranked
}

// RegistrationDynamic resamples registration counts within the range into
// buckets of the given frequency. Empty buckets are omitted entirely and
// periods are ordered ascending.
func RegistrationDynamic(ctx context.Context, users []*models.User, r models.DateRange, frequency models.Frequency) *models.RegistrationDynamics {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldStartDate, r.Start.Format(models.DateLayout)).
		Str(loggers.FieldEndDate, r.End.Format(models.DateLayout)).
		Str("frequency", string(frequency)).
		Msg("started calculating registration dynamic")

	registered := usersRegisteredIn(users, r)

	counts := make(map[time.Time]int)
	for _, user := range registered {
		counts[frequency.BucketStart(user.RegistrationDate)]++
	}

	buckets := make([]time.Time, 0, len(counts))
	for bucket := range counts {
		buckets = append(buckets, bucket)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Before(buckets[j]) })

	result := &models.RegistrationDynamics{
		Total:     len(registered),
		Frequency: frequency,
		Periods:   make([]models.PeriodCount, 0, len(buckets)),
	}
	for _, bucket := range buckets {
		period := models.PeriodCount{
			Period: bucket.Format(models.DateLayout),
			Count:  counts[bucket],
		}
		result.Periods = append(result.Periods, period)
		if period.Count > result.PeakCount {
			result.PeakCount = period.Count
			result.PeakPeriod = period.Period
		}
	}

	logger.Info().
		Int("total_registrations", result.Total).
		Int("active_periods", len(result.Periods)).
		Str("peak_period", result.PeakPeriod).
		Msg("completed registration dynamic")

	return result
}
