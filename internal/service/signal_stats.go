package service

import (
	"context"

	"go.uber.org/zap"

	"signalboard/internal/catalog"
	"signalboard/internal/compat"
	"signalboard/internal/models"
	"signalboard/internal/repository"
)

// SignalStats is one catalog entry extended with its live counters. Derived
// on every request, never persisted.
type SignalStats struct {
	catalog.SignalTypeConfig
	Count        int64 `json:"count"`
	ActiveCount  int64 `json:"activeCount"`
	BullishCount int64 `json:"bullishCount"`
	BearishCount int64 `json:"bearishCount"`
}

// SignalStatsService folds grouped store counts into per-type summaries.
type SignalStatsService struct {
	Repo   repository.Repository
	Policy QueryPolicy
	Logger *zap.Logger
}

// StatsFor returns one zero-seeded entry per enabled catalog type of the
// category, in catalog order, so types with no occurrences still report
// zeroes. The output cardinality is fixed by the catalog, not by the data.
// A category with no enabled types yields an empty slice without touching
// the store.
func (s *SignalStatsService) StatsFor(ctx context.Context, category string) ([]SignalStats, error) {
	category = catalog.NormalizeCategory(category)
	enabled := catalog.EnabledByCategory(category)
	if len(enabled) == 0 {
		return []SignalStats{}, nil
	}

	names := make([]string, 0, len(enabled))
	stats := make([]SignalStats, 0, len(enabled))
	index := make(map[string]int, len(enabled))
	for i, entry := range enabled {
		names = append(names, entry.Name)
		stats = append(stats, SignalStats{SignalTypeConfig: entry})
		index[entry.Name] = i
	}

	level := compat.CategoryToLevel(category)
	counts, err := s.Repo.GroupSignalCounts(ctx, level, names, s.Policy.LiveStatuses)
	if err != nil {
		return nil, err
	}

	for _, bucket := range counts {
		i, ok := index[bucket.SignalType]
		if !ok {
			continue
		}
		stats[i].Count += bucket.Count
		if bucket.Status == models.StatusActive {
			stats[i].ActiveCount += bucket.Count
		}
		switch bucket.Direction {
		case models.DirectionBullish:
			stats[i].BullishCount += bucket.Count
		case models.DirectionBearish:
			stats[i].BearishCount += bucket.Count
		}
	}

	return stats, nil
}

// LogSnapshot writes one aggregate log line per category. Scheduled by the
// cron runner as a cheap read-only health signal for dashboards.
func (s *SignalStatsService) LogSnapshot(ctx context.Context) {
	for _, category := range []string{compat.CategoryIntraday, compat.CategoryDaily} {
		stats, err := s.StatsFor(ctx, category)
		if err != nil {
			if s.Logger != nil {
				s.Logger.Warn("stats snapshot failed", zap.String("category", category), zap.Error(err))
			}
			continue
		}
		var total, active int64
		for _, entry := range stats {
			total += entry.Count
			active += entry.ActiveCount
		}
		if s.Logger != nil {
			s.Logger.Info("signal stats snapshot",
				zap.String("category", category),
				zap.Int("types", len(stats)),
				zap.Int64("total", total),
				zap.Int64("active", active),
			)
		}
	}
}
