package service

import (
	"context"
	"errors"
	"testing"

	"signalboard/internal/catalog"
	"signalboard/internal/models"
	"signalboard/internal/repository"
)

func TestStatsForSeedsZeroEntries(t *testing.T) {
	repo := &stubRepo{} // empty store
	svc := &SignalStatsService{Repo: repo, Policy: testPolicy()}

	stats, err := svc.StatsFor(context.Background(), "intraday")
	if err != nil {
		t.Fatalf("StatsFor: %v", err)
	}
	enabled := catalog.EnabledByCategory("intraday")
	if len(stats) != len(enabled) {
		t.Fatalf("got %d entries, want %d (one per enabled type)", len(stats), len(enabled))
	}
	for i, entry := range stats {
		if entry.ID != enabled[i].ID {
			t.Fatalf("catalog order not preserved at %d: %s vs %s", i, entry.ID, enabled[i].ID)
		}
		if entry.Count != 0 || entry.ActiveCount != 0 || entry.BullishCount != 0 || entry.BearishCount != 0 {
			t.Fatalf("entry %s not zero-seeded: %+v", entry.ID, entry)
		}
	}
}

func TestStatsForFoldsCounts(t *testing.T) {
	repo := &stubRepo{counts: []repository.SignalTypeCount{
		{SignalType: "BULLISH_OB", Direction: 1, Status: models.StatusActive, Count: 3},
		{SignalType: "BULLISH_OB", Direction: -1, Status: models.StatusActive, Count: 1},
		{SignalType: "BULLISH_OB", Direction: 0, Status: models.StatusActive, Count: 2},
		{SignalType: "UP_GAP", Direction: 1, Status: models.StatusPending, Count: 5},
		{SignalType: "NOT_IN_CATALOG", Direction: 1, Status: models.StatusActive, Count: 7},
	}}
	svc := &SignalStatsService{Repo: repo, Policy: testPolicy()}

	stats, err := svc.StatsFor(context.Background(), "intraday")
	if err != nil {
		t.Fatalf("StatsFor: %v", err)
	}
	byName := map[string]SignalStats{}
	for _, entry := range stats {
		byName[entry.Name] = entry
	}

	ob := byName["BULLISH_OB"]
	if ob.Count != 6 || ob.ActiveCount != 6 || ob.BullishCount != 3 || ob.BearishCount != 1 {
		t.Fatalf("BULLISH_OB counters wrong: %+v", ob)
	}
	gap := byName["UP_GAP"]
	if gap.Count != 5 || gap.ActiveCount != 0 || gap.BullishCount != 5 {
		t.Fatalf("UP_GAP counters wrong: %+v", gap)
	}
	if _, ok := byName["NOT_IN_CATALOG"]; ok {
		t.Fatalf("unknown signal_type bucket must be ignored")
	}

	for _, entry := range stats {
		if entry.BullishCount+entry.BearishCount > entry.Count {
			t.Fatalf("%s: bullish+bearish exceeds count: %+v", entry.Name, entry)
		}
	}
}

func TestStatsForNormalizesCategory(t *testing.T) {
	repo := &stubRepo{}
	svc := &SignalStatsService{Repo: repo, Policy: testPolicy()}

	// Unrecognized categories fall back to intraday and still query once.
	stats, err := svc.StatsFor(context.Background(), "bogus")
	if err != nil {
		t.Fatalf("StatsFor: %v", err)
	}
	if repo.groupCalls != 1 {
		t.Fatalf("groupCalls = %d, want 1", repo.groupCalls)
	}
	if len(stats) != len(catalog.EnabledByCategory("intraday")) {
		t.Fatalf("fallback category did not seed intraday entries")
	}
}

func TestStatsForPropagatesStoreError(t *testing.T) {
	repo := &stubRepo{groupErr: errStoreDown}
	svc := &SignalStatsService{Repo: repo, Policy: testPolicy()}

	if _, err := svc.StatsFor(context.Background(), "daily"); !errors.Is(err, errStoreDown) {
		t.Fatalf("want store error passthrough, got %v", err)
	}
}
