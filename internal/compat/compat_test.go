package compat

import (
	"testing"

	"signalboard/internal/models"
)

func TestCategoryLevelRoundTrip(t *testing.T) {
	for _, category := range []string{CategoryIntraday, CategoryDaily} {
		if got := LevelToCategory(CategoryToLevel(category)); got != category {
			t.Fatalf("round trip %q = %q", category, got)
		}
	}
}

func TestCategoryToLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"daily", models.LevelDaily},
		{"intraday", models.LevelIntraday},
		{"", models.LevelIntraday},
		{"weekly", models.LevelIntraday},
	}
	for _, tt := range tests {
		if got := CategoryToLevel(tt.in); got != tt.want {
			t.Fatalf("CategoryToLevel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLevelToCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{models.LevelDaily, "daily"},
		{models.LevelIntraday, "intraday"},
		{"", "intraday"},
		{"4H", "intraday"},
	}
	for _, tt := range tests {
		if got := LevelToCategory(tt.in); got != tt.want {
			t.Fatalf("LevelToCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDirectionLabel(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{1, DirectionBullish},
		{-1, DirectionBearish},
		{int64(1), DirectionBullish},
		{float64(-1), DirectionBearish},
		{"long", DirectionBullish},
		{"short", DirectionBearish},
		{"bullish", DirectionBullish},
		{"bearish", DirectionBearish},
		{"neutral", DirectionNeutral},
		{0, DirectionUnknown},
		{2, DirectionUnknown},
		{"sideways", DirectionUnknown},
		{nil, DirectionUnknown},
	}
	for _, tt := range tests {
		if got := DirectionLabel(tt.in); got != tt.want {
			t.Fatalf("DirectionLabel(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWithDerivedCategoryIdempotent(t *testing.T) {
	signal := &models.Signal{Level: models.LevelDaily, Category: "intraday"}

	once := WithDerivedCategory(signal)
	if once.Category != "daily" {
		t.Fatalf("category = %q, want daily (stale value must be overwritten)", once.Category)
	}
	twice := WithDerivedCategory(once)
	if twice.Category != once.Category {
		t.Fatalf("not idempotent: %q vs %q", twice.Category, once.Category)
	}
}

func TestWithDerivedCategoryNil(t *testing.T) {
	if WithDerivedCategory(nil) != nil {
		t.Fatalf("nil in, nil out")
	}
}
