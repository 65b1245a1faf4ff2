package catalog

import (
	"testing"
)

func TestListByCategoryOrder(t *testing.T) {
	intraday := ListByCategory("intraday")
	if len(intraday) == 0 {
		t.Fatalf("intraday catalog empty")
	}
	if intraday[0].ID != "intraday_realtime_breakout" {
		t.Fatalf("definition order not preserved, first = %s", intraday[0].ID)
	}
	daily := ListByCategory("daily")
	if len(daily) == 0 {
		t.Fatalf("daily catalog empty")
	}
	if daily[0].ID != "daily_bullish_fvg" {
		t.Fatalf("definition order not preserved, first = %s", daily[0].ID)
	}
	if got := ListByCategory("weekly"); got != nil {
		t.Fatalf("unknown category should yield nil, got %d entries", len(got))
	}
}

func TestNameUniqueWithinCategory(t *testing.T) {
	for _, category := range []string{"intraday", "daily"} {
		seen := map[string]string{}
		for _, entry := range ListByCategory(category) {
			if prev, ok := seen[entry.Name]; ok {
				t.Fatalf("%s: name %s defined by both %s and %s", category, entry.Name, prev, entry.ID)
			}
			seen[entry.Name] = entry.ID
		}
	}
}

func TestSlugTableInjective(t *testing.T) {
	seen := map[string]string{}
	for slug, name := range urlToDB {
		if prev, ok := seen[name]; ok {
			t.Fatalf("slugs %s and %s both map to %s", prev, slug, name)
		}
		seen[name] = slug
	}
}

func TestFindByIdentifierResolutionOrder(t *testing.T) {
	// The same entry must be reachable by config ID, URL slug, and canonical name.
	byID, ok := FindByIdentifier("intraday_bullish_ob", "")
	if !ok {
		t.Fatalf("config ID lookup missed")
	}
	bySlug, ok := FindByIdentifier("bullish_ob", "")
	if !ok {
		t.Fatalf("slug lookup missed")
	}
	byName, ok := FindByIdentifier("BULLISH_OB", "")
	if !ok {
		t.Fatalf("name lookup missed")
	}
	if byID.ID != bySlug.ID || bySlug.ID != byName.ID {
		t.Fatalf("resolution diverged: %s / %s / %s", byID.ID, bySlug.ID, byName.ID)
	}
}

func TestFindByIdentifierCategoryPrefix(t *testing.T) {
	entry, ok := FindByIdentifier("up_gap", "intraday")
	if !ok {
		t.Fatalf("category-prefixed lookup missed")
	}
	if entry.ID != "intraday_up_gap" {
		t.Fatalf("got %s", entry.ID)
	}
	// Without a category the identifier matches nothing.
	if _, ok := FindByIdentifier("up_gap", ""); ok {
		t.Fatalf("up_gap should not resolve without a category")
	}
}

func TestFindByIdentifierUnknown(t *testing.T) {
	if _, ok := FindByIdentifier("NO_SUCH_SIGNAL", "daily"); ok {
		t.Fatalf("unknown identifier resolved")
	}
}

func TestFindByIdentifierLegacyNameTable(t *testing.T) {
	// Legacy spelling routes through nameToID to a live config ID.
	entry, ok := FindByIdentifier("SupportZoneBreakdown", "")
	if !ok {
		t.Fatalf("legacy name lookup missed")
	}
	if entry.ID != "daily_support_zone_breakdown" {
		t.Fatalf("got %s", entry.ID)
	}
	// Legacy names mapped to retired config IDs fall through every step.
	if _, ok := FindByIdentifier("LIMIT_UP", ""); ok {
		t.Fatalf("retired config ID should not resolve")
	}
}

func TestURLSlugFor(t *testing.T) {
	slug, ok := URLSlugFor("REALTIME_BREAKOUT")
	if !ok || slug != "realtime_breakout" {
		t.Fatalf("got %q ok=%v", slug, ok)
	}
	if _, ok := URLSlugFor("BEARISH_OB"); ok {
		t.Fatalf("BEARISH_OB has no slug")
	}
}

func TestEnabledNames(t *testing.T) {
	names := EnabledNames("intraday")
	if len(names) != len(EnabledByCategory("intraday")) {
		t.Fatalf("length mismatch")
	}
	for _, name := range names {
		entry, ok := ByName(name)
		if !ok || !entry.Enabled {
			t.Fatalf("name %s not an enabled catalog entry", name)
		}
	}
}

func TestRollupStats(t *testing.T) {
	risk := RiskLevelStats()
	direction := DirectionStats()
	totalRisk := risk[RiskR1] + risk[RiskR2] + risk[RiskR3] + risk[RiskR4]
	totalDirection := direction["bullish"] + direction["bearish"] + direction["neutral"]
	enabled := 0
	for _, entry := range All() {
		if entry.Enabled {
			enabled++
		}
	}
	if totalRisk != enabled || totalDirection != enabled {
		t.Fatalf("rollups disagree: risk=%d direction=%d enabled=%d", totalRisk, totalDirection, enabled)
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"daily", "daily"},
		{"DAILY", "daily"},
		{" intraday ", "intraday"},
		{"", "intraday"},
		{"1D", "intraday"},
	}
	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Fatalf("NormalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
