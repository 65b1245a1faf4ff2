// Package catalog is the static registry of known signal types and their
// display metadata. It is populated at init and read-only afterwards, so
// concurrent readers need no synchronization.
package catalog

import (
	"strings"
)

// Risk levels, low to high.
const (
	RiskR1 = "R1"
	RiskR2 = "R2"
	RiskR3 = "R3"
	RiskR4 = "R4"
)

// SignalTypeConfig describes one known signal type.
type SignalTypeConfig struct {
	ID          string `json:"id"`
	Name        string `json:"name"` // canonical signal_type value in the store
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Category    string `json:"category"` // intraday | daily
	Enabled     bool   `json:"enabled"`
	RiskLevel   string `json:"riskLevel"` // R1-R4
	Direction   string `json:"direction"` // bullish | bearish | neutral
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

var intradaySignals = []SignalTypeConfig{
	{
		ID:          "intraday_realtime_breakout",
		Name:        "REALTIME_BREAKOUT",
		DisplayName: "实时突破",
		Description: "实时监控的价格突破信号",
		Category:    "intraday",
		Enabled:     true,
		RiskLevel:   RiskR1,
		Direction:   "bullish",
		Color:       "#dc2626",
		Icon:        "Zap",
	},
	{
		ID:          "intraday_ict_breakout",
		Name:        "ICT_BREAKOUT",
		DisplayName: "ICT 突破",
		Description: "ICT 突破交易信号",
		Category:    "intraday",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bullish",
		Color:       "#7c3aed",
		Icon:        "Activity",
	},
	{
		ID:          "intraday_bullish_ob",
		Name:        "BULLISH_OB",
		DisplayName: "看涨订单块",
		Description: "机构看涨订单块支撑位信号",
		Category:    "intraday",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bullish",
		Color:       "#10b981",
		Icon:        "Shield",
	},
	{
		ID:          "intraday_bearish_ob",
		Name:        "BEARISH_OB",
		DisplayName: "看跌订单块",
		Description: "机构看跌订单块阻力位信号",
		Category:    "intraday",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bearish",
		Color:       "#ef4444",
		Icon:        "Shield",
	},
	{
		ID:          "intraday_order_block_pullback",
		Name:        "ORDER_BLOCK_PULLBACK",
		DisplayName: "订单块回调",
		Description: "订单块回调确认信号",
		Category:    "intraday",
		Enabled:     true,
		RiskLevel:   RiskR3,
		Direction:   "neutral",
		Color:       "#f59e0b",
		Icon:        "RefreshCw",
	},
	{
		ID:          "intraday_breakout",
		Name:        "BREAKOUT",
		DisplayName: "突破",
		Description: "价格突破关键位信号",
		Category:    "intraday",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bullish",
		Color:       "#059669",
		Icon:        "TrendingUp",
	},
	{
		ID:          "intraday_up_gap",
		Name:        "UP_GAP",
		DisplayName: "向上缺口",
		Description: "价格向上跳空缺口信号",
		Category:    "intraday",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bullish",
		Color:       "#22c55e",
		Icon:        "ArrowUp",
	},
	{
		ID:          "intraday_bullish_engulfing",
		Name:        "BULLISH_ENGULFING",
		DisplayName: "看涨吞没",
		Description: "看涨吞没K线形态信号",
		Category:    "intraday",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bullish",
		Color:       "#16a34a",
		Icon:        "TrendingUp",
	},
	{
		ID:          "intraday_bearish_engulfing",
		Name:        "BEARISH_ENGULFING",
		DisplayName: "看跌吞没",
		Description: "看跌吞没K线形态信号",
		Category:    "intraday",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bearish",
		Color:       "#dc2626",
		Icon:        "TrendingDown",
	},
}

var dailySignals = []SignalTypeConfig{
	{
		ID:          "daily_bullish_fvg",
		Name:        "BULLISH_FVG",
		DisplayName: "看涨公允价值缺口",
		Description: "日线时间框架的看涨FVG信号",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bullish",
		Color:       "#2563eb",
		Icon:        "BarChart3",
	},
	{
		ID:          "daily_bearish_fvg",
		Name:        "BEARISH_FVG",
		DisplayName: "看跌公允价值缺口",
		Description: "日线时间框架的看跌FVG信号",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bearish",
		Color:       "#dc2626",
		Icon:        "BarChart3",
	},
	{
		ID:          "daily_bullish_bos",
		Name:        "BULLISH_BOS",
		DisplayName: "看涨结构突破",
		Description: "日线时间框架的看涨结构突破信号",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bullish",
		Color:       "#16a34a",
		Icon:        "TrendingUp",
	},
	{
		ID:          "daily_bearish_bos",
		Name:        "BEARISH_BOS",
		DisplayName: "看跌结构突破",
		Description: "日线时间框架的看跌结构突破信号",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bearish",
		Color:       "#dc2626",
		Icon:        "TrendingDown",
	},
	{
		ID:          "daily_bullish_mss",
		Name:        "BULLISH_MSS",
		DisplayName: "看涨结构转换",
		Description: "日线时间框架的看涨市场结构转换",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR3,
		Direction:   "bullish",
		Color:       "#059669",
		Icon:        "Activity",
	},
	{
		ID:          "daily_bearish_mss",
		Name:        "BEARISH_MSS",
		DisplayName: "看跌结构转换",
		Description: "日线时间框架的看跌市场结构转换",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR3,
		Direction:   "bearish",
		Color:       "#7c3aed",
		Icon:        "Activity",
	},
	{
		ID:          "daily_bullish_ssl",
		Name:        "BULLISH_SSL",
		DisplayName: "看涨SSL通道",
		Description: "SSL通道显示看涨趋势信号",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bullish",
		Color:       "#059669",
		Icon:        "TrendingUp",
	},
	{
		ID:          "daily_bearish_ssl",
		Name:        "BEARISH_SSL",
		DisplayName: "看跌SSL通道",
		Description: "SSL通道显示看跌趋势信号",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bearish",
		Color:       "#dc2626",
		Icon:        "TrendingDown",
	},
	{
		ID:          "daily_bullish_ob",
		Name:        "BULLISH_OB",
		DisplayName: "看涨订单块",
		Description: "日线时间框架的看涨订单块信号",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bullish",
		Color:       "#10b981",
		Icon:        "Shield",
	},
	{
		ID:          "daily_bearish_ob",
		Name:        "BEARISH_OB",
		DisplayName: "看跌订单块",
		Description: "日线时间框架的看跌订单块信号",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bearish",
		Color:       "#ef4444",
		Icon:        "Shield",
	},
	{
		ID:          "daily_bullish_engulfing",
		Name:        "BULLISH_ENGULFING",
		DisplayName: "看涨吞没",
		Description: "日线时间框架的看涨吞没形态",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bullish",
		Color:       "#22c55e",
		Icon:        "TrendingUp",
	},
	{
		ID:          "daily_bearish_engulfing",
		Name:        "BEARISH_ENGULFING",
		DisplayName: "看跌吞没",
		Description: "日线时间框架的看跌吞没形态",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bearish",
		Color:       "#dc2626",
		Icon:        "TrendingDown",
	},
	{
		ID:          "daily_support_zone_breakdown",
		Name:        "SUPPORT_ZONE_BREAKDOWN",
		DisplayName: "支撑区域跌破",
		Description: "价格跌破重要支撑区域的信号",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR3,
		Direction:   "bearish",
		Color:       "#dc2626",
		Icon:        "TrendingDown",
	},
	{
		ID:          "daily_resistance_breakout",
		Name:        "RESISTANCE_BREAKOUT",
		DisplayName: "阻力位突破",
		Description: "价格突破重要阻力位的信号",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bullish",
		Color:       "#16a34a",
		Icon:        "TrendingUp",
	},
	{
		ID:          "daily_ict_breakout",
		Name:        "ICT_BREAKOUT",
		DisplayName: "ICT 突破",
		Description: "日线时间框架的 ICT 突破信号",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR2,
		Direction:   "bullish",
		Color:       "#8b5cf6",
		Icon:        "Activity",
	},
	{
		ID:          "daily_order_block_pullback",
		Name:        "ORDER_BLOCK_PULLBACK",
		DisplayName: "订单块回调",
		Description: "日线时间框架的订单块回调信号",
		Category:    "daily",
		Enabled:     true,
		RiskLevel:   RiskR3,
		Direction:   "neutral",
		Color:       "#f59e0b",
		Icon:        "RefreshCw",
	},
}

// urlToDB maps URL slugs to canonical signal_type names. Kept injective: each
// slug resolves to exactly one name.
var urlToDB = map[string]string{
	// intraday
	"swing_high_rebreakout": "SWING_HIGH_REBREAKOUT",
	"swing_high_breakout":   "SWING_HIGH_BREAKOUT",
	"bullish_mss":           "INNERDAY_BULLISH_MSS",
	"bullish_bos":           "INNERDAY_BULLISH_BOS",
	"pl_reverted":           "PL_REVERTED",
	"other":                 "OTHER",
	"bullish_ob":            "BULLISH_OB",
	"realtime_breakout":     "REALTIME_BREAKOUT",
	// daily
	"bullish_ssl":            "BULLISH_SSL",
	"support_zone_breakdown": "SupportZoneBreakdown",
	"bullish_fvg":            "BULLISH_FVG",
	"bearish_mss":            "BEARISH_MSS",
	"limit_up":               "LIMIT_UP",
	"resistance_breakout":    "ResistanceBreakout",
	"er":                     "ER",
	"pl":                     "PL",
	"ppl":                    "PPL",
}

// nameToID maps legacy/alternate signal_type spellings to config IDs. Some
// right-hand sides reference retired config IDs; those lookups fall through
// to the later resolution steps.
var nameToID = map[string]string{
	// intraday
	"SWING_HIGH_REBREAKOUT": "intraday_swing_high_rebreakout",
	"SWING_HIGH_BREAKOUT":   "intraday_swing_high_breakout",
	"INNERDAY_BULLISH_MSS":  "intraday_bullish_mss",
	"INNERDAY_BULLISH_BOS":  "intraday_bullish_bos",
	"PL_REVERTED":           "intraday_pl_reverted",
	"OTHER":                 "intraday_other",
	"BULLISH_OB":            "intraday_bullish_ob",
	"REALTIME_BREAKOUT":     "intraday_realtime_breakout",
	// daily
	"BULLISH_SSL":          "daily_bullish_ssl",
	"SupportZoneBreakdown": "daily_support_zone_breakdown",
	"BULLISH_FVG":          "daily_bullish_fvg",
	"BEARISH_MSS":          "daily_bearish_mss",
	"LIMIT_UP":             "daily_limit_up",
	"ResistanceBreakout":   "daily_resistance_breakout",
	"ER":                   "daily_er",
	"PL":                   "daily_pl",
	"PPL":                  "daily_ppl",
}

// All returns every catalog entry, intraday first, in definition order.
func All() []SignalTypeConfig {
	out := make([]SignalTypeConfig, 0, len(intradaySignals)+len(dailySignals))
	out = append(out, intradaySignals...)
	out = append(out, dailySignals...)
	return out
}

// ListByCategory returns entries of one category in definition order.
func ListByCategory(category string) []SignalTypeConfig {
	if category == "intraday" {
		return append([]SignalTypeConfig(nil), intradaySignals...)
	}
	if category == "daily" {
		return append([]SignalTypeConfig(nil), dailySignals...)
	}
	return nil
}

// EnabledByCategory returns the enabled entries of one category.
func EnabledByCategory(category string) []SignalTypeConfig {
	var out []SignalTypeConfig
	for _, entry := range ListByCategory(category) {
		if entry.Enabled {
			out = append(out, entry)
		}
	}
	return out
}

// EnabledNames returns the canonical names of the enabled entries of one
// category, the allow-list the query engine restricts signal_type to.
func EnabledNames(category string) []string {
	entries := EnabledByCategory(category)
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Name)
	}
	return out
}

// ByID returns the entry with the given config ID.
func ByID(id string) (SignalTypeConfig, bool) {
	for _, entry := range All() {
		if entry.ID == id {
			return entry, true
		}
	}
	return SignalTypeConfig{}, false
}

// ByName returns the first entry with the given canonical name. Names repeat
// across categories (e.g. BULLISH_OB exists intraday and daily); within one
// category they are unique.
func ByName(name string) (SignalTypeConfig, bool) {
	for _, entry := range All() {
		if entry.Name == name {
			return entry, true
		}
	}
	return SignalTypeConfig{}, false
}

// FindByIdentifier resolves an identifier of unknown vintage (config ID, URL
// slug, legacy name, or canonical name) to a catalog entry. Resolution order,
// each step tried only when the previous one missed:
//
//  1. exact config ID
//  2. URL slug via urlToDB, then canonical name
//  3. legacy name via nameToID, then config ID
//  4. canonical name directly
//  5. with category given, config ID prefixed by "<category>_"
//
// A miss on all steps means "unknown signal type", not an error.
func FindByIdentifier(identifier, category string) (SignalTypeConfig, bool) {
	if entry, ok := ByID(identifier); ok {
		return entry, true
	}
	if name, ok := urlToDB[identifier]; ok {
		if entry, ok := ByName(name); ok {
			return entry, true
		}
	}
	if id, ok := nameToID[identifier]; ok {
		if entry, ok := ByID(id); ok {
			return entry, true
		}
	}
	if entry, ok := ByName(identifier); ok {
		return entry, true
	}
	if category != "" {
		if entry, ok := ByID(category + "_" + identifier); ok {
			return entry, true
		}
	}
	return SignalTypeConfig{}, false
}

// URLSlugFor is the inverse of the slug table: canonical name to URL slug.
// The table is kept injective, so at most one slug can match.
func URLSlugFor(name string) (string, bool) {
	for slug, dbName := range urlToDB {
		if dbName == name {
			return slug, true
		}
	}
	return "", false
}

// RiskLevelStats counts enabled entries per risk level.
func RiskLevelStats() map[string]int {
	stats := map[string]int{RiskR1: 0, RiskR2: 0, RiskR3: 0, RiskR4: 0}
	for _, entry := range All() {
		if entry.Enabled {
			stats[entry.RiskLevel]++
		}
	}
	return stats
}

// DirectionStats counts enabled entries per direction.
func DirectionStats() map[string]int {
	stats := map[string]int{"bullish": 0, "bearish": 0, "neutral": 0}
	for _, entry := range All() {
		if entry.Enabled {
			stats[entry.Direction]++
		}
	}
	return stats
}

// NormalizeCategory lowercases and validates a category parameter, defaulting
// to intraday for anything unrecognized.
func NormalizeCategory(category string) string {
	switch strings.ToLower(strings.TrimSpace(category)) {
	case "daily":
		return "daily"
	default:
		return "intraday"
	}
}
