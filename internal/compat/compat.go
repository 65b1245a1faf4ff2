// Package compat translates between generations of the signal store schema:
// the legacy category scheme (intraday/daily) vs the current level scheme
// (intraday/1D), and legacy string directions (long/short) vs the current
// signed-integer encoding (1/-1). Every read boundary applies these
// translations so old and new consumers see one consistent shape; nothing
// here is ever applied on write (this service performs none).
package compat

import (
	"signalboard/internal/models"
)

// Legacy category values.
const (
	CategoryIntraday = "intraday"
	CategoryDaily    = "daily"
)

// Direction labels returned by DirectionLabel.
const (
	DirectionBullish = "bullish"
	DirectionBearish = "bearish"
	DirectionNeutral = "neutral"
	DirectionUnknown = "unknown"
)

// CategoryToLevel maps a legacy category onto the current level column.
// Total: any input other than "daily" is treated as intraday.
func CategoryToLevel(category string) string {
	if category == CategoryDaily {
		return models.LevelDaily
	}
	return models.LevelIntraday
}

// LevelToCategory derives the legacy category from the current level.
// Total: any level other than "1D" is intraday.
func LevelToCategory(level string) string {
	if level == models.LevelDaily {
		return CategoryDaily
	}
	return CategoryIntraday
}

// DirectionLabel normalizes every direction encoding the store has ever used
// into the catalog vocabulary. Unrecognized inputs map to "unknown" rather
// than failing; the display layer decides how to render that.
func DirectionLabel(direction any) string {
	switch v := direction.(type) {
	case int:
		return directionFromInt(v)
	case int32:
		return directionFromInt(int(v))
	case int64:
		return directionFromInt(int(v))
	case float64:
		return directionFromInt(int(v))
	case string:
		switch v {
		case "long":
			return DirectionBullish
		case "short":
			return DirectionBearish
		case DirectionBullish, DirectionBearish, DirectionNeutral:
			return v
		}
	}
	return DirectionUnknown
}

func directionFromInt(v int) string {
	switch v {
	case models.DirectionBullish:
		return DirectionBullish
	case models.DirectionBearish:
		return DirectionBearish
	}
	return DirectionUnknown
}

// WithDerivedCategory sets the signal's legacy category from its level,
// overwriting any stale value. Idempotent.
func WithDerivedCategory(signal *models.Signal) *models.Signal {
	if signal == nil {
		return nil
	}
	signal.Category = LevelToCategory(signal.Level)
	return signal
}
