package repository

import (
	"context"

	"signalboard/internal/models"
)

// ListSignalsParams filters the signal listing. Statuses is the live-status
// allow-list the deployment runs with; AllowedTypes restricts signal_type to
// the catalog-enabled names of the level's category.
type ListSignalsParams struct {
	Level        string
	Statuses     []string
	AllowedTypes []string
	SignalType   *string
	Direction    *int
	Symbol       *string
	Limit        int
	Offset       int
}

// SearchSignalsParams drives the free-text signal search: Term is matched as
// a substring against id text, symbol, and signal_type.
type SearchSignalsParams struct {
	Term     string
	Level    *string
	Statuses []string
	Limit    int
}

// SignalTypeCount is one (signal_type, direction, status) aggregation bucket.
type SignalTypeCount struct {
	SignalType string `gorm:"column:signal_type"`
	Direction  int    `gorm:"column:direction"`
	Status     string `gorm:"column:status"`
	Count      int64  `gorm:"column:count"`
}

// Repository is the read-only access contract to the signal store. All
// signal reads carry the stock enrichment join; a missing stock row yields a
// nil Stock on the signal, never an error. Lookups that miss return
// (nil, nil); only infrastructure failures produce errors.
type Repository interface {
	ListSignals(ctx context.Context, params ListSignalsParams) ([]models.Signal, error)
	CountSignals(ctx context.Context, params ListSignalsParams) (int64, error)
	GetSignalByID(ctx context.Context, id string) (*models.Signal, error)
	SearchSignals(ctx context.Context, params SearchSignalsParams) ([]models.Signal, error)
	FindSignalsByIDOrSymbol(ctx context.Context, term string, statuses []string, limit int) ([]models.Signal, error)
	GroupSignalCounts(ctx context.Context, level string, signalTypes []string, statuses []string) ([]SignalTypeCount, error)

	SearchStocksByName(ctx context.Context, name string, limit int) ([]models.Stock, error)
	FindStocksBySymbol(ctx context.Context, symbol string, limit int) ([]models.Stock, error)
	GetStockBySymbol(ctx context.Context, symbol string) (*models.Stock, error)
}
