package service

import (
	"context"

	"go.uber.org/zap"

	"signalboard/internal/catalog"
	"signalboard/internal/compat"
	"signalboard/internal/config"
	"signalboard/internal/models"
	"signalboard/internal/repository"
)

// QueryPolicy is the per-deployment slice of config the query engine applies
// uniformly: the live-status allow-list and paging caps.
type QueryPolicy struct {
	LiveStatuses []string
	DefaultLimit int
	MaxLimit     int
	SearchLimit  int
}

func PolicyFromConfig(signals config.SignalsConfig, search config.SearchConfig) QueryPolicy {
	policy := QueryPolicy{
		LiveStatuses: signals.LiveStatuses,
		DefaultLimit: signals.DefaultLimit,
		MaxLimit:     signals.MaxLimit,
		SearchLimit:  search.SignalLimit,
	}
	if len(policy.LiveStatuses) == 0 {
		policy.LiveStatuses = []string{models.StatusActive}
	}
	if policy.DefaultLimit <= 0 {
		policy.DefaultLimit = 50
	}
	if policy.MaxLimit <= 0 {
		policy.MaxLimit = 500
	}
	if policy.SearchLimit <= 0 {
		policy.SearchLimit = 20
	}
	return policy
}

// SignalQueryOptions mirrors the query parameters of the listing endpoint.
// Level wins over the legacy Category; with neither given the engine defaults
// to intraday.
type SignalQueryOptions struct {
	Level      string
	Category   string
	SignalType string
	Direction  *int
	Symbol     string
	Limit      int
	Offset     int
}

// SignalQueryService builds and executes the filtered, stock-enriched signal
// reads. It holds no per-request state; the repository scopes a pooled
// connection to each call and releases it on every exit path.
type SignalQueryService struct {
	Repo   repository.Repository
	Policy QueryPolicy
	Logger *zap.Logger
}

func (s *SignalQueryService) resolveLevel(opts SignalQueryOptions) string {
	if opts.Level != "" {
		return opts.Level
	}
	if opts.Category != "" {
		return compat.CategoryToLevel(opts.Category)
	}
	return models.LevelIntraday
}

// ListSignals validates options, applies the deployment's live-status policy
// and the catalog's enabled-type allow-list, and returns stock-enriched rows
// newest first. Every row carries the derived legacy category.
func (s *SignalQueryService) ListSignals(ctx context.Context, opts SignalQueryOptions) ([]models.Signal, error) {
	if opts.Limit < 0 {
		return nil, validationf("limit must be positive, got %d", opts.Limit)
	}
	if opts.Offset < 0 {
		return nil, validationf("offset must not be negative, got %d", opts.Offset)
	}
	limit := opts.Limit
	if limit == 0 {
		limit = s.Policy.DefaultLimit
	}
	if limit > s.Policy.MaxLimit {
		limit = s.Policy.MaxLimit
	}

	level := s.resolveLevel(opts)
	category := compat.LevelToCategory(level)

	params := repository.ListSignalsParams{
		Level:        level,
		Statuses:     s.Policy.LiveStatuses,
		AllowedTypes: catalog.EnabledNames(category),
		Limit:        limit,
		Offset:       opts.Offset,
	}
	if len(params.AllowedTypes) == 0 {
		if s.Logger != nil {
			s.Logger.Warn("no enabled signal types for category", zap.String("category", category))
		}
		return []models.Signal{}, nil
	}

	if opts.SignalType != "" {
		entry, ok := catalog.FindByIdentifier(opts.SignalType, category)
		if !ok || !entry.Enabled {
			return nil, validationf("unknown or disabled signal type %q", opts.SignalType)
		}
		name := entry.Name
		params.SignalType = &name
	}
	if opts.Direction != nil {
		params.Direction = opts.Direction
	}
	if opts.Symbol != "" {
		symbol := opts.Symbol
		params.Symbol = &symbol
	}

	items, err := s.Repo.ListSignals(ctx, params)
	if err != nil {
		return nil, err
	}
	for i := range items {
		compat.WithDerivedCategory(&items[i])
	}
	return items, nil
}

// CountSignals returns the total matching the same filters, for pagination
// metadata. Validation mirrors ListSignals.
func (s *SignalQueryService) CountSignals(ctx context.Context, opts SignalQueryOptions) (int64, error) {
	level := s.resolveLevel(opts)
	category := compat.LevelToCategory(level)
	params := repository.ListSignalsParams{
		Level:        level,
		Statuses:     s.Policy.LiveStatuses,
		AllowedTypes: catalog.EnabledNames(category),
	}
	if len(params.AllowedTypes) == 0 {
		return 0, nil
	}
	if opts.SignalType != "" {
		entry, ok := catalog.FindByIdentifier(opts.SignalType, category)
		if !ok || !entry.Enabled {
			return 0, validationf("unknown or disabled signal type %q", opts.SignalType)
		}
		name := entry.Name
		params.SignalType = &name
	}
	if opts.Direction != nil {
		params.Direction = opts.Direction
	}
	if opts.Symbol != "" {
		symbol := opts.Symbol
		params.Symbol = &symbol
	}
	return s.Repo.CountSignals(ctx, params)
}

// GetSignalByID fetches one signal with its stock enrichment. A miss is
// ErrNotFound, not an infrastructure error; the lookup ignores the
// live-status policy so resolved/expired signals stay addressable by id.
func (s *SignalQueryService) GetSignalByID(ctx context.Context, id string) (*models.Signal, error) {
	if id == "" {
		return nil, validationf("signal id must not be empty")
	}
	signal, err := s.Repo.GetSignalByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if signal == nil {
		return nil, ErrNotFound
	}
	return compat.WithDerivedCategory(signal), nil
}

// SearchSignals substring-matches the term against id text, symbol, and
// signal_type across live signals, newest first, capped by the configured
// search limit.
func (s *SignalQueryService) SearchSignals(ctx context.Context, term, category string) ([]models.Signal, error) {
	if term == "" {
		return nil, validationf("search term must not be empty")
	}
	params := repository.SearchSignalsParams{
		Term:     term,
		Statuses: s.Policy.LiveStatuses,
		Limit:    s.Policy.SearchLimit,
	}
	if category != "" {
		level := compat.CategoryToLevel(category)
		params.Level = &level
	}
	items, err := s.Repo.SearchSignals(ctx, params)
	if err != nil {
		return nil, err
	}
	for i := range items {
		compat.WithDerivedCategory(&items[i])
	}
	return items, nil
}

// ListSignalsByConfigID lists the live signals of one catalog entry,
// addressed by its config ID.
func (s *SignalQueryService) ListSignalsByConfigID(ctx context.Context, configID string) ([]models.Signal, error) {
	entry, ok := catalog.ByID(configID)
	if !ok {
		return nil, validationf("unknown signal config %q", configID)
	}
	return s.ListSignals(ctx, SignalQueryOptions{
		Level:      compat.CategoryToLevel(entry.Category),
		SignalType: entry.Name,
	})
}
