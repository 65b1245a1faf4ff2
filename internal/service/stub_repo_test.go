package service

import (
	"context"
	"errors"
	"strings"

	"signalboard/internal/models"
	"signalboard/internal/repository"
)

// stubRepo is a test-only in-memory implementation of repository.Repository.
// Call counters let tests assert that validation failures never reach the
// store; the err fields simulate infrastructure failures per method family.
type stubRepo struct {
	signals []models.Signal
	stocks  []models.Stock
	counts  []repository.SignalTypeCount

	listCalls   int
	groupCalls  int
	stockCalls  int
	signalCalls int

	listErr   error
	groupErr  error
	stockErr  error
	signalErr error

	lastListParams repository.ListSignalsParams
}

var errStoreDown = errors.New("store unreachable")

func (s *stubRepo) ListSignals(ctx context.Context, params repository.ListSignalsParams) ([]models.Signal, error) {
	s.listCalls++
	s.lastListParams = params
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []models.Signal
	for _, signal := range s.signals {
		if signal.Level != params.Level {
			continue
		}
		if !statusAllowed(signal.Status, params.Statuses) {
			continue
		}
		if len(params.AllowedTypes) > 0 && !contains(params.AllowedTypes, signal.SignalType) {
			continue
		}
		if params.SignalType != nil && signal.SignalType != *params.SignalType {
			continue
		}
		if params.Direction != nil && signal.Direction != *params.Direction {
			continue
		}
		if params.Symbol != nil && signal.Symbol != *params.Symbol {
			continue
		}
		out = append(out, signal)
	}
	if params.Offset > 0 {
		if params.Offset >= len(out) {
			return nil, nil
		}
		out = out[params.Offset:]
	}
	if params.Limit > 0 && len(out) > params.Limit {
		out = out[:params.Limit]
	}
	return out, nil
}

func (s *stubRepo) CountSignals(ctx context.Context, params repository.ListSignalsParams) (int64, error) {
	unlimited := params
	unlimited.Limit = 0
	unlimited.Offset = 0
	items, err := s.ListSignals(ctx, unlimited)
	return int64(len(items)), err
}

func (s *stubRepo) GetSignalByID(ctx context.Context, id string) (*models.Signal, error) {
	s.signalCalls++
	if s.signalErr != nil {
		return nil, s.signalErr
	}
	for _, signal := range s.signals {
		if signal.ID == id {
			copied := signal
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) SearchSignals(ctx context.Context, params repository.SearchSignalsParams) ([]models.Signal, error) {
	s.signalCalls++
	if s.signalErr != nil {
		return nil, s.signalErr
	}
	var out []models.Signal
	for _, signal := range s.signals {
		if !statusAllowed(signal.Status, params.Statuses) {
			continue
		}
		if params.Level != nil && signal.Level != *params.Level {
			continue
		}
		if !strings.Contains(signal.ID, params.Term) &&
			!strings.Contains(signal.Symbol, params.Term) &&
			!strings.Contains(signal.SignalType, params.Term) {
			continue
		}
		out = append(out, signal)
		if params.Limit > 0 && len(out) == params.Limit {
			break
		}
	}
	return out, nil
}

func (s *stubRepo) FindSignalsByIDOrSymbol(ctx context.Context, term string, statuses []string, limit int) ([]models.Signal, error) {
	s.signalCalls++
	if s.signalErr != nil {
		return nil, s.signalErr
	}
	var out []models.Signal
	for _, signal := range s.signals {
		if !statusAllowed(signal.Status, statuses) {
			continue
		}
		if signal.ID != term && !strings.Contains(signal.Symbol, term) {
			continue
		}
		out = append(out, signal)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubRepo) GroupSignalCounts(ctx context.Context, level string, signalTypes []string, statuses []string) ([]repository.SignalTypeCount, error) {
	s.groupCalls++
	if s.groupErr != nil {
		return nil, s.groupErr
	}
	return s.counts, nil
}

func (s *stubRepo) SearchStocksByName(ctx context.Context, name string, limit int) ([]models.Stock, error) {
	s.stockCalls++
	if s.stockErr != nil {
		return nil, s.stockErr
	}
	var out []models.Stock
	for _, stock := range s.stocks {
		if strings.Contains(stock.Name, name) {
			out = append(out, stock)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubRepo) FindStocksBySymbol(ctx context.Context, symbol string, limit int) ([]models.Stock, error) {
	s.stockCalls++
	if s.stockErr != nil {
		return nil, s.stockErr
	}
	var out []models.Stock
	for _, stock := range s.stocks {
		if stock.Symbol == symbol {
			out = append(out, stock)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubRepo) GetStockBySymbol(ctx context.Context, symbol string) (*models.Stock, error) {
	s.stockCalls++
	if s.stockErr != nil {
		return nil, s.stockErr
	}
	for _, stock := range s.stocks {
		if stock.Symbol == symbol {
			copied := stock
			return &copied, nil
		}
	}
	return nil, nil
}

func statusAllowed(status string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	return contains(allowed, status)
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
