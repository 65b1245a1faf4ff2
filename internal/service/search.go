package service

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"

	"signalboard/internal/compat"
	"signalboard/internal/models"
	"signalboard/internal/repository"
)

var (
	marketPrefixRe = regexp.MustCompile(`^(SZ\.|SH\.)`)
	stockCodeRe    = regexp.MustCompile(`^[036]\d{5}$`)
	sixDigitsRe    = regexp.MustCompile(`^\d{6}$`)
	numericRe      = regexp.MustCompile(`^\d+$`)
	uuidRe         = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// StockResult is one universal-search stock hit.
type StockResult struct {
	Type string `json:"type"`
	models.Stock
}

// SignalResult is one universal-search signal hit.
type SignalResult struct {
	Type string `json:"type"`
	models.Signal
}

// SearchResponse carries both branches of a universal search. A failed
// branch degrades to its empty slice; it never fails the other branch.
type SearchResponse struct {
	Stocks  []StockResult  `json:"stocks"`
	Signals []SignalResult `json:"signals"`
}

// UniversalSearchService classifies a free-text query and fans out to the
// stock and signal search routines concurrently.
type UniversalSearchService struct {
	Repo   repository.Repository
	Policy QueryPolicy
	Logger *zap.Logger
	// Limit caps each branch; zero means 10.
	Limit int
}

func (s *UniversalSearchService) limit() int {
	if s.Limit > 0 {
		return s.Limit
	}
	return 10
}

// containsCJK reports whether the query holds at least one CJK ideograph
// (the U+4E00..U+9FA5 block the stock names are written in).
func containsCJK(q string) bool {
	for _, r := range q {
		if r >= 0x4e00 && r <= 0x9fa5 {
			return true
		}
	}
	return false
}

// normalizeStockCode strips a recognized market prefix and, for a bare
// 6-digit code, re-attaches the exchange prefix: 0/3 Shenzhen, 6 Shanghai.
// Anything else passes through untouched.
func normalizeStockCode(input string) string {
	clean := marketPrefixRe.ReplaceAllString(input, "")
	if !sixDigitsRe.MatchString(clean) {
		return input
	}
	switch clean[0] {
	case '0', '3':
		return "SZ." + clean
	case '6':
		return "SH." + clean
	}
	return input
}

// isStockQuery: CJK name fragment, or a 6-digit A-share code starting 0/3/6
// after stripping a market prefix.
func isStockQuery(q string) bool {
	return containsCJK(q) || stockCodeRe.MatchString(marketPrefixRe.ReplaceAllString(q, ""))
}

// isSignalQuery: purely numeric (legacy ids) or UUID-shaped (current ids).
func isSignalQuery(q string) bool {
	return numericRe.MatchString(q) || uuidRe.MatchString(q)
}

// Search runs the eligible branches concurrently and waits for both. Partial
// failure degrades the failing branch to an empty slice; the aggregate call
// only reports the query back, never a branch's infrastructure error.
func (s *UniversalSearchService) Search(ctx context.Context, query string) SearchResponse {
	response := SearchResponse{
		Stocks:  []StockResult{},
		Signals: []SignalResult{},
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return response
	}

	var wg sync.WaitGroup

	if isStockQuery(query) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stocks, err := s.searchStocks(ctx, query)
			if err != nil {
				if s.Logger != nil {
					s.Logger.Warn("stock search branch failed", zap.String("query", query), zap.Error(err))
				}
				return
			}
			response.Stocks = stocks
		}()
	}

	if isSignalQuery(query) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			signals, err := s.searchSignals(ctx, query)
			if err != nil {
				if s.Logger != nil {
					s.Logger.Warn("signal search branch failed", zap.String("query", query), zap.Error(err))
				}
				return
			}
			response.Signals = signals
		}()
	}

	wg.Wait()
	return response
}

func (s *UniversalSearchService) searchStocks(ctx context.Context, query string) ([]StockResult, error) {
	var (
		stocks []models.Stock
		err    error
	)
	if containsCJK(query) {
		stocks, err = s.Repo.SearchStocksByName(ctx, query, s.limit())
	} else {
		stocks, err = s.Repo.FindStocksBySymbol(ctx, normalizeStockCode(query), s.limit())
	}
	if err != nil {
		return nil, err
	}
	results := make([]StockResult, 0, len(stocks))
	for _, stock := range stocks {
		results = append(results, StockResult{Type: "stock", Stock: stock})
	}
	return results, nil
}

func (s *UniversalSearchService) searchSignals(ctx context.Context, query string) ([]SignalResult, error) {
	signals, err := s.Repo.FindSignalsByIDOrSymbol(ctx, query, s.Policy.LiveStatuses, s.limit())
	if err != nil {
		return nil, err
	}
	results := make([]SignalResult, 0, len(signals))
	for i := range signals {
		compat.WithDerivedCategory(&signals[i])
		results = append(results, SignalResult{Type: "signal", Signal: signals[i]})
	}
	return results, nil
}
