package gormrepository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"signalboard/internal/models"
	"signalboard/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// signalRow is the scan target for the stock enrichment join. The joined
// columns are aliased so they never collide with the signal's own columns.
type signalRow struct {
	models.Signal
	StockName     *string        `gorm:"column:stock_name"`
	StockMarket   *string        `gorm:"column:stock_market"`
	StockMetaData datatypes.JSON `gorm:"column:stock_meta_data"`
}

func (r signalRow) toSignal() models.Signal {
	signal := r.Signal
	if r.StockName != nil {
		signal.Stock = &models.StockSummary{
			Name:     *r.StockName,
			Market:   valueOr(r.StockMarket, ""),
			MetaData: r.StockMetaData,
		}
	}
	return signal
}

func valueOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func (s *Store) signalJoinQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("signals AS s").
		Select("s.*, st.name AS stock_name, st.market AS stock_market, st.meta_data AS stock_meta_data").
		Joins("LEFT JOIN stock st ON st.symbol = s.symbol")
}

func applySignalFilters(query *gorm.DB, params repository.ListSignalsParams) *gorm.DB {
	query = query.Where("s.level = ?", params.Level)
	if len(params.Statuses) > 0 {
		query = query.Where("s.status IN ?", params.Statuses)
	}
	if len(params.AllowedTypes) > 0 {
		query = query.Where("s.signal_type IN ?", params.AllowedTypes)
	}
	if params.SignalType != nil && strings.TrimSpace(*params.SignalType) != "" {
		query = query.Where("s.signal_type = ?", strings.TrimSpace(*params.SignalType))
	}
	if params.Direction != nil {
		query = query.Where("s.direction = ?", *params.Direction)
	}
	if params.Symbol != nil && strings.TrimSpace(*params.Symbol) != "" {
		query = query.Where("s.symbol = ?", strings.TrimSpace(*params.Symbol))
	}
	return query
}

func (s *Store) ListSignals(ctx context.Context, params repository.ListSignalsParams) ([]models.Signal, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := applySignalFilters(s.signalJoinQuery(ctx), params)
	// id DESC tiebreak keeps pagination stable for equal created_at.
	query = query.Order("s.created_at DESC, s.id DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	if params.Offset > 0 {
		query = query.Offset(params.Offset)
	}
	var rows []signalRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rowsToSignals(rows), nil
}

func (s *Store) CountSignals(ctx context.Context, params repository.ListSignalsParams) (int64, error) {
	if s == nil || s.db == nil {
		return 0, nil
	}
	query := s.db.WithContext(ctx).Table("signals AS s")
	query = applySignalFilters(query, params)
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (s *Store) GetSignalByID(ctx context.Context, id string) (*models.Signal, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var row signalRow
	err := s.signalJoinQuery(ctx).
		Where("s.id = ?", id).
		Limit(1).
		Scan(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if row.ID == "" {
		return nil, nil
	}
	signal := row.toSignal()
	return &signal, nil
}

func (s *Store) SearchSignals(ctx context.Context, params repository.SearchSignalsParams) ([]models.Signal, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.signalJoinQuery(ctx)
	if len(params.Statuses) > 0 {
		query = query.Where("s.status IN ?", params.Statuses)
	}
	if params.Level != nil && *params.Level != "" {
		query = query.Where("s.level = ?", *params.Level)
	}
	pattern := "%" + strings.TrimSpace(params.Term) + "%"
	query = query.Where(
		"s.id::text ILIKE ? OR s.symbol ILIKE ? OR s.signal_type ILIKE ?",
		pattern, pattern, pattern,
	)
	query = query.Order("s.created_at DESC, s.id DESC")
	if params.Limit > 0 {
		query = query.Limit(params.Limit)
	}
	var rows []signalRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rowsToSignals(rows), nil
}

func (s *Store) FindSignalsByIDOrSymbol(ctx context.Context, term string, statuses []string, limit int) ([]models.Signal, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	term = strings.TrimSpace(term)
	query := s.signalJoinQuery(ctx)
	if len(statuses) > 0 {
		query = query.Where("s.status IN ?", statuses)
	}
	query = query.Where("s.id::text = ? OR s.symbol ILIKE ?", term, "%"+term+"%")
	query = query.Order("s.created_at DESC, s.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var rows []signalRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rowsToSignals(rows), nil
}

func (s *Store) GroupSignalCounts(ctx context.Context, level string, signalTypes []string, statuses []string) ([]repository.SignalTypeCount, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Model(&models.Signal{}).
		Select("signal_type, direction, status, COUNT(*) AS count").
		Where("level = ?", level)
	if len(signalTypes) > 0 {
		query = query.Where("signal_type IN ?", signalTypes)
	}
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	var counts []repository.SignalTypeCount
	if err := query.Group("signal_type, direction, status").Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *Store) SearchStocksByName(ctx context.Context, name string, limit int) ([]models.Stock, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Model(&models.Stock{}).
		Where("name ILIKE ?", "%"+strings.TrimSpace(name)+"%")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var items []models.Stock
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) FindStocksBySymbol(ctx context.Context, symbol string, limit int) ([]models.Stock, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).
		Model(&models.Stock{}).
		Where("symbol = ?", strings.TrimSpace(symbol))
	if limit > 0 {
		query = query.Limit(limit)
	}
	var items []models.Stock
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) GetStockBySymbol(ctx context.Context, symbol string) (*models.Stock, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Stock
	err := s.db.WithContext(ctx).
		Model(&models.Stock{}).
		Where("symbol = ?", strings.TrimSpace(symbol)).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func rowsToSignals(rows []signalRow) []models.Signal {
	items := make([]models.Signal, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toSignal())
	}
	return items
}
