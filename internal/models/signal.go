package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Signal statuses. Only the live subset is eligible for default queries;
// which statuses count as live is a deployment policy (config signals.live_statuses).
const (
	StatusCreated   = "created"
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusExpired   = "expired"
	StatusCancelled = "cancelled"
)

// Signal levels (current schema). The legacy category values intraday/daily
// are derived at read time and never persisted.
const (
	LevelIntraday = "intraday"
	LevelDaily    = "1D"
)

// Direction encoding: 1 = bullish (legacy "long"), -1 = bearish (legacy "short").
const (
	DirectionBullish = 1
	DirectionBearish = -1
)

// Signal is a precomputed trading signal produced by an external generation
// process. This service only reads and re-shapes rows; status transitions
// (active -> expired etc.) happen upstream.
type Signal struct {
	ID         string `gorm:"primaryKey;type:uuid;comment:信号唯一标识" json:"id"`
	Symbol     string `gorm:"type:varchar(20);not null;index;comment:股票代码" json:"symbol"`
	SignalType string `gorm:"type:varchar(50);not null;index;comment:信号类型(目录name)" json:"signal_type"`
	TimeKey    string `gorm:"type:varchar(30);comment:K线时间键" json:"time_key,omitempty"`

	Level     string `gorm:"type:varchar(10);not null;index;comment:时间级别 intraday/1D" json:"level"`
	Direction int    `gorm:"not null;comment:方向 1多 -1空" json:"direction"`

	Price           decimal.Decimal  `gorm:"type:numeric(20,4);comment:触发价格" json:"price"`
	Confidence      float64          `gorm:"comment:置信度 0-100" json:"confidence"`
	Score           *float64         `gorm:"comment:综合评分" json:"score,omitempty"`
	Strength        *float64         `gorm:"comment:信号强度" json:"strength,omitempty"`
	SupportLevel    *decimal.Decimal `gorm:"type:numeric(20,4);comment:支撑位" json:"support_level,omitempty"`
	ResistanceLevel *decimal.Decimal `gorm:"type:numeric(20,4);comment:阻力位" json:"resistance_level,omitempty"`

	Status    string  `gorm:"type:varchar(20);not null;default:created;index;comment:生命周期状态" json:"status"`
	RiskLevel *string `gorm:"type:varchar(10);comment:风险等级 R1-R4" json:"risk_level,omitempty"`
	Priority  *string `gorm:"type:varchar(10);comment:优先级" json:"priority,omitempty"`

	Metadata datatypes.JSON `gorm:"type:jsonb;comment:附加数据(触发价/涨跌幅等)" json:"metadata,omitempty"`

	CreatedAt time.Time  `gorm:"type:timestamptz;autoCreateTime;index;comment:创建时间" json:"created_at"`
	ExpiresAt *time.Time `gorm:"type:timestamptz;index;comment:过期时间" json:"expires_at,omitempty"`

	// Category is the legacy timeframe classification, derived from Level at
	// every read boundary (compat.WithDerivedCategory). Never persisted.
	Category string `gorm:"-" json:"category,omitempty"`

	// Stock is the enrichment join result; nil when no matching stock row.
	Stock *StockSummary `gorm:"-" json:"stock,omitempty"`
}

func (Signal) TableName() string {
	return "signals"
}

// StockSummary is the slice of stock metadata attached to a signal row by the
// left-join enrichment.
type StockSummary struct {
	Name     string         `json:"name"`
	Market   string         `json:"market"`
	MetaData datatypes.JSON `json:"meta_data,omitempty"`
}
