package models

import (
	"time"

	"gorm.io/datatypes"
)

// Stock is read-only reference data maintained by the upstream data pipeline.
type Stock struct {
	Symbol   string         `gorm:"primaryKey;type:varchar(20);comment:股票代码 SZ./SH.前缀" json:"symbol"`
	Name     string         `gorm:"type:varchar(100);not null;index;comment:股票名称" json:"name"`
	Market   string         `gorm:"type:varchar(10);comment:交易所 SZ/SH" json:"market"`
	MetaData datatypes.JSON `gorm:"type:jsonb;comment:行业等附加信息" json:"meta_data,omitempty"`

	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime;comment:最近更新时间" json:"updated_at"`
}

func (Stock) TableName() string {
	return "stock"
}
