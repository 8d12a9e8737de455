package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type BalanceModel struct {
	ID         uint            `gorm:"primaryKey"`
	CustomerID string          `gorm:"uniqueIndex:idx_customer_asset;not null"`
	AssetName  string          `gorm:"uniqueIndex:idx_customer_asset;not null"`
	TotalSize  decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	UsableSize decimal.Decimal `gorm:"type:numeric(19,4);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (BalanceModel) TableName() string {
	return "balances"
}
