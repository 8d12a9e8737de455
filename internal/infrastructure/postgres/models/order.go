package models

import (
	"time"

	"github.com/brokage/order-service/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderModel struct {
	ID         string             `gorm:"primaryKey;type:uuid"`
	CustomerID string             `gorm:"index:idx_customer_created;not null"`
	AssetName  string             `gorm:"not null"`
	Side       domain.OrderSide   `gorm:"not null"`
	Size       int64              `gorm:"not null"`
	Price      decimal.Decimal    `gorm:"type:numeric(19,4);not null"`
	Status     domain.OrderStatus `gorm:"index;not null"`
	CreateDate time.Time          `gorm:"index:idx_customer_created;not null"`
	UpdatedAt  time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
