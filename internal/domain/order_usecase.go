package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateOrderInput struct {
	CustomerID string
	Side       OrderSide
	AssetName  string
	Size       int64
	Price      decimal.Decimal
}

type OrderUsecase interface {
	CreateOrder(input *CreateOrderInput) (*Order, error)
	ListOrders(customerID string, startDate, endDate time.Time) ([]*Order, error)
	DeleteOrder(orderID string) error
}

type BalanceUsecase interface {
	ListAssets(customerID string) ([]*Balance, error)
	IncreaseUsableSize(customerID, assetName string, amount decimal.Decimal) error
}
