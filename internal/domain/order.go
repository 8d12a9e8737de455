package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderSide string

const (
	SideBuy  OrderSide = "BUY"
	SideSell OrderSide = "SELL"
)

type OrderStatus string

const (
	StatusPending  OrderStatus = "PENDING"
	StatusExecuted OrderStatus = "EXECUTED"
	StatusCanceled OrderStatus = "CANCELED"
)

// SettlementCurrency is the asset name BUY orders are paid with.
const SettlementCurrency = "TRY"

type Order struct {
	ID         string
	CustomerID string
	AssetName  string
	Side       OrderSide
	Size       int64
	Price      decimal.Decimal
	Status     OrderStatus
	CreateDate time.Time
}

// Cost is the settlement-currency amount reserved by a BUY order.
func (o *Order) Cost() decimal.Decimal {
	return o.Price.Mul(decimal.NewFromInt(o.Size))
}
