package request

import "github.com/shopspring/decimal"

type CreateOrderRequest struct {
	Customer string          `json:"customer"`
	Side     string          `json:"side"`
	Asset    string          `json:"asset"`
	Size     int64           `json:"size"`
	Price    decimal.Decimal `json:"price"`
}
