package request

import "github.com/shopspring/decimal"

type IncreaseUsableSizeRequest struct {
	Customer string          `json:"customer"`
	Asset    string          `json:"asset"`
	Amount   decimal.Decimal `json:"amount"`
}
