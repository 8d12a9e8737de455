package domain

import "github.com/shopspring/decimal"

// Balance is how much of one asset a customer holds.
// UsableSize is the part not reserved by pending orders:
// 0 <= UsableSize <= TotalSize at all times.
type Balance struct {
	ID         uint
	CustomerID string
	AssetName  string
	TotalSize  decimal.Decimal
	UsableSize decimal.Decimal
}
