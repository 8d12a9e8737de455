package usecase

import (
	"github.com/brokage/order-service/internal/domain"
	"github.com/shopspring/decimal"
)

// SellOrderCancellationStrategy returns the reserved shares to the
// customer's usable balance of the traded asset.
type SellOrderCancellationStrategy struct{}

func NewSellOrderCancellationStrategy() *SellOrderCancellationStrategy {
	return &SellOrderCancellationStrategy{}
}

func (s *SellOrderCancellationStrategy) SupportedSide() domain.OrderSide {
	return domain.SideSell
}

func (s *SellOrderCancellationStrategy) RefundUsableBalance(balances domain.BalanceRepository, order *domain.Order) error {
	return increaseUsable(balances, order.CustomerID, order.AssetName, decimal.NewFromInt(order.Size))
}
