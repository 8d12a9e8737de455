package usecase

import (
	"github.com/brokage/order-service/internal/domain"
)

// BuyOrderCancellationStrategy returns the reserved settlement-currency
// amount (price*size) to the customer's usable balance.
type BuyOrderCancellationStrategy struct{}

func NewBuyOrderCancellationStrategy() *BuyOrderCancellationStrategy {
	return &BuyOrderCancellationStrategy{}
}

func (s *BuyOrderCancellationStrategy) SupportedSide() domain.OrderSide {
	return domain.SideBuy
}

func (s *BuyOrderCancellationStrategy) RefundUsableBalance(balances domain.BalanceRepository, order *domain.Order) error {
	return increaseUsable(balances, order.CustomerID, domain.SettlementCurrency, order.Cost())
}
