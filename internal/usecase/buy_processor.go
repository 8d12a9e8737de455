package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/brokage/order-service/internal/domain"
	"github.com/shopspring/decimal"
)

// BuyCreateOrderProcessor reserves price*size from the customer's
// settlement-currency balance before persisting the order.
type BuyCreateOrderProcessor struct {
	TxManager domain.TxManager
}

func NewBuyCreateOrderProcessor(txManager domain.TxManager) *BuyCreateOrderProcessor {
	return &BuyCreateOrderProcessor{TxManager: txManager}
}

func (p *BuyCreateOrderProcessor) SupportedSide() domain.OrderSide {
	return domain.SideBuy
}

func (p *BuyCreateOrderProcessor) Process(input *domain.CreateOrderInput) (*domain.Order, error) {
	var created *domain.Order

	err := p.TxManager.Do(func(balances domain.BalanceRepository, orders domain.OrderRepository) error {
		balance, err := balances.LockByCustomerIDAndAssetName(input.CustomerID, domain.SettlementCurrency)
		if err != nil {
			if errors.Is(err, domain.ErrBalanceNotFound) {
				return fmt.Errorf("%w: %s does not have a %s asset",
					domain.ErrInvalidCustomer, input.CustomerID, domain.SettlementCurrency)
			}
			return domain.NewSystemError("BUY order processing", err)
		}

		cost := input.Price.Mul(decimal.NewFromInt(input.Size))
		if balance.UsableSize.LessThan(cost) {
			slog.Warn("insufficient settlement balance",
				"customer", input.CustomerID, "usable", balance.UsableSize, "cost", cost)
			return fmt.Errorf("%w: insufficient %s balance for customer %s",
				domain.ErrInvalidCustomer, domain.SettlementCurrency, input.CustomerID)
		}

		balance.UsableSize = balance.UsableSize.Sub(cost)
		if err := balances.Save(balance); err != nil {
			return domain.NewSystemError("BUY order processing", err)
		}

		order := newPendingOrder(input)
		if err := orders.CreateOrder(order); err != nil {
			return domain.NewSystemError("BUY order processing", err)
		}

		slog.Info("BUY order created",
			"order_id", order.ID, "customer", input.CustomerID,
			"asset", input.AssetName, "reserved", cost)
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
