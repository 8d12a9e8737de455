package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/brokage/order-service/internal/domain"
	"github.com/shopspring/decimal"
)

// SellCreateOrderProcessor reserves the order size from the customer's
// balance of the traded asset before persisting the order.
type SellCreateOrderProcessor struct {
	TxManager domain.TxManager
}

func NewSellCreateOrderProcessor(txManager domain.TxManager) *SellCreateOrderProcessor {
	return &SellCreateOrderProcessor{TxManager: txManager}
}

func (p *SellCreateOrderProcessor) SupportedSide() domain.OrderSide {
	return domain.SideSell
}

func (p *SellCreateOrderProcessor) Process(input *domain.CreateOrderInput) (*domain.Order, error) {
	var created *domain.Order

	err := p.TxManager.Do(func(balances domain.BalanceRepository, orders domain.OrderRepository) error {
		balance, err := balances.LockByCustomerIDAndAssetName(input.CustomerID, input.AssetName)
		if err != nil {
			if errors.Is(err, domain.ErrBalanceNotFound) {
				return fmt.Errorf("%w: %s does not have a %s asset",
					domain.ErrInvalidCustomer, input.CustomerID, input.AssetName)
			}
			return domain.NewSystemError("SELL order processing", err)
		}

		size := decimal.NewFromInt(input.Size)
		if balance.UsableSize.LessThan(size) {
			slog.Warn("insufficient asset balance",
				"customer", input.CustomerID, "asset", input.AssetName,
				"usable", balance.UsableSize, "size", input.Size)
			return fmt.Errorf("%w: insufficient %s balance for customer %s",
				domain.ErrInvalidCustomer, input.AssetName, input.CustomerID)
		}

		balance.UsableSize = balance.UsableSize.Sub(size)
		if err := balances.Save(balance); err != nil {
			return domain.NewSystemError("SELL order processing", err)
		}

		order := newPendingOrder(input)
		if err := orders.CreateOrder(order); err != nil {
			return domain.NewSystemError("SELL order processing", err)
		}

		slog.Info("SELL order created",
			"order_id", order.ID, "customer", input.CustomerID,
			"asset", input.AssetName, "reserved", size)
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
