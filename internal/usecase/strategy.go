package usecase

import (
	"time"

	"github.com/brokage/order-service/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOrderProcessor validates and reserves balance for one order side,
// then persists the new order. Reservation and order write happen in one
// storage transaction.
type CreateOrderProcessor interface {
	SupportedSide() domain.OrderSide
	Process(input *domain.CreateOrderInput) (*domain.Order, error)
}

// OrderCancellationStrategy refunds the balance reservation of a cancelled
// order. RefundUsableBalance runs inside the caller's transaction through
// the bound balance repository.
type OrderCancellationStrategy interface {
	SupportedSide() domain.OrderSide
	RefundUsableBalance(balances domain.BalanceRepository, order *domain.Order) error
}

func newPendingOrder(input *domain.CreateOrderInput) *domain.Order {
	return &domain.Order{
		ID:         uuid.New().String(),
		CustomerID: input.CustomerID,
		AssetName:  input.AssetName,
		Side:       input.Side,
		Size:       input.Size,
		Price:      input.Price,
		Status:     domain.StatusPending,
		CreateDate: time.Now().UTC(),
	}
}

// increaseUsable adds amount back to a balance row under row lock.
// The row was decremented when the order was created, so its absence is
// an invariant violation, not a business error.
func increaseUsable(balances domain.BalanceRepository, customerID, assetName string, amount decimal.Decimal) error {
	balance, err := balances.LockByCustomerIDAndAssetName(customerID, assetName)
	if err != nil {
		return domain.NewSystemError("balance refund", err)
	}

	balance.UsableSize = balance.UsableSize.Add(amount)
	if err := balances.Save(balance); err != nil {
		return domain.NewSystemError("balance refund", err)
	}

	return nil
}
