package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/brokage/order-service/internal/domain"
	"github.com/shopspring/decimal"
)

type DefaultBalanceUsecase struct {
	BalanceRepo domain.BalanceRepository
	TxManager   domain.TxManager
}

func NewDefaultBalanceUsecase(balanceRepo domain.BalanceRepository, txManager domain.TxManager) *DefaultBalanceUsecase {
	return &DefaultBalanceUsecase{
		BalanceRepo: balanceRepo,
		TxManager:   txManager,
	}
}

func (uc *DefaultBalanceUsecase) ListAssets(customerID string) ([]*domain.Balance, error) {
	balances, err := uc.BalanceRepo.GetByCustomerID(customerID)
	if err != nil {
		return nil, domain.NewSystemError("asset listing", err)
	}
	return balances, nil
}

// IncreaseUsableSize unreserves amount on an existing balance row. Unlike
// the refund path, the row here is caller-supplied, so its absence is a
// business error.
func (uc *DefaultBalanceUsecase) IncreaseUsableSize(customerID, assetName string, amount decimal.Decimal) error {
	return uc.TxManager.Do(func(balances domain.BalanceRepository, _ domain.OrderRepository) error {
		balance, err := balances.LockByCustomerIDAndAssetName(customerID, assetName)
		if err != nil {
			if errors.Is(err, domain.ErrBalanceNotFound) {
				return fmt.Errorf("%w: customer %s does not have the asset: %s",
					domain.ErrInvalidAsset, customerID, assetName)
			}
			return domain.NewSystemError("usable size increase", err)
		}

		newUsable := balance.UsableSize.Add(amount)
		if newUsable.GreaterThan(balance.TotalSize) {
			return fmt.Errorf("%w: usable size of %s for customer %s cannot exceed total size",
				domain.ErrInvalidAsset, assetName, customerID)
		}

		old := balance.UsableSize
		balance.UsableSize = newUsable
		if err := balances.Save(balance); err != nil {
			return domain.NewSystemError("usable size increase", err)
		}

		slog.Info("usable size increased",
			"customer", customerID, "asset", assetName,
			"old_usable", old, "new_usable", newUsable)
		return nil
	})
}
