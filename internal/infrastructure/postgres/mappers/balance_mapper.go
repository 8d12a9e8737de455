package mappers

import (
	"github.com/brokage/order-service/internal/domain"
	"github.com/brokage/order-service/internal/infrastructure/postgres/models"
)

func ToGORMBalance(balance *domain.Balance) *models.BalanceModel {
	return &models.BalanceModel{
		ID:         balance.ID,
		CustomerID: balance.CustomerID,
		AssetName:  balance.AssetName,
		TotalSize:  balance.TotalSize,
		UsableSize: balance.UsableSize,
	}
}

func ToDomainBalance(model *models.BalanceModel) *domain.Balance {
	return &domain.Balance{
		ID:         model.ID,
		CustomerID: model.CustomerID,
		AssetName:  model.AssetName,
		TotalSize:  model.TotalSize,
		UsableSize: model.UsableSize,
	}
}
