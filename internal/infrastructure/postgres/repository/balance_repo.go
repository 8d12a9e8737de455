package repository

import (
	"errors"

	"github.com/brokage/order-service/internal/domain"
	"github.com/brokage/order-service/internal/infrastructure/postgres/mappers"
	"github.com/brokage/order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultBalanceRepository struct {
	DB *gorm.DB
}

func NewDefaultBalanceRepository(db *gorm.DB) *DefaultBalanceRepository {
	return &DefaultBalanceRepository{DB: db}
}

func (r *DefaultBalanceRepository) GetByCustomerIDAndAssetName(customerID, assetName string) (*domain.Balance, error) {
	var model models.BalanceModel
	if err := r.DB.First(&model, "customer_id = ? AND asset_name = ?", customerID, assetName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBalanceNotFound
		}
		return nil, err
	}

	return mappers.ToDomainBalance(&model), nil
}

// LockByCustomerIDAndAssetName reads the row with SELECT ... FOR UPDATE so
// concurrent reservations for the same (customer, asset) pair serialize
// instead of both subtracting from the same starting usable size.
func (r *DefaultBalanceRepository) LockByCustomerIDAndAssetName(customerID, assetName string) (*domain.Balance, error) {
	var model models.BalanceModel
	if err := r.DB.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&model, "customer_id = ? AND asset_name = ?", customerID, assetName).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBalanceNotFound
		}
		return nil, err
	}

	return mappers.ToDomainBalance(&model), nil
}

func (r *DefaultBalanceRepository) Save(balance *domain.Balance) error {
	model := mappers.ToGORMBalance(balance)
	if err := r.DB.Save(model).Error; err != nil {
		return err
	}
	balance.ID = model.ID
	return nil
}

func (r *DefaultBalanceRepository) GetByCustomerID(customerID string) ([]*domain.Balance, error) {
	var balanceModels []models.BalanceModel
	if err := r.DB.Where("customer_id = ?", customerID).Find(&balanceModels).Error; err != nil {
		return nil, err
	}

	balances := make([]*domain.Balance, len(balanceModels))
	for i, model := range balanceModels {
		balances[i] = mappers.ToDomainBalance(&model)
	}

	return balances, nil
}
