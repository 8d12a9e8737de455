package repository

import (
	"github.com/brokage/order-service/internal/domain"
	"gorm.io/gorm"
)

// GormTxManager binds balance and order repositories to one database
// transaction: the callback's writes commit together or roll back together.
type GormTxManager struct {
	DB *gorm.DB
}

func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{DB: db}
}

func (m *GormTxManager) Do(fn func(balances domain.BalanceRepository, orders domain.OrderRepository) error) error {
	return m.DB.Transaction(func(tx *gorm.DB) error {
		return fn(NewDefaultBalanceRepository(tx), NewDefaultOrderRepository(tx))
	})
}
