package postgres

import (
	"log"

	"github.com/brokage/order-service/internal/config"
	"github.com/brokage/order-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.OrderConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.OrderDB.Dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.BalanceModel{}, &models.OrderModel{}, &models.AuditLogModel{})

	return db
}
