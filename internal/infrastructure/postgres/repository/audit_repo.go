package repository

import (
	"github.com/brokage/order-service/internal/domain"
	"github.com/brokage/order-service/internal/infrastructure/postgres/mappers"
	"gorm.io/gorm"
)

type DefaultAuditRepository struct {
	DB *gorm.DB
}

func NewDefaultAuditRepository(db *gorm.DB) *DefaultAuditRepository {
	return &DefaultAuditRepository{DB: db}
}

func (r *DefaultAuditRepository) SaveLog(entry *domain.AuditLog) error {
	return r.DB.Create(mappers.ToGORMAuditLog(entry)).Error
}
