package models

import (
	"time"

	"github.com/brokage/order-service/internal/domain"
)

type AuditLogModel struct {
	ID           string             `gorm:"primaryKey"`
	Operation    string             `gorm:"not null"`
	EntityType   string             `gorm:"not null"`
	EntityID     string
	CustomerID   string             `gorm:"index"`
	Details      string
	Status       domain.AuditStatus `gorm:"not null"`
	ErrorMessage string
	Timestamp    time.Time          `gorm:"not null;index"`
}

func (AuditLogModel) TableName() string {
	return "audit_logs"
}
