package mappers

import (
	"github.com/brokage/order-service/internal/domain"
	"github.com/brokage/order-service/internal/infrastructure/postgres/models"
)

func ToGORMAuditLog(entry *domain.AuditLog) *models.AuditLogModel {
	return &models.AuditLogModel{
		ID:           entry.ID,
		Operation:    entry.Operation,
		EntityType:   entry.EntityType,
		EntityID:     entry.EntityID,
		CustomerID:   entry.CustomerID,
		Details:      entry.Details,
		Status:       entry.Status,
		ErrorMessage: entry.ErrorMessage,
		Timestamp:    entry.Timestamp,
	}
}
