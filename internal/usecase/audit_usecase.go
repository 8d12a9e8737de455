package usecase

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/brokage/order-service/internal/domain"
	"github.com/jaevor/go-nanoid"
)

// AuditUsecase records the audit trail. Recording failures are logged and
// swallowed: an unwritable trail must not fail the audited operation.
type AuditUsecase struct {
	AuditRepo  domain.AuditRepository
	generateID func() string
}

func NewAuditUsecase(auditRepo domain.AuditRepository) (*AuditUsecase, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	return &AuditUsecase{
		AuditRepo:  auditRepo,
		generateID: idGenerator,
	}, nil
}

func (uc *AuditUsecase) LogSuccess(operation, entityType, entityID, customerID, details string) {
	uc.save(&domain.AuditLog{
		ID:         uc.generateID(),
		Operation:  operation,
		EntityType: entityType,
		EntityID:   entityID,
		CustomerID: customerID,
		Details:    details,
		Status:     domain.AuditSuccess,
		Timestamp:  time.Now().UTC(),
	})
}

func (uc *AuditUsecase) LogFailure(operation, entityType, entityID, customerID, details, errorMessage string) {
	uc.save(&domain.AuditLog{
		ID:           uc.generateID(),
		Operation:    operation,
		EntityType:   entityType,
		EntityID:     entityID,
		CustomerID:   customerID,
		Details:      details,
		Status:       domain.AuditFailure,
		ErrorMessage: errorMessage,
		Timestamp:    time.Now().UTC(),
	})
}

func (uc *AuditUsecase) save(entry *domain.AuditLog) {
	if err := uc.AuditRepo.SaveLog(entry); err != nil {
		slog.Error("failed to save audit log",
			"operation", entry.Operation, "customer", entry.CustomerID, "error", err.Error())
	}
}

// AuditedOrderUsecase decorates an order usecase with audit-trail
// recording for the mutating operations.
type AuditedOrderUsecase struct {
	next  domain.OrderUsecase
	audit *AuditUsecase
}

func NewAuditedOrderUsecase(next domain.OrderUsecase, audit *AuditUsecase) *AuditedOrderUsecase {
	return &AuditedOrderUsecase{next: next, audit: audit}
}

func (a *AuditedOrderUsecase) CreateOrder(input *domain.CreateOrderInput) (*domain.Order, error) {
	details := fmt.Sprintf("Order: %s %s Size: %d Price: %s",
		input.Side, input.AssetName, input.Size, input.Price)

	order, err := a.next.CreateOrder(input)
	if err != nil {
		a.audit.LogFailure("CREATE_ORDER", "Order", "", input.CustomerID, details, err.Error())
		return nil, err
	}

	a.audit.LogSuccess("CREATE_ORDER", "Order", order.ID, input.CustomerID, details)
	return order, nil
}

func (a *AuditedOrderUsecase) ListOrders(customerID string, startDate, endDate time.Time) ([]*domain.Order, error) {
	return a.next.ListOrders(customerID, startDate, endDate)
}

func (a *AuditedOrderUsecase) DeleteOrder(orderID string) error {
	details := fmt.Sprintf("Order ID: %s", orderID)

	if err := a.next.DeleteOrder(orderID); err != nil {
		a.audit.LogFailure("DELETE_ORDER", "Order", orderID, "", details, err.Error())
		return err
	}

	a.audit.LogSuccess("DELETE_ORDER", "Order", orderID, "", details)
	return nil
}
