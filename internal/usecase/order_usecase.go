package usecase

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/brokage/order-service/internal/domain"
	publisher "github.com/brokage/order-service/internal/infrastructure/kafka"
	"github.com/brokage/order-service/internal/infrastructure/metrics"
)

type DefaultOrderUsecase struct {
	OrderRepo  domain.OrderRepository
	TxManager  domain.TxManager
	Dispatcher *StrategyDispatcher
	Publisher  *publisher.OrderPublisher
	Metrics    *metrics.OrderMetrics
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	txManager domain.TxManager,
	dispatcher *StrategyDispatcher,
	orderPublisher *publisher.OrderPublisher,
	orderMetrics *metrics.OrderMetrics,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		OrderRepo:  orderRepo,
		TxManager:  txManager,
		Dispatcher: dispatcher,
		Publisher:  orderPublisher,
		Metrics:    orderMetrics,
	}
}

func (uc *DefaultOrderUsecase) CreateOrder(input *domain.CreateOrderInput) (*domain.Order, error) {
	start := time.Now()

	proc, err := uc.Dispatcher.ProcessorFor(input.Side)
	if err != nil {
		uc.recordError("create_order", "unsupported_side")
		return nil, err
	}

	order, err := proc.Process(input)
	if err != nil {
		if domain.IsBusinessError(err) {
			uc.recordError("create_order", "business")
		} else {
			slog.Error("order creation failed", "customer", input.CustomerID, "error", err.Error())
			uc.recordError("create_order", "system")
		}
		return nil, err
	}

	uc.recordOrderCreated(order, time.Since(start))
	uc.publishOrderEvent(order, "order-created")

	return order, nil
}

func (uc *DefaultOrderUsecase) ListOrders(customerID string, startDate, endDate time.Time) ([]*domain.Order, error) {
	orders, err := uc.OrderRepo.GetOrdersByCustomerIDAndDateRange(customerID, startDate, endDate)
	if err != nil {
		return nil, domain.NewSystemError("order listing", err)
	}
	return orders, nil
}

// DeleteOrder cancels a pending order: the cancellation strategy refunds
// the reservation and the order row is removed, all in one transaction.
// A missing order and a non-pending order surface the same error so a
// caller cannot probe order state through the delete endpoint.
func (uc *DefaultOrderUsecase) DeleteOrder(orderID string) error {
	start := time.Now()
	var canceled *domain.Order

	err := uc.TxManager.Do(func(balances domain.BalanceRepository, orders domain.OrderRepository) error {
		order, err := orders.GetOrderByID(orderID)
		if err != nil {
			if errors.Is(err, domain.ErrOrderNotFound) {
				return fmt.Errorf("%w: order not found for this order id: %s", domain.ErrInvalidOrder, orderID)
			}
			return domain.NewSystemError("order deletion", err)
		}

		if order.Status != domain.StatusPending {
			return fmt.Errorf("%w: order not found for this order id: %s", domain.ErrInvalidOrder, orderID)
		}

		strategy, err := uc.Dispatcher.CancellationFor(order.Side)
		if err != nil {
			return err
		}

		if err := strategy.RefundUsableBalance(balances, order); err != nil {
			return err
		}

		if err := orders.DeleteOrder(order.ID); err != nil {
			return domain.NewSystemError("order deletion", err)
		}

		canceled = order
		return nil
	})
	if err != nil {
		if domain.IsBusinessError(err) {
			uc.recordError("delete_order", "business")
		} else {
			slog.Error("order deletion failed", "order_id", orderID, "error", err.Error())
			uc.recordError("delete_order", "system")
		}
		return err
	}

	slog.Info("order canceled", "order_id", canceled.ID, "customer", canceled.CustomerID)
	uc.recordOrderCanceled(canceled, time.Since(start))
	uc.publishOrderEvent(canceled, "order-canceled")

	return nil
}

func (uc *DefaultOrderUsecase) recordOrderCreated(order *domain.Order, elapsed time.Duration) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrdersCreatedTotal.WithLabelValues(string(order.Side), order.AssetName).Inc()
	uc.Metrics.OrdersCreatedAmountTotal.WithLabelValues(string(order.Side), order.AssetName).Add(order.Cost().InexactFloat64())
	uc.Metrics.OrderProcessingDuration.WithLabelValues("create_order").Observe(elapsed.Seconds())
}

func (uc *DefaultOrderUsecase) recordOrderCanceled(order *domain.Order, elapsed time.Duration) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrdersCanceledTotal.WithLabelValues(string(order.Side), order.AssetName).Inc()
	uc.Metrics.OrdersCanceledAmountTotal.WithLabelValues(string(order.Side), order.AssetName).Add(order.Cost().InexactFloat64())
	uc.Metrics.OrderProcessingDuration.WithLabelValues("delete_order").Observe(elapsed.Seconds())
}

func (uc *DefaultOrderUsecase) recordError(operation, kind string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.OrderErrorsTotal.WithLabelValues(operation, kind).Inc()
}

func (uc *DefaultOrderUsecase) publishOrderEvent(order *domain.Order, event string) {
	if uc.Publisher == nil {
		return
	}
	go func(e publisher.OrderEvent) {
		if err := uc.Publisher.PublishOrderEvent(e); err != nil {
			slog.Error("failed to publish kafka order event", "event", e.Event, "error", err.Error())
		}
	}(publisher.OrderEvent{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		AssetName:  order.AssetName,
		Side:       string(order.Side),
		Size:       order.Size,
		Price:      order.Price.String(),
		Status:     string(order.Status),
		Event:      event,
	})
}
