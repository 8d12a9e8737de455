package domain

import "time"

type OrderRepository interface {
	CreateOrder(order *Order) error
	GetOrderByID(orderID string) (*Order, error)
	// GetOrdersByCustomerIDAndDateRange returns orders whose CreateDate
	// falls in [from, to] inclusive, in store iteration order.
	GetOrdersByCustomerIDAndDateRange(customerID string, from, to time.Time) ([]*Order, error)
	DeleteOrder(orderID string) error
}

// TxManager runs fn with repositories bound to one storage transaction.
// Either every write fn performs takes effect or none does.
type TxManager interface {
	Do(fn func(balances BalanceRepository, orders OrderRepository) error) error
}
