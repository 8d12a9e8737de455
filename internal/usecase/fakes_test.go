package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/brokage/order-service/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory stand-in for the database used by the fakes
// below. Tests are single-goroutine; atomicity is modelled by the tx
// manager snapshotting state and restoring it when the callback fails.
type memStore struct {
	balances map[string]*domain.Balance
	orders   map[string]*domain.Order
}

func newMemStore() *memStore {
	return &memStore{
		balances: make(map[string]*domain.Balance),
		orders:   make(map[string]*domain.Order),
	}
}

func balanceKey(customerID, assetName string) string {
	return customerID + "/" + assetName
}

func (s *memStore) addBalance(customerID, assetName, total, usable string) {
	s.balances[balanceKey(customerID, assetName)] = &domain.Balance{
		CustomerID: customerID,
		AssetName:  assetName,
		TotalSize:  decimal.RequireFromString(total),
		UsableSize: decimal.RequireFromString(usable),
	}
}

func (s *memStore) balance(customerID, assetName string) *domain.Balance {
	return s.balances[balanceKey(customerID, assetName)]
}

type memSnapshot struct {
	balances map[string]*domain.Balance
	orders   map[string]*domain.Order
}

func (s *memStore) snapshot() memSnapshot {
	snap := memSnapshot{
		balances: make(map[string]*domain.Balance, len(s.balances)),
		orders:   make(map[string]*domain.Order, len(s.orders)),
	}
	for k, v := range s.balances {
		cp := *v
		snap.balances[k] = &cp
	}
	for k, v := range s.orders {
		cp := *v
		snap.orders[k] = &cp
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.balances = snap.balances
	s.orders = snap.orders
}

type memBalanceRepo struct {
	store *memStore
}

func (r *memBalanceRepo) GetByCustomerIDAndAssetName(customerID, assetName string) (*domain.Balance, error) {
	b, ok := r.store.balances[balanceKey(customerID, assetName)]
	if !ok {
		return nil, domain.ErrBalanceNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memBalanceRepo) LockByCustomerIDAndAssetName(customerID, assetName string) (*domain.Balance, error) {
	return r.GetByCustomerIDAndAssetName(customerID, assetName)
}

func (r *memBalanceRepo) Save(balance *domain.Balance) error {
	cp := *balance
	r.store.balances[balanceKey(balance.CustomerID, balance.AssetName)] = &cp
	return nil
}

func (r *memBalanceRepo) GetByCustomerID(customerID string) ([]*domain.Balance, error) {
	var balances []*domain.Balance
	for _, b := range r.store.balances {
		if b.CustomerID == customerID {
			cp := *b
			balances = append(balances, &cp)
		}
	}
	return balances, nil
}

type memOrderRepo struct {
	store *memStore
}

func (r *memOrderRepo) CreateOrder(order *domain.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	cp := *order
	r.store.orders[order.ID] = &cp
	return nil
}

func (r *memOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	o, ok := r.store.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *memOrderRepo) GetOrdersByCustomerIDAndDateRange(customerID string, from, to time.Time) ([]*domain.Order, error) {
	var orders []*domain.Order
	for _, o := range r.store.orders {
		if o.CustomerID != customerID {
			continue
		}
		if o.CreateDate.Before(from) || o.CreateDate.After(to) {
			continue
		}
		cp := *o
		orders = append(orders, &cp)
	}
	return orders, nil
}

func (r *memOrderRepo) DeleteOrder(orderID string) error {
	if _, ok := r.store.orders[orderID]; !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.store.orders, orderID)
	return nil
}

// memTxManager restores the pre-transaction state when fn fails, giving
// the same all-or-nothing visibility as the database transaction.
type memTxManager struct {
	store *memStore

	// optional repo overrides for fault injection
	balances domain.BalanceRepository
	orders   domain.OrderRepository
}

func (m *memTxManager) Do(fn func(balances domain.BalanceRepository, orders domain.OrderRepository) error) error {
	snap := m.store.snapshot()

	balances := m.balances
	if balances == nil {
		balances = &memBalanceRepo{m.store}
	}
	orders := m.orders
	if orders == nil {
		orders = &memOrderRepo{m.store}
	}

	if err := fn(balances, orders); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

var errStoreDown = errors.New("connection refused")

type failingOrderRepo struct {
	domain.OrderRepository
	failCreate bool
	failDelete bool
}

func (r *failingOrderRepo) CreateOrder(order *domain.Order) error {
	if r.failCreate {
		return errStoreDown
	}
	return r.OrderRepository.CreateOrder(order)
}

func (r *failingOrderRepo) DeleteOrder(orderID string) error {
	if r.failDelete {
		return errStoreDown
	}
	return r.OrderRepository.DeleteOrder(orderID)
}

type fakeAuditRepo struct {
	entries []*domain.AuditLog
	failing bool
}

func (r *fakeAuditRepo) SaveLog(entry *domain.AuditLog) error {
	if r.failing {
		return errStoreDown
	}
	r.entries = append(r.entries, entry)
	return nil
}

type fixture struct {
	store *memStore
	tx    *memTxManager
	uc    *DefaultOrderUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := newMemStore()
	tx := &memTxManager{store: store}

	dispatcher, err := NewStrategyDispatcher(
		[]CreateOrderProcessor{
			NewBuyCreateOrderProcessor(tx),
			NewSellCreateOrderProcessor(tx),
		},
		[]OrderCancellationStrategy{
			NewBuyOrderCancellationStrategy(),
			NewSellOrderCancellationStrategy(),
		},
	)
	require.NoError(t, err)

	return &fixture{
		store: store,
		tx:    tx,
		uc:    NewDefaultOrderUsecase(&memOrderRepo{store}, tx, dispatcher, nil, nil),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireBalanceInvariant(t *testing.T, store *memStore) {
	t.Helper()
	for key, b := range store.balances {
		require.True(t, b.UsableSize.GreaterThanOrEqual(decimal.Zero),
			"usable size of %s went negative: %s", key, b.UsableSize)
		require.True(t, b.UsableSize.LessThanOrEqual(b.TotalSize),
			"usable size of %s exceeds total: %s > %s", key, b.UsableSize, b.TotalSize)
	}
}
