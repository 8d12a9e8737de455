package usecase

import (
	"testing"
	"time"

	"github.com/brokage/order-service/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderUnsupportedSide(t *testing.T) {
	f := newFixture(t)
	f.store.addBalance("cust1", domain.SettlementCurrency, "100", "100")

	_, err := f.uc.CreateOrder(&domain.CreateOrderInput{
		CustomerID: "cust1",
		Side:       domain.OrderSide("SHORT"),
		AssetName:  "BTC",
		Size:       1,
		Price:      dec("10"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	require.Empty(t, f.store.orders)
	require.True(t, f.store.balance("cust1", domain.SettlementCurrency).UsableSize.Equal(dec("100")),
		"storage must not be touched for an unsupported side")
}

func TestBuyOrderCancelRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.store.addBalance("cust1", domain.SettlementCurrency, "100", "100")

	order, err := f.uc.CreateOrder(buyInput(2, "10.50"))
	require.NoError(t, err)
	require.True(t, f.store.balance("cust1", domain.SettlementCurrency).UsableSize.Equal(dec("79")))

	require.NoError(t, f.uc.DeleteOrder(order.ID))

	balance := f.store.balance("cust1", domain.SettlementCurrency)
	require.True(t, balance.UsableSize.Equal(dec("100")),
		"cancellation must refund exactly the reserved cost, got %s", balance.UsableSize)

	_, err = f.uc.OrderRepo.GetOrderByID(order.ID)
	require.ErrorIs(t, err, domain.ErrOrderNotFound, "cancelled order must be gone")
	requireBalanceInvariant(t, f.store)
}

func TestSellOrderCancelRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.store.addBalance("cust1", "BTC", "5", "5")

	order, err := f.uc.CreateOrder(sellInput(3, "10.50"))
	require.NoError(t, err)
	require.True(t, f.store.balance("cust1", "BTC").UsableSize.Equal(dec("2")))

	require.NoError(t, f.uc.DeleteOrder(order.ID))

	require.True(t, f.store.balance("cust1", "BTC").UsableSize.Equal(dec("5")),
		"cancellation must refund exactly the reserved size")
	requireBalanceInvariant(t, f.store)
}

func TestDeleteOrderMissing(t *testing.T) {
	f := newFixture(t)

	err := f.uc.DeleteOrder("no-such-order")
	require.ErrorIs(t, err, domain.ErrInvalidOrder)
	require.Contains(t, err.Error(), "not found")
}

func TestDeleteOrderNonPending(t *testing.T) {
	f := newFixture(t)
	f.store.addBalance("cust1", domain.SettlementCurrency, "100", "79")
	executed := &domain.Order{
		ID:         "exec-1",
		CustomerID: "cust1",
		AssetName:  "BTC",
		Side:       domain.SideBuy,
		Size:       2,
		Price:      dec("10.50"),
		Status:     domain.StatusExecuted,
		CreateDate: time.Now().UTC(),
	}
	require.NoError(t, (&memOrderRepo{f.store}).CreateOrder(executed))

	err := f.uc.DeleteOrder(executed.ID)
	require.ErrorIs(t, err, domain.ErrInvalidOrder)

	// Indistinguishable from the missing-order failure.
	missingErr := f.uc.DeleteOrder("no-such-order")
	require.ErrorIs(t, missingErr, domain.ErrInvalidOrder)

	require.Contains(t, f.store.orders, executed.ID, "executed order must stay")
	require.True(t, f.store.balance("cust1", domain.SettlementCurrency).UsableSize.Equal(dec("79")),
		"no refund for a non-pending order")
}

func TestDeleteOrderRollsBackRefundOnDeleteFailure(t *testing.T) {
	f := newFixture(t)
	f.store.addBalance("cust1", domain.SettlementCurrency, "100", "100")

	order, err := f.uc.CreateOrder(buyInput(2, "10.50"))
	require.NoError(t, err)

	f.tx.orders = &failingOrderRepo{OrderRepository: &memOrderRepo{f.store}, failDelete: true}

	err = f.uc.DeleteOrder(order.ID)
	var sysErr *domain.SystemError
	require.ErrorAs(t, err, &sysErr)

	require.Contains(t, f.store.orders, order.ID, "order must survive the failed deletion")
	require.True(t, f.store.balance("cust1", domain.SettlementCurrency).UsableSize.Equal(dec("79")),
		"refund must not survive a failed order delete")
}

func TestListOrdersInclusiveWindow(t *testing.T) {
	f := newFixture(t)
	orders := &memOrderRepo{f.store}

	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	mkOrder := func(id string, createDate time.Time, customer string) {
		require.NoError(t, orders.CreateOrder(&domain.Order{
			ID:         id,
			CustomerID: customer,
			AssetName:  "BTC",
			Side:       domain.SideBuy,
			Size:       1,
			Price:      dec("10"),
			Status:     domain.StatusPending,
			CreateDate: createDate,
		}))
	}

	mkOrder("at-start", from, "cust1")
	mkOrder("at-end", to, "cust1")
	mkOrder("inside", from.AddDate(0, 6, 0), "cust1")
	mkOrder("before", from.Add(-time.Second), "cust1")
	mkOrder("after", to.Add(time.Second), "cust1")
	mkOrder("other-customer", from.AddDate(0, 6, 0), "cust2")

	listed, err := f.uc.ListOrders("cust1", from, to)
	require.NoError(t, err)

	ids := make([]string, len(listed))
	for i, o := range listed {
		ids[i] = o.ID
	}
	require.ElementsMatch(t, []string{"at-start", "at-end", "inside"}, ids)
}
