package usecase

import (
	"testing"
	"time"

	"github.com/brokage/order-service/internal/domain"
	"github.com/stretchr/testify/require"
)

func pendingOrder(side domain.OrderSide, size int64, price string) *domain.Order {
	return &domain.Order{
		ID:         "ord-1",
		CustomerID: "cust1",
		AssetName:  "BTC",
		Side:       side,
		Size:       size,
		Price:      dec(price),
		Status:     domain.StatusPending,
		CreateDate: time.Now().UTC(),
	}
}

func TestBuyCancellationRefundsCost(t *testing.T) {
	store := newMemStore()
	store.addBalance("cust1", domain.SettlementCurrency, "100", "79")

	err := NewBuyOrderCancellationStrategy().
		RefundUsableBalance(&memBalanceRepo{store}, pendingOrder(domain.SideBuy, 2, "10.50"))
	require.NoError(t, err)

	require.True(t, store.balance("cust1", domain.SettlementCurrency).UsableSize.Equal(dec("100")))
	requireBalanceInvariant(t, store)
}

func TestSellCancellationRefundsSize(t *testing.T) {
	store := newMemStore()
	store.addBalance("cust1", "BTC", "5", "3")

	err := NewSellOrderCancellationStrategy().
		RefundUsableBalance(&memBalanceRepo{store}, pendingOrder(domain.SideSell, 2, "10.50"))
	require.NoError(t, err)

	require.True(t, store.balance("cust1", "BTC").UsableSize.Equal(dec("5")))
	requireBalanceInvariant(t, store)
}

func TestCancellationMissingBalanceIsSystemError(t *testing.T) {
	store := newMemStore()

	err := NewBuyOrderCancellationStrategy().
		RefundUsableBalance(&memBalanceRepo{store}, pendingOrder(domain.SideBuy, 2, "10.50"))

	var sysErr *domain.SystemError
	require.ErrorAs(t, err, &sysErr,
		"a missing balance row during refund is an invariant violation, not a business error")
	require.False(t, domain.IsBusinessError(err))
}
