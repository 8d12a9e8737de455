package domain

type BalanceRepository interface {
	GetByCustomerIDAndAssetName(customerID, assetName string) (*Balance, error)
	// LockByCustomerIDAndAssetName reads the balance row for update.
	// Callers must hold a transaction so the read-modify-write of
	// UsableSize is serialized per row.
	LockByCustomerIDAndAssetName(customerID, assetName string) (*Balance, error)
	Save(balance *Balance) error
	GetByCustomerID(customerID string) ([]*Balance, error)
}
