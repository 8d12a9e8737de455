package response

import (
	"github.com/brokage/order-service/internal/domain"
	"github.com/shopspring/decimal"
)

type AssetResponse struct {
	CustomerID string          `json:"customerId"`
	AssetName  string          `json:"assetName"`
	TotalSize  decimal.Decimal `json:"totalSize"`
	UsableSize decimal.Decimal `json:"usableSize"`
}

func ToAssetResponses(balances []*domain.Balance) []AssetResponse {
	responses := make([]AssetResponse, len(balances))
	for i, balance := range balances {
		responses[i] = AssetResponse{
			CustomerID: balance.CustomerID,
			AssetName:  balance.AssetName,
			TotalSize:  balance.TotalSize,
			UsableSize: balance.UsableSize,
		}
	}
	return responses
}

type ErrorResponse struct {
	Error string `json:"error"`
}
