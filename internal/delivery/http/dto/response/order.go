package response

import (
	"time"

	"github.com/brokage/order-service/internal/domain"
	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	Asset      string          `json:"asset"`
	Side       string          `json:"side"`
	Size       int64           `json:"size"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
	CreateDate time.Time       `json:"createDate"`
}

func ToOrderResponse(order *domain.Order) OrderResponse {
	return OrderResponse{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Asset:      order.AssetName,
		Side:       string(order.Side),
		Size:       order.Size,
		Price:      order.Price,
		Status:     string(order.Status),
		CreateDate: order.CreateDate,
	}
}

func ToOrderResponses(orders []*domain.Order) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = ToOrderResponse(order)
	}
	return responses
}
