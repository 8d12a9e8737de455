package mappers

import (
	"github.com/brokage/order-service/internal/domain"
	"github.com/brokage/order-service/internal/infrastructure/postgres/models"
)

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		AssetName:  order.AssetName,
		Side:       order.Side,
		Size:       order.Size,
		Price:      order.Price,
		Status:     order.Status,
		CreateDate: order.CreateDate,
	}
}

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:         model.ID,
		CustomerID: model.CustomerID,
		AssetName:  model.AssetName,
		Side:       model.Side,
		Size:       model.Size,
		Price:      model.Price,
		Status:     model.Status,
		CreateDate: model.CreateDate,
	}
}
