package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/brokage/order-service/internal/delivery/http/dto/request"
	"github.com/brokage/order-service/internal/delivery/http/dto/response"
	"github.com/brokage/order-service/internal/domain"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

var minPrice = decimal.RequireFromString("0.01")

type OrderHandler struct {
	uc domain.OrderUsecase
}

func NewOrderHandler(uc domain.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	side := domain.OrderSide(req.Side)
	switch {
	case req.Customer == "":
		writeBadRequest(w, "customer is required")
		return
	case req.Asset == "":
		writeBadRequest(w, "asset is required")
		return
	case side != domain.SideBuy && side != domain.SideSell:
		writeBadRequest(w, "side must be BUY or SELL")
		return
	case req.Size < 1:
		writeBadRequest(w, "size must be at least 1")
		return
	case req.Price.LessThan(minPrice):
		writeBadRequest(w, "price must be at least 0.01")
		return
	}

	order, err := h.uc.CreateOrder(&domain.CreateOrderInput{
		CustomerID: req.Customer,
		Side:       side,
		AssetName:  req.Asset,
		Size:       req.Size,
		Price:      req.Price,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response.ToOrderResponse(order))
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	customer := r.URL.Query().Get("customer")
	if customer == "" {
		writeBadRequest(w, "customer is required")
		return
	}

	startDate, err := time.Parse(time.RFC3339, r.URL.Query().Get("startDate"))
	if err != nil {
		writeBadRequest(w, "startDate must be an RFC 3339 timestamp")
		return
	}

	endDate, err := time.Parse(time.RFC3339, r.URL.Query().Get("endDate"))
	if err != nil {
		writeBadRequest(w, "endDate must be an RFC 3339 timestamp")
		return
	}

	orders, err := h.uc.ListOrders(customer, startDate, endDate)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.ToOrderResponses(orders))
}

func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	if err := h.uc.DeleteOrder(orderID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
