package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/brokage/order-service/internal/delivery/http/dto/request"
	"github.com/brokage/order-service/internal/delivery/http/dto/response"
	"github.com/brokage/order-service/internal/domain"
)

type AssetHandler struct {
	uc domain.BalanceUsecase
}

func NewAssetHandler(uc domain.BalanceUsecase) *AssetHandler {
	return &AssetHandler{uc: uc}
}

func (h *AssetHandler) ListAssets(w http.ResponseWriter, r *http.Request) {
	customer := r.URL.Query().Get("customer")
	if customer == "" {
		writeBadRequest(w, "customer is required")
		return
	}

	balances, err := h.uc.ListAssets(customer)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response.ToAssetResponses(balances))
}

func (h *AssetHandler) IncreaseUsableSize(w http.ResponseWriter, r *http.Request) {
	var req request.IncreaseUsableSizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	switch {
	case req.Customer == "":
		writeBadRequest(w, "customer is required")
		return
	case req.Asset == "":
		writeBadRequest(w, "asset is required")
		return
	case !req.Amount.IsPositive():
		writeBadRequest(w, "amount must be positive")
		return
	}

	if err := h.uc.IncreaseUsableSize(req.Customer, req.Asset, req.Amount); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
