package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/brokage/order-service/internal/delivery/http/dto/response"
	"github.com/brokage/order-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			slog.Error("failed to encode response", "error", err.Error())
		}
	}
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: message})
}

// writeError maps domain errors onto HTTP statuses. Business errors carry
// their message; system errors stay opaque.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCustomer),
		errors.Is(err, domain.ErrInvalidAsset),
		errors.Is(err, domain.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidOrder):
		writeJSON(w, http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	default:
		slog.Error("request failed", "error", err.Error())
		writeJSON(w, http.StatusInternalServerError, response.ErrorResponse{Error: "internal server error"})
	}
}
