package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func NewRouter(orderHandler *OrderHandler, assetHandler *AssetHandler) http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/order", orderHandler.CreateOrder).Methods("POST")
	api.HandleFunc("/order/list", orderHandler.ListOrders).Methods("GET")
	api.HandleFunc("/order/{orderId}", orderHandler.DeleteOrder).Methods("DELETE")
	api.HandleFunc("/asset/list", assetHandler.ListAssets).Methods("GET")
	api.HandleFunc("/asset/increase", assetHandler.IncreaseUsableSize).Methods("POST")

	r.Handle("/metrics", promhttp.Handler())
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})

	return c.Handler(r)
}
