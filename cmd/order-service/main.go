package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/brokage/order-service/internal/config"
	"github.com/brokage/order-service/internal/delivery/http/handlers"
	publisher "github.com/brokage/order-service/internal/infrastructure/kafka"
	"github.com/brokage/order-service/internal/infrastructure/metrics"
	"github.com/brokage/order-service/internal/infrastructure/migrate"
	"github.com/brokage/order-service/internal/infrastructure/postgres"
	"github.com/brokage/order-service/internal/infrastructure/postgres/repository"
	"github.com/brokage/order-service/internal/usecase"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.OrderDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.OrderDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repositories
	orderRepo := repository.NewDefaultOrderRepository(db)
	balanceRepo := repository.NewDefaultBalanceRepository(db)
	auditRepo := repository.NewDefaultAuditRepository(db)
	txManager := repository.NewGormTxManager(db)

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	orderPublisher := publisher.NewOrderPublisher(brokers, cfg.KafkaService.Topic)
	defer orderPublisher.Close()

	// Init metrics
	orderMetrics := metrics.NewOrderMetrics()

	// Init strategies and dispatcher
	dispatcher, err := usecase.NewStrategyDispatcher(
		[]usecase.CreateOrderProcessor{
			usecase.NewBuyCreateOrderProcessor(txManager),
			usecase.NewSellCreateOrderProcessor(txManager),
		},
		[]usecase.OrderCancellationStrategy{
			usecase.NewBuyOrderCancellationStrategy(),
			usecase.NewSellOrderCancellationStrategy(),
		},
	)
	if err != nil {
		log.Fatalf("failed to init strategy dispatcher: %v", err)
	}

	// Init order usecase
	orderUsecase := usecase.NewDefaultOrderUsecase(orderRepo, txManager, dispatcher, orderPublisher, orderMetrics)
	// Init balance usecase
	balanceUsecase := usecase.NewDefaultBalanceUsecase(balanceRepo, txManager)

	// Wrap order usecase with audit trail
	auditUsecase, err := usecase.NewAuditUsecase(auditRepo)
	if err != nil {
		log.Fatalf("failed to init audit usecase: %v", err)
	}
	auditedOrderUsecase := usecase.NewAuditedOrderUsecase(orderUsecase, auditUsecase)

	// Init handlers
	orderHandler := handlers.NewOrderHandler(auditedOrderUsecase)
	assetHandler := handlers.NewAssetHandler(balanceUsecase)
	router := handlers.NewRouter(orderHandler, assetHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("order service started on %s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
