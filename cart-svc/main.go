package main

import (
	httpapi "plateshare/cart-svc/internal/api/http"
	"plateshare/cart-svc/internal/service"
	"plateshare/cart-svc/internal/storage"
	"plateshare/config"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	kafkaWriter := config.NewKafkaWriter("orders")
	defer kafkaWriter.Close()

	cartRepo := storage.NewCartPostgres(db)
	orderRepo := storage.NewOrderPostgres(db)
	publisher := storage.NewKafkaPublisher(kafkaWriter)
	directory := storage.NewHTTPDirectory(
		config.Getenv("PLACE_SVC_URL", "http://place-svc:8081"),
		config.NewHTTPClient(),
	)
	qrEncoder := service.DefaultQRGenerator{
		BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}

	cartSvc := service.NewCartService(cartRepo, orderRepo, directory, publisher, qrEncoder)
	orderSvc := service.NewOrderService(orderRepo, qrEncoder)

	handler := httpapi.NewHandler(cartSvc, orderSvc)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.Getenv("PORT", "8083"), router)
}
