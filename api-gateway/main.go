package main

import (
	"log"
	"net/http"
	"time"

	"plateshare/api-gateway/internal/gateway"
	"plateshare/config"

	"github.com/rs/cors"
)

func main() {
	config.LoadEnv()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	gwConfig := gateway.Config{
		AuthSvcURL:  config.Getenv("AUTH_SVC_URL", "http://auth-provider:9000"),
		CartSvcURL:  config.Getenv("CART_SVC_URL", "http://cart-svc:8083"),
		PlaceSvcURL: config.Getenv("PLACE_SVC_URL", "http://place-svc:8081"),
		FeedSvcURL:  config.Getenv("FEED_SVC_URL", "http://feed-svc:8082"),
	}

	client := config.NewHTTPClient()
	cache := gateway.NewRedisIdentityCache(rdb, 5*time.Minute)
	verifier := gateway.NewAuthVerifier(
		config.Getenv("AUTH_VERIFY_URL", gwConfig.AuthSvcURL+"/api/auth/verify"),
		client,
		cache,
	)

	gw := gateway.NewGateway(gwConfig, client, verifier)
	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(r)

	addr := ":" + config.Getenv("PORT", "8080")
	log.Printf("API Gateway starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
