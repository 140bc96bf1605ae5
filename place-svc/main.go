package main

import (
	"time"

	"plateshare/config"
	httpapi "plateshare/place-svc/internal/api/http"
	"plateshare/place-svc/internal/service"
	"plateshare/place-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	menuCache := storage.NewRedisMenuCache(rdb, 10*time.Minute)
	popularity := storage.NewRedisPopularityReader(rdb)
	classifier := service.NewHTTPSentimentClassifier(
		config.Getenv("SENTIMENT_URL", "http://sentiment:8000/predict"),
		config.NewHTTPClient(),
	)

	restSvc := service.NewRestaurantService(repo)
	dishSvc := service.NewDishService(repo, menuCache, popularity)
	favSvc := service.NewFavoriteService(repo, repo)
	reviewSvc := service.NewReviewService(repo, classifier)

	handler := httpapi.NewHandler(restSvc, dishSvc, favSvc, reviewSvc)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.Getenv("PORT", "8081"), router)
}
