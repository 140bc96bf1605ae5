package main

import (
	"plateshare/config"
	httpapi "plateshare/feed-svc/internal/api/http"
	"plateshare/feed-svc/internal/service"
	"plateshare/feed-svc/internal/storage"
)

func main() {
	config.LoadEnv()

	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	repo := storage.NewFeedPostgres(db)
	likes := storage.NewRedisLikeStore(rdb)

	postSvc := service.NewPostService(repo, repo, likes)
	commentSvc := service.NewCommentService(repo, repo)

	handler := httpapi.NewHandler(postSvc, commentSvc)
	router := httpapi.NewRouter(handler)

	httpapi.StartServer(":"+config.Getenv("PORT", "8082"), router)
}
