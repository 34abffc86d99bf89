package app

import (
	"go.uber.org/zap"

	"miniblog/internal/cache"
	"miniblog/internal/config"
	"miniblog/internal/database"
	"miniblog/internal/repository"
	"miniblog/internal/service"
	"miniblog/internal/storage"
)

func App(cfg *config.Config, logger *zap.Logger) (*database.DB, *repository.Repository, *service.Service, *cache.FeedCache) {
	// connection DB
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		logger.Fatal("Не удалось инициализировать MinIO", zap.Error(err))
	}

	// feed cache (Redis); при недоступном Redis лента работает без кэша
	feedCache := cache.New(cfg.Redis.Addr, cfg.Redis.Password, logger)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services, feedCache
}
