package handlers

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"miniblog/internal/cache"
	"miniblog/internal/config"
	"miniblog/internal/database"
	"miniblog/internal/repository"
	"miniblog/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	FeedService    service.FeedService
	PostService    service.PostService
	CommentService service.CommentService
	FollowService  service.FollowService
	GroupRepo      repository.GroupRepository
	FeedCache      *cache.FeedCache
	DB             *database.DB
	Cfg            *config.Config
	Logger         *zap.Logger
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, feedCache *cache.FeedCache, db *database.DB, cfg *config.Config, logger *zap.Logger) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		FeedService:    services.Feed,
		PostService:    services.Post,
		CommentService: services.Comment,
		FollowService:  services.Follow,
		GroupRepo:      repo.Group,
		FeedCache:      feedCache,
		DB:             db,
		Cfg:            cfg,
		Logger:         logger,
		Validate:       validator.New(),
	}
}
