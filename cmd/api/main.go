package main

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"miniblog/cmd/app"
	"miniblog/internal/config"
	handlers "miniblog/internal/handler"
	"miniblog/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.JWTSecretKey == "" {
		logger.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, services, feedCache := app.App(cfg, logger)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, feedCache, db, cfg, logger)

	// setting up routes
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlers.WriteError(w, "Страница не найдена", http.StatusNotFound)
	})

	router.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	// публичные ленты: токен не обязателен, но учитывается, если есть
	public := api.NewRoute().Subrouter()
	public.Use(mux.MiddlewareFunc(middleware.Auth(cfg, false)))
	public.HandleFunc("/feed", handler.GlobalFeed).Methods(http.MethodGet)
	public.HandleFunc("/groups/{slug}", handler.GroupFeed).Methods(http.MethodGet)
	public.HandleFunc("/users/{username}", handler.Profile).Methods(http.MethodGet)
	public.HandleFunc("/users/{username}/posts/{post_id}", handler.GetPost).Methods(http.MethodGet)

	// операции, требующие аутентификации
	private := api.NewRoute().Subrouter()
	private.Use(mux.MiddlewareFunc(middleware.Auth(cfg, true)))
	private.HandleFunc("/feed/follow", handler.FollowFeed).Methods(http.MethodGet)
	private.HandleFunc("/posts", handler.CreatePost).Methods(http.MethodPost)
	private.HandleFunc("/users/{username}/posts/{post_id}", handler.UpdatePost).Methods(http.MethodPut)
	private.HandleFunc("/users/{username}/posts/{post_id}/comments", handler.AddComment).Methods(http.MethodPost)
	private.HandleFunc("/users/{username}/follow", handler.Follow).Methods(http.MethodPost)
	private.HandleFunc("/users/{username}/unfollow", handler.Unfollow).Methods(http.MethodPost)

	// административные операции
	admin := api.NewRoute().Subrouter()
	admin.Use(
		mux.MiddlewareFunc(middleware.Auth(cfg, true)),
		mux.MiddlewareFunc(middleware.RequireRole("admin")),
	)
	admin.HandleFunc("/groups", handler.CreateGroup).Methods(http.MethodPost)
	admin.HandleFunc("/admin/cache/clear", handler.ClearFeedCache).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.Recovery(logger),
		middleware.CORS,
		middleware.RequestLogging(logger),
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	logger.Info("Сервер запущен",
		zap.String("addr", addr),
		zap.String("database", cfg.DB.DbNAME),
	)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}
