package test

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"miniblog/internal/cache"
	"miniblog/internal/config"
	handlers "miniblog/internal/handler"
	"miniblog/internal/middleware"
)

type testMocks struct {
	feed    *MockFeedService
	post    *MockPostService
	comment *MockCommentService
	follow  *MockFollowService
}

// newTestHandlers собирает Handlers с моками сервисов и отключённым
// кэшем (nil-клиент рендерит напрямую).
func newTestHandlers() (*handlers.Handlers, *testMocks) {
	mocks := &testMocks{
		feed:    new(MockFeedService),
		post:    new(MockPostService),
		comment: new(MockCommentService),
		follow:  new(MockFollowService),
	}

	h := &handlers.Handlers{
		FeedService:    mocks.feed,
		PostService:    mocks.post,
		CommentService: mocks.comment,
		FollowService:  mocks.follow,
		FeedCache:      cache.NewWithClient(nil, zap.NewNop()),
		Cfg: &config.Config{
			FeedCacheTTL:    20 * time.Second,
			FeedPageSize:    10,
			ProfilePageSize: 5,
			MaxUploadSize:   10 * 1024 * 1024,
		},
		Logger:   zap.NewNop(),
		Validate: validator.New(),
	}

	return h, mocks
}

// asViewer подкладывает аутентифицированного пользователя в контекст
// запроса, как это делает auth middleware.
func asViewer(r *http.Request, userID, username string) *http.Request {
	return r.WithContext(middleware.WithViewer(r.Context(), userID, username, "user"))
}
