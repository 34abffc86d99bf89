package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"miniblog/internal/cache"
	handlers "miniblog/internal/handler"
	"miniblog/internal/models"
	"miniblog/internal/service"
)

func makePosts(n int) []models.Post {
	posts := make([]models.Post, 0, n)
	for i := n; i > 0; i-- {
		posts = append(posts, models.Post{PostID: int64(i), Author: "leo", Text: "text"})
	}
	return posts
}

func TestGlobalFeed_FirstPage(t *testing.T) {
	h, mocks := newTestHandlers()

	mocks.feed.On("SelectFeed", mock.Anything, service.FeedContext{Kind: service.FeedGlobal}).
		Return(makePosts(13), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feed", nil)
	rec := httptest.NewRecorder()

	h.GlobalFeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.FeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Len(t, resp.Posts, 10)
	assert.Equal(t, int64(13), resp.Posts[0].PostID)
	assert.Equal(t, 1, resp.Pagination.Page)
	assert.Equal(t, 13, resp.Pagination.Total)
	assert.True(t, resp.Pagination.HasNext)
	assert.False(t, resp.Pagination.HasPrev)
}

func TestGlobalFeed_SecondPageRemainder(t *testing.T) {
	h, mocks := newTestHandlers()

	mocks.feed.On("SelectFeed", mock.Anything, service.FeedContext{Kind: service.FeedGlobal}).
		Return(makePosts(13), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feed?page=2", nil)
	rec := httptest.NewRecorder()

	h.GlobalFeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.FeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Len(t, resp.Posts, 3)
	assert.False(t, resp.Pagination.HasNext)
	assert.True(t, resp.Pagination.HasPrev)
}

func TestGlobalFeed_NonNumericPageDefaultsToFirst(t *testing.T) {
	h, mocks := newTestHandlers()

	mocks.feed.On("SelectFeed", mock.Anything, service.FeedContext{Kind: service.FeedGlobal}).
		Return(makePosts(3), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feed?page=abc", nil)
	rec := httptest.NewRecorder()

	h.GlobalFeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.FeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Pagination.Page)
}

func TestGlobalFeed_ClampedPageSharesCacheKey(t *testing.T) {
	h, mocks := newTestHandlers()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	h.FeedCache = cache.NewWithClient(client, zap.NewNop())

	mocks.feed.On("SelectFeed", mock.Anything, service.FeedContext{Kind: service.FeedGlobal}).
		Return(makePosts(13), nil).Once()

	// запрошенная страница 99 прижимается ко второй
	req := httptest.NewRequest(http.MethodGet, "/api/feed?page=99", nil)
	rec := httptest.NewRecorder()
	h.GlobalFeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	firstBody := rec.Body.String()

	var resp handlers.FeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Pagination.Page)

	// снимок хранится только под фактическим номером страницы
	assert.ElementsMatch(t, []string{"feed:global:2"}, mr.Keys())

	// прямой запрос последней страницы попадает в тот же снимок
	req = httptest.NewRequest(http.MethodGet, "/api/feed?page=2", nil)
	rec = httptest.NewRecorder()
	h.GlobalFeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, firstBody, rec.Body.String())
	mocks.feed.AssertExpectations(t)
}

func TestGroupFeed_NotFound(t *testing.T) {
	h, mocks := newTestHandlers()

	mocks.feed.On("GroupBySlug", mock.Anything, "missing").
		Return(nil, models.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/groups/missing", nil)
	req = mux.SetURLVars(req, map[string]string{"slug": "missing"})
	rec := httptest.NewRecorder()

	h.GroupFeed(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfile_NotFound(t *testing.T) {
	h, mocks := newTestHandlers()

	mocks.feed.On("AuthorByUsername", mock.Anything, "ghost").
		Return(nil, models.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/users/ghost", nil)
	req = mux.SetURLVars(req, map[string]string{"username": "ghost"})
	rec := httptest.NewRecorder()

	h.Profile(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfile_UsesProfilePageSizeAndFollowingFlag(t *testing.T) {
	h, mocks := newTestHandlers()

	author := &models.User{UserID: "leo-id", Username: "leo"}
	mocks.feed.On("AuthorByUsername", mock.Anything, "leo").Return(author, nil)
	mocks.feed.On("SelectFeed", mock.Anything, service.FeedContext{
		Kind:     service.FeedAuthor,
		Username: "leo",
	}).Return(makePosts(13), nil)
	mocks.follow.On("IsFollowing", mock.Anything, "viewer-id", "leo").Return(true, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/users/leo", nil)
	req = mux.SetURLVars(req, map[string]string{"username": "leo"})
	req = asViewer(req, "viewer-id", "viewer")
	rec := httptest.NewRecorder()

	h.Profile(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Len(t, resp.Posts, 5)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.True(t, resp.Following)
}

func TestFollowFeed_EmptyWithoutSubscriptions(t *testing.T) {
	h, mocks := newTestHandlers()

	mocks.feed.On("SelectFeed", mock.Anything, service.FeedContext{
		Kind:     service.FeedFollowees,
		ViewerID: "viewer-id",
	}).Return([]models.Post{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/feed/follow", nil)
	req = asViewer(req, "viewer-id", "viewer")
	rec := httptest.NewRecorder()

	h.FollowFeed(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.FeedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Posts)
	assert.Equal(t, 0, resp.Pagination.Total)
}
