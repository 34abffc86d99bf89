package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"miniblog/internal/middleware"
	"miniblog/internal/models"
	"miniblog/internal/pagination"
	"miniblog/internal/service"
)

// Префикс ключей кэша главной ленты; каждая страница кэшируется отдельно.
const globalFeedCachePrefix = "feed:global:"

type PaginationResponse struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"pageSize"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type FeedResponse struct {
	Posts      []models.Post      `json:"posts"`
	Pagination PaginationResponse `json:"pagination"`
}

type GroupFeedResponse struct {
	Group      *models.Group      `json:"group"`
	Posts      []models.Post      `json:"posts"`
	Pagination PaginationResponse `json:"pagination"`
}

type ProfileResponse struct {
	Author     *models.User       `json:"author"`
	Following  bool               `json:"following"`
	Posts      []models.Post      `json:"posts"`
	Pagination PaginationResponse `json:"pagination"`
}

// parsePage: отсутствующий или нечисловой номер страницы считается первой.
func parsePage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func toPaginationResponse(pg pagination.Page[models.Post]) PaginationResponse {
	return PaginationResponse{
		Page:       pg.Number,
		PageSize:   pg.Size,
		Total:      pg.TotalCount,
		TotalPages: pg.TotalPages,
		HasNext:    pg.HasNext,
		HasPrev:    pg.HasPrev,
	}
}

func writeFeedSnapshot(w http.ResponseWriter, content []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(content)
}

// GlobalFeed отдаёт общую ленту. Ответ кэшируется на FeedCacheTTL: внутри
// окна все читатели видят один снимок, даже если посты уже добавились.
// Ключ строится по фактическому номеру страницы: запрошенный за пределами
// ленты прижимается к последней и не плодит дубликаты снимков.
func (h *Handlers) GlobalFeed(w http.ResponseWriter, r *http.Request) {
	page := parsePage(r)
	key := fmt.Sprintf("%s%d", globalFeedCachePrefix, page)

	if content, ok := h.FeedCache.Get(r.Context(), key); ok {
		writeFeedSnapshot(w, content)
		return
	}

	posts, err := h.FeedService.SelectFeed(r.Context(), service.FeedContext{Kind: service.FeedGlobal})
	if err != nil {
		MapError(w, err)
		return
	}

	pg, err := pagination.Paginate(posts, h.Cfg.FeedPageSize, page)
	if err != nil {
		MapError(w, err)
		return
	}

	if pg.Number != page {
		key = fmt.Sprintf("%s%d", globalFeedCachePrefix, pg.Number)
		if content, ok := h.FeedCache.Get(r.Context(), key); ok {
			writeFeedSnapshot(w, content)
			return
		}
	}

	content, err := json.Marshal(FeedResponse{
		Posts:      pg.Items,
		Pagination: toPaginationResponse(pg),
	})
	if err != nil {
		MapError(w, err)
		return
	}

	h.FeedCache.Set(r.Context(), key, content, h.Cfg.FeedCacheTTL)
	writeFeedSnapshot(w, content)
}

func (h *Handlers) GroupFeed(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	group, err := h.FeedService.GroupBySlug(r.Context(), slug)
	if err != nil {
		MapError(w, err)
		return
	}

	posts, err := h.FeedService.SelectFeed(r.Context(), service.FeedContext{
		Kind:      service.FeedGroup,
		GroupSlug: slug,
	})
	if err != nil {
		MapError(w, err)
		return
	}

	pg, err := pagination.Paginate(posts, h.Cfg.FeedPageSize, parsePage(r))
	if err != nil {
		MapError(w, err)
		return
	}

	WriteSuccess(w, GroupFeedResponse{
		Group:      group,
		Posts:      pg.Items,
		Pagination: toPaginationResponse(pg),
	}, http.StatusOK)
}

func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	author, err := h.FeedService.AuthorByUsername(r.Context(), username)
	if err != nil {
		MapError(w, err)
		return
	}

	posts, err := h.FeedService.SelectFeed(r.Context(), service.FeedContext{
		Kind:     service.FeedAuthor,
		Username: username,
	})
	if err != nil {
		MapError(w, err)
		return
	}

	following, err := h.FollowService.IsFollowing(r.Context(), middleware.ViewerID(r.Context()), username)
	if err != nil {
		MapError(w, err)
		return
	}

	pg, err := pagination.Paginate(posts, h.Cfg.ProfilePageSize, parsePage(r))
	if err != nil {
		MapError(w, err)
		return
	}

	WriteSuccess(w, ProfileResponse{
		Author:     author,
		Following:  following,
		Posts:      pg.Items,
		Pagination: toPaginationResponse(pg),
	}, http.StatusOK)
}

// FollowFeed — персональная лента из постов авторов, на которых подписан
// текущий пользователь. Пустая, если подписок нет.
func (h *Handlers) FollowFeed(w http.ResponseWriter, r *http.Request) {
	posts, err := h.FeedService.SelectFeed(r.Context(), service.FeedContext{
		Kind:     service.FeedFollowees,
		ViewerID: middleware.ViewerID(r.Context()),
	})
	if err != nil {
		MapError(w, err)
		return
	}

	pg, err := pagination.Paginate(posts, h.Cfg.FeedPageSize, parsePage(r))
	if err != nil {
		MapError(w, err)
		return
	}

	WriteSuccess(w, FeedResponse{
		Posts:      pg.Items,
		Pagination: toPaginationResponse(pg),
	}, http.StatusOK)
}

// ClearFeedCache сбрасывает кэш главной ленты, не дожидаясь TTL.
func (h *Handlers) ClearFeedCache(w http.ResponseWriter, r *http.Request) {
	if err := h.FeedCache.Clear(r.Context(), globalFeedCachePrefix); err != nil {
		WriteError(w, "Ошибка очистки кэша", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Кэш ленты очищен"}, http.StatusOK)
}
