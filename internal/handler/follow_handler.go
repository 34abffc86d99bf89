package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"miniblog/internal/middleware"
)

func (h *Handlers) Follow(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	err := h.FollowService.Follow(r.Context(), middleware.ViewerID(r.Context()), username)
	if err != nil {
		MapError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Подписка оформлена"}, http.StatusOK)
}

func (h *Handlers) Unfollow(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	err := h.FollowService.Unfollow(r.Context(), middleware.ViewerID(r.Context()), username)
	if err != nil {
		MapError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Подписка отменена"}, http.StatusOK)
}
