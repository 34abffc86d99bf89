package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"miniblog/internal/middleware"
)

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		MapError(w, err)
		return
	}

	var req struct {
		Text string `json:"text" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.AddComment(
		r.Context(),
		middleware.ViewerID(r.Context()),
		mux.Vars(r)["username"],
		postID,
		req.Text,
	)
	if err != nil {
		MapError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}
