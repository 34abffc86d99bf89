package handlers

import (
	"encoding/json"
	"net/http"

	"miniblog/internal/models"
)

// CreateGroup доступен только администраторам (роль проверяет middleware).
func (h *Handlers) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Slug        string `json:"slug" validate:"required,min=1,max=100"`
		Title       string `json:"title" validate:"required,max=200"`
		Description string `json:"description"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	group := &models.Group{
		Slug:        req.Slug,
		Title:       req.Title,
		Description: req.Description,
	}

	if err := h.GroupRepo.Create(r.Context(), group); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, group, http.StatusCreated)
}
