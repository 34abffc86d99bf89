package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"miniblog/internal/middleware"
	"miniblog/internal/models"
	"miniblog/internal/service"
)

type PostViewResponse struct {
	Post     *models.Post     `json:"post"`
	Comments []models.Comment `json:"comments"`
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func parsePostID(r *http.Request) (int64, error) {
	postID, err := strconv.ParseInt(mux.Vars(r)["post_id"], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("неверный идентификатор поста: %w", models.ErrInvalidArgument)
	}
	return postID, nil
}

// readPostForm достаёт текст, группу и необязательную картинку из
// multipart-формы либо из JSON-тела.
func (h *Handlers) readPostForm(w http.ResponseWriter, r *http.Request) (text, groupSlug string, image *service.ImageUpload, ok bool) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
		if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
					h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
			} else {
				WriteError(w, "Ошибка при обработке формы", http.StatusBadRequest)
			}
			return "", "", nil, false
		}

		text = r.FormValue("text")
		groupSlug = r.FormValue("group")

		file, header, err := r.FormFile("image")
		if err == nil {
			fileType := header.Header.Get("Content-Type")
			if !allowedImageTypes[fileType] {
				file.Close()
				WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
				return "", "", nil, false
			}

			image = &service.ImageUpload{
				FileName: header.Filename,
				Size:     header.Size,
				File:     file,
			}
		}

		return text, groupSlug, image, true
	}

	var req struct {
		Text  string `json:"text" validate:"required"`
		Group string `json:"group"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return "", "", nil, false
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return "", "", nil, false
	}

	return req.Text, req.Group, nil, true
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	text, groupSlug, image, ok := h.readPostForm(w, r)
	if !ok {
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), service.CreatePostRequest{
		AuthorID:  middleware.ViewerID(r.Context()),
		Text:      text,
		GroupSlug: groupSlug,
	}, image)
	if err != nil {
		MapError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

// UpdatePost редактирует пост. Не-автор получает мягкий отказ: 303 с
// Location самого поста вместо страницы ошибки.
func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		MapError(w, err)
		return
	}

	text, groupSlug, image, ok := h.readPostForm(w, r)
	if !ok {
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), service.UpdatePostRequest{
		EditorID:  middleware.ViewerID(r.Context()),
		Username:  mux.Vars(r)["username"],
		PostID:    postID,
		Text:      text,
		GroupSlug: groupSlug,
	}, image)
	if err != nil {
		if errors.Is(err, models.ErrForbidden) {
			location := fmt.Sprintf("/api/users/%s/posts/%d", mux.Vars(r)["username"], postID)
			w.Header().Set("Location", location)
			w.WriteHeader(http.StatusSeeOther)
			return
		}
		MapError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := parsePostID(r)
	if err != nil {
		MapError(w, err)
		return
	}

	post, err := h.PostService.GetPost(r.Context(), mux.Vars(r)["username"], postID)
	if err != nil {
		MapError(w, err)
		return
	}

	comments, err := h.CommentService.CommentsForPost(r.Context(), post.PostID)
	if err != nil {
		MapError(w, err)
		return
	}

	WriteSuccess(w, PostViewResponse{
		Post:     post,
		Comments: comments,
	}, http.StatusOK)
}
