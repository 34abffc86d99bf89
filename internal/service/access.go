package service

import (
	"miniblog/internal/models"
)

// Чистые предикаты доступа. Пустой viewerID означает анонимного посетителя.
// Обработчики сами превращают false в 401/403/303.

// CanEditPost — редактировать пост может только его автор.
func CanEditPost(viewerID string, post *models.Post) bool {
	return viewerID != "" && viewerID == post.AuthorID
}

// CanComment — комментировать может любой аутентифицированный пользователь.
func CanComment(viewerID string) bool {
	return viewerID != ""
}

// CanFollow — подписка требует аутентификации, подписка на себя запрещена.
func CanFollow(viewerID, authorID string) bool {
	return viewerID != "" && viewerID != authorID
}
