package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"miniblog/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (post_id, author_id, text)
		VALUES ($1, $2, $3)
		RETURNING comment_id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query, comment.PostID, comment.AuthorID, comment.Text)
	if err := row.Scan(&comment.CommentID, &comment.CreatedAt); err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByPostID(ctx context.Context, postID int64) ([]models.Comment, error) {
	query := `
		SELECT c.comment_id, c.post_id, c.author_id, u.username AS author_username, c.text, c.created_at
		FROM comments c
		JOIN users u ON u.user_id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at, c.comment_id
	`

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}
