package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"miniblog/internal/models"
)

// Общий список колонок ленты: пост вместе с именем автора и слагом группы.
const postColumns = `
	p.post_id, p.author_id, u.username AS author_username, p.text,
	p.group_id, g.slug AS group_slug, p.image_url, p.created_at
`

// Порядок во всех выборках лент одинаковый: новые сверху, при совпадении
// created_at побеждает больший первичный ключ (порядок вставки).
const feedOrder = ` ORDER BY p.created_at DESC, p.post_id DESC`

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (author_id, text, group_id, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING post_id, created_at
	`

	row := r.db.QueryRowxContext(ctx, query, post.AuthorID, post.Text, post.GroupID, post.ImageURL)
	if err := row.Scan(&post.PostID, &post.CreatedAt); err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		LEFT JOIN groups g ON g.group_id = p.group_id
		WHERE p.post_id = $1
	`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост %d: %w", postID, models.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

// Update меняет текст, группу и картинку. Автор и created_at неизменяемы:
// запрос их не затрагивает и дополнительно сверяет author_id.
func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			text = $1,
			group_id = $2,
			image_url = $3
		WHERE post_id = $4 AND author_id = $5
	`

	result, err := r.db.ExecContext(ctx, query, post.Text, post.GroupID, post.ImageURL, post.PostID, post.AuthorID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост %d: %w", post.PostID, models.ErrNotFound)
	}

	return nil
}

func (r *postRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		LEFT JOIN groups g ON g.group_id = p.group_id
	` + feedOrder

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetByGroupID(ctx context.Context, groupID int64) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		LEFT JOIN groups g ON g.group_id = p.group_id
		WHERE p.group_id = $1
	` + feedOrder

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов группы: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetByAuthorID(ctx context.Context, authorID string) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		LEFT JOIN groups g ON g.group_id = p.group_id
		WHERE p.author_id = $1
	` + feedOrder

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, authorID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов автора: %w", err)
	}

	return posts, nil
}

func (r *postRepository) GetByFollowed(ctx context.Context, userID string) ([]models.Post, error) {
	query := `
		SELECT ` + postColumns + `
		FROM posts p
		JOIN users u ON u.user_id = p.author_id
		LEFT JOIN groups g ON g.group_id = p.group_id
		WHERE p.author_id IN (
			SELECT f.author_id FROM follows f WHERE f.user_id = $1
		)
	` + feedOrder

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты подписок: %w", err)
	}

	return posts, nil
}
