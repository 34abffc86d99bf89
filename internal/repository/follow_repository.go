package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type followRepository struct {
	db *sqlx.DB
}

func NewFollowRepository(db *sqlx.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow — атомарный get-or-create: уникальный индекс (user_id, author_id)
// плюс ON CONFLICT DO NOTHING, чтобы два одновременных запроса не создали
// дубликат. Повторная подписка не ошибка.
func (r *followRepository) Follow(ctx context.Context, userID, authorID string) error {
	query := `
		INSERT INTO follows (user_id, author_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, author_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, userID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при создании подписки: %w", err)
	}

	return nil
}

// Unfollow идемпотентен: удаление несуществующей подписки не ошибка.
func (r *followRepository) Unfollow(ctx context.Context, userID, authorID string) error {
	query := `DELETE FROM follows WHERE user_id = $1 AND author_id = $2`

	_, err := r.db.ExecContext(ctx, query, userID, authorID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	return nil
}

func (r *followRepository) Exists(ctx context.Context, userID, authorID string) (bool, error) {
	query := `
		SELECT COUNT(*) FROM follows
		WHERE user_id = $1 AND author_id = $2
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, authorID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке подписки: %w", err)
	}

	return count > 0, nil
}
