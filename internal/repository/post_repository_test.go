package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"miniblog/internal/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return sqlxDB, mock
}

func postRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"post_id", "author_id", "author_username", "text",
		"group_id", "group_slug", "image_url", "created_at",
	})
}

func TestPostRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO posts`).
		WithArgs("author-id", "Новый пост", nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "created_at"}).AddRow(int64(42), now))

	post := &models.Post{
		AuthorID: "author-id",
		Text:     "Новый пост",
	}

	err := repo.Create(context.Background(), post)
	require.NoError(t, err)

	assert.Equal(t, int64(42), post.PostID)
	assert.Equal(t, now, post.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByID(t *testing.T) {
	tests := []struct {
		name        string
		postID      int64
		setupMock   func(mock sqlmock.Sqlmock)
		expectError bool
		errorIs     error
	}{
		{
			name:   "Успешное получение поста",
			postID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM posts p`).
					WithArgs(int64(1)).
					WillReturnRows(postRows().
						AddRow(int64(1), "author-id", "leo", "text", nil, nil, nil, time.Now()))
			},
			expectError: false,
		},
		{
			name:   "Несуществующий пост",
			postID: 99,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM posts p`).
					WithArgs(int64(99)).
					WillReturnRows(postRows())
			},
			expectError: true,
			errorIs:     models.ErrNotFound,
		},
		{
			name:   "Ошибка базы данных",
			postID: 1,
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM posts p`).
					WithArgs(int64(1)).
					WillReturnError(fmt.Errorf("connection refused"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewPostRepository(db)
			tt.setupMock(mock)

			post, err := repo.GetByID(context.Background(), tt.postID)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, post)
				if tt.errorIs != nil {
					assert.ErrorIs(t, err, tt.errorIs)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.postID, post.PostID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostRepository_GetAll_FeedOrder(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	// два поста с одинаковым created_at: решает больший post_id
	mock.ExpectQuery(`SELECT (.+) FROM posts p (.+) ORDER BY p.created_at DESC, p.post_id DESC`).
		WillReturnRows(postRows().
			AddRow(int64(3), "a1", "leo", "поздний", nil, nil, nil, base.Add(time.Hour)).
			AddRow(int64(2), "a2", "mia", "тот же момент", nil, nil, nil, base).
			AddRow(int64(1), "a1", "leo", "ранний", nil, nil, nil, base))

	posts, err := repo.GetAll(context.Background())
	require.NoError(t, err)

	require.Len(t, posts, 3)
	assert.Equal(t, int64(3), posts[0].PostID)
	assert.Equal(t, int64(2), posts[1].PostID)
	assert.Equal(t, int64(1), posts[2].PostID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByGroupID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	groupID := int64(7)

	mock.ExpectQuery(`SELECT (.+) FROM posts p (.+) WHERE p.group_id = \$1`).
		WithArgs(groupID).
		WillReturnRows(postRows().
			AddRow(int64(5), "a1", "leo", "o go", groupID, "golang", nil, time.Now()))

	posts, err := repo.GetByGroupID(context.Background(), groupID)
	require.NoError(t, err)

	require.Len(t, posts, 1)
	require.NotNil(t, posts[0].GroupSlug)
	assert.Equal(t, "golang", *posts[0].GroupSlug)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByFollowed(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM posts p (.+) WHERE p.author_id IN`).
		WithArgs("user-id").
		WillReturnRows(postRows())

	posts, err := repo.GetByFollowed(context.Background(), "user-id")
	require.NoError(t, err)

	assert.Empty(t, posts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Update(t *testing.T) {
	tests := []struct {
		name        string
		setupMock   func(mock sqlmock.Sqlmock)
		expectError bool
		errorIs     error
	}{
		{
			name: "Успешное обновление поста",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE posts SET`).
					WithArgs("новый текст", nil, nil, int64(1), "author-id").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			expectError: false,
		},
		{
			name: "Чужой или несуществующий пост не обновляется",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE posts SET`).
					WithArgs("новый текст", nil, nil, int64(1), "author-id").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			expectError: true,
			errorIs:     models.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := NewPostRepository(db)
			tt.setupMock(mock)

			err := repo.Update(context.Background(), &models.Post{
				PostID:   1,
				AuthorID: "author-id",
				Text:     "новый текст",
			})

			if tt.expectError {
				require.Error(t, err)
				if tt.errorIs != nil {
					assert.ErrorIs(t, err, tt.errorIs)
				}
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
