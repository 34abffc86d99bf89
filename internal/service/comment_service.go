package service

import (
	"context"
	"fmt"
	"strings"

	"miniblog/internal/models"
	"miniblog/internal/repository"
)

type CommentService interface {
	AddComment(ctx context.Context, viewerID, username string, postID int64, text string) (*models.Comment, error)
	CommentsForPost(ctx context.Context, postID int64) ([]models.Comment, error)
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository, userRepo repository.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// AddComment создаёт комментарий к существующему посту. Комментарии
// неизменяемы и не удаляются; операций редактирования нет вовсе.
func (s *commentService) AddComment(ctx context.Context, viewerID, username string, postID int64, text string) (*models.Comment, error) {
	if !CanComment(viewerID) {
		return nil, fmt.Errorf("комментирование: %w", models.ErrUnauthenticated)
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("текст комментария обязателен: %w", models.ErrInvalidArgument)
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Author != username {
		return nil, fmt.Errorf("пост %d у автора %s: %w", postID, username, models.ErrNotFound)
	}

	viewer, err := s.userRepo.GetUserByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:   post.PostID,
		AuthorID: viewer.UserID,
		Author:   viewer.Username,
		Text:     text,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *commentService) CommentsForPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	return s.commentRepo.GetByPostID(ctx, postID)
}
