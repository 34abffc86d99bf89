package service

import (
	"context"
	"fmt"

	"miniblog/internal/models"
	"miniblog/internal/repository"
)

type FollowService interface {
	Follow(ctx context.Context, viewerID, username string) error
	Unfollow(ctx context.Context, viewerID, username string) error
	IsFollowing(ctx context.Context, viewerID, username string) (bool, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow подписывает viewer на автора. Подписка на себя запрещена;
// повторная подписка проходит без ошибки (get-or-create в репозитории).
func (s *followService) Follow(ctx context.Context, viewerID, username string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	if !CanFollow(viewerID, author.UserID) {
		if viewerID == "" {
			return fmt.Errorf("подписка: %w", models.ErrUnauthenticated)
		}
		return fmt.Errorf("подписка на самого себя: %w", models.ErrForbidden)
	}

	return s.followRepo.Follow(ctx, viewerID, author.UserID)
}

func (s *followService) Unfollow(ctx context.Context, viewerID, username string) error {
	if viewerID == "" {
		return fmt.Errorf("отписка: %w", models.ErrUnauthenticated)
	}

	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}

	return s.followRepo.Unfollow(ctx, viewerID, author.UserID)
}

// IsFollowing для анонимного посетителя всегда false, без ошибки.
func (s *followService) IsFollowing(ctx context.Context, viewerID, username string) (bool, error) {
	if viewerID == "" {
		return false, nil
	}

	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return false, err
	}

	return s.followRepo.Exists(ctx, viewerID, author.UserID)
}
