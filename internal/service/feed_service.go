package service

import (
	"context"
	"fmt"

	"miniblog/internal/models"
	"miniblog/internal/repository"
)

type FeedKind int

const (
	FeedGlobal FeedKind = iota
	FeedGroup
	FeedAuthor
	FeedFollowees
)

// FeedContext описывает, чью ленту собираем: общую, группы, автора или
// подписок текущего пользователя.
type FeedContext struct {
	Kind      FeedKind
	GroupSlug string
	Username  string
	ViewerID  string
}

type FeedService interface {
	SelectFeed(ctx context.Context, fc FeedContext) ([]models.Post, error)
	GroupBySlug(ctx context.Context, slug string) (*models.Group, error)
	AuthorByUsername(ctx context.Context, username string) (*models.User, error)
}

type feedService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
}

func NewFeedService(postRepo repository.PostRepository, groupRepo repository.GroupRepository, userRepo repository.UserRepository) FeedService {
	return &feedService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
	}
}

// SelectFeed возвращает посты, видимые в данном контексте, новые сверху.
// Чтение без побочных эффектов; порядок гарантируют запросы репозитория.
func (s *feedService) SelectFeed(ctx context.Context, fc FeedContext) ([]models.Post, error) {
	switch fc.Kind {
	case FeedGlobal:
		return s.postRepo.GetAll(ctx)

	case FeedGroup:
		group, err := s.groupRepo.GetBySlug(ctx, fc.GroupSlug)
		if err != nil {
			return nil, err
		}
		return s.postRepo.GetByGroupID(ctx, group.GroupID)

	case FeedAuthor:
		author, err := s.userRepo.GetUserByUsername(ctx, fc.Username)
		if err != nil {
			return nil, err
		}
		return s.postRepo.GetByAuthorID(ctx, author.UserID)

	case FeedFollowees:
		if fc.ViewerID == "" {
			return nil, fmt.Errorf("лента подписок: %w", models.ErrUnauthenticated)
		}
		return s.postRepo.GetByFollowed(ctx, fc.ViewerID)

	default:
		return nil, fmt.Errorf("неизвестный контекст ленты %d: %w", fc.Kind, models.ErrInvalidArgument)
	}
}

func (s *feedService) GroupBySlug(ctx context.Context, slug string) (*models.Group, error) {
	return s.groupRepo.GetBySlug(ctx, slug)
}

func (s *feedService) AuthorByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.GetUserByUsername(ctx, username)
}
