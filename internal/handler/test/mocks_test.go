package test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"miniblog/internal/models"
	"miniblog/internal/service"
)

type MockFeedService struct {
	mock.Mock
}

func (m *MockFeedService) SelectFeed(ctx context.Context, fc service.FeedContext) ([]models.Post, error) {
	args := m.Called(ctx, fc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockFeedService) GroupBySlug(ctx context.Context, slug string) (*models.Group, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Group), args.Error(1)
}

func (m *MockFeedService) AuthorByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req service.CreatePostRequest, image *service.ImageUpload) (*models.Post, error) {
	args := m.Called(ctx, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, req service.UpdatePostRequest, image *service.ImageUpload) (*models.Post, error) {
	args := m.Called(ctx, req, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, username string, postID int64) (*models.Post, error) {
	args := m.Called(ctx, username, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) AddComment(ctx context.Context, viewerID, username string, postID int64, text string) (*models.Comment, error) {
	args := m.Called(ctx, viewerID, username, postID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) CommentsForPost(ctx context.Context, postID int64) ([]models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

type MockFollowService struct {
	mock.Mock
}

func (m *MockFollowService) Follow(ctx context.Context, viewerID, username string) error {
	args := m.Called(ctx, viewerID, username)
	return args.Error(0)
}

func (m *MockFollowService) Unfollow(ctx context.Context, viewerID, username string) error {
	args := m.Called(ctx, viewerID, username)
	return args.Error(0)
}

func (m *MockFollowService) IsFollowing(ctx context.Context, viewerID, username string) (bool, error) {
	args := m.Called(ctx, viewerID, username)
	return args.Bool(0), args.Error(1)
}
