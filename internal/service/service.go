package service

import (
	"miniblog/internal/config"
	"miniblog/internal/repository"
	"miniblog/internal/storage"
)

type Service struct {
	Auth    AuthService
	Feed    FeedService
	Post    PostService
	Comment CommentService
	Follow  FollowService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, cfg),
		Feed:    NewFeedService(rep.Post, rep.Group, rep.User),
		Post:    NewPostService(rep.Post, rep.Group, rep.User, storage),
		Comment: NewCommentService(rep.Comment, rep.Post, rep.User),
		Follow:  NewFollowService(rep.Follow, rep.User),
	}
}
