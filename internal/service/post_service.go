package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"miniblog/internal/models"
	"miniblog/internal/repository"
	"miniblog/internal/storage"
)

type CreatePostRequest struct {
	AuthorID  string
	Text      string
	GroupSlug string
}

type UpdatePostRequest struct {
	EditorID  string
	Username  string
	PostID    int64
	Text      string
	GroupSlug string
}

// ImageUpload — необязательная картинка из multipart-формы.
type ImageUpload struct {
	FileName string
	Size     int64
	File     io.Reader
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest, image *ImageUpload) (*models.Post, error)
	UpdatePost(ctx context.Context, req UpdatePostRequest, image *ImageUpload) (*models.Post, error)
	GetPost(ctx context.Context, username string, postID int64) (*models.Post, error)
}

type postService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
	userRepo  repository.UserRepository
	storage   storage.Storage
}

func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository, userRepo repository.UserRepository, storage storage.Storage) PostService {
	return &postService{
		postRepo:  postRepo,
		groupRepo: groupRepo,
		userRepo:  userRepo,
		storage:   storage,
	}
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest, image *ImageUpload) (*models.Post, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("текст поста обязателен: %w", models.ErrInvalidArgument)
	}

	post := &models.Post{
		AuthorID: req.AuthorID,
		Text:     req.Text,
	}

	if req.GroupSlug != "" {
		group, err := p.groupRepo.GetBySlug(ctx, req.GroupSlug)
		if err != nil {
			return nil, fmt.Errorf("группа поста: %w", err)
		}
		post.GroupID = &group.GroupID
		post.GroupSlug = &group.Slug
	}

	author, err := p.userRepo.GetUserByID(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	post.Author = author.Username

	if image != nil {
		objectName, imageURL, err := p.storage.UploadImage(ctx, author.Username, image.FileName, image.File, image.Size)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки изображения: %w", err)
		}

		post.ImageURL = &imageURL

		if err := p.postRepo.Create(ctx, post); err != nil {
			// пост не записался, подчищаем объект
			p.storage.DeleteImage(ctx, objectName)
			return nil, err
		}
		return post, nil
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// UpdatePost меняет текст, группу и картинку поста. Автор и время создания
// неизменяемы. Пост адресуется парой (имя автора, идентификатор), как и в
// GetPost: несовпадение имени — NotFound. Для чужого поста возвращается
// ErrForbidden — обработчик превращает его в мягкий отказ (редирект на сам
// пост).
func (p *postService) UpdatePost(ctx context.Context, req UpdatePostRequest, image *ImageUpload) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		return nil, err
	}

	if post.Author != req.Username {
		return nil, fmt.Errorf("пост %d у автора %s: %w", req.PostID, req.Username, models.ErrNotFound)
	}

	if !CanEditPost(req.EditorID, post) {
		return nil, fmt.Errorf("пост %d принадлежит другому автору: %w", req.PostID, models.ErrForbidden)
	}

	if strings.TrimSpace(req.Text) == "" {
		return nil, fmt.Errorf("текст поста обязателен: %w", models.ErrInvalidArgument)
	}
	post.Text = req.Text

	if req.GroupSlug != "" {
		group, err := p.groupRepo.GetBySlug(ctx, req.GroupSlug)
		if err != nil {
			return nil, fmt.Errorf("группа поста: %w", err)
		}
		post.GroupID = &group.GroupID
		post.GroupSlug = &group.Slug
	} else {
		post.GroupID = nil
		post.GroupSlug = nil
	}

	if image != nil {
		_, imageURL, err := p.storage.UploadImage(ctx, post.Author, image.FileName, image.File, image.Size)
		if err != nil {
			return nil, fmt.Errorf("ошибка загрузки изображения: %w", err)
		}
		post.ImageURL = &imageURL
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// GetPost находит пост по имени автора и идентификатору; несовпадение
// имени с автором поста — тот же NotFound, что и несуществующий пост.
func (p *postService) GetPost(ctx context.Context, username string, postID int64) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.Author != username {
		return nil, fmt.Errorf("пост %d у автора %s: %w", postID, username, models.ErrNotFound)
	}

	return post, nil
}
