package service

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/emzola/scribe/data"
	"github.com/emzola/scribe/internal/validator"
	"github.com/emzola/scribe/repository"
)

// maxCoverSize is the largest cover image accepted, in bytes.
const maxCoverSize = 5 << 20

var errStorageNotConfigured = errors.New("object storage is not configured")

type posts interface {
	CreatePost(ctx context.Context, title string, body string, excerpt string) (*data.Post, error)
	ListPosts(ctx context.Context) ([]*data.Post, error)
	GetPost(ctx context.Context, postID int64) (*data.Post, error)
	UpdatePost(ctx context.Context, postID int64, title *string, body *string, excerpt *string) (*data.Post, error)
	DeletePost(ctx context.Context, postID int64) error
	UpdatePostCover(ctx context.Context, postID int64, file multipart.File, fileHeader *multipart.FileHeader) (*data.Post, error)
}

// CreatePost service creates a new post.
func (s *service) CreatePost(ctx context.Context, title string, body string, excerpt string) (*data.Post, error) {
	post := &data.Post{
		Title:   title,
		Body:    body,
		Excerpt: excerpt,
	}
	err := s.preparePost(post)
	if err != nil {
		return nil, err
	}
	err = s.repo.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts service retrieves all posts, newest first.
func (s *service) ListPosts(ctx context.Context) ([]*data.Post, error) {
	return s.repo.GetAllPosts(ctx)
}

// GetPost service retrieves a post.
func (s *service) GetPost(ctx context.Context, postID int64) (*data.Post, error) {
	post, err := s.repo.GetPost(ctx, postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return post, nil
}

// UpdatePost service updates the details of a post. Nil fields are left unchanged.
func (s *service) UpdatePost(ctx context.Context, postID int64, title *string, body *string, excerpt *string) (*data.Post, error) {
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if title != nil {
		post.Title = *title
	}
	if body != nil {
		post.Body = *body
		// Re-derive the excerpt unless one was supplied alongside the new body.
		if excerpt == nil {
			post.Excerpt = ""
		}
	}
	if excerpt != nil {
		post.Excerpt = *excerpt
	}
	err = s.preparePost(post)
	if err != nil {
		return nil, err
	}
	return post, s.savePost(ctx, post)
}

// DeletePost service deletes a post. Comments on the post are kept.
func (s *service) DeletePost(ctx context.Context, postID int64) error {
	err := s.repo.DeletePost(ctx, postID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	return nil
}

// UpdatePostCover service uploads a cover image to S3 and records its URL on the post.
func (s *service) UpdatePostCover(ctx context.Context, postID int64, file multipart.File, fileHeader *multipart.FileHeader) (*data.Post, error) {
	if s.s3 == nil {
		return nil, errStorageNotConfigured
	}
	if fileHeader.Size > maxCoverSize {
		return nil, ErrContentTooLarge
	}
	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	buffer, mtype, err := s.detectMimeType(file, fileHeader)
	if err != nil {
		return nil, err
	}
	if !validator.Mime(mtype, "image/jpeg", "image/png") {
		return nil, ErrUnsupportedMediaType
	}
	url, err := s.uploadFileToS3(ctx, buffer, mtype, fileHeader)
	if err != nil {
		return nil, err
	}
	post.CoverURL = url
	return post, s.savePost(ctx, post)
}

// preparePost validates a post and fills in its rendered body and excerpt.
func (s *service) preparePost(post *data.Post) error {
	v := validator.New()
	if data.ValidatePost(v, post); !v.Valid() {
		return failedValidation(v.Errors)
	}
	bodyHTML, err := s.renderBody(post.Body)
	if err != nil {
		return err
	}
	post.BodyHTML = bodyHTML
	if post.Excerpt == "" {
		post.Excerpt = s.excerpt(bodyHTML)
	}
	return nil
}

func (s *service) savePost(ctx context.Context, post *data.Post) error {
	err := s.repo.UpdatePost(ctx, post)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return ErrEditConflict
		default:
			return err
		}
	}
	return nil
}
