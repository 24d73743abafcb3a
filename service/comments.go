package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/emzola/scribe/data"
	"github.com/emzola/scribe/internal/validator"
	"github.com/emzola/scribe/repository"
)

type comments interface {
	ListComments(ctx context.Context, postID int64) ([]*data.Comment, error)
	GetComment(ctx context.Context, commentID int64) (*data.Comment, error)
	CreateComment(ctx context.Context, userID int64, postID int64, content string, parentID *int64) (*data.Comment, error)
	UpdateComment(ctx context.Context, userID int64, commentID int64, content string) (*data.Comment, error)
	DeleteComment(ctx context.Context, userID int64, commentID int64) error
}

// ListComments service retrieves the top-level comments of a post, newest first.
func (s *service) ListComments(ctx context.Context, postID int64) ([]*data.Comment, error) {
	comments, err := s.repo.GetAllTopLevelComments(ctx, postID)
	if err != nil {
		return nil, err
	}
	for _, comment := range comments {
		s.rememberIdentity(comment.Author)
	}
	return comments, nil
}

// GetComment service retrieves a comment.
func (s *service) GetComment(ctx context.Context, commentID int64) (*data.Comment, error) {
	comment, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	s.rememberIdentity(comment.Author)
	return comment, nil
}

// CreateComment service creates a comment on an existing post. A parent
// comment is recorded as given and is not looked up.
func (s *service) CreateComment(ctx context.Context, userID int64, postID int64, content string, parentID *int64) (*data.Comment, error) {
	comment := &data.Comment{
		Content:  strings.TrimSpace(content),
		AuthorID: userID,
		PostID:   postID,
		ParentID: parentID,
	}
	v := validator.New()
	if data.ValidateComment(v, comment); !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	exists, err := s.repo.PostExists(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrRecordNotFound
	}
	err = s.repo.CreateComment(ctx, comment)
	if err != nil {
		return nil, err
	}
	author, err := s.ResolveIdentity(ctx, userID)
	if err != nil {
		return nil, err
	}
	comment.Author = &author
	return comment, nil
}

// UpdateComment service replaces the content of a comment owned by userID and
// marks it as edited.
func (s *service) UpdateComment(ctx context.Context, userID int64, commentID int64, content string) (*data.Comment, error) {
	content = strings.TrimSpace(content)
	v := validator.New()
	data.ValidateCommentContent(v, content)
	if !v.Valid() {
		return nil, failedValidation(v.Errors)
	}
	comment, err := s.GetComment(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.AuthorID != userID {
		return nil, ErrNotPermitted
	}
	comment.Content = content
	err = s.repo.UpdateComment(ctx, comment)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEditConflict):
			return nil, ErrEditConflict
		default:
			return nil, err
		}
	}
	return comment, nil
}

// DeleteComment service deletes a comment owned by userID together with its
// direct replies.
func (s *service) DeleteComment(ctx context.Context, userID int64, commentID int64) error {
	comment, err := s.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.AuthorID != userID {
		return ErrNotPermitted
	}
	replies, err := s.repo.DeleteCommentWithReplies(ctx, commentID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return ErrRecordNotFound
		default:
			return err
		}
	}
	s.logger.PrintDebug("comment deleted", map[string]string{
		"comment_id":      strconv.FormatInt(commentID, 10),
		"replies_deleted": strconv.FormatInt(replies, 10),
	})
	return nil
}
