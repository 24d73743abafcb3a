package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/emzola/scribe/data"
)

type posts interface {
	CreatePost(ctx context.Context, post *data.Post) error
	GetPost(ctx context.Context, postID int64) (*data.Post, error)
	GetAllPosts(ctx context.Context) ([]*data.Post, error)
	UpdatePost(ctx context.Context, post *data.Post) error
	DeletePost(ctx context.Context, postID int64) error
	PostExists(ctx context.Context, postID int64) (bool, error)
}

// CreatePost creates a post record.
func (r *repository) CreatePost(ctx context.Context, post *data.Post) error {
	query := `
		INSERT INTO posts (title, body, body_html, excerpt)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at, version`
	args := []interface{}{post.Title, post.Body, post.BodyHTML, post.Excerpt}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt, &post.Version)
}

// GetPost retrieves a post record.
func (r *repository) GetPost(ctx context.Context, postID int64) (*data.Post, error) {
	if postID < 1 {
		return nil, ErrRecordNotFound
	}
	query := `
		SELECT id, created_at, updated_at, title, body, body_html, excerpt, cover_url, version
		FROM posts
		WHERE id = $1`
	var post data.Post
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, postID).Scan(
		&post.ID,
		&post.CreatedAt,
		&post.UpdatedAt,
		&post.Title,
		&post.Body,
		&post.BodyHTML,
		&post.Excerpt,
		&post.CoverURL,
		&post.Version,
	)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return &post, nil
}

// GetAllPosts retrieves all post records, newest first.
func (r *repository) GetAllPosts(ctx context.Context) ([]*data.Post, error) {
	query := `
		SELECT id, created_at, updated_at, title, body, body_html, excerpt, cover_url, version
		FROM posts
		ORDER BY created_at DESC, id DESC`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	posts := []*data.Post{}
	for rows.Next() {
		var post data.Post
		err := rows.Scan(
			&post.ID,
			&post.CreatedAt,
			&post.UpdatedAt,
			&post.Title,
			&post.Body,
			&post.BodyHTML,
			&post.Excerpt,
			&post.CoverURL,
			&post.Version,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost updates a post record.
func (r *repository) UpdatePost(ctx context.Context, post *data.Post) error {
	query := `
		UPDATE posts
		SET title = $1, body = $2, body_html = $3, excerpt = $4, cover_url = $5, updated_at = NOW(), version = version + 1
		WHERE id = $6 AND version = $7
		RETURNING updated_at, version`
	args := []interface{}{
		post.Title,
		post.Body,
		post.BodyHTML,
		post.Excerpt,
		post.CoverURL,
		post.ID,
		post.Version,
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&post.UpdatedAt, &post.Version)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrEditConflict
		default:
			return err
		}
	}
	return nil
}

// DeletePost deletes a post record.
func (r *repository) DeletePost(ctx context.Context, postID int64) error {
	if postID < 1 {
		return ErrRecordNotFound
	}
	query := `
		DELETE FROM posts
		WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// PostExists reports whether a post record with the given ID exists.
func (r *repository) PostExists(ctx context.Context, postID int64) (bool, error) {
	if postID < 1 {
		return false, nil
	}
	query := `SELECT EXISTS(SELECT 1 FROM posts WHERE id = $1)`
	var exists bool
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, postID).Scan(&exists)
	return exists, err
}
