package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/emzola/scribe/data"
)

type comments interface {
	CreateComment(ctx context.Context, comment *data.Comment) error
	GetComment(ctx context.Context, commentID int64) (*data.Comment, error)
	UpdateComment(ctx context.Context, comment *data.Comment) error
	DeleteCommentWithReplies(ctx context.Context, commentID int64) (int64, error)
	GetAllTopLevelComments(ctx context.Context, postID int64) ([]*data.Comment, error)
}

// commentColumns selects a comment joined with its author's identity.
const commentColumns = `
		SELECT comments.id, comments.post_id, comments.parent_id, comments.content, comments.is_edited,
			comments.created_at, comments.version, users.id, users.name, users.email
		FROM comments
		INNER JOIN users ON comments.author_id = users.id`

// CreateComment creates a comment record.
func (r *repository) CreateComment(ctx context.Context, comment *data.Comment) error {
	query := `
		INSERT INTO comments (post_id, author_id, parent_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_edited, created_at, version`
	args := []interface{}{comment.PostID, comment.AuthorID, comment.ParentID, comment.Content}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return r.db.QueryRowContext(ctx, query, args...).Scan(&comment.ID, &comment.IsEdited, &comment.CreatedAt, &comment.Version)
}

// GetComment retrieves a comment record.
func (r *repository) GetComment(ctx context.Context, commentID int64) (*data.Comment, error) {
	if commentID < 1 {
		return nil, ErrRecordNotFound
	}
	query := commentColumns + `
		WHERE comments.id = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	comment, err := scanComment(r.db.QueryRowContext(ctx, query, commentID))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}
	return comment, nil
}

// UpdateComment updates the content of a comment record and marks it as edited.
func (r *repository) UpdateComment(ctx context.Context, comment *data.Comment) error {
	query := `
		UPDATE comments
		SET content = $1, is_edited = TRUE, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING is_edited, version`
	args := []interface{}{comment.Content, comment.ID, comment.Version}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&comment.IsEdited, &comment.Version)
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

// DeleteCommentWithReplies deletes a comment record together with its direct
// replies in a single transaction and returns the number of replies removed.
// Replies to those replies are left in place.
func (r *repository) DeleteCommentWithReplies(ctx context.Context, commentID int64) (int64, error) {
	if commentID < 1 {
		return 0, ErrRecordNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		DELETE FROM comments
		WHERE parent_id = $1`, commentID)
	if err != nil {
		return 0, err
	}
	replies, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	result, err = tx.ExecContext(ctx, `
		DELETE FROM comments
		WHERE id = $1`, commentID)
	if err != nil {
		return 0, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rowsAffected == 0 {
		return 0, ErrRecordNotFound
	}
	return replies, tx.Commit()
}

// GetAllTopLevelComments retrieves the comments on a post that are not replies, newest first.
func (r *repository) GetAllTopLevelComments(ctx context.Context, postID int64) ([]*data.Comment, error) {
	query := commentColumns + `
		WHERE comments.post_id = $1 AND comments.parent_id IS NULL
		ORDER BY comments.created_at DESC, comments.id DESC`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	comments := []*data.Comment{}
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanComment(row scanner) (*data.Comment, error) {
	var (
		comment  data.Comment
		author   data.Identity
		parentID sql.NullInt64
	)
	err := row.Scan(
		&comment.ID,
		&comment.PostID,
		&parentID,
		&comment.Content,
		&comment.IsEdited,
		&comment.CreatedAt,
		&comment.Version,
		&author.ID,
		&author.Name,
		&author.Email,
	)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		comment.ParentID = &parentID.Int64
	}
	comment.AuthorID = author.ID
	comment.Author = &author
	return &comment, nil
}
