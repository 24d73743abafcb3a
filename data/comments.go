package data

import (
	"time"
	"unicode/utf8"

	"github.com/emzola/scribe/internal/validator"
)

// CommentContentMaxLength is the maximum number of characters in a comment.
const CommentContentMaxLength = 1000

// Comment defines a post comment. A nil ParentID marks a top-level comment.
type Comment struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	AuthorID  int64     `json:"-"`
	Author    *Identity `json:"author,omitempty"`
	PostID    int64     `json:"post"`
	ParentID  *int64    `json:"parentComment"`
	IsEdited  bool      `json:"isEdited"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

// IsTopLevel reports whether the comment is not a reply.
func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}

func ValidateCommentContent(v *validator.Validator, content string) {
	v.Check(content != "", "content", "must be provided")
	v.Check(utf8.RuneCountInString(content) <= CommentContentMaxLength, "content", "must not be more than 1000 characters long")
}

func ValidateComment(v *validator.Validator, comment *Comment) {
	ValidateCommentContent(v, comment.Content)
	v.Check(comment.PostID > 0, "post", "must be a positive integer")
	if comment.ParentID != nil {
		v.Check(*comment.ParentID > 0, "parentComment", "must be a positive integer")
	}
}
