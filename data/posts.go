package data

import (
	"time"
	"unicode/utf8"

	"github.com/emzola/scribe/internal/validator"
)

// Post defines a blog post.
type Post struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	BodyHTML  string    `json:"body_html"`
	Excerpt   string    `json:"excerpt,omitempty"`
	CoverURL  string    `json:"cover_url,omitempty"`
	Version   int32     `json:"-"`
}

func ValidatePost(v *validator.Validator, post *Post) {
	v.Check(post.Title != "", "title", "must be provided")
	v.Check(utf8.RuneCountInString(post.Title) <= 200, "title", "must not be more than 200 characters long")
	v.Check(post.Body != "", "content", "must be provided")
	v.Check(utf8.RuneCountInString(post.Excerpt) <= 500, "excerpt", "must not be more than 500 characters long")
}
