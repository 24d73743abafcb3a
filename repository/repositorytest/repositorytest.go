// Package repositorytest provides an in-memory repository.Repository for
// exercising the service and handler layers without PostgreSQL.
package repositorytest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/emzola/scribe/data"
	"github.com/emzola/scribe/repository"
)

// Repository is a map-backed repository. Records are copied on the way in and
// out so callers cannot mutate stored state without going through an update.
type Repository struct {
	// Err, when set, is returned by every method.
	Err error

	mu       sync.Mutex
	clock    time.Time
	nextID   int64
	users    map[int64]*data.User
	posts    map[int64]*data.Post
	comments map[int64]*data.Comment
}

var _ repository.Repository = (*Repository)(nil)

// New returns an empty Repository.
func New() *Repository {
	return &Repository{
		clock:    time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		users:    make(map[int64]*data.User),
		posts:    make(map[int64]*data.Post),
		comments: make(map[int64]*data.Comment),
	}
}

// tick returns a strictly increasing timestamp and the next record ID.
func (r *Repository) tick() (time.Time, int64) {
	r.clock = r.clock.Add(time.Second)
	r.nextID++
	return r.clock, r.nextID
}

func (r *Repository) RegisterUser(ctx context.Context, user *data.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return repository.ErrDuplicateRecord
		}
	}
	user.CreatedAt, user.ID = r.tick()
	user.Version = 1
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *Repository) GetUserByID(ctx context.Context, ID int64) (*data.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	user, ok := r.users[ID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	found := *user
	return &found, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*data.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			found := *user
			return &found, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (r *Repository) CreatePost(ctx context.Context, post *data.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	post.CreatedAt, post.ID = r.tick()
	post.UpdatedAt = post.CreatedAt
	post.Version = 1
	stored := *post
	r.posts[post.ID] = &stored
	return nil
}

func (r *Repository) GetPost(ctx context.Context, postID int64) (*data.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	post, ok := r.posts[postID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	found := *post
	return &found, nil
}

func (r *Repository) GetAllPosts(ctx context.Context) ([]*data.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	posts := []*data.Post{}
	for _, post := range r.posts {
		found := *post
		posts = append(posts, &found)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID > posts[j].ID })
	return posts, nil
}

func (r *Repository) UpdatePost(ctx context.Context, post *data.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	stored, ok := r.posts[post.ID]
	if !ok || stored.Version != post.Version {
		return repository.ErrEditConflict
	}
	post.UpdatedAt, _ = r.tick()
	post.Version++
	updated := *post
	r.posts[post.ID] = &updated
	return nil
}

func (r *Repository) DeletePost(ctx context.Context, postID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.posts[postID]; !ok {
		return repository.ErrRecordNotFound
	}
	delete(r.posts, postID)
	return nil
}

func (r *Repository) PostExists(ctx context.Context, postID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return false, r.Err
	}
	_, ok := r.posts[postID]
	return ok, nil
}

func (r *Repository) CreateComment(ctx context.Context, comment *data.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	comment.CreatedAt, comment.ID = r.tick()
	comment.IsEdited = false
	comment.Version = 1
	stored := *comment
	stored.Author = nil
	r.comments[comment.ID] = &stored
	return nil
}

func (r *Repository) GetComment(ctx context.Context, commentID int64) (*data.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	comment, ok := r.comments[commentID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	return r.withAuthor(comment)
}

func (r *Repository) UpdateComment(ctx context.Context, comment *data.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	stored, ok := r.comments[comment.ID]
	if !ok || stored.Version != comment.Version {
		return repository.ErrEditConflict
	}
	stored.Content = comment.Content
	stored.IsEdited = true
	stored.Version++
	comment.IsEdited = stored.IsEdited
	comment.Version = stored.Version
	return nil
}

func (r *Repository) DeleteCommentWithReplies(ctx context.Context, commentID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	if _, ok := r.comments[commentID]; !ok {
		return 0, repository.ErrRecordNotFound
	}
	var replies int64
	for id, comment := range r.comments {
		if comment.ParentID != nil && *comment.ParentID == commentID {
			delete(r.comments, id)
			replies++
		}
	}
	delete(r.comments, commentID)
	return replies, nil
}

func (r *Repository) GetAllTopLevelComments(ctx context.Context, postID int64) ([]*data.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	comments := []*data.Comment{}
	for _, comment := range r.comments {
		if comment.PostID != postID || !comment.IsTopLevel() {
			continue
		}
		found, err := r.withAuthor(comment)
		if err != nil {
			return nil, err
		}
		comments = append(comments, found)
	}
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].CreatedAt.Equal(comments[j].CreatedAt) {
			return comments[i].ID > comments[j].ID
		}
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

// Comments returns a copy of every stored comment, replies included.
func (r *Repository) Comments() []data.Comment {
	r.mu.Lock()
	defer r.mu.Unlock()
	comments := make([]data.Comment, 0, len(r.comments))
	for _, comment := range r.comments {
		comments = append(comments, *comment)
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments
}

// withAuthor mirrors the users join of the SQL repository. Callers hold r.mu.
func (r *Repository) withAuthor(comment *data.Comment) (*data.Comment, error) {
	user, ok := r.users[comment.AuthorID]
	if !ok {
		return nil, repository.ErrRecordNotFound
	}
	found := *comment
	author := user.Identity()
	found.Author = &author
	return &found, nil
}
