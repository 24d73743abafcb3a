package repository

import (
	"database/sql"
	"time"
)

// queryTimeout bounds every statement issued by the repository.
const queryTimeout = 3 * time.Second

type Repository interface {
	users
	posts
	comments
}

// Repository defines the app's repository layer.
type repository struct {
	db *sql.DB
}

// New creates a new instance of Repository.
func New(db *sql.DB) *repository {
	return &repository{db: db}
}
