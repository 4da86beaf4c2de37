package repository

import (
	"context"

	"book-catalog-backend/internal/domains/comment/model"
)

// CommentRepository is the storage boundary for comments.
type CommentRepository interface {
	// FindCommentsByBookID returns the book's comments newest-first.
	FindCommentsByBookID(ctx context.Context, bookID int64) ([]model.Comment, error)

	// FindCommentsByUserID returns a user's comments newest-first.
	FindCommentsByUserID(ctx context.Context, userID int64) ([]model.Comment, error)

	// FindCommentByID returns model.ErrCommentNotFound when the id is unknown.
	FindCommentByID(ctx context.Context, id int64) (*model.Comment, error)

	// AddComment persists a new comment, assigning its identity and the
	// creation timestamp.
	AddComment(ctx context.Context, bookID int64, author, text string) (model.Comment, error)

	// DeleteComment removes the comment and reports whether a row was
	// actually deleted.
	DeleteComment(ctx context.Context, id int64) (bool, error)
}
