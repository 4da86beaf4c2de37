package service

import (
	"context"
	"time"

	"book-catalog-backend/internal/domains/comment/model"
)

type ServiceInterface interface {
	// GetCommentsByBookID lists a book's comments; newest-first ordering is
	// the repository's contract.
	GetCommentsByBookID(ctx context.Context, bookID int64) ([]model.Comment, error)

	// GetCommentsByUserID lists the comments written by a user.
	GetCommentsByUserID(ctx context.Context, userID int64) ([]model.Comment, error)

	// AddComment validates author then text and persists via the
	// repository, which assigns identity and timestamp.
	AddComment(ctx context.Context, bookID int64, author, text string) (model.Comment, error)

	// Delete runs the four-gate deletion policy against the caller-supplied
	// creation timestamp. No storage access happens unless every gate passes.
	Delete(ctx context.Context, bookID, commentID int64, createdAt *time.Time) error

	// DeleteCommentByID is the older delete entry point: it loads the
	// stored comment and applies the same age window to its stored
	// creation timestamp.
	DeleteCommentByID(ctx context.Context, commentID int64) error
}
