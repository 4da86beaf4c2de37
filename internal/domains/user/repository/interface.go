package repository

import (
	"context"

	"book-catalog-backend/internal/domains/user/model"
)

// UserRepository is the storage boundary for accounts.
type UserRepository interface {
	// FindByID returns model.ErrUserNotFound when the id is unknown.
	FindByID(ctx context.Context, id int64) (*model.User, error)

	// FindByUsername returns model.ErrUserNotFound when no such account exists.
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// Save persists a new user and returns it with its assigned identity.
	Save(ctx context.Context, user model.User) (model.User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
