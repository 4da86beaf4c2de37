package service

import (
	"context"

	"book-catalog-backend/internal/domains/user/model"
)

type ServiceInterface interface {
	// FindByID returns (nil, nil) when the user does not exist.
	FindByID(ctx context.Context, id int64) (*model.User, error)

	// FindByUsername returns (nil, nil) when the user does not exist.
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// RegisterUser stores a new account with role USER. The credential
	// arrives already hashed; hashing is the caller's concern.
	RegisterUser(ctx context.Context, username, passwordHash string) (model.User, error)
}
