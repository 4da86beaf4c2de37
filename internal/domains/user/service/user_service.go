package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"book-catalog-backend/internal/domains/user/model"
	"book-catalog-backend/internal/domains/user/repository"
	"book-catalog-backend/internal/shared/apperrors"
	"book-catalog-backend/pkg/logger"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) ServiceInterface {
	return &UserService{repo: repo}
}

func (s *UserService) FindByID(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user failed: %w", err)
	}

	return user, nil
}

func (s *UserService) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find user failed: %w", err)
	}

	return user, nil
}

func (s *UserService) RegisterUser(ctx context.Context, username, passwordHash string) (model.User, error) {
	if strings.TrimSpace(username) == "" {
		return model.User{}, apperrors.NewValidation("Username is required")
	}

	exists, err := s.repo.ExistsByUsername(ctx, username)
	if err != nil {
		return model.User{}, fmt.Errorf("check username failed: %w", err)
	}
	if exists {
		return model.User{}, apperrors.NewValidation("Username already exists")
	}

	saved, err := s.repo.Save(ctx, model.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         model.RoleUser,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("register user failed: %w", err)
	}

	logger.Info("user registered", map[string]interface{}{
		"id":       saved.ID,
		"username": saved.Username,
	})

	return saved, nil
}
