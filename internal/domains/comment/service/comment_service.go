package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"book-catalog-backend/internal/config"
	"book-catalog-backend/internal/domains/comment/model"
	"book-catalog-backend/internal/domains/comment/repository"
	"book-catalog-backend/internal/shared/apperrors"
	"book-catalog-backend/pkg/logger"
)

type CommentService struct {
	repo              repository.CommentRepository
	maxAuthorLen      int
	maxTextLen        int
	deleteWindowHours int64
}

func NewCommentService(repo repository.CommentRepository, cfg config.CommentConfig) ServiceInterface {
	return &CommentService{
		repo:              repo,
		maxAuthorLen:      cfg.MaxAuthorLen,
		maxTextLen:        cfg.MaxTextLen,
		deleteWindowHours: cfg.DeleteWindowHours,
	}
}

func (s *CommentService) GetCommentsByBookID(ctx context.Context, bookID int64) ([]model.Comment, error) {
	return s.repo.FindCommentsByBookID(ctx, bookID)
}

func (s *CommentService) GetCommentsByUserID(ctx context.Context, userID int64) ([]model.Comment, error) {
	return s.repo.FindCommentsByUserID(ctx, userID)
}

func (s *CommentService) AddComment(ctx context.Context, bookID int64, author, text string) (model.Comment, error) {
	if err := s.validateComment(author, text); err != nil {
		return model.Comment{}, err
	}

	comment, err := s.repo.AddComment(ctx, bookID, author, text)
	if err != nil {
		return model.Comment{}, fmt.Errorf("add comment failed: %w", err)
	}

	logger.Info("comment created", map[string]interface{}{
		"id":      comment.ID,
		"book_id": bookID,
		"author":  author,
	})

	return comment, nil
}

// Delete applies four ordered gates, each a terminal exit point. The
// gates only read caller-supplied arguments, so a refused request never
// touches storage.
func (s *CommentService) Delete(ctx context.Context, bookID, commentID int64, createdAt *time.Time) error {
	if bookID <= 0 {
		return model.NewInvalidCommentDelete(
			fmt.Sprintf("Invalid bookId: %d. BookId must be positive", bookID))
	}

	if commentID <= 0 {
		return model.NewInvalidCommentDelete(
			fmt.Sprintf("Invalid commentId: %d. CommentId must be positive", commentID))
	}

	if createdAt == nil {
		return model.NewInvalidCommentDelete(
			"CreatedAt timestamp is required for comment deletion")
	}

	// Strict window: an age of exactly the window is still allowed, one
	// second over is not. The error reports whole hours only.
	age := time.Since(*createdAt)
	if age > s.deleteWindow() {
		return &model.CommentTooOldError{
			WindowHours: s.deleteWindowHours,
			AgeHours:    int64(age.Hours()),
		}
	}

	deleted, err := s.repo.DeleteComment(ctx, commentID)
	if err != nil {
		return fmt.Errorf("delete comment failed: %w", err)
	}

	if deleted {
		logger.Info("comment deleted", map[string]interface{}{
			"book_id":    bookID,
			"comment_id": commentID,
		})
	} else {
		// Already gone: deletion is idempotent once the gates passed.
		logger.Warn("comment not found for deletion", map[string]interface{}{
			"book_id":    bookID,
			"comment_id": commentID,
		})
	}

	return nil
}

// DeleteCommentByID computes the age from the stored creation timestamp
// instead of a caller-supplied one, then applies the same window.
func (s *CommentService) DeleteCommentByID(ctx context.Context, commentID int64) error {
	comment, err := s.repo.FindCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, model.ErrCommentNotFound) {
			return apperrors.NewBusiness("Comment not found")
		}
		return fmt.Errorf("find comment failed: %w", err)
	}

	if time.Since(comment.CreatedAt) > s.deleteWindow() {
		return apperrors.NewBusiness(
			fmt.Sprintf("Cannot delete comment older than %d hours", s.deleteWindowHours))
	}

	deleted, err := s.repo.DeleteComment(ctx, commentID)
	if err != nil {
		return fmt.Errorf("delete comment failed: %w", err)
	}

	if deleted {
		logger.Info("comment deleted", map[string]interface{}{
			"comment_id": commentID,
			"book_id":    comment.BookID,
		})
	}

	return nil
}

func (s *CommentService) deleteWindow() time.Duration {
	return time.Duration(s.deleteWindowHours) * time.Hour
}

// validateComment checks author before text; the first violation wins.
// Length limits count characters, not bytes.
func (s *CommentService) validateComment(author, text string) error {
	if strings.TrimSpace(author) == "" {
		return apperrors.NewValidation("Author is required")
	}
	if utf8.RuneCountInString(author) > s.maxAuthorLen {
		return apperrors.NewValidation(
			fmt.Sprintf("Author too long (max %d chars)", s.maxAuthorLen))
	}
	if strings.TrimSpace(text) == "" {
		return apperrors.NewValidation("Text is required")
	}
	if utf8.RuneCountInString(text) > s.maxTextLen {
		return apperrors.NewValidation(
			fmt.Sprintf("Text too long (max %d chars)", s.maxTextLen))
	}
	return nil
}
