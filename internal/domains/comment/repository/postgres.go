package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"book-catalog-backend/internal/domains/comment/model"
)

type postgresCommentRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresCommentRepository(pool *pgxpool.Pool) CommentRepository {
	return &postgresCommentRepository{pool: pool}
}

func (r *postgresCommentRepository) FindCommentsByBookID(ctx context.Context, bookID int64) ([]model.Comment, error) {
	query := `
		SELECT id, book_id, author, text, created_at
		FROM comments
		WHERE book_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	return scanComments(rows)
}

func (r *postgresCommentRepository) FindCommentsByUserID(ctx context.Context, userID int64) ([]model.Comment, error) {
	query := `
		SELECT id, book_id, author, text, created_at
		FROM comments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	return scanComments(rows)
}

func (r *postgresCommentRepository) FindCommentByID(ctx context.Context, id int64) (*model.Comment, error) {
	query := "SELECT id, book_id, author, text, created_at FROM comments WHERE id = $1"

	comment := &model.Comment{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.BookID,
		&comment.Author,
		&comment.Text,
		&comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	return comment, nil
}

// AddComment inserts the comment and links it to the user row matching
// the author name, creating that user on first sight. Both writes happen
// in one transaction.
func (r *postgresCommentRepository) AddComment(ctx context.Context, bookID int64, author, text string) (model.Comment, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var userID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO users (username, password_hash, role)
		VALUES ($1, '', 'USER')
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id
	`, author).Scan(&userID)
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to resolve comment user: %w", err)
	}

	now := time.Now()
	comment := model.Comment{
		BookID:    bookID,
		Author:    author,
		Text:      text,
		CreatedAt: now,
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO comments (book_id, user_id, author, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, bookID, userID, author, text, now).Scan(&comment.ID)
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to add comment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return model.Comment{}, fmt.Errorf("failed to commit comment: %w", err)
	}

	return comment, nil
}

func (r *postgresCommentRepository) DeleteComment(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete comment: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanComments(rows pgx.Rows) ([]model.Comment, error) {
	defer rows.Close()

	comments := make([]model.Comment, 0)
	for rows.Next() {
		var comment model.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.BookID,
			&comment.Author,
			&comment.Text,
			&comment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	return comments, nil
}
