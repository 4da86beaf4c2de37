package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog-backend/internal/config"
	"book-catalog-backend/internal/domains/comment/model"
	"book-catalog-backend/internal/shared/apperrors"
)

// fakeCommentRepo records every call so tests can assert that refused
// deletions never reach storage.
type fakeCommentRepo struct {
	comments map[int64]model.Comment

	deleteCalls []int64
	findCalls   []int64
	addCalls    int

	deleteResult bool
	deleteErr    error
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{
		comments:     map[int64]model.Comment{},
		deleteResult: true,
	}
}

func (r *fakeCommentRepo) FindCommentsByBookID(_ context.Context, bookID int64) ([]model.Comment, error) {
	var out []model.Comment
	for _, c := range r.comments {
		if c.BookID == bookID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) FindCommentsByUserID(_ context.Context, _ int64) ([]model.Comment, error) {
	return nil, nil
}

func (r *fakeCommentRepo) FindCommentByID(_ context.Context, id int64) (*model.Comment, error) {
	r.findCalls = append(r.findCalls, id)
	c, ok := r.comments[id]
	if !ok {
		return nil, model.ErrCommentNotFound
	}
	return &c, nil
}

func (r *fakeCommentRepo) AddComment(_ context.Context, bookID int64, author, text string) (model.Comment, error) {
	r.addCalls++
	c := model.Comment{
		ID:        int64(r.addCalls),
		BookID:    bookID,
		Author:    author,
		Text:      text,
		CreatedAt: time.Now(),
	}
	r.comments[c.ID] = c
	return c, nil
}

func (r *fakeCommentRepo) DeleteComment(_ context.Context, id int64) (bool, error) {
	r.deleteCalls = append(r.deleteCalls, id)
	if r.deleteErr != nil {
		return false, r.deleteErr
	}
	delete(r.comments, id)
	return r.deleteResult, nil
}

func testCommentConfig() config.CommentConfig {
	return config.CommentConfig{
		MaxAuthorLen:      100,
		MaxTextLen:        1000,
		DeleteWindowHours: 24,
	}
}

func timePtr(t time.Time) *time.Time { return &t }

func TestDelete_InvalidArguments(t *testing.T) {
	createdAt := timePtr(time.Now().Add(-time.Hour))

	tests := []struct {
		name      string
		bookID    int64
		commentID int64
		createdAt *time.Time
		wantMsg   string
	}{
		{
			name:      "zero_book_id",
			bookID:    0,
			commentID: 5,
			createdAt: createdAt,
			wantMsg:   "Invalid bookId: 0. BookId must be positive",
		},
		{
			name:      "negative_book_id",
			bookID:    -3,
			commentID: 5,
			createdAt: createdAt,
			wantMsg:   "Invalid bookId: -3. BookId must be positive",
		},
		{
			name:      "zero_comment_id",
			bookID:    1,
			commentID: 0,
			createdAt: createdAt,
			wantMsg:   "Invalid commentId: 0. CommentId must be positive",
		},
		{
			name:      "negative_comment_id",
			bookID:    1,
			commentID: -7,
			createdAt: createdAt,
			wantMsg:   "Invalid commentId: -7. CommentId must be positive",
		},
		{
			name:      "missing_created_at",
			bookID:    1,
			commentID: 5,
			createdAt: nil,
			wantMsg:   "CreatedAt timestamp is required for comment deletion",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeCommentRepo()
			svc := NewCommentService(repo, testCommentConfig())

			err := svc.Delete(context.Background(), tc.bookID, tc.commentID, tc.createdAt)

			var invalid *model.InvalidCommentDeleteError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.wantMsg, invalid.Error())

			// A refused request never touches storage.
			assert.Empty(t, repo.deleteCalls)
			assert.Empty(t, repo.findCalls)
		})
	}
}

func TestDelete_GateOrder(t *testing.T) {
	// Both ids invalid and createdAt missing: the bookId gate fires first.
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, testCommentConfig())

	err := svc.Delete(context.Background(), -1, -1, nil)

	var invalid *model.InvalidCommentDeleteError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Invalid bookId: -1. BookId must be positive", invalid.Error())
}

func TestDelete_AgeWindow(t *testing.T) {
	tests := []struct {
		name    string
		age     time.Duration
		allowed bool
	}{
		{name: "one_hour_old", age: time.Hour, allowed: true},
		{name: "twenty_three_hours", age: 23 * time.Hour, allowed: true},
		{name: "just_under_window", age: 24*time.Hour - time.Minute, allowed: true},
		{name: "just_over_window", age: 24*time.Hour + time.Minute, allowed: false},
		{name: "twenty_five_hours", age: 25 * time.Hour, allowed: false},
		{name: "days_old", age: 72 * time.Hour, allowed: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeCommentRepo()
			svc := NewCommentService(repo, testCommentConfig())

			createdAt := timePtr(time.Now().Add(-tc.age))
			err := svc.Delete(context.Background(), 1, 5, createdAt)

			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, []int64{5}, repo.deleteCalls)
				return
			}

			var tooOld *model.CommentTooOldError
			require.ErrorAs(t, err, &tooOld)
			assert.Equal(t, int64(24), tooOld.WindowHours)
			assert.GreaterOrEqual(t, tooOld.AgeHours, int64(24))
			assert.Empty(t, repo.deleteCalls)
		})
	}
}

func TestDelete_TooOldErrorReportsFlooredHours(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, testCommentConfig())

	createdAt := timePtr(time.Now().Add(-25*time.Hour - 30*time.Minute))
	err := svc.Delete(context.Background(), 1, 5, createdAt)

	var tooOld *model.CommentTooOldError
	require.ErrorAs(t, err, &tooOld)
	assert.Equal(t, int64(25), tooOld.AgeHours)
	assert.Contains(t, tooOld.Error(), "more than 24 hours ago")
	assert.Contains(t, tooOld.Error(), "age: 25 hours")
}

func TestDelete_FutureTimestampAllowed(t *testing.T) {
	// A clock-skewed future timestamp has negative age, which is within
	// the window.
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, testCommentConfig())

	createdAt := timePtr(time.Now().Add(time.Hour))
	err := svc.Delete(context.Background(), 1, 5, createdAt)

	require.NoError(t, err)
	assert.Equal(t, []int64{5}, repo.deleteCalls)
}

func TestDelete_MissingRowIsNotAnError(t *testing.T) {
	repo := newFakeCommentRepo()
	repo.deleteResult = false
	svc := NewCommentService(repo, testCommentConfig())

	createdAt := timePtr(time.Now().Add(-time.Hour))
	err := svc.Delete(context.Background(), 1, 999, createdAt)

	require.NoError(t, err)
	assert.Equal(t, []int64{999}, repo.deleteCalls)
}

func TestDelete_RepositoryErrorPropagates(t *testing.T) {
	repo := newFakeCommentRepo()
	repo.deleteErr = fmt.Errorf("connection reset")
	svc := NewCommentService(repo, testCommentConfig())

	createdAt := timePtr(time.Now().Add(-time.Hour))
	err := svc.Delete(context.Background(), 1, 5, createdAt)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestDelete_CustomWindow(t *testing.T) {
	cfg := testCommentConfig()
	cfg.DeleteWindowHours = 48
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, cfg)

	err := svc.Delete(context.Background(), 1, 5, timePtr(time.Now().Add(-36*time.Hour)))
	require.NoError(t, err)

	err = svc.Delete(context.Background(), 1, 6, timePtr(time.Now().Add(-49*time.Hour)))
	var tooOld *model.CommentTooOldError
	require.ErrorAs(t, err, &tooOld)
	assert.Equal(t, int64(48), tooOld.WindowHours)
}

func TestDeleteCommentByID_UsesStoredTimestamp(t *testing.T) {
	repo := newFakeCommentRepo()
	repo.comments[7] = model.Comment{
		ID:        7,
		BookID:    1,
		Author:    "alice",
		Text:      "fresh",
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	svc := NewCommentService(repo, testCommentConfig())

	err := svc.DeleteCommentByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []int64{7}, repo.findCalls)
	assert.Equal(t, []int64{7}, repo.deleteCalls)
}

func TestDeleteCommentByID_NotFound(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, testCommentConfig())

	err := svc.DeleteCommentByID(context.Background(), 42)

	require.Error(t, err)
	assert.True(t, apperrors.IsBusiness(err))
	assert.Equal(t, "Comment not found", err.Error())
	assert.Empty(t, repo.deleteCalls)
}

func TestDeleteCommentByID_TooOld(t *testing.T) {
	repo := newFakeCommentRepo()
	repo.comments[7] = model.Comment{
		ID:        7,
		BookID:    1,
		Author:    "alice",
		Text:      "stale",
		CreatedAt: time.Now().Add(-30 * time.Hour),
	}
	svc := NewCommentService(repo, testCommentConfig())

	err := svc.DeleteCommentByID(context.Background(), 7)

	require.Error(t, err)
	assert.True(t, apperrors.IsBusiness(err))
	assert.Equal(t, "Cannot delete comment older than 24 hours", err.Error())
	assert.Empty(t, repo.deleteCalls)
}

func TestAddComment_Validation(t *testing.T) {
	tests := []struct {
		name    string
		author  string
		text    string
		wantMsg string
	}{
		{name: "empty_author", author: "", text: "hello", wantMsg: "Author is required"},
		{name: "blank_author", author: "   ", text: "hello", wantMsg: "Author is required"},
		{
			name:    "author_too_long",
			author:  strings.Repeat("a", 101),
			text:    "hello",
			wantMsg: "Author too long (max 100 chars)",
		},
		{name: "empty_text", author: "alice", text: "", wantMsg: "Text is required"},
		{name: "blank_text", author: "alice", text: "\t\n ", wantMsg: "Text is required"},
		{
			name:    "text_too_long",
			author:  "alice",
			text:    strings.Repeat("x", 1001),
			wantMsg: "Text too long (max 1000 chars)",
		},
		{
			// Author is checked before text.
			name:    "both_invalid_author_wins",
			author:  "",
			text:    "",
			wantMsg: "Author is required",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeCommentRepo()
			svc := NewCommentService(repo, testCommentConfig())

			_, err := svc.AddComment(context.Background(), 1, tc.author, tc.text)

			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, tc.wantMsg, err.Error())
			assert.Zero(t, repo.addCalls)
		})
	}
}

func TestAddComment_LengthLimitsCountCharactersNotBytes(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, testCommentConfig())

	// 60 Cyrillic characters occupy 120 bytes but are within the
	// 100-character limit.
	author := strings.Repeat("я", 60)
	comment, err := svc.AddComment(context.Background(), 1, author, strings.Repeat("ё", 1000))
	require.NoError(t, err)
	assert.Equal(t, author, comment.Author)

	_, err = svc.AddComment(context.Background(), 1, strings.Repeat("я", 101), "hello")
	require.Error(t, err)
	assert.Equal(t, "Author too long (max 100 chars)", err.Error())

	_, err = svc.AddComment(context.Background(), 1, "alice", strings.Repeat("ё", 1001))
	require.Error(t, err)
	assert.Equal(t, "Text too long (max 1000 chars)", err.Error())
}

func TestAddComment_BoundaryLengthsAccepted(t *testing.T) {
	repo := newFakeCommentRepo()
	svc := NewCommentService(repo, testCommentConfig())

	author := strings.Repeat("a", 100)
	text := strings.Repeat("x", 1000)

	comment, err := svc.AddComment(context.Background(), 3, author, text)

	require.NoError(t, err)
	assert.Equal(t, int64(3), comment.BookID)
	assert.Equal(t, author, comment.Author)
	assert.Equal(t, text, comment.Text)
	assert.False(t, comment.CreatedAt.IsZero())
	assert.Equal(t, 1, repo.addCalls)
}
