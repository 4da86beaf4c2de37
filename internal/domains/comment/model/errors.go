package model

import (
	"errors"
	"fmt"
)

var ErrCommentNotFound = errors.New("comment not found")

// InvalidCommentDeleteError covers the structural gates of a delete
// request: non-positive identifiers or a missing creation timestamp.
type InvalidCommentDeleteError struct {
	Message string
}

func (e *InvalidCommentDeleteError) Error() string {
	return e.Message
}

func NewInvalidCommentDelete(message string) *InvalidCommentDeleteError {
	return &InvalidCommentDeleteError{Message: message}
}

// CommentTooOldError means deletion was refused solely because the
// comment's age exceeded the allowed window.
type CommentTooOldError struct {
	WindowHours int64
	AgeHours    int64
}

func (e *CommentTooOldError) Error() string {
	return fmt.Sprintf(
		"comment was created more than %d hours ago and cannot be deleted (age: %d hours)",
		e.WindowHours, e.AgeHours,
	)
}
