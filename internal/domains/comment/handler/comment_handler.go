package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"book-catalog-backend/internal/domains/comment/model"
	"book-catalog-backend/internal/domains/comment/service"
	"book-catalog-backend/internal/shared/apperrors"
	"book-catalog-backend/internal/shared/response"
	"book-catalog-backend/pkg/logger"
)

type CommentHandler struct {
	service service.ServiceInterface
}

func NewCommentHandler(service service.ServiceInterface) *CommentHandler {
	return &CommentHandler{service: service}
}

// AddComment handles POST /books/:bookId/comments
func (h *CommentHandler) AddComment(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req model.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), bookID, req.Author, req.Text)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, comment)
}

// DeleteComment handles DELETE /books/:bookId/comments/:commentId.
// The comment's creation timestamp comes from the caller (created_at
// query parameter, RFC3339); the service gates run against it.
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	bookID, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	commentID, err := strconv.ParseInt(c.Param("commentId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	var createdAt *time.Time
	if raw := c.Query("created_at"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			response.BadRequest(c, "invalid created_at, expected RFC3339")
			return
		}
		createdAt = &t
	}

	if err := h.service.Delete(c.Request.Context(), bookID, commentID, createdAt); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteCommentByID handles DELETE /comments/:id, the older entry point
// that checks the stored creation timestamp.
func (h *CommentHandler) DeleteCommentByID(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid comment id")
		return
	}

	if err := h.service.DeleteCommentByID(c.Request.Context(), commentID); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CommentHandler) handleError(c *gin.Context, err error) {
	var invalidDelete *model.InvalidCommentDeleteError
	var tooOld *model.CommentTooOldError

	switch {
	case errors.As(err, &invalidDelete):
		response.BadRequest(c, invalidDelete.Message)
	case errors.As(err, &tooOld):
		response.ErrorResponse(c, http.StatusConflict, "COMMENT_TOO_OLD", tooOld.Error())
	case apperrors.IsValidation(err):
		response.BadRequest(c, err.Error())
	case apperrors.IsBusiness(err):
		response.Conflict(c, err.Error())
	default:
		logger.Error("comment operation failed", err, nil)
		response.InternalServerError(c, "An unexpected error occurred")
	}
}
