package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"book-catalog-backend/internal/domains/catalog/model"
	"book-catalog-backend/internal/domains/catalog/service"
	commentService "book-catalog-backend/internal/domains/comment/service"
	"book-catalog-backend/internal/shared/apperrors"
	"book-catalog-backend/internal/shared/paging"
	"book-catalog-backend/internal/shared/response"
	"book-catalog-backend/pkg/logger"
)

// BookHandler serves the catalog endpoints. The detail endpoint also
// pulls the comment thread, so both services are injected.
type BookHandler struct {
	catalogService service.ServiceInterface
	commentService commentService.ServiceInterface
}

func NewBookHandler(
	catalogService service.ServiceInterface,
	commentService commentService.ServiceInterface,
) *BookHandler {
	return &BookHandler{
		catalogService: catalogService,
		commentService: commentService,
	}
}

// SearchBooks handles GET /books?q=&page=&size=&sort=
func (h *BookHandler) SearchBooks(c *gin.Context) {
	query := c.Query("q")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	sort := c.Query("sort")

	pr := paging.NewPageRequest(page, size, sort)

	result, err := h.catalogService.SearchBooks(c.Request.Context(), query, pr)
	if err != nil {
		logger.Error("book search failed", err, map[string]interface{}{"query": query})
		response.InternalServerError(c, "Failed to search books")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Content, &response.Meta{
		Page:       result.Page,
		Size:       result.Size,
		Total:      result.Total,
		TotalPages: result.TotalPages(),
		HasNext:    result.HasNext(),
		HasPrev:    result.HasPrevious(),
	})
}

// GetBookDetail handles GET /books/:bookId and returns the book
// together with its comments.
func (h *BookHandler) GetBookDetail(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("bookId"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	book, err := h.catalogService.GetBookByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("get book failed", err, map[string]interface{}{"id": id})
		response.InternalServerError(c, "Failed to load book")
		return
	}
	if book == nil {
		response.NotFound(c, "Book not found")
		return
	}

	comments, err := h.commentService.GetCommentsByBookID(c.Request.Context(), id)
	if err != nil {
		logger.Error("get comments failed", err, map[string]interface{}{"book_id": id})
		response.InternalServerError(c, "Failed to load comments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"book":     book,
		"comments": comments,
	})
}

// CreateBook handles POST /books (admin only).
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	saved, err := h.catalogService.AddBook(c.Request.Context(), req.ToBook())
	if err != nil {
		if apperrors.IsValidation(err) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("add book failed", err, nil)
		response.InternalServerError(c, "Failed to add book")
		return
	}

	response.Success(c, http.StatusCreated, saved)
}
