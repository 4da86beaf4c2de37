package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	commentService "book-catalog-backend/internal/domains/comment/service"
	"book-catalog-backend/internal/domains/user/model"
	"book-catalog-backend/internal/domains/user/service"
	"book-catalog-backend/internal/shared/apperrors"
	"book-catalog-backend/internal/shared/response"
	"book-catalog-backend/pkg/jwt"
	"book-catalog-backend/pkg/logger"
)

// UserHandler serves registration, login, and the per-user comment list.
// Password hashing happens here: the service only ever sees the hash.
type UserHandler struct {
	service        service.ServiceInterface
	commentService commentService.ServiceInterface
	jwtManager     *jwt.Manager
}

func NewUserHandler(
	service service.ServiceInterface,
	commentService commentService.ServiceInterface,
	jwtManager *jwt.Manager,
) *UserHandler {
	return &UserHandler{
		service:        service,
		commentService: commentService,
		jwtManager:     jwtManager,
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("password hashing failed", err, nil)
		response.InternalServerError(c, "Failed to register user")
		return
	}

	user, err := h.service.RegisterUser(c.Request.Context(), req.Username, string(hash))
	if err != nil {
		if apperrors.IsValidation(err) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("registration failed", err, map[string]interface{}{"username": req.Username})
		response.InternalServerError(c, "Failed to register user")
		return
	}

	response.Success(c, http.StatusCreated, user)
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.FindByUsername(c.Request.Context(), req.Username)
	if err != nil {
		logger.Error("login lookup failed", err, map[string]interface{}{"username": req.Username})
		response.InternalServerError(c, "Failed to log in")
		return
	}
	if user == nil {
		response.Unauthorized(c, model.ErrInvalidCredentials.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		response.Unauthorized(c, model.ErrInvalidCredentials.Error())
		return
	}

	token, err := h.jwtManager.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		logger.Error("token generation failed", err, nil)
		response.InternalServerError(c, "Failed to log in")
		return
	}

	response.Success(c, http.StatusOK, model.LoginResponse{
		AccessToken: token,
		User:        *user,
	})
}

// GetUserComments handles GET /users/:id/comments
func (h *UserHandler) GetUserComments(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	user, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("find user failed", err, map[string]interface{}{"id": id})
		response.InternalServerError(c, "Failed to load user")
		return
	}
	if user == nil {
		response.NotFound(c, "User not found")
		return
	}

	comments, err := h.commentService.GetCommentsByUserID(c.Request.Context(), id)
	if err != nil {
		logger.Error("load user comments failed", err, map[string]interface{}{"id": id})
		response.InternalServerError(c, "Failed to load comments")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":     user,
		"comments": comments,
	})
}
