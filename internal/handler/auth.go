package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nurseguard/backend/internal/service"
)

// AuthHandler implements the signup/login/logout endpoints
type AuthHandler struct {
	service *service.AuthService
	logger  *zap.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// loginRequest carries the login form fields
type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup registers a new staff account
func (h *AuthHandler) Signup(c *gin.Context) {
	var req service.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    codeValidationError,
			Message: "Invalid request body",
			Details: stringPtr(err.Error()),
		})
		return
	}

	user, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusConflict, ErrorResponse{
				Code:    codeValidationError,
				Message: err.Error(),
			})
		case errors.Is(err, service.ErrMissingFields),
			errors.Is(err, service.ErrPasswordTooShort),
			errors.Is(err, service.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    codeValidationError,
				Message: err.Error(),
			})
		default:
			h.logger.Error("signup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Code:    codeInternalError,
				Message: "Failed to create account",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login checks credentials and opens the active session
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    codeValidationError,
			Message: "Invalid request body",
			Details: stringPtr(err.Error()),
		})
		return
	}

	session, user, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    codeAuthError,
				Message: err.Error(),
			})
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    codeInternalError,
			Message: "Failed to log in",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": session.Token,
		"user":  user,
	})
}

// Logout clears the active session
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context()); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    codeInternalError,
			Message: "Failed to log out",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
