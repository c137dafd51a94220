package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Voctor98/TechSolutionsApp/domain"
)

// AuthHandlers handles authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// RegisterRequest represents registration request
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest represents login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		var weakErr *domain.WeakPasswordError
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
		case errors.Is(err, domain.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
		case errors.As(err, &weakErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Weak password: " + weakErr.Rule})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		}
		return
	}

	body := gin.H{
		"message": "User registered successfully",
		"user_id": result.User.ID,
	}
	if result.Token != "" {
		body["token"] = result.Token
		body["token_type"] = "Bearer"
		body["expires_in"] = result.ExpiresIn
	}
	c.JSON(http.StatusCreated, gin.H{"data": body})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		var lockErr *domain.AccountLockedError
		switch {
		case errors.As(err, &lockErr):
			c.Header("Retry-After", strconv.FormatInt(lockErr.RetryAfter, 10))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":         "Too many failed attempts",
				"retry_after_s": lockErr.RetryAfter,
			})
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"token":      result.Token,
			"token_type": "Bearer",
			"expires_in": result.ExpiresIn,
			"user": gin.H{
				"id":    result.User.ID,
				"email": result.User.Email,
				"role":  result.User.Role,
			},
		},
	})
}

// Me returns the profile of the authenticated user
func (h *AuthHandlers) Me(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// Logout clears the authenticated user's active session
func (h *AuthHandlers) Logout(c *gin.Context) {
	token := bearerToken(c)
	if err := h.authSvc.Logout(c.Request.Context(), token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Logged out"}})
}

// DeleteAccount removes the authenticated user's account
func (h *AuthHandlers) DeleteAccount(c *gin.Context) {
	token := bearerToken(c)
	if err := h.authSvc.DeleteAccount(c.Request.Context(), token); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, domain.ErrTokenInvalid):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"message": "Account deleted"}})
}
