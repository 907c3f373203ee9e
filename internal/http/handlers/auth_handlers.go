package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Juls010/bluvi-backend/domain"
)

// AuthHandlers handles registration and authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// CheckEmailRequest represents an availability check request
type CheckEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RegisterRequest represents the full sign-up payload
type RegisterRequest struct {
	Email        string   `json:"email" binding:"required,email"`
	Password     string   `json:"password" binding:"required,min=6"`
	FirstName    string   `json:"firstName" binding:"required"`
	LastName     string   `json:"lastName" binding:"required"`
	BirthDate    string   `json:"birthDate" binding:"required,adult"`
	City         string   `json:"city" binding:"required"`
	Description  string   `json:"description"`
	GenderID     uint     `json:"genderId" binding:"required"`
	PreferenceID uint     `json:"preferenceId" binding:"required"`
	InterestIDs  []uint   `json:"interests"`
	FeatureIDs   []uint   `json:"neurodivergences"`
	PhotoURLs    []string `json:"photos"`
}

// VerifyEmailRequest represents a code submission
type VerifyEmailRequest struct {
	UserID uint   `json:"userId" binding:"required"`
	Code   string `json:"code" binding:"required,len=6,numeric"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ResendCodeRequest asks for a fresh verification code
type ResendCodeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CheckEmail handles the availability check
func (h *AuthHandlers) CheckEmail(c *gin.Context) {
	var req CheckEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	exists, err := h.authSvc.CheckEmail(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to check email"})
		return
	}

	if exists {
		c.JSON(http.StatusConflict, gin.H{"success": false, "exists": true, "message": "Email already registered"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "exists": false})
}

// Register handles user registration
func (h *AuthHandlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	// The adult binding rule already guarantees this parses.
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid birth date"})
		return
	}

	reg := &domain.Registration{
		Email:        req.Email,
		Password:     req.Password,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		BirthDate:    birthDate,
		City:         req.City,
		Description:  req.Description,
		GenderID:     req.GenderID,
		PreferenceID: req.PreferenceID,
		InterestIDs:  req.InterestIDs,
		FeatureIDs:   req.FeatureIDs,
		PhotoURLs:    req.PhotoURLs,
	}

	user, err := h.authSvc.Register(c.Request.Context(), reg)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"userId":  user.ID,
		"message": "User registered. Check your email for the verification code.",
	})
}

// VerifyEmail handles verification code submission
func (h *AuthHandlers) VerifyEmail(c *gin.Context) {
	var req VerifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	result, err := h.authSvc.VerifyEmail(c.Request.Context(), req.UserID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		case errors.Is(err, domain.ErrCodeExpired):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Verification code expired, request a new one"})
		case errors.Is(err, domain.ErrCodeInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Incorrect verification code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
	})
}

// Login handles user login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"user": gin.H{
			"id":        result.User.ID,
			"email":     result.User.Email,
			"firstName": result.User.FirstName,
			"role":      result.User.Role,
		},
	})
}

// ResendCode handles verification code resends
func (h *AuthHandlers) ResendCode(c *gin.Context) {
	var req ResendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	err := h.authSvc.ResendCode(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		case errors.Is(err, domain.ErrAlreadyVerified):
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Account already verified"})
		case errors.Is(err, domain.ErrResendThrottled):
			c.JSON(http.StatusTooManyRequests, gin.H{"success": false, "message": "Please wait before requesting a new code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to resend code"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Verification code sent"})
}
