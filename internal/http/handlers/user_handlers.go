package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Juls010/bluvi-backend/domain"
)

// UserHandlers handles authenticated profile and explore requests
type UserHandlers struct {
	profileSvc domain.ProfileService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(profileSvc domain.ProfileService) *UserHandlers {
	return &UserHandlers{profileSvc: profileSvc}
}

// Profile returns the authenticated user's own profile
func (h *UserHandlers) Profile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not identified"})
		return
	}

	profile, err := h.profileSvc.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":               profile.ID,
			"email":            profile.Email,
			"firstName":        profile.FirstName,
			"lastName":         profile.LastName,
			"birthDate":        profile.BirthDate.Format("2006-01-02"),
			"city":             profile.City,
			"description":      profile.Description,
			"photos":           profile.Photos,
			"interests":        profile.Interests,
			"neurodivergences": profile.Neurodivergences,
		},
	})
}

// Explore returns the filtered listing of other verified users
func (h *UserHandlers) Explore(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "User not identified"})
		return
	}

	filter := domain.ExploreFilter{
		City:    c.Query("city"),
		Feature: c.Query("feature"),
	}

	cards, err := h.profileSvc.Explore(c.Request.Context(), userID, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to filter users"})
		return
	}

	users := make([]gin.H, 0, len(cards))
	for _, card := range cards {
		users = append(users, gin.H{
			"id":          card.ID,
			"firstName":   card.FirstName,
			"city":        card.City,
			"description": card.Description,
			"mainPhoto":   card.MainPhoto,
			"interests":   card.Interests,
			"features":    card.Features,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(users),
		"users":   users,
	})
}

// currentUserID reads the user id the auth middleware stored in the context.
func currentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}

	id, err := strconv.ParseUint(raw.(string), 10, 32)
	if err != nil {
		return 0, false
	}

	return uint(id), true
}
