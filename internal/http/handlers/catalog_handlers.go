package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Juls010/bluvi-backend/domain"
)

// CatalogHandlers serves the fixed tag catalogs consumed by the sign-up form.
type CatalogHandlers struct {
	catalogRepo domain.CatalogRepository
}

// NewCatalogHandlers creates new catalog handlers
func NewCatalogHandlers(catalogRepo domain.CatalogRepository) *CatalogHandlers {
	return &CatalogHandlers{catalogRepo: catalogRepo}
}

// Interests lists the interest catalog ordered by name
func (h *CatalogHandlers) Interests(c *gin.Context) {
	interests, err := h.catalogRepo.ListInterests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load interests"})
		return
	}

	c.JSON(http.StatusOK, interests)
}

// RegisterMetadata bundles every catalog the registration form needs
func (h *CatalogHandlers) RegisterMetadata(c *gin.Context) {
	meta, err := h.catalogRepo.RegisterMetadata(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to load registration options"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"interests":           meta.Interests,
			"neurodivergences":    meta.Neurodivergences,
			"sexualities":         meta.Sexualities,
			"genders":             meta.Genders,
			"communicationStyles": meta.CommunicationStyles,
		},
	})
}
