package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Juls010/bluvi-backend/domain"
)

// PolicyHandlers manages authorization policies through the policy service
type PolicyHandlers struct {
	policySvc domain.PolicyService
}

// NewPolicyHandlers creates new policy handlers
func NewPolicyHandlers(policySvc domain.PolicyService) *PolicyHandlers {
	return &PolicyHandlers{policySvc: policySvc}
}

// PolicyRequest represents one authorization rule
type PolicyRequest struct {
	Sub string `json:"sub" binding:"required"`
	Obj string `json:"obj" binding:"required"`
	Act string `json:"act" binding:"required"`
}

// List returns every stored policy rule
func (h *PolicyHandlers) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.policySvc.GetPolicies())
}

// Add stores and persists a new policy rule
func (h *PolicyHandlers) Add(c *gin.Context) {
	var r PolicyRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.policySvc.AddPolicy(r.Sub, r.Obj, r.Act); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add policy"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Remove deletes and persists removal of a policy rule
func (h *PolicyHandlers) Remove(c *gin.Context) {
	var r PolicyRequest
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.policySvc.RemovePolicy(r.Sub, r.Obj, r.Act); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to remove policy"})
		return
	}

	c.Status(http.StatusNoContent)
}
