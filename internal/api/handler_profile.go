package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type updateProfileRequest struct {
	UserID     int64  `json:"userId" binding:"required"`
	HostelName string `json:"hostelName" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
	Mobile     string `json:"mobile"`
}

// UpdateProfile handles POST /api/profile/update: the owner's hostel name
// and contact details.
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if !h.authorizeOwner(c, req.UserID) {
		return
	}

	err := h.store.UpdateProfile(c.Request.Context(), req.UserID, req.HostelName, req.Email, req.Mobile)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
