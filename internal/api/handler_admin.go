package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-manager-backend/internal/auth"
	"hostel-manager-backend/internal/mw"
)

// ListOwners handles GET /api/admin/users: all non-admin owner accounts.
func (h *Handler) ListOwners(c *gin.Context) {
	owners, err := h.store.ListOwners(c.Request.Context())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, owners)
}

type approveRequest struct {
	UserID int64 `json:"userId" binding:"required"`
	Status *bool `json:"status" binding:"required"`
}

// Approve sets or clears an owner's approval flag.
func (h *Handler) Approve(c *gin.Context) {
	var req approveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if err := h.store.SetApproval(c.Request.Context(), req.UserID, *req.Status); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type changePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ChangeAdminPassword rotates the password of the calling admin account.
func (h *Handler) ChangeAdminPassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	hash, err := auth.HashPassword(req.NewPassword, h.bcryptCost)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	if err := h.store.UpdatePassword(c.Request.Context(), mw.UserID(c), hash); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type deleteOwnerRequest struct {
	UserID int64 `json:"userId" binding:"required"`
}

// DeleteOwner cascade-deletes an owner: rent history, beds, rooms, expenses,
// workers, subscriptions, then the user row.
func (h *Handler) DeleteOwner(c *gin.Context) {
	var req deleteOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if err := h.store.DeleteOwner(c.Request.Context(), req.UserID); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
