package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-manager-backend/internal/store"
)

type setupRequest struct {
	UserID      int64            `json:"userId" binding:"required"`
	HostelName  string           `json:"hostelName" binding:"required"`
	TotalFloors int              `json:"totalFloors" binding:"required,min=1"`
	Rooms       []store.RoomSpec `json:"rooms" binding:"required,dive"`
}

// Setup handles POST /api/setup: creates the room/bed layout and marks the
// owner's setup complete.
func (h *Handler) Setup(c *gin.Context) {
	var req setupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if !h.authorizeOwner(c, req.UserID) {
		return
	}
	for _, room := range req.Rooms {
		if room.Capacity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "room capacity must be non-negative"})
			return
		}
	}

	err := h.store.SetupHostel(c.Request.Context(), req.UserID, req.HostelName, req.TotalFloors, req.Rooms)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type resetRequest struct {
	UserID int64 `json:"userId" binding:"required"`
}

// ResetHostel handles POST /api/reset-hostel: wipes the owner's layout.
func (h *Handler) ResetHostel(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if !h.authorizeOwner(c, req.UserID) {
		return
	}
	if err := h.store.ResetHostel(c.Request.Context(), req.UserID); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type roomRequest struct {
	RoomID int64 `json:"roomId" binding:"required"`
}

// AddBed handles POST /api/rooms/add-bed.
func (h *Handler) AddBed(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if !h.authorizeRoom(c, req.RoomID) {
		return
	}
	bed, err := h.store.AddBed(c.Request.Context(), req.RoomID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, bed)
}

// RemoveBed handles POST /api/rooms/remove-bed. Only the highest-index,
// unoccupied bed may be removed.
func (h *Handler) RemoveBed(c *gin.Context) {
	var req roomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if !h.authorizeRoom(c, req.RoomID) {
		return
	}
	if err := h.store.RemoveBed(c.Request.Context(), req.RoomID); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
