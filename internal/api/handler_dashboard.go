package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Dashboard handles GET /api/dashboard/:userId: the owner's rooms with
// nested beds, ordered by floor, room number and bed index.
func (h *Handler) Dashboard(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	if !h.authorizeOwner(c, ownerID) {
		return
	}

	rooms, err := h.store.Dashboard(c.Request.Context(), ownerID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, rooms)
}
