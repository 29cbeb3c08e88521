package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Finance handles GET /api/finance/:userId: the owner's financial snapshot
// for the current calendar month.
func (h *Handler) Finance(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	if !h.authorizeOwner(c, ownerID) {
		return
	}

	snapshot, err := h.store.Finance(c.Request.Context(), ownerID, currentMonth())
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
