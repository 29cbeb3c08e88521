package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-manager-backend/internal/store"
)

type importRequest struct {
	UserID  int64                `json:"userId" binding:"required"`
	Records []store.ImportRecord `json:"records" binding:"required"`
}

// ImportData handles POST /api/import-data: bulk tenant import from parsed
// external records. The response reports imported/skipped counts and one
// error message per failed record.
func (h *Handler) ImportData(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if !h.authorizeOwner(c, req.UserID) {
		return
	}

	report, err := h.store.ImportTenants(c.Request.Context(), req.UserID, req.Records)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
