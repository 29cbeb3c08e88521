package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-manager-backend/internal/store"
)

// writeStoreError maps store errors onto HTTP statuses. Anything unexpected
// becomes a generic 500; internal error text is never sent to the client.
func writeStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrBedOccupied):
		c.JSON(http.StatusConflict, gin.H{"error": "OCCUPIED_BED_ERROR"})
	case errors.Is(err, store.ErrBedVacant):
		c.JSON(http.StatusConflict, gin.H{"error": "bed is not occupied"})
	case errors.Is(err, store.ErrNoBeds):
		c.JSON(http.StatusBadRequest, gin.H{"error": "NO_BEDS_ERROR"})
	default:
		log.Printf("storage error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func writeBindError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
}
