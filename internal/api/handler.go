package api

import (
	"net/http"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"

	"hostel-manager-backend/internal/auth"
	"hostel-manager-backend/internal/mail"
	"hostel-manager-backend/internal/mw"
	"hostel-manager-backend/internal/store"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	store      store.Store
	tokens     *auth.Issuer
	mailer     mail.Mailer
	webpush    *webpush.Options
	bcryptCost int
}

// NewHandler creates a new API handler.
func NewHandler(s store.Store, tokens *auth.Issuer, mailer mail.Mailer, webpushOptions *webpush.Options, bcryptCost int) *Handler {
	return &Handler{
		store:      s,
		tokens:     tokens,
		mailer:     mailer,
		webpush:    webpushOptions,
		bcryptCost: bcryptCost,
	}
}

// actingOwnerID is the owner on whose behalf a mutation runs: the
// authenticated caller.
func (h *Handler) actingOwnerID(c *gin.Context) int64 {
	return mw.UserID(c)
}

// authorizeOwner ensures the caller is acting on its own account. Admin
// tokens may act on any owner.
func (h *Handler) authorizeOwner(c *gin.Context, ownerID int64) bool {
	if mw.IsAdmin(c) || mw.UserID(c) == ownerID {
		return true
	}
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	return false
}

// authorizeBed resolves the bed's owner through its room and applies the
// authorizeOwner rule. An unknown bed maps to 404, a foreign bed to 403.
func (h *Handler) authorizeBed(c *gin.Context, bedID int64) bool {
	ownerID, err := h.store.BedOwner(c.Request.Context(), bedID)
	if err != nil {
		writeStoreError(c, err)
		return false
	}
	return h.authorizeOwner(c, ownerID)
}

// authorizeRoom is authorizeBed for room-keyed operations.
func (h *Handler) authorizeRoom(c *gin.Context, roomID int64) bool {
	ownerID, err := h.store.RoomOwner(c.Request.Context(), roomID)
	if err != nil {
		writeStoreError(c, err)
		return false
	}
	return h.authorizeOwner(c, ownerID)
}
