package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hostel-manager-backend/internal/auth"
	"hostel-manager-backend/internal/model"
	"hostel-manager-backend/internal/security"
	"hostel-manager-backend/internal/store"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates an owner, or auto-registers an unknown username as an
// approved owner account. The response carries the user record and a session
// token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	user, err := h.store.FindUserByUsername(c.Request.Context(), req.Username)
	if errors.Is(err, store.ErrNotFound) {
		h.registerOwner(c, req)
		return
	}
	if err != nil {
		writeStoreError(c, err)
		return
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid password"})
		return
	}
	if !user.IsApproved {
		c.JSON(http.StatusForbidden, gin.H{"error": "NOT_APPROVED"})
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

func (h *Handler) registerOwner(c *gin.Context, req loginRequest) {
	hash, err := auth.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	user := &model.User{
		Username:   req.Username,
		Password:   hash,
		IsApproved: true,
	}
	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		writeStoreError(c, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

type forgotPasswordRequest struct {
	Username string `json:"username" binding:"required"`
}

// ForgotPassword resets the account to a random temporary password and mails
// it to the owner's registered address.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	if h.mailer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "mail is not configured"})
		return
	}

	user, err := h.store.FindUserByUsername(c.Request.Context(), req.Username)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	if user.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no email address on file"})
		return
	}

	temp, err := security.TempPassword()
	if err != nil {
		writeStoreError(c, err)
		return
	}
	hash, err := auth.HashPassword(temp, h.bcryptCost)
	if err != nil {
		writeStoreError(c, err)
		return
	}

	if err := h.mailer.SendTempPassword(c.Request.Context(), user.Email, user.Username, temp); err != nil {
		log.Printf("failed to send recovery mail for %q: %v", user.Username, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send email"})
		return
	}
	if err := h.store.UpdatePassword(c.Request.Context(), user.ID, hash); err != nil {
		writeStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
