package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hostel-manager-backend/internal/model"
)

type addExpenseRequest struct {
	UserID   int64   `json:"userId" binding:"required"`
	Title    string  `json:"title" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Date     string  `json:"date" binding:"required"`
	Category string  `json:"category"`
}

// AddExpense handles POST /api/expenses/add.
func (h *Handler) AddExpense(c *gin.Context) {
	var req addExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if !h.authorizeOwner(c, req.UserID) {
		return
	}

	expense := model.Expense{
		UserID:   req.UserID,
		Title:    req.Title,
		Amount:   req.Amount,
		Date:     req.Date,
		Category: req.Category,
	}
	if err := h.store.AddExpense(c.Request.Context(), &expense); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, expense)
}

type deleteEntryRequest struct {
	ID int64 `json:"id" binding:"required"`
}

// DeleteExpense handles POST /api/expenses/delete.
func (h *Handler) DeleteExpense(c *gin.Context) {
	var req deleteEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if err := h.store.DeleteExpense(c.Request.Context(), h.actingOwnerID(c), req.ID); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListExpenses handles GET /api/expenses/:userId.
func (h *Handler) ListExpenses(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	if !h.authorizeOwner(c, ownerID) {
		return
	}

	expenses, err := h.store.ListExpenses(c.Request.Context(), ownerID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, expenses)
}

type addWorkerRequest struct {
	UserID int64   `json:"userId" binding:"required"`
	Name   string  `json:"name" binding:"required"`
	Role   string  `json:"role"`
	Salary float64 `json:"salary" binding:"required,gt=0"`
}

// AddWorker handles POST /api/workers/add.
func (h *Handler) AddWorker(c *gin.Context) {
	var req addWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if !h.authorizeOwner(c, req.UserID) {
		return
	}

	worker := model.Worker{
		UserID: req.UserID,
		Name:   req.Name,
		Role:   req.Role,
		Salary: req.Salary,
	}
	if err := h.store.AddWorker(c.Request.Context(), &worker); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, worker)
}

// DeleteWorker handles POST /api/workers/delete.
func (h *Handler) DeleteWorker(c *gin.Context) {
	var req deleteEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if err := h.store.DeleteWorker(c.Request.Context(), h.actingOwnerID(c), req.ID); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListWorkers handles GET /api/workers/:userId.
func (h *Handler) ListWorkers(c *gin.Context) {
	ownerID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}
	if !h.authorizeOwner(c, ownerID) {
		return
	}

	workers, err := h.store.ListWorkers(c.Request.Context(), ownerID)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, workers)
}
