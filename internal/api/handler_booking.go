package api

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hostel-manager-backend/internal/store"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// currentMonth returns the calendar month at evaluation time as "YYYY-MM".
func currentMonth() string {
	return time.Now().Format("2006-01")
}

type bookRequest struct {
	BedID        int64   `json:"bedId" binding:"required"`
	ClientName   string  `json:"clientName" binding:"required"`
	ClientMobile string  `json:"clientMobile" binding:"required"`
	JoinDate     string  `json:"joinDate" binding:"required"`
	LeaveDate    *string `json:"leaveDate"`
	Advance      float64 `json:"advance"`
	Maintenance  float64 `json:"maintenance"`
	RentAmount   float64 `json:"rentAmount"`
}

// Book handles POST /api/book: occupies an empty bed. Booking an occupied
// bed is rejected with 409 rather than silently overwritten.
func (h *Handler) Book(c *gin.Context) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if !h.authorizeBed(c, req.BedID) {
		return
	}

	tenant := store.Tenant{
		ClientName:         req.ClientName,
		ClientMobile:       req.ClientMobile,
		JoinDate:           req.JoinDate,
		LeaveDate:          req.LeaveDate,
		AdvanceAmount:      req.Advance,
		MaintenanceCharges: req.Maintenance,
		RentAmount:         req.RentAmount,
	}
	if err := h.store.Book(c.Request.Context(), req.BedID, tenant); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type updateTenantRequest struct {
	BedID       int64   `json:"bedId" binding:"required"`
	Advance     float64 `json:"advance"`
	Maintenance float64 `json:"maintenance"`
	RentAmount  float64 `json:"rentAmount"`
	LeaveDate   *string `json:"leaveDate"`
}

// UpdateTenant handles POST /api/update-tenant: financial fields and leave
// date of an occupied bed.
func (h *Handler) UpdateTenant(c *gin.Context) {
	var req updateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if !h.authorizeBed(c, req.BedID) {
		return
	}

	update := store.TenantUpdate{
		AdvanceAmount:      req.Advance,
		MaintenanceCharges: req.Maintenance,
		RentAmount:         req.RentAmount,
		LeaveDate:          req.LeaveDate,
	}
	if err := h.store.UpdateTenant(c.Request.Context(), req.BedID, update); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type updateLeaveRequest struct {
	BedID     int64   `json:"bedId" binding:"required"`
	LeaveDate *string `json:"leaveDate"`
}

// UpdateLeave handles POST /api/update-leave: sets or clears the leave date
// alone.
func (h *Handler) UpdateLeave(c *gin.Context) {
	var req updateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if !h.authorizeBed(c, req.BedID) {
		return
	}
	if err := h.store.SetLeaveDate(c.Request.Context(), req.BedID, req.LeaveDate); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type payRentRequest struct {
	BedID       int64   `json:"bedId" binding:"required"`
	MonthString string  `json:"monthString"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

// PayRent handles POST /api/pay-rent: moves the bed's paid marker and
// appends a rent-history entry. The month defaults to the current one.
func (h *Handler) PayRent(c *gin.Context) {
	var req payRentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if !h.authorizeBed(c, req.BedID) {
		return
	}

	month := req.MonthString
	if month == "" {
		month = currentMonth()
	}
	if !monthPattern.MatchString(month) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be in YYYY-MM format"})
		return
	}

	if err := h.store.MarkRentPaid(c.Request.Context(), req.BedID, month, req.Amount); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type vacateRequest struct {
	BedID int64 `json:"bedId" binding:"required"`
}

// Vacate handles POST /api/vacate: clears a bed back to the empty state.
func (h *Handler) Vacate(c *gin.Context) {
	var req vacateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}
	if !h.authorizeBed(c, req.BedID) {
		return
	}
	if err := h.store.Vacate(c.Request.Context(), req.BedID); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// rentHistoryLimit is how many entries the rent-history endpoint returns.
const rentHistoryLimit = 3

// RentHistory handles GET /api/rent-history/:bedId: the most recent payment
// entries for a bed.
func (h *Handler) RentHistory(c *gin.Context) {
	bedID, err := strconv.ParseInt(c.Param("bedId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bed ID"})
		return
	}
	if !h.authorizeBed(c, bedID) {
		return
	}

	entries, err := h.store.RentHistory(c.Request.Context(), bedID, rentHistoryLimit)
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
