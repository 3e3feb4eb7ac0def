package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking ledger endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler wires a BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking inserts a booking. A duplicate (date, email, treatment)
// triple keeps the original portal's response shape: HTTP 200 with
// acknowledged=false and a message naming the date.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		var conflict *booking.ConflictError
		if errors.As(err, &conflict) {
			c.JSON(http.StatusOK, gin.H{"acknowledged": false, "message": conflict.Error()})
			return
		}
		var invalid *booking.ValidationError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error()})
			return
		}
		h.Logger.Error("failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": created.ID})
}

// GetBookings lists the caller's own bookings. The self-scope policy has
// already matched the token email against ?email=, so the authenticated
// identity is the owner.
func (h *BookingHandler) GetBookings(c *gin.Context) {
	email, ok := middleware.AuthenticatedEmail(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized access"})
		return
	}

	bookings, err := h.Service.ListByEmail(email)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load bookings", err.Error())
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID fetches one booking, 404 when absent.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	id := c.Param("id")

	b, err := h.Service.GetByID(id)
	if err != nil {
		h.Logger.Error("failed to fetch booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load booking", err.Error())
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}

	c.JSON(http.StatusOK, b)
}
