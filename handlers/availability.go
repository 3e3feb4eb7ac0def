package handlers

import (
	"net/http"

	"doctorsportal/services/availability"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the derived remaining-slots view of the catalog.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Logger  *zap.Logger
}

// NewAvailabilityHandler wires an AvailabilityHandler.
func NewAvailabilityHandler(svc availability.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// GetAppointmentOptions returns every treatment option with the slots already
// booked on ?date= filtered out. A missing date matches no bookings and
// yields the full catalog.
func (h *AvailabilityHandler) GetAppointmentOptions(c *gin.Context) {
	date := c.Query("date")

	options, err := h.Service.Options(c.Request.Context(), date)
	if err != nil {
		h.Logger.Error("failed to compute availability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load appointment options", err.Error())
		return
	}

	c.JSON(http.StatusOK, options)
}

// GetSpecialties returns the names-only projection of the catalog.
func (h *AvailabilityHandler) GetSpecialties(c *gin.Context) {
	specialties, err := h.Service.Specialties()
	if err != nil {
		h.Logger.Error("failed to fetch specialties", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load specialties", err.Error())
		return
	}

	c.JSON(http.StatusOK, specialties)
}
