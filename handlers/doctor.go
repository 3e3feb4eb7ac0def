package handlers

import (
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the admin-only doctor endpoints.
type DoctorHandler struct {
	Service doctor.DoctorService
	Logger  *zap.Logger
}

// NewDoctorHandler wires a DoctorHandler.
func NewDoctorHandler(svc doctor.DoctorService, logger *zap.Logger) *DoctorHandler {
	return &DoctorHandler{Service: svc, Logger: logger}
}

// AddDoctor stores a doctor record.
func (h *DoctorHandler) AddDoctor(c *gin.Context) {
	var input models.Doctor
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.Add(input); err != nil {
		h.Logger.Error("failed to add doctor", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to add doctor", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// GetDoctors lists every doctor.
func (h *DoctorHandler) GetDoctors(c *gin.Context) {
	doctors, err := h.Service.List()
	if err != nil {
		h.Logger.Error("failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load doctors", err.Error())
		return
	}

	c.JSON(http.StatusOK, doctors)
}

// DeleteDoctor removes a doctor record by id.
func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	id := c.Param("id")

	if err := h.Service.Remove(id); err != nil {
		h.Logger.Error("failed to delete doctor", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete doctor", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedId": id})
}
