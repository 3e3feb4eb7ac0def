package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/payment"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves payment-intent creation and reconciliation.
type PaymentHandler struct {
	Service payment.PaymentService
	Logger  *zap.Logger
}

// NewPaymentHandler wires a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, Logger: logger}
}

// CreatePaymentIntent asks the processor for a client secret over the
// booking price.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	clientSecret, err := h.Service.CreateIntent(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("failed to create payment intent", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create payment intent", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}

// ReconcilePayment records a payment and marks its booking paid. A partial
// failure (payment saved, booking not updated) is reported as such, never as
// success.
func (h *PaymentHandler) ReconcilePayment(c *gin.Context) {
	var input models.Payment
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.Reconcile(c.Request.Context(), input)
	if err != nil {
		var unverified *payment.VerificationError
		if errors.As(err, &unverified) {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": unverified.Error()})
			return
		}
		var partial *payment.InconsistentError
		if errors.As(err, &partial) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"message": partial.Error(),
				"status":  models.ReconcileInconsistent,
				"payment": result,
			})
			return
		}
		h.Logger.Error("failed to reconcile payment", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to reconcile payment", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": result.Status, "payment": result})
}
