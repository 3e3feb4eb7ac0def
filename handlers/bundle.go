package handlers

import (
	"doctorsportal/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every route handler plus the admin checker the
// policy middleware needs, so route registration takes one argument.
type HandlerBundle struct {
	Admins middleware.AdminChecker

	// Availability endpoints.
	GetAppointmentOptions gin.HandlerFunc
	GetSpecialties        gin.HandlerFunc

	// Booking endpoints.
	CreateBooking  gin.HandlerFunc
	GetBookings    gin.HandlerFunc
	GetBookingByID gin.HandlerFunc

	// Payment endpoints.
	CreatePaymentIntent gin.HandlerFunc
	ReconcilePayment    gin.HandlerFunc

	// User endpoints.
	CreateUser    gin.HandlerFunc
	GetUsers      gin.HandlerFunc
	GetUserAdmin  gin.HandlerFunc
	MakeUserAdmin gin.HandlerFunc
	GetJWT        gin.HandlerFunc

	// Doctor endpoints.
	AddDoctor    gin.HandlerFunc
	GetDoctors   gin.HandlerFunc
	DeleteDoctor gin.HandlerFunc
}
