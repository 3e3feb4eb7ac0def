package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes declares every endpoint with its access capability.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	public := middleware.Require(middleware.Public, hb.Admins)
	selfScoped := middleware.Require(middleware.SelfScoped, hb.Admins)
	adminOnly := middleware.Require(middleware.AdminOnly, hb.Admins)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors portal server is running")
	})

	// Availability.
	r.GET("/appointmentOptions", public, hb.GetAppointmentOptions)
	r.GET("/appointment-specialty", public, hb.GetSpecialties)

	// Bookings.
	r.POST("/bookings", public, hb.CreateBooking)
	r.GET("/bookings", selfScoped, hb.GetBookings)
	r.GET("/bookings/:id", public, hb.GetBookingByID)

	// Users and tokens.
	r.GET("/jwt", public, hb.GetJWT)
	r.POST("/users", public, hb.CreateUser)
	// Listing stays public to match the original portal; a known gap.
	r.GET("/users", public, hb.GetUsers)
	r.GET("/users/admin/:email", public, hb.GetUserAdmin)
	r.PUT("/users/admin/:id", adminOnly, hb.MakeUserAdmin)

	// Doctors.
	r.POST("/doctors", adminOnly, hb.AddDoctor)
	r.GET("/doctors", adminOnly, hb.GetDoctors)
	r.DELETE("/doctors/:id", adminOnly, hb.DeleteDoctor)

	// Payments.
	r.POST("/create-payment-intent", public, hb.CreatePaymentIntent)
	r.POST("/payments", public, hb.ReconcilePayment)
}
