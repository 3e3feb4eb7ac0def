package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	bookingRepoPkg "doctorsportal/database/repository/booking"
	catalogRepoPkg "doctorsportal/database/repository/catalog"
	doctorRepoPkg "doctorsportal/database/repository/doctor"
	paymentRepoPkg "doctorsportal/database/repository/payment"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/availability"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/payment"
	"doctorsportal/services/user"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx := context.Background()
	mongoClient, err := database.Connect(ctx, config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	utils.InitCache()
	cacheClient := utils.GetCacheClient()

	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo(db)

	// services.
	availabilitySvc := &availability.DefaultAvailabilityService{
		Catalog:  catalogRepo,
		Bookings: bookingRepo,
		Cache:    cacheClient,
	}
	bookingSvc := &booking.DefaultBookingService{
		Repo:  bookingRepo,
		Cache: cacheClient,
	}
	userSvc := &user.DefaultUserService{
		Repo: userRepo,
	}
	doctorSvc := &doctor.DefaultDoctorService{
		Repo: doctorRepo,
	}

	var verifier payment.ChargeVerifier = payment.StripeVerifier{}
	if config.AppConfig.SkipVerification {
		logger.Sugar().Warn("main: payment verification is DISABLED; client-submitted payments are trusted")
		verifier = nil
	}
	paymentSvc := payment.NewPaymentService(paymentRepo, bookingRepo, verifier, logger, config.AppConfig.Currency)

	// handlers.
	availabilityHandler := handlers.NewAvailabilityHandler(availabilitySvc, logger)
	bookingHandler := handlers.NewBookingHandler(bookingSvc, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentSvc, logger)
	userHandler := handlers.NewUserHandler(userSvc, logger)
	doctorHandler := handlers.NewDoctorHandler(doctorSvc, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Admins: userSvc,

		GetAppointmentOptions: availabilityHandler.GetAppointmentOptions,
		GetSpecialties:        availabilityHandler.GetSpecialties,

		CreateBooking:  bookingHandler.CreateBooking,
		GetBookings:    bookingHandler.GetBookings,
		GetBookingByID: bookingHandler.GetBookingByID,

		CreatePaymentIntent: paymentHandler.CreatePaymentIntent,
		ReconcilePayment:    paymentHandler.ReconcilePayment,

		CreateUser:    userHandler.CreateUser,
		GetUsers:      userHandler.GetUsers,
		GetUserAdmin:  userHandler.GetUserAdmin,
		MakeUserAdmin: userHandler.MakeUserAdmin,
		GetJWT:        userHandler.GetJWT,

		AddDoctor:    doctorHandler.AddDoctor,
		GetDoctors:   doctorHandler.GetDoctors,
		DeleteDoctor: doctorHandler.DeleteDoctor,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Disconnect(context.Background(), mongoClient); err != nil {
		logger.Sugar().Errorf("main: failed to close MongoDB connection: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
