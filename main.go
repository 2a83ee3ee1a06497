// File: neatspin/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"neatspin/config"
	"neatspin/cron"
	"neatspin/database"
	bookingRepo "neatspin/database/repository/booking"
	userRepoPkg "neatspin/database/repository/user"
	"neatspin/handlers"
	"neatspin/middleware"
	"neatspin/routes"
	"neatspin/services/mailer"
	"neatspin/services/payment"
	"neatspin/services/user"
	"neatspin/services/wizard"
	"neatspin/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeSecretKey

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	users := userRepoPkg.NewMongoUserRepo()

	// outbound email.
	var sender mailer.EmailSender
	if sg := mailer.NewSendGridSender(
		config.AppConfig.SendGridAPIKey,
		config.AppConfig.EmailFrom,
		config.AppConfig.EmailFromName,
		logger,
	); sg != nil {
		sender = sg
	} else {
		logger.Sugar().Warn("main: no SendGrid API key configured, using stub email sender")
		sender = mailer.NewStubEmailSender(logger)
	}

	mailQueueOpt := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	}
	mailerService := &mailer.DefaultMailerService{
		Sender:    sender,
		Queue:     asynq.NewClient(mailQueueOpt),
		Inspector: asynq.NewInspector(mailQueueOpt),
		TestEmail: config.AppConfig.TestEmail,
		Logger:    logger,
	}
	cron.InitMailWorker(sender)

	// services.
	paymentService := payment.NewStripePaymentService(config.AppConfig.StripeSecretKey, logger)

	userService := &user.DefaultUserService{
		Repo: users,
	}

	wizardService := &wizard.DefaultWizardService{
		Repo:                bookings,
		Payments:            paymentService,
		Mailer:              mailerService,
		Cache:               utils.GetSessionCacheClient(),
		Logger:              logger,
		UseTestEmailDefault: config.AppConfig.UseTestEmailDefault,
	}

	wizardHandler := handlers.NewWizardHandler(wizardService, logger)
	paymentHandler := handlers.NewPaymentHandler(paymentService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	adminHandler := handlers.NewAdminHandler(bookings, userService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Wizard endpoints.
		StartSession: wizardHandler.StartSession,
		GetSession:   wizardHandler.GetSession,
		UpdateDraft:  wizardHandler.UpdateDraft,
		AdvanceStep:  wizardHandler.Advance,
		BackStep:     wizardHandler.Back,
		Submit:       wizardHandler.Submit,
		UpdateEmail:  wizardHandler.UpdateEmail,

		// Catalog endpoints.
		GetAvailableServices: handlers.GetAvailableServices,
		GetPickupTimeSlots:   handlers.GetPickupTimeSlots,

		// Payment endpoints.
		CreatePaymentIntent: paymentHandler.CreateIntent,
		CheckPaymentStatus:  paymentHandler.CheckStatus,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterUserHandler,
		AuthenticateUserHandler: userHandler.AuthenticateUserHandler,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetSessionCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
