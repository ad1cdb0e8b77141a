package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotelms-backend/config"
	"hotelms-backend/controllers"
	"hotelms-backend/routes"
	"hotelms-backend/services"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	log.Println("database connection established, migrations applied")

	auditService := services.NewAuditService(db)
	staffService := services.NewStaffService(db, auditService)
	guestService := services.NewGuestService(db, auditService)
	roomService := services.NewRoomService(db, auditService)
	bookingService := services.NewBookingService(db, auditService)
	usageService := services.NewServiceUsageService(db, auditService)
	billingService := services.NewBillingService(db, auditService)

	authController := controllers.NewAuthController(staffService, jwtSecret)
	roomController := controllers.NewRoomController(roomService, bookingService)
	bookingController := controllers.NewBookingController(bookingService)
	billingController := controllers.NewBillingController(billingService)
	guestController := controllers.NewGuestController(guestService)
	serviceController := controllers.NewServiceController(usageService)
	staffController := controllers.NewStaffController(staffService)

	router := routes.SetupRouter(
		authController,
		roomController,
		bookingController,
		billingController,
		guestController,
		serviceController,
		staffController,
		jwtSecret,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
