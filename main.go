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

	"stayhub-backend/clock"
	"stayhub-backend/config"
	"stayhub-backend/controllers"
	"stayhub-backend/repositories"
	"stayhub-backend/routes"
	"stayhub-backend/services"
)

func sweepInterval() time.Duration {
	raw := os.Getenv("SWEEP_INTERVAL")
	if raw == "" {
		return 24 * time.Hour
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Printf("invalid SWEEP_INTERVAL %q, using 24h", raw)
		return 24 * time.Hour
	}
	return d
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found, continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB

	// Repositories
	bookingRepo := repositories.NewBookingRepository(db)
	propertyRepo := repositories.NewPropertyRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Services
	clk := clock.NewSystem()
	availability := services.NewAvailabilityChecker(bookingRepo)
	bookingService := services.NewBookingService(bookingRepo, propertyRepo, availability, clk)
	transitionService := services.NewTransitionService(bookingRepo, clk)
	sweeperService := services.NewSweeperService(bookingRepo, clk)
	statsService := services.NewStatsService(bookingRepo)
	propertyService := services.NewPropertyService(propertyRepo)
	authService := services.NewAuthService(userRepo)

	// Controllers
	authController := controllers.NewAuthController(authService)
	propertyController := controllers.NewPropertyController(propertyService)
	bookingController := controllers.NewBookingController(bookingService, transitionService)
	ownerController := controllers.NewOwnerController(bookingService, statsService)

	router := routes.SetupRouter(authController, propertyController, bookingController, ownerController)

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

	// Background completion sweeper, stopped together with the server.
	sweepCtx, stopSweeper := context.WithCancel(context.Background())
	go sweeperService.Run(sweepCtx, sweepInterval())

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

	stopSweeper()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
