package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/config"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/handler"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/identity"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/payment"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/repository"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/repository/memory"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/repository/mysql"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/search"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	var (
		users repository.UserRepository
		trips repository.TripRepository
		leads repository.LeadRepository
	)
	switch cfg.StorageBackend {
	case "mysql":
		db, err := mysql.NewDB(cfg.DatabaseDSN)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		users = mysql.NewUserRepo(db)
		trips = mysql.NewTripRepo(db)
		leads = mysql.NewLeadRepo(db)
	default:
		users = memory.NewUserStore()
		trips = memory.NewTripStore()
		leads = memory.NewLeadStore()
	}

	var verifier service.IdentityVerifier
	if cfg.FirebaseProjectID != "" {
		verifier = identity.NewFirebaseVerifier(cfg.FirebaseProjectID)
	} else {
		slog.Warn("FIREBASE_PROJECT_ID not set, federated login disabled")
	}

	authSvc := service.NewAuthService(users, verifier, cfg.JWTSecret, cfg.TokenTTL)
	tripSvc := service.NewTripService(trips, leads)

	authHandler := handler.NewAuthHandler(authSvc)
	tripHandler := handler.NewTripHandler(tripSvc)
	searchHandler := handler.NewSearchHandler(
		search.NewFlightsClient(cfg.FlightAPIKey),
		search.NewHotelsClient(cfg.HotelAPIKey),
		search.NewCarsClient(cfg.CarAPIKey),
		search.NewRestaurantsClient(cfg.RestaurantAPIKey),
		search.NewRidesClient(cfg.RideAPIKey),
	)
	paymentHandler := handler.NewPaymentHandler(payment.NewClient(cfg.StripeAPIKey))

	router := handler.NewRouter(
		handler.RouterConfig{JWTSecret: cfg.JWTSecret, Users: users},
		authHandler, tripHandler, searchHandler, paymentHandler,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "storage", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
