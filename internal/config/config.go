package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

const devSecret = "dev-secret-change-in-production"

// Config holds all environment-provided settings. Provider API keys default
// to empty, meaning the integration is disabled.
type Config struct {
	Port           string
	Env            string
	JWTSecret      string
	TokenTTL       time.Duration
	StorageBackend string
	DatabaseDSN    string

	FirebaseProjectID string
	StripeAPIKey      string
	FlightAPIKey      string
	HotelAPIKey       string
	CarAPIKey         string
	RestaurantAPIKey  string
	RideAPIKey        string
}

func Load() Config {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		JWTSecret:      getEnv("JWT_SECRET", devSecret),
		TokenTTL:       time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 30)) * time.Minute,
		StorageBackend: getEnv("STORAGE_BACKEND", "memory"),
		DatabaseDSN:    getEnv("DATABASE_DSN", ""),

		FirebaseProjectID: getEnv("FIREBASE_PROJECT_ID", ""),
		StripeAPIKey:      getEnv("STRIPE_API_KEY", ""),
		FlightAPIKey:      getEnv("FLIGHT_API_KEY", ""),
		HotelAPIKey:       getEnv("HOTEL_API_KEY", ""),
		CarAPIKey:         getEnv("CAR_API_KEY", ""),
		RestaurantAPIKey:  getEnv("RESTAURANT_API_KEY", ""),
		RideAPIKey:        getEnv("RIDE_API_KEY", ""),
	}

	if cfg.Env == "production" && cfg.JWTSecret == devSecret {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid integer env var", "key", key, "value", v)
		return fallback
	}
	return n
}
