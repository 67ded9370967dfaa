package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/middleware"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/repository"
)

// RouterConfig carries what the router needs beyond the handlers themselves.
type RouterConfig struct {
	JWTSecret string
	Users     repository.UserRepository
}

// NewRouter assembles the full HTTP surface: public credential endpoints
// (rate limited), bearer-protected user/trip endpoints and the unauthenticated
// provider pass-throughs.
func NewRouter(cfg RouterConfig, auth *AuthHandler, trips *TripHandler, searches *SearchHandler, payments *PaymentHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/register", auth.HandleRegister)
		r.Post("/token", auth.HandleToken)
	})

	r.Post("/auth/firebase", auth.HandleFirebaseLogin)
	r.Post("/itinerary", trips.HandleItinerary)
	r.Get("/search/flights", searches.HandleSearchFlights)
	r.Get("/search/hotels", searches.HandleSearchHotels)
	r.Get("/search/cars", searches.HandleSearchCars)
	r.Get("/search/restaurants", searches.HandleSearchRestaurants)
	r.Get("/ride/estimate", searches.HandleRideEstimate)
	r.Post("/payments/checkout", payments.HandleCheckout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret, cfg.Users))
		r.Get("/profile", auth.HandleProfile)
		r.Post("/trip", trips.HandleCreateTrip)
		r.Get("/trips", trips.HandleListTrips)
		r.Get("/trip/{id}", trips.HandleGetTrip)
		r.Post("/lead", trips.HandleLead)
	})

	return r
}
