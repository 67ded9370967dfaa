package handler

import (
	"net/http"
	"strconv"

	"github.com/sns-consultancy/Travel-Planner-Backend/internal/search"
)

// SearchHandler exposes the provider search adapters as pass-through
// endpoints.
type SearchHandler struct {
	flights     *search.FlightsClient
	hotels      *search.HotelsClient
	cars        *search.CarsClient
	restaurants *search.RestaurantsClient
	rides       *search.RidesClient
}

func NewSearchHandler(
	flights *search.FlightsClient,
	hotels *search.HotelsClient,
	cars *search.CarsClient,
	restaurants *search.RestaurantsClient,
	rides *search.RidesClient,
) *SearchHandler {
	return &SearchHandler{
		flights:     flights,
		hotels:      hotels,
		cars:        cars,
		restaurants: restaurants,
		rides:       rides,
	}
}

// HandleSearchFlights handles GET /search/flights?origin=&destination=&date=.
func (h *SearchHandler) HandleSearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	results, err := h.flights.Search(r.Context(), q.Get("origin"), q.Get("destination"), q.Get("date"))
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse("flight search unavailable"))
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// HandleSearchHotels handles GET /search/hotels?location=&check_in=&nights=.
func (h *SearchHandler) HandleSearchHotels(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	nights, _ := strconv.Atoi(q.Get("nights"))
	results, err := h.hotels.Search(r.Context(), q.Get("location"), q.Get("check_in"), nights)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse("hotel search unavailable"))
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// HandleSearchCars handles GET /search/cars?location=&date=. With
// use_current_location=true the location is built from the lat/lon params.
func (h *SearchHandler) HandleSearchCars(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	location := q.Get("location")
	if useCurrent, _ := strconv.ParseBool(q.Get("use_current_location")); useCurrent {
		location = q.Get("lat") + "," + q.Get("lon")
	}

	results, err := h.cars.Search(r.Context(), location, q.Get("date"))
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse("car search unavailable"))
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// HandleSearchRestaurants handles GET /search/restaurants?location=.
func (h *SearchHandler) HandleSearchRestaurants(w http.ResponseWriter, r *http.Request) {
	results, err := h.restaurants.Search(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse("restaurant search unavailable"))
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// HandleRideEstimate handles GET /ride/estimate?pickup=&dropoff=.
func (h *SearchHandler) HandleRideEstimate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	estimate, err := h.rides.Estimate(r.Context(), q.Get("pickup"), q.Get("dropoff"))
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorResponse("ride estimate unavailable"))
		return
	}
	writeJSON(w, http.StatusOK, estimate)
}
