package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/middleware"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/model"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/service"
)

// TripHandler handles trip CRUD, itinerary previews and lead capture.
type TripHandler struct {
	service *service.TripService
}

func NewTripHandler(svc *service.TripService) *TripHandler {
	return &TripHandler{service: svc}
}

// HandleCreateTrip handles POST /trip.
func (h *TripHandler) HandleCreateTrip(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	req, ok := decodeTripRequest(w, r)
	if !ok {
		return
	}

	trip, err := h.service.CreateTrip(r.Context(), user.FullName, req)
	if err != nil {
		writeTripError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// HandleListTrips handles GET /trips.
func (h *TripHandler) HandleListTrips(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	trips, err := h.service.ListTrips(r.Context(), user.FullName)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, trips)
}

// HandleGetTrip handles GET /trip/{id}.
func (h *TripHandler) HandleGetTrip(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	trip, err := h.service.GetTrip(r.Context(), user.FullName, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, service.ErrTripNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, trip)
}

// HandleItinerary handles POST /itinerary. Unlike /trip it is unauthenticated
// and persists nothing.
func (h *TripHandler) HandleItinerary(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeTripRequest(w, r)
	if !ok {
		return
	}

	plan, err := h.service.Itinerary(req)
	if err != nil {
		writeTripError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"itinerary": plan})
}

// HandleLead handles POST /lead.
func (h *TripHandler) HandleLead(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormMemory)

	var req model.LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	if err := h.service.AddLead(r.Context(), req); err != nil {
		if errors.Is(err, service.ErrVendorRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, messageResponse("lead recorded"))
}

func decodeTripRequest(w http.ResponseWriter, r *http.Request) (model.CreateTripRequest, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormMemory)

	var req model.CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return model.CreateTripRequest{}, false
	}
	return req, true
}

func writeTripError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrDestinationRequired),
		errors.Is(err, service.ErrStartDateRequired),
		errors.Is(err, service.ErrDaysRequired):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
