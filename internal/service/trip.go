package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/model"
	"github.com/sns-consultancy/Travel-Planner-Backend/internal/repository"
)

var (
	ErrDestinationRequired = errors.New("destination is required")
	ErrStartDateRequired   = errors.New("start_date is required")
	ErrDaysRequired        = errors.New("days must be at least 1")
	ErrVendorRequired      = errors.New("vendor is required")
	ErrTripNotFound        = errors.New("trip not found")
)

// TripService creates and retrieves trips scoped to their owner, and records
// vendor leads.
type TripService struct {
	trips repository.TripRepository
	leads repository.LeadRepository
}

func NewTripService(trips repository.TripRepository, leads repository.LeadRepository) *TripService {
	return &TripService{trips: trips, leads: leads}
}

// CreateTrip generates an id and a deterministic plan text, then persists the
// trip tagged with its owner.
func (s *TripService) CreateTrip(ctx context.Context, owner string, req model.CreateTripRequest) (model.Trip, error) {
	if err := validateTripRequest(req); err != nil {
		return model.Trip{}, err
	}

	trip := model.Trip{
		ID:          uuid.NewString(),
		Destination: req.Destination,
		StartDate:   req.StartDate,
		Days:        req.Days,
		Plan:        BuildPlan(req.Destination, req.StartDate, req.Days, req.Preferences),
		Owner:       owner,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.trips.Create(ctx, &trip); err != nil {
		return model.Trip{}, err
	}

	return trip, nil
}

// ListTrips returns all trips owned by owner, in insertion order.
func (s *TripService) ListTrips(ctx context.Context, owner string) ([]model.Trip, error) {
	return s.trips.ListByOwner(ctx, owner)
}

// GetTrip returns the trip with the given id if it belongs to owner. A trip
// owned by someone else is reported exactly like a missing id, so callers
// cannot probe for foreign trip ids.
func (s *TripService) GetTrip(ctx context.Context, owner, id string) (model.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTripNotFound) {
			return model.Trip{}, ErrTripNotFound
		}
		return model.Trip{}, err
	}
	if trip.Owner != owner {
		return model.Trip{}, ErrTripNotFound
	}
	return *trip, nil
}

// Itinerary builds the plan text for a request without persisting anything.
func (s *TripService) Itinerary(req model.CreateTripRequest) (string, error) {
	if err := validateTripRequest(req); err != nil {
		return "", err
	}
	return BuildPlan(req.Destination, req.StartDate, req.Days, req.Preferences), nil
}

// AddLead records a vendor referral.
func (s *TripService) AddLead(ctx context.Context, req model.LeadRequest) error {
	if req.Vendor == "" {
		return ErrVendorRequired
	}
	return s.leads.Add(ctx, &model.Lead{
		Vendor:    req.Vendor,
		Details:   req.Details,
		CreatedAt: time.Now().UTC(),
	})
}

func validateTripRequest(req model.CreateTripRequest) error {
	switch {
	case req.Destination == "":
		return ErrDestinationRequired
	case req.StartDate == "":
		return ErrStartDateRequired
	case req.Days < 1:
		return ErrDaysRequired
	}
	return nil
}

// BuildPlan generates the plan text for a trip. The same input always yields
// the same string; preference clauses appear in the fixed order budget,
// accommodation, dietary, and are omitted when absent.
func BuildPlan(destination, startDate string, days int, prefs *model.TripPreferences) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Trip to %s starting %s for %d days. Enjoy sightseeing and local cuisine!",
		destination, startDate, days)

	if prefs != nil {
		if prefs.Budget != "" {
			fmt.Fprintf(&b, " Budget focus: %s.", prefs.Budget)
		}
		if prefs.Accommodation != "" {
			fmt.Fprintf(&b, " Accommodation preference: %s.", prefs.Accommodation)
		}
		if prefs.Dietary != "" {
			fmt.Fprintf(&b, " Dietary needs: %s.", prefs.Dietary)
		}
	}

	return b.String()
}
