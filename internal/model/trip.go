package model

import "time"

// Trip represents a planned trip owned by the user who created it.
// Trips are immutable once created.
type Trip struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"`
	Days        int       `json:"days"`
	Plan        string    `json:"plan"`
	Owner       string    `json:"owner"`
	CreatedAt   time.Time `json:"-"`
}

// TripPreferences are optional hints that shape the generated plan text.
// Each present field contributes one clause, always in the order
// budget, accommodation, dietary.
type TripPreferences struct {
	Budget        string `json:"budget,omitempty"`
	Accommodation string `json:"accommodation,omitempty"`
	Dietary       string `json:"dietary,omitempty"`
}

// CreateTripRequest represents a POST /trip (or POST /itinerary) body.
type CreateTripRequest struct {
	Destination string           `json:"destination"`
	StartDate   string           `json:"start_date"`
	Days        int              `json:"days"`
	Preferences *TripPreferences `json:"preferences,omitempty"`
}

// Lead is an append-only vendor referral record.
type Lead struct {
	Vendor    string    `json:"vendor"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"-"`
}

// LeadRequest represents a POST /lead body.
type LeadRequest struct {
	Vendor  string `json:"vendor"`
	Details string `json:"details"`
}
