// Package search holds the thin adapters around the third-party travel
// search providers. Every client is stateless and swappable: it carries its
// API key and a timeout-bounded HTTP client for the eventual real call, and
// translates the provider response into this system's record shape. The
// current implementations return placeholder records shaped like the real
// provider payloads.
package search

import (
	"context"
	"net/http"
	"time"
)

const requestTimeout = 10 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// Flight is a single flight search result.
type Flight struct {
	FlightNumber string  `json:"flight_number"`
	Airline      string  `json:"airline"`
	Departure    string  `json:"departure"`
	Arrival      string  `json:"arrival"`
	Price        float64 `json:"price"`
}

// FlightsClient searches flights via a third-party provider.
type FlightsClient struct {
	apiKey string
	httpc  *http.Client
}

func NewFlightsClient(apiKey string) *FlightsClient {
	return &FlightsClient{apiKey: apiKey, httpc: newHTTPClient()}
}

func (c *FlightsClient) Search(ctx context.Context, origin, destination, date string) ([]Flight, error) {
	_ = ctx
	return []Flight{
		{
			FlightNumber: "AB123",
			Airline:      "Acme Air",
			Departure:    date + "T08:00",
			Arrival:      date + "T12:00",
			Price:        199.99,
		},
		{
			FlightNumber: "CD456",
			Airline:      "Example Airlines",
			Departure:    date + "T14:00",
			Arrival:      date + "T18:00",
			Price:        249.99,
		},
	}, nil
}
