package search

import (
	"context"
	"net/http"
)

// Hotel is a single hotel search result.
type Hotel struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	PricePerNight float64 `json:"price_per_night"`
	Rating        float64 `json:"rating"`
}

// HotelsClient searches hotels via a third-party provider.
type HotelsClient struct {
	apiKey string
	httpc  *http.Client
}

func NewHotelsClient(apiKey string) *HotelsClient {
	return &HotelsClient{apiKey: apiKey, httpc: newHTTPClient()}
}

func (c *HotelsClient) Search(ctx context.Context, location, checkIn string, nights int) ([]Hotel, error) {
	_ = ctx
	return []Hotel{
		{
			Name:          "Grand Example Hotel",
			Address:       "123 Example St",
			PricePerNight: 150.0,
			Rating:        4.5,
		},
		{
			Name:          "Budget Inn",
			Address:       "456 Sample Ave",
			PricePerNight: 80.0,
			Rating:        3.8,
		},
	}, nil
}
