package external

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"skyways/internal/config"
	"skyways/internal/models"
)

// ErrNoFlights is returned when the upstream API has no data for the route.
var ErrNoFlights = errors.New("no flights found")

// FlightDataClient calls the aviationstack API for live flight status.
type FlightDataClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewFlightDataClient(cfg config.FlightDataConfig) *FlightDataClient {
	return &FlightDataClient{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// aviationstackResponse mirrors the slice of the upstream payload we use.
type aviationstackResponse struct {
	Data []struct {
		FlightStatus string `json:"flight_status"`
		Departure    struct {
			Scheduled string `json:"scheduled"`
		} `json:"departure"`
		Arrival struct {
			Scheduled string `json:"scheduled"`
		} `json:"arrival"`
		Airline struct {
			Name string `json:"name"`
		} `json:"airline"`
		Flight struct {
			IATA string `json:"iata"`
		} `json:"flight"`
	} `json:"data"`
}

// DelhiMumbaiFlights fetches live statuses for the Delhi to Mumbai route.
func (c *FlightDataClient) DelhiMumbaiFlights(ctx context.Context) ([]models.FlightStatus, error) {
	params := url.Values{}
	params.Set("access_key", c.apiKey)
	params.Set("dep_iata", "DEL")
	params.Set("arr_iata", "BOM")

	endpoint := c.baseURL + "/flights?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build flight data request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch flight data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flight data API returned status %d", resp.StatusCode)
	}

	var payload aviationstackResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode flight data response: %w", err)
	}
	if len(payload.Data) == 0 {
		return nil, ErrNoFlights
	}

	statuses := make([]models.FlightStatus, 0, len(payload.Data))
	for _, item := range payload.Data {
		statuses = append(statuses, models.FlightStatus{
			Airline:       item.Airline.Name,
			FlightNumber:  item.Flight.IATA,
			DepartureTime: item.Departure.Scheduled,
			ArrivalTime:   item.Arrival.Scheduled,
			Status:        item.FlightStatus,
		})
	}
	return statuses, nil
}
