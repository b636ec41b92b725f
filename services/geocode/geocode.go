package geocode

import (
	"encoding/json"
	"fmt"
	"zpbot/config"

	"github.com/go-resty/resty/v2"
)

const geocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Client wraps the Google Maps geocoding API.
type Client struct {
	http   *resty.Client
	apiKey string
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		http:   resty.New(),
		apiKey: cfg.GoogleMapsKey,
	}
}

// Result is one resolved address with its coordinate.
type Result struct {
	Address string
	Lat     float64
	Lng     float64
}

type geocodeResponse struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Forward geocodes a location phrase. Returns (nil, nil) when the phrase
// resolves to nothing.
func (c *Client) Forward(phrase string) (*Result, error) {
	resp, err := c.http.R().
		SetQueryParams(map[string]string{
			"address": phrase,
			"key":     c.apiKey,
		}).
		Get(geocodeURL)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("geocode failed: %d, %s", resp.StatusCode(), resp.String())
	}

	var parsed geocodeResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, err
	}
	if len(parsed.Results) == 0 {
		return nil, nil
	}

	first := parsed.Results[0]
	return &Result{
		Address: first.FormattedAddress,
		Lat:     first.Geometry.Location.Lat,
		Lng:     first.Geometry.Location.Lng,
	}, nil
}

// Reverse resolves a coordinate to a formatted address. An empty result set
// yields "Unknown Location" rather than an error.
func (c *Client) Reverse(lat, lng float64) (string, error) {
	resp, err := c.http.R().
		SetQueryParams(map[string]string{
			"latlng": fmt.Sprintf("%f,%f", lat, lng),
			"key":    c.apiKey,
		}).
		Get(geocodeURL)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("reverse geocode failed: %d, %s", resp.StatusCode(), resp.String())
	}

	var parsed geocodeResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", err
	}
	if len(parsed.Results) == 0 {
		return "Unknown Location", nil
	}
	return parsed.Results[0].FormattedAddress, nil
}
