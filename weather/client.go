package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultGeoURL     = "https://api.openweathermap.org/geo/1.0/direct"
	defaultCurrentURL = "https://api.openweathermap.org/data/2.5/weather"
)

var (
	// ErrCityNotFound is returned when geocoding yields no match.
	ErrCityNotFound = errors.New("city not found")
	// ErrKeyMissing is returned when the client has no API key configured.
	ErrKeyMissing = errors.New("weather api key missing")
)

// Snapshot is a point-in-time weather reading. Nil pointer fields mean the
// provider omitted the value.
type Snapshot struct {
	Temp      *float64
	FeelsLike *float64
	Condition string
	Wind      *float64
	Clouds    *int
	RainMM    float64
	SnowMM    float64
}

// Place is a geocoding result.
type Place struct {
	Name string
	Lat  float64
	Lon  float64
}

// Client talks to the OpenWeatherMap API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	geoURL     string
	currentURL string
}

// NewClient builds a Client. An empty apiKey is allowed; Configured reports it
// and FetchCurrent/GeocodeCity fail with ErrKeyMissing.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 20 * time.Second},
		geoURL:     defaultGeoURL,
		currentURL: defaultCurrentURL,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c.apiKey != "" }

type geoResult struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// GeocodeCity resolves a city name to coordinates via the OWM direct geocoder.
func (c *Client) GeocodeCity(ctx context.Context, city string) (*Place, error) {
	if !c.Configured() {
		return nil, ErrKeyMissing
	}
	q := url.Values{}
	q.Set("q", city)
	q.Set("limit", "1")
	q.Set("appid", c.apiKey)

	var results []geoResult
	if err := c.getJSON(ctx, c.geoURL, q, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrCityNotFound
	}
	top := results[0]
	return &Place{
		Name: fmt.Sprintf("%s, %s", top.Name, top.Country),
		Lat:  top.Lat,
		Lon:  top.Lon,
	}, nil
}

type currentResponse struct {
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
	} `json:"main"`
	Wind struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Clouds struct {
		All *int `json:"all"`
	} `json:"clouds"`
	Rain map[string]float64 `json:"rain"`
	Snow map[string]float64 `json:"snow"`
}

// FetchCurrent returns the current weather snapshot for the given coordinates.
func (c *Client) FetchCurrent(ctx context.Context, lat, lon float64) (*Snapshot, error) {
	if !c.Configured() {
		return nil, ErrKeyMissing
	}
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	q.Set("lang", "en")

	var resp currentResponse
	if err := c.getJSON(ctx, c.currentURL, q, &resp); err != nil {
		return nil, err
	}

	condition := "weather unavailable"
	if len(resp.Weather) > 0 && resp.Weather[0].Description != "" {
		condition = resp.Weather[0].Description
	}
	return &Snapshot{
		Temp:      resp.Main.Temp,
		FeelsLike: resp.Main.FeelsLike,
		Condition: condition,
		Wind:      resp.Wind.Speed,
		Clouds:    resp.Clouds.All,
		RainMM:    mmFrom(resp.Rain),
		SnowMM:    mmFrom(resp.Snow),
	}, nil
}

// mmFrom picks the 1h accumulation, falling back to 3h.
func mmFrom(acc map[string]float64) float64 {
	if acc == nil {
		return 0
	}
	if v, ok := acc["1h"]; ok && v != 0 {
		return v
	}
	return acc["3h"]
}

func (c *Client) getJSON(ctx context.Context, base string, q url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("owm: unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
