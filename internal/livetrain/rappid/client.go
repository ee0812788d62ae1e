// Package rappid implements the livetrain.Provider interface against
// the Rappid train running-status API.
package rappid

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/routestitch/routestitch/internal/livetrain"
	"github.com/routestitch/routestitch/internal/provider/resilience"
)

const (
	// ProviderName identifies this live train provider.
	ProviderName = "rappid"

	// DefaultBaseURL is the Rappid API base URL.
	DefaultBaseURL = "https://rappid.in/apis"
)

// ClientConfig holds configuration for the Rappid client.
type ClientConfig struct {
	// BaseURL is the API base URL (optional, defaults to the Rappid API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is a Rappid API client for live train running status.
type Client struct {
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new Rappid client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// GetTrain fetches the running status for a train number.
func (c *Client) GetTrain(ctx context.Context, trainNumber string) (*livetrain.TrainInfo, error) {
	url := fmt.Sprintf("%s/train.php?train_no=%s", c.baseURL, trainNumber)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var apiResp trainResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if !apiResp.Success || len(apiResp.Data) == 0 {
		return nil, livetrain.ErrTrainNotFound
	}

	return c.toTrainInfo(trainNumber, &apiResp), nil
}

// toTrainInfo converts a Rappid API response to the domain model.
func (c *Client) toTrainInfo(trainNumber string, resp *trainResponse) *livetrain.TrainInfo {
	source := resp.Data[0]
	destination := resp.Data[len(resp.Data)-1]

	departure := parseTiming(source.Timing)
	arrival := parseTiming(destination.Timing)

	info := &livetrain.TrainInfo{
		TrainNumber: trainNumber,
		TrainName:   strings.TrimSuffix(resp.TrainName, " Running Status"),
		From:        source.StationName,
		To:          destination.StationName,
		Departure:   departure,
		Arrival:     arrival,
		DistanceKM:  parseDistance(destination.Distance),
		Delay:       source.Delay,
		UpdatedAt:   resp.UpdatedTime,
	}
	if info.Delay == "" {
		info.Delay = "On Time"
	}
	if arrival != "" {
		info.Duration = clockDiff(departure, arrival)
	}

	info.Stations = make([]livetrain.StationStatus, 0, len(resp.Data))
	for _, s := range resp.Data {
		info.Stations = append(info.Stations, livetrain.StationStatus{
			StationName:      s.StationName,
			DistanceKM:       parseDistance(s.Distance),
			Timing:           s.Timing,
			Delay:            s.Delay,
			Platform:         s.Platform,
			Halt:             s.Halt,
			IsCurrentStation: s.IsCurrentStation,
		})
	}

	return info
}

// parseTiming extracts an HH:MM time from a Rappid timing string. The
// feed concatenates actual and scheduled times ("17:0717:00"), in which
// case the leading actual time wins. The "Destination" sentinel means
// no arrival time is published yet.
func parseTiming(timing string) string {
	if timing == "" || timing == "Destination" {
		return ""
	}
	if len(timing) > 5 {
		return timing[:5]
	}
	return timing
}

// parseDistance parses a "123 km" distance field; "-" means unknown.
func parseDistance(distance string) int {
	if distance == "" || distance == "-" {
		return 0
	}
	km, _ := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(distance, "km")))
	return km
}

// clockDiff returns the wall-clock minutes from dep to arr, treating a
// negative difference as an overnight run.
func clockDiff(dep, arr string) int {
	toMinutes := func(hhmm string) int {
		parts := strings.SplitN(hhmm, ":", 2)
		if len(parts) != 2 {
			return 0
		}
		h, _ := strconv.Atoi(parts[0])
		m, _ := strconv.Atoi(parts[1])
		return h*60 + m
	}

	d := toMinutes(arr) - toMinutes(dep)
	if d < 0 {
		d += 24 * 60
	}
	return d
}

// Rappid API response structures.

type trainResponse struct {
	Success     bool         `json:"success"`
	TrainName   string       `json:"train_name"`
	Message     string       `json:"message"`
	UpdatedTime string       `json:"updated_time"`
	Data        []stationRow `json:"data"`
}

type stationRow struct {
	IsCurrentStation bool   `json:"is_current_station"`
	StationName      string `json:"station_name"`
	Distance         string `json:"distance"`
	Timing           string `json:"timing"`
	Delay            string `json:"delay"`
	Platform         string `json:"platform"`
	Halt             string `json:"halt"`
}
