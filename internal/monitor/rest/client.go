// Package rest implements the monitor's RemoteStore against the HTTP API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"aroundtheblock/internal/domain/entity"
	"aroundtheblock/internal/errors"
	"aroundtheblock/internal/monitor"

	"github.com/google/uuid"
)

const defaultTimeout = 15 * time.Second

// Client talks to the check-in API. Conflict and not-found statuses map to
// the monitor's sentinel errors so the state machine can treat them as
// idempotent outcomes.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient swaps the underlying http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithToken sets the bearer token attached to every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient builds a client for the API at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}

	return client
}

// envelope matches the API's unified response body.
type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type createCheckInRequest struct {
	UserID    uuid.UUID `json:"user_id"`
	VenueID   string    `json:"venue_id"`
	VenueName string    `json:"venue_name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

type submitWaitTimeRequest struct {
	VenueID   string  `json:"venue_id"`
	VenueName string  `json:"venue_name"`
	Minutes   int     `json:"minutes"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (c *Client) CreateCheckIn(ctx context.Context, userID uuid.UUID, venue entity.Venue) (*entity.CheckIn, error) {
	body := createCheckInRequest{
		UserID:    userID,
		VenueID:   venue.ID,
		VenueName: venue.Name,
		Latitude:  venue.Location.Latitude,
		Longitude: venue.Location.Longitude,
	}

	var checkIn entity.CheckIn
	if err := c.do(ctx, http.MethodPost, "/api/checkins", body, &checkIn); err != nil {
		return nil, err
	}

	return &checkIn, nil
}

func (c *Client) EndCheckIn(ctx context.Context, checkInID uuid.UUID) error {
	path := fmt.Sprintf("/api/checkins/%s/checkout", checkInID)

	return c.do(ctx, http.MethodPost, path, nil, nil)
}

func (c *Client) GetCurrentCheckIn(ctx context.Context, userID uuid.UUID) (*entity.CheckIn, error) {
	path := fmt.Sprintf("/api/checkins/user/%s?active=true", userID)

	var checkIns []*entity.CheckIn
	if err := c.do(ctx, http.MethodGet, path, nil, &checkIns); err != nil {
		return nil, err
	}
	if len(checkIns) == 0 {
		return nil, nil
	}

	return checkIns[0], nil
}

func (c *Client) GetActiveCheckIns(ctx context.Context, venueID string) ([]*entity.CheckIn, error) {
	path := "/api/checkins/active"
	if venueID != "" {
		path = fmt.Sprintf("/api/checkins/bar/%s", venueID)
	}

	var checkIns []*entity.CheckIn
	if err := c.do(ctx, http.MethodGet, path, nil, &checkIns); err != nil {
		return nil, err
	}

	return checkIns, nil
}

func (c *Client) SubmitWaitTime(ctx context.Context, venue entity.Venue, minutes int, loc entity.Coordinate) error {
	body := submitWaitTimeRequest{
		VenueID:   venue.ID,
		VenueName: venue.Name,
		Minutes:   minutes,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}

	return c.do(ctx, http.MethodPost, "/api/bartime", body, nil)
}

// do issues one request and decodes the enveloped response into out when
// the call succeeds and out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	if err := statusError(resp.StatusCode, raw); err != nil {
		return err
	}
	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Wrap(err, "decode response envelope")
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return errors.Wrap(err, "decode response data")
	}

	return nil
}

// statusError maps HTTP statuses to the monitor's sentinels. Anything else
// non-2xx becomes a plain error carrying the server's message.
func statusError(status int, raw []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}

	switch status {
	case http.StatusConflict:
		return monitor.ErrConflict
	case http.StatusNotFound:
		return monitor.ErrNotFound
	case http.StatusForbidden:
		return monitor.ErrTooFar
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return errors.Errorf("server returned %d: %s", status, env.Message)
	}

	return errors.Errorf("server returned %d", status)
}
