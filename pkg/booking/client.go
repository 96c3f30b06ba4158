// Package booking holds the appointment booking core: the API client for the
// availability feed and submission endpoints, the availability partitioner
// and the scheduling state machine driving the booking flow.
package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// Client talks to the booking API. It covers both the availability feed
// (providers, day availability) and appointment submission. Every call is a
// fresh request; nothing is cached or retried here.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithToken sets the bearer token attached to every request.
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a booking API client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ListProviders fetches the provider list.
func (c *Client) ListProviders(ctx context.Context) ([]Provider, error) {
	var providers []Provider
	if err := c.get(ctx, "/providers", nil, &providers); err != nil {
		return nil, err
	}
	return providers, nil
}

// DayAvailability fetches the hour availability of one provider for one day.
// The feed is authoritative: providerID and the date parts are not validated
// locally.
func (c *Client) DayAvailability(
	ctx context.Context,
	providerID string,
	year, month, day int,
) ([]AvailabilitySlot, error) {

	params := url.Values{}
	params.Set("year", fmt.Sprint(year))
	params.Set("month", fmt.Sprint(month))
	params.Set("day", fmt.Sprint(day))

	var slots []AvailabilitySlot
	path := fmt.Sprintf("/providers/%s/day-availability", url.PathEscape(providerID))
	if err := c.get(ctx, path, params, &slots); err != nil {
		return nil, err
	}
	return slots, nil
}

type createAppointmentRequest struct {
	ProviderID string    `json:"provider_id"`
	Date       time.Time `json:"date"`
}

// CreateAppointment books the slot. Exactly one POST is issued; there is no
// idempotency key, so a caller-side retry after a timeout risks a duplicate
// booking.
func (c *Client) CreateAppointment(
	ctx context.Context,
	providerID string,
	date time.Time,
) (*Appointment, error) {

	body, err := json.Marshal(createAppointmentRequest{
		ProviderID: providerID,
		Date:       date,
	})
	if err != nil {
		return nil, fmt.Errorf("booking: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/appointments",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, fmt.Errorf("booking: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.decodeError(resp)
	}

	var ap Appointment
	if err := json.NewDecoder(resp.Body).Decode(&ap); err != nil {
		return nil, fmt.Errorf("booking: decode response: %w", err)
	}
	return &ap, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("booking: create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("booking: decode response: %w", err)
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// errorEnvelope matches the backend's error body.
type errorEnvelope struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

// decodeError maps a non-2xx response to the error taxonomy: a 4xx carrying a
// business error_code becomes a ValidationError, anything else a ServerError.
func (c *Client) decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil &&
		env.Code != "" &&
		resp.StatusCode >= 400 && resp.StatusCode < 500 {

		c.logger.Debug("request rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("code", env.Code),
		)
		return &ValidationError{Code: env.Code, Message: env.Message}
	}

	return &ServerError{Status: resp.StatusCode}
}
