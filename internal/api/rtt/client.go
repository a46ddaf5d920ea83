package rtt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production RealTimeTrains API.
const DefaultBaseURL = "https://api.rtt.io/api/v1"

// maxErrorBody bounds how much of a failed response is read looking for a message.
const maxErrorBody = 64 << 10

// Client is a RealTimeTrains API client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	username   string
	password   string
}

// NewClient creates a new RTT client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL, username, password string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		username:   username,
		password:   password,
	}
}

// SearchStation lists services at a station. The body is returned undecoded so
// callers can pass it through unchanged.
func (c *Client) SearchStation(ctx context.Context, code string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/json/search/%s", c.baseURL, url.PathEscape(code))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// GetService retrieves the calling points of a service on the given run date.
// A body without a locations list is reported as ErrMalformedResponse.
func (c *Client) GetService(ctx context.Context, serviceUid string, runDate time.Time) (*ServiceDetailResponse, error) {
	endpoint := fmt.Sprintf("%s/json/service/%s/%04d/%02d/%02d",
		c.baseURL, url.PathEscape(serviceUid),
		runDate.Year(), int(runDate.Month()), runDate.Day())

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var result *ServiceDetailResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decoding response: %w: %v", ErrMalformedResponse, err)
	}
	if result == nil || len(result.Locations) == 0 {
		return nil, fmt.Errorf("decoding response: %w: no locations", ErrMalformedResponse)
	}

	return result, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.username, c.password)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(resp.Body),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{Err: fmt.Errorf("reading response: %w", err)}
	}

	return body, nil
}

// errorMessage pulls the "message" field out of an RTT error body.
func errorMessage(r io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(r, maxErrorBody)).Decode(&payload); err != nil {
		return ""
	}
	return payload.Message
}
