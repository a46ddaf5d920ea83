// Package board is a client for the station board API, used by the terminal
// front end and the watch command.
package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/danpilch/stationboard/internal/api/rtt"
	"github.com/danpilch/stationboard/internal/journey"
	"github.com/danpilch/stationboard/internal/stations"
)

const (
	stationFailedMessage  = "Failed to fetch station data. Please try again."
	trainFailedMessage    = "Failed to fetch train details. Please try again."
	trainNotFoundMessage  = "Train service not found. Please check the service ID and try again."
	maxResponseBody       = 4 << 20
	defaultRequestTimeout = 30 * time.Second
)

// Error is a failure with a message fit to show the user.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Client calls the station board API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logrus.Logger
}

// NewClient creates a client for the API served at baseURL.
func NewClient(baseURL string, logger *logrus.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}
}

// FetchStationData returns the services at a station.
func (c *Client) FetchStationData(ctx context.Context, code string) (*rtt.StationData, error) {
	var data rtt.StationData
	status, err := c.getJSON(ctx, "/api/station/"+url.PathEscape(code), &data)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"code":  code,
			"error": err,
		}).Error("fetching station data")
		return nil, userError(status, err, stationFailedMessage)
	}
	return &data, nil
}

// FetchTrainDetails returns the calling points of a service.
func (c *Client) FetchTrainDetails(ctx context.Context, uid string) (*journey.TrainDetails, error) {
	var details journey.TrainDetails
	status, err := c.getJSON(ctx, "/api/train/"+url.PathEscape(uid), &details)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"service": uid,
			"error":   err,
		}).Error("fetching train details")
		if status == http.StatusNotFound {
			return nil, &Error{StatusCode: status, Message: trainNotFoundMessage, Err: err}
		}
		return nil, userError(status, err, trainFailedMessage)
	}
	return &details, nil
}

// FetchSuggestedStations returns stations matching text. It never fails: any
// error, including a body that is not a list, gives an empty result.
func (c *Client) FetchSuggestedStations(ctx context.Context, text string) []stations.Suggestion {
	var raw json.RawMessage
	status, err := c.getJSON(ctx, "/api/suggestions/"+url.PathEscape(text), &raw)
	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"query":  text,
			"status": status,
			"error":  err,
		}).Warn("fetching suggestions")
		return []stations.Suggestion{}
	}

	var suggestions []stations.Suggestion
	if err := json.Unmarshal(raw, &suggestions); err != nil || suggestions == nil {
		c.logger.WithField("query", text).Warn("received non-list data from suggestions api")
		return []stations.Suggestion{}
	}
	return suggestions
}

// apiError is a non-2xx answer from the API.
type apiError struct {
	status  int
	message string
}

func (e *apiError) Error() string {
	if e.message == "" {
		return fmt.Sprintf("unexpected status code: %d", e.status)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.status, e.message)
}

// getJSON decodes a successful response into v. The returned status is 0 when
// no response was received.
func (c *Client) getJSON(ctx context.Context, path string, v any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &payload)
		return resp.StatusCode, &apiError{status: resp.StatusCode, message: payload.Error}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return resp.StatusCode, fmt.Errorf("decoding response: %w", err)
	}
	return resp.StatusCode, nil
}

// userError prefers the API's own error message over the fallback.
func userError(status int, err error, fallback string) error {
	message := fallback
	var apiErr *apiError
	if errors.As(err, &apiErr) && apiErr.message != "" {
		message = apiErr.message
	}
	return &Error{StatusCode: status, Message: message, Err: err}
}
