package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/danpilch/stationboard/internal/api/rtt"
)

const (
	networkErrorMessage   = "Network error: Unable to connect to the train data service."
	invalidFormatMessage  = "Invalid response format from train data service"
	unknownUpstreamReason = "Unknown error"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// classifyError maps a failed upstream call to the status and message sent to
// the caller. fallback is used for anything unrecognised so internal error
// text never reaches the client.
func classifyError(err error, fallback string) (int, string) {
	var netErr *rtt.NetworkError
	var statusErr *rtt.StatusError

	switch {
	case errors.As(err, &netErr):
		return http.StatusServiceUnavailable, networkErrorMessage
	case errors.As(err, &statusErr):
		reason := statusErr.Message
		if reason == "" {
			reason = unknownUpstreamReason
		}
		return statusErr.StatusCode, fmt.Sprintf("API error: %d - %s", statusErr.StatusCode, reason)
	case errors.Is(err, rtt.ErrMalformedResponse):
		return http.StatusInternalServerError, invalidFormatMessage
	default:
		return http.StatusInternalServerError, fallback
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithField("error", err).Error("failed to encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, ErrorResponse{Error: message})
}

// writeUpstreamError classifies err, logs it and writes the error response.
func (s *Server) writeUpstreamError(w http.ResponseWriter, log *logrus.Entry, err error, fallback string) {
	status, message := classifyError(err, fallback)
	log.WithFields(logrus.Fields{
		"error":  err,
		"status": status,
	}).Error("upstream request failed")
	s.writeError(w, status, message)
}
