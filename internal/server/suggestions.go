package server

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/danpilch/stationboard/internal/stations"
)

const suggestionsFailedMessage = "Failed to fetch suggestions. Please try again."

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	if s.suggestions == nil {
		s.logger.Error("station database is not configured")
		s.writeError(w, http.StatusInternalServerError, "Server configuration error")
		return
	}

	text := mux.Vars(r)["code"]
	log := s.logger.WithField("query", text)

	matches, err := s.suggestions.Find(r.Context(), text)
	if err != nil {
		log.WithField("error", err).Error("station lookup failed")

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			s.writeError(w, http.StatusInternalServerError, "Database query error: "+pgErr.Message)
			return
		}
		s.writeError(w, http.StatusInternalServerError, suggestionsFailedMessage)
		return
	}

	if matches == nil {
		matches = []stations.Suggestion{}
	}
	s.writeJSON(w, http.StatusOK, matches)
}
