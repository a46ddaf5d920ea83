package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

const stationFailedMessage = "Failed to fetch station data. Please try again later."

func (s *Server) handleStation(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	log := s.logger.WithField("code", code)

	if s.useMockData || s.rail == nil {
		if s.rail == nil {
			log.Warn("rtt credentials not found, using mock data")
		} else {
			log.Info("using mock data for station")
		}
		s.writeJSON(w, http.StatusOK, mockStationData(code))
		return
	}

	body, err := s.rail.SearchStation(r.Context(), code)
	if err != nil {
		s.writeUpstreamError(w, log, err, stationFailedMessage)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.WithField("error", err).Error("failed to write station data")
	}
}
