package server

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/danpilch/stationboard/internal/journey"
)

const trainFailedMessage = "Failed to fetch train details. Please try again later."

func (s *Server) handleTrain(w http.ResponseWriter, r *http.Request) {
	uid := strings.TrimSpace(mux.Vars(r)["uid"])
	if uid == "" {
		s.writeError(w, http.StatusBadRequest, "Service UID is required")
		return
	}
	log := s.logger.WithField("service", uid)

	if s.rail == nil {
		log.Warn("rtt credentials not found, using mock data")
		s.writeJSON(w, http.StatusOK, mockTrainDetails(uid))
		return
	}

	runDate := s.now()
	resp, err := s.rail.GetService(r.Context(), uid, runDate)
	if err != nil {
		s.writeUpstreamError(w, log, err, trainFailedMessage)
		return
	}

	details := journey.TrainDetails{
		ServiceUid: uid,
		Stops:      journey.FromServiceLocations(resp.Locations),
	}

	log.WithFields(logrus.Fields{
		"run_date": runDate.Format("2006/01/02"),
		"stops":    len(details.Stops),
	}).Debug("fetched train details")

	s.writeJSON(w, http.StatusOK, details)
}
