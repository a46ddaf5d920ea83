package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/danpilch/stationboard/internal/api/rtt"
	"github.com/danpilch/stationboard/internal/stations"
)

// RailSource is the upstream train data service.
type RailSource interface {
	SearchStation(ctx context.Context, code string) (json.RawMessage, error)
	GetService(ctx context.Context, serviceUid string, runDate time.Time) (*rtt.ServiceDetailResponse, error)
}

// SuggestionSource finds stations matching a typed fragment.
type SuggestionSource interface {
	Find(ctx context.Context, text string) ([]stations.Suggestion, error)
}

// Options configures a Server. A nil Rail means no RTT credentials are
// configured and mock data is served; a nil Suggestions means the station
// database is not configured.
type Options struct {
	Rail           RailSource
	Suggestions    SuggestionSource
	UseMockData    bool
	AllowedOrigins []string
	Logger         *logrus.Logger
	Now            func() time.Time
}

// Server serves the station board API.
type Server struct {
	rail           RailSource
	suggestions    SuggestionSource
	useMockData    bool
	allowedOrigins []string
	logger         *logrus.Logger
	now            func() time.Time
}

func New(opts Options) *Server {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Server{
		rail:           opts.Rail,
		suggestions:    opts.Suggestions,
		useMockData:    opts.UseMockData,
		allowedOrigins: origins,
		logger:         opts.Logger,
		now:            now,
	}
}

// Handler returns the routed API with logging, panic recovery and CORS applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/station/{code}", s.handleStation).Methods(http.MethodGet)
	api.HandleFunc("/train/{uid}", s.handleTrain).Methods(http.MethodGet)
	api.HandleFunc("/train/", s.handleTrain).Methods(http.MethodGet)
	api.HandleFunc("/train", s.handleTrain).Methods(http.MethodGet)
	api.HandleFunc("/suggestions/{code}", s.handleSuggestions).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	c := cors.New(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(s.logRequests(s.recoverPanics(r)))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}
