package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/danpilch/stationboard/internal/config"
	"github.com/danpilch/stationboard/internal/server"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestOpenSuggestions(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		source, closeFn := openSuggestions(context.Background(), config.SuggestionsConfig{Table: "Stations"}, testLogger())
		defer closeFn()
		if source != nil {
			t.Errorf("expected no store, got %T", source)
		}
	})

	t.Run("unusable url degrades instead of failing", func(t *testing.T) {
		cfg := config.SuggestionsConfig{
			Table: "Stations",
			URL:   "https://abcdefgh.supabase.co",
			Key:   "anon-key",
		}
		source, closeFn := openSuggestions(context.Background(), cfg, testLogger())
		defer closeFn()
		if source != nil {
			t.Fatalf("expected no store, got %T", source)
		}

		// The rest of the API keeps serving; only suggestions report the problem.
		srv := httptest.NewServer(server.New(server.Options{Suggestions: source, Logger: testLogger()}).Handler())
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/api/suggestions/BLY")
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", resp.StatusCode)
		}
		var body server.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if body.Error != "Server configuration error" {
			t.Errorf("unexpected error %q", body.Error)
		}

		station, err := http.Get(srv.URL + "/api/station/BMH")
		if err != nil {
			t.Fatal(err)
		}
		station.Body.Close()
		if station.StatusCode != http.StatusOK {
			t.Errorf("expected station route to keep working, got %d", station.StatusCode)
		}
	})

	t.Run("postgres url", func(t *testing.T) {
		cfg := config.SuggestionsConfig{
			Table: "Stations",
			URL:   "postgres://postgres@127.0.0.1:5432/postgres",
			Key:   "anon-key",
		}
		source, closeFn := openSuggestions(context.Background(), cfg, testLogger())
		defer closeFn()
		if source == nil {
			t.Error("expected a store")
		}
	})
}
