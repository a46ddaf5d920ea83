package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/danpilch/stationboard/internal/api/board"
	"github.com/danpilch/stationboard/internal/api/rtt"
	"github.com/danpilch/stationboard/internal/config"
	"github.com/danpilch/stationboard/internal/monitor"
	"github.com/danpilch/stationboard/internal/notify"
	"github.com/danpilch/stationboard/internal/render"
	"github.com/danpilch/stationboard/internal/scheduler"
	"github.com/danpilch/stationboard/internal/server"
	"github.com/danpilch/stationboard/internal/stations"
)

const shutdownTimeout = 30 * time.Second

type ServeCmd struct{}

func (c *ServeCmd) Run(app *App) error {
	cfg, logger := app.Config, app.Logger

	ctx, cancel := signalContext(logger)
	defer cancel()

	opts := server.Options{
		UseMockData:    cfg.RTT.UseMockData,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logger,
	}

	if cfg.RTT.HasCredentials() {
		opts.Rail = rtt.NewClient(cfg.RTT.BaseURL, cfg.RTT.Username, cfg.RTT.Password, cfg.RTT.Timeout)
	} else {
		logger.Warn("RTT_USERNAME and RTT_PASSWORD not set, serving mock data")
	}

	suggestions, closeSuggestions := openSuggestions(ctx, cfg.Suggestions, logger)
	defer closeSuggestions()
	opts.Suggestions = suggestions

	srv := &http.Server{
		Addr:         cfg.Server.Listen,
		Handler:      server.New(opts).Handler(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.WithFields(logrus.Fields{
			"listen":    cfg.Server.Listen,
			"mock_data": opts.Rail == nil || opts.UseMockData,
		}).Info("starting stationboard")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		logger.Info("stationboard stopped")
		return nil
	})

	return g.Wait()
}

// openSuggestions connects the station database. The store is optional: when
// it is not configured or cannot be reached the result is nil and the
// suggestions route reports a configuration error.
func openSuggestions(ctx context.Context, cfg config.SuggestionsConfig, logger *logrus.Logger) (server.SuggestionSource, func()) {
	if !cfg.Configured() {
		logger.Warn("SUPABASE_URL and SUPABASE_ANON_KEY not set, suggestions are unavailable")
		return nil, func() {}
	}

	pool, err := stations.Connect(ctx, cfg.URL, cfg.Key)
	if err != nil {
		logger.WithField("error", err).Error("failed to connect to station database, suggestions are unavailable")
		return nil, func() {}
	}
	return stations.NewStore(pool, cfg.Table, logger), pool.Close
}

// BoardFlags select the API the client commands talk to.
type BoardFlags struct {
	Board string `help:"Base URL of the station board API (defaults to watch.board_url)." env:"STATIONBOARD_URL"`
}

func (f BoardFlags) client(app *App) *board.Client {
	url := f.Board
	if url == "" {
		url = app.Config.Watch.BoardURL
	}
	return board.NewClient(url, app.Logger)
}

type StationCmd struct {
	BoardFlags
	Code string `arg:"" help:"Station CRS code or name fragment."`
}

func (c *StationCmd) Run(app *App) error {
	data, err := c.client(app).FetchStationData(context.Background(), c.Code)
	if err != nil {
		return err
	}
	return render.StationServices(os.Stdout, data)
}

type TrainCmd struct {
	BoardFlags
	UID string `arg:"" name:"uid" help:"Service UID, as listed by the station command."`
}

func (c *TrainCmd) Run(app *App) error {
	details, err := c.client(app).FetchTrainDetails(context.Background(), c.UID)
	if err != nil {
		return err
	}
	return render.TrainDetails(os.Stdout, details)
}

type SuggestCmd struct {
	BoardFlags
	Text string `arg:"" help:"Part of a station name or code."`
}

func (c *SuggestCmd) Run(app *App) error {
	suggestions := c.client(app).FetchSuggestedStations(context.Background(), c.Text)
	return render.Suggestions(os.Stdout, suggestions)
}

type WatchCmd struct {
	BoardFlags
	UID      string        `arg:"" name:"uid" help:"Service UID to watch."`
	Interval time.Duration `help:"Polling interval (defaults to watch.interval)."`
}

func (c *WatchCmd) Run(app *App) error {
	cfg, logger := app.Config, app.Logger

	if cfg.Watch.PushoverToken == "" || cfg.Watch.PushoverUser == "" {
		return errors.New("PUSHOVER_TOKEN and PUSHOVER_USER environment variables are required")
	}

	interval := c.Interval
	if interval <= 0 {
		interval = cfg.Watch.Interval
	}

	notifier := notify.NewNotifier(cfg.Watch.PushoverToken, cfg.Watch.PushoverUser, logger)
	trainMonitor := monitor.NewTrainMonitor(c.client(app), notifier, logger)
	sched := scheduler.NewScheduler(trainMonitor, c.UID, interval, logger)

	ctx, cancel := signalContext(logger)
	defer cancel()

	logger.WithFields(logrus.Fields{
		"service":  c.UID,
		"interval": interval.String(),
	}).Info("starting watch")

	sched.Start(ctx)

	select {
	case <-ctx.Done():
	case <-sched.Done():
	}

	sched.Stop()
	logger.Info("watch stopped")
	return nil
}
