package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/danpilch/stationboard/internal/config"
)

type Globals struct {
	Config   string `help:"Path to config file" default:"stationboard.yaml" type:"path"`
	LogLevel string `help:"Log level" default:"info" enum:"debug,info,warn,error"`
}

var CLI struct {
	Globals

	Serve   ServeCmd   `cmd:"" default:"1" help:"Serve the station board API."`
	Station StationCmd `cmd:"" help:"Show the services at a station."`
	Train   TrainCmd   `cmd:"" help:"Show the calling points and status of a train service."`
	Suggest SuggestCmd `cmd:"" help:"Suggest stations matching a name or code fragment."`
	Watch   WatchCmd   `cmd:"" help:"Send push notifications as a train service progresses."`
}

// App is handed to every command.
type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("stationboard"),
		kong.Description("Live UK station and train service information."),
		kong.UsageOnError(),
	)

	// Setup structured logging with logfmt
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	level, err := logrus.ParseLevel(CLI.LogLevel)
	if err != nil {
		logger.WithField("error", err).Fatal("invalid log level")
	}
	logger.SetLevel(level)

	// Load configuration
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		logger.WithField("error", err).Fatal("failed to load config")
	}

	err = ctx.Run(&App{Config: cfg, Logger: logger})
	ctx.FatalIfErrorf(err)
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(logger *logrus.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigCh:
			logger.WithField("signal", sig).Info("received signal, shutting down")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}
