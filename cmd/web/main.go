package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/myrjola/glitchcity/internal/ai"
	"github.com/myrjola/glitchcity/internal/envstruct"
	"github.com/myrjola/glitchcity/internal/errors"
	"github.com/myrjola/glitchcity/internal/logging"
	"github.com/myrjola/glitchcity/internal/pipeline"
	"github.com/myrjola/glitchcity/internal/pprofserver"
)

// config is the whole server configuration. GEMINI_API_KEY is the one
// required secret; everything else has a default.
type config struct {
	Addr         string `env:"GLITCHCITY_ADDR" envDefault:"localhost:4000"`
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	Debug        bool   `env:"GLITCHCITY_DEBUG" envDefault:"false"`
}

type application struct {
	logger   *slog.Logger
	pipeline *pipeline.Pipeline
	debug    bool
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var cfg config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "parse config")
	}

	aiClient, err := ai.NewClient(ctx, cfg.GeminiAPIKey, logger)
	if err != nil {
		return errors.Wrap(err, "initialise ai client")
	}

	app := &application{
		logger: logger,
		pipeline: pipeline.New(pipeline.Options{ //nolint:exhaustruct // default image timeout
			Text:   aiClient,
			Image:  aiClient,
			Logger: logger,
			Debug:  cfg.Debug,
		}),
		debug: cfg.Debug,
	}

	return app.configureAndStartServer(ctx, cfg.Addr)
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{ //nolint:exhaustruct
		Level:     slog.LevelDebug,
		AddSource: true,
	}))
	logger := slog.New(loggerHandler)

	// Initialise pprof listening on localhost so that it's not open to the world.
	pprofserver.Launch(":6060", logger)

	// A .env file is optional outside local development.
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err.Error())
	}

	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "server failed", errors.SlogError(err))
		os.Exit(1)
	}
}
