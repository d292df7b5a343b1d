package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/mvx/internal/shared"
	"github.com/desertthunder/mvx/internal/tmdb"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}
	shared.LoadEnv(config, "")

	var catalog *tmdb.Client
	if config.Credentials.TMDB.APIKey != "" {
		catalog = tmdb.NewClient(config.Credentials.TMDB.APIKey, config.Credentials.TMDB.BaseURL, nil, logger)
	}

	runner := NewRunner(RunnerOpts{
		Config:  config,
		Catalog: catalog,
		Logger:  logger,
	})
	defer runner.Close()

	app := &cli.Command{
		Name:     "mvx",
		Usage:    "Browse the TMDB movie catalog and manage a wishlist",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
