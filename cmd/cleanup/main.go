package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/skynet2/expense-tracker-sync/pkg/bootstrap"
	"github.com/skynet2/expense-tracker-sync/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := log.Logger.WithContext(context.Background())

	app, err := bootstrap.Open(ctx, cfg, bootstrap.Options{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open sync session")
	}

	j := &job{
		svc:      app.Manager,
		notifier: app.Notifier,
		printer:  app.Printer,
		opts:     cfg.Cleanup,
	}

	res, err := j.run(ctx)
	if closeErr := app.Close(); closeErr != nil {
		log.Err(closeErr).Msg("failed to close sync session")
	}

	if err != nil {
		log.Fatal().Err(err).Msg("cleanup failed")
	}

	if res == nil {
		log.Info().Msg("no duplicates found")
		return
	}

	log.Info().
		Bool("success", res.Success).
		Str("message", res.Message).
		Msg("cleanup finished")
}
