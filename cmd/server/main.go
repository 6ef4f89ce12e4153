package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/skynet2/expense-tracker-sync/pkg/bootstrap"
	"github.com/skynet2/expense-tracker-sync/pkg/config"
)

const shutdownTimeout = 2 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	ctx := log.Logger.WithContext(context.Background())

	guard := bootstrap.NewExitGuard()

	app, err := bootstrap.Open(ctx, cfg, bootstrap.Options{ExitHook: guard})
	if err != nil {
		panic(err)
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Err(closeErr).Msg("failed to close app")
		}
	}()

	handle := NewHandler(app.Manager, app.Notifier, app.Exporter, cfg.ApiKey)

	srv := &http.Server{
		Handler:      handle.Router(),
		Addr:         cfg.ListenAddr(),
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  60 * time.Second,
	}

	go func() {
		if srvErr := srv.ListenAndServe(); srvErr != nil && srvErr != http.ErrServerClosed {
			panic(srvErr)
		}
	}()

	log.Info().Str("addr", srv.Addr).Msg("server started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if guard.Busy() {
		log.Warn().Msg("sync in progress, waiting for it to finish before exit")
	}

	if err = guard.WaitIdle(shutdownCtx); err != nil {
		log.Err(err).Msg("sync did not finish before shutdown")
	}

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Err(err).Msg("failed to shutdown server")
	}
}
