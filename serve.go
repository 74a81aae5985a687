package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-pathtracer/web/server"
	"github.com/urfave/cli"
)

// serve runs the HTTP API until interrupted
func serve(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	srv := server.NewServer(server.Config{
		Port:        ctx.Int("port"),
		TexturePath: ctx.String("texture"),
		NumWorkers:  ctx.Int("workers"),
	})

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warningf("shutdown: %v", err)
		}
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
