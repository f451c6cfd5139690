// Command webshell serves the portfolio terminal over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gbrlmtts/terminal-card-shell/logging"
	"github.com/gbrlmtts/terminal-card-shell/web"
)

func main() {
	addr := flag.String("addr", getEnvOrDefault("ADDR", ":8080"), "Listen address")
	logLevel := flag.String("log-level", getEnvOrDefault("LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := logging.New(os.Stdout, logging.ParseLevel(*logLevel))

	mux := http.NewServeMux()
	web.NewServer(logger).RegisterRoutes(mux)

	srv := &http.Server{
		Addr:    *addr,
		Handler: mux,
		// No WriteTimeout: the snake websocket streams for the whole visit.
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	logger.Info("listening", "addr", *addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
