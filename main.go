package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/kova98/redditmcp/config"
	"github.com/kova98/redditmcp/mcpserver"
	"github.com/kova98/redditmcp/metrics"
	"github.com/kova98/redditmcp/params"
	"github.com/kova98/redditmcp/sources"
	"github.com/kova98/redditmcp/tools"
)

func main() {
	cfg := config.Load()

	// stdout carries the protocol; logs go to stderr.
	opts := slog.HandlerOptions{Level: cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &opts))
	slog.SetDefault(logger)

	client := sources.NewClient(logger, cfg)
	service := tools.NewService(logger, client, cfg.BaseURL, params.Style{
		Output:    cfg.DefaultOutput,
		Verbosity: cfg.DefaultVerbosity,
	})
	server := mcpserver.NewServer(logger, service)

	if cfg.MetricsAddr != "" {
		go func() {
			slog.Info("serving metrics", "addr", cfg.MetricsAddr)
			if err := metrics.Serve(cfg.MetricsAddr); err != nil {
				slog.Error("metrics server stopped", "error", err)
			}
		}()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	go func() {
		<-sigCh
		slog.Info("Shutting down...")
		cancel()
		os.Exit(0)
	}()

	slog.Info("serving MCP over stdio",
		"output", cfg.DefaultOutput,
		"verbosity", cfg.DefaultVerbosity)
	if err := server.ServeStdio(ctx); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
