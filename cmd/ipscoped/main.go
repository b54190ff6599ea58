// Command ipscoped serves the connection-inspection dashboard and API.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/ipscope/ipscope"
	"github.com/ipscope/ipscope/dnsinfo"
	"github.com/ipscope/ipscope/internal/server"
	ipscopeprom "github.com/ipscope/ipscope/prometheus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	resolver, err := ipscope.New(
		ipscope.WithLogger(logger),
		ipscopeprom.WithRegisterer(registry),
	)
	if err != nil {
		logger.Error("failed to build resolver", "error", err)
		os.Exit(1)
	}

	var dns *dnsinfo.Client
	if cfg.DNSEnabled {
		dns = dnsinfo.New(dnsinfo.WithTimeout(cfg.DNSTimeout))
	}

	handler := server.NewHandler(resolver, dns, logger, registry)

	srv := server.NewServer(cfg, logger)
	if err := srv.Run(ctx, handler); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("stopped")
}

func newLogger(cfg server.Config) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
