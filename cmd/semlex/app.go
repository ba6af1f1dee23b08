package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/c360studio/semlex/config"
	"github.com/c360studio/semlex/fetch"
	"github.com/c360studio/semlex/graph"
)

type appOptions struct {
	configPath string
	logLevel   string
}

// app carries what the commands share: configuration, logger and fetcher.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	fetcher *fetch.Fetcher
	metrics *prometheus.Registry
}

func newApp(opts appOptions, stderr io.Writer) (*app, error) {
	// Config is loaded before the logger is configured, so loading logs
	// through a warn-level bootstrap logger.
	bootstrap := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	cfg, err := config.NewLoader(bootstrap).LoadWithOverride(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	levelName := cfg.Log.Level
	if opts.logLevel != "" {
		levelName = opts.logLevel
	}
	level, err := config.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger}

	var observer fetch.Observer
	if cfg.Metrics.IsEnabled() {
		a.metrics = prometheus.NewRegistry()
		obs, err := fetch.NewPrometheusObserver(cfg.Metrics.Namespace, a.metrics)
		if err != nil {
			return nil, err
		}
		observer = obs
	}
	a.fetcher = fetch.NewFromConfig(cfg.Fetch, logger, observer)

	logger.Debug("Semlex ready",
		"version", Version,
		"accept", cfg.Fetch.Accept,
		"metrics", cfg.Metrics.IsEnabled())
	return a, nil
}

// accept returns override when given, otherwise the configured accept list.
func (a *app) accept(override []string) []string {
	if len(override) > 0 {
		return override
	}
	return a.cfg.Fetch.Accept
}

func (a *app) fetchGraph(ctx context.Context, url string, accept []string) (*graph.Graph, error) {
	return a.fetcher.FetchGraph(ctx, url, a.accept(accept))
}

// close reports the collected fetch metrics when metrics are enabled.
func (a *app) close() {
	if a.metrics == nil {
		return
	}
	families, err := a.metrics.Gather()
	if err != nil {
		a.logger.Warn("Failed to gather metrics", "error", err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			attrs := []any{"metric", mf.GetName()}
			for _, lp := range m.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				attrs = append(attrs, "value", m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				attrs = append(attrs,
					"count", m.GetHistogram().GetSampleCount(),
					"sum", m.GetHistogram().GetSampleSum())
			}
			a.logger.Info("Fetch metric", attrs...)
		}
	}
}
