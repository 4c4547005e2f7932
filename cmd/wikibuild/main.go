package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/rondayan42/requiem-wiki/internal/build"
	"github.com/rondayan42/requiem-wiki/internal/config"
	werrors "github.com/rondayan42/requiem-wiki/internal/errors"
	"github.com/rondayan42/requiem-wiki/internal/logfields"
	"github.com/rondayan42/requiem-wiki/internal/metrics"
	"github.com/rondayan42/requiem-wiki/internal/watch"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"config.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Output      string `short:"o" help:"Output directory for the generated site (overrides config)"`
		MetricsFile string `help:"Write Prometheus textfile metrics to this path after the run"`
		Report      bool   `help:"Write build-report.json into the site tree" default:"true" negatable:""`
	} `cmd:"" help:"Rebuild the static archive from the configured source roots"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Watch struct {
		Output   string        `short:"o" help:"Output directory for the generated site (overrides config)"`
		Interval time.Duration `help:"Also rebuild on a fixed interval (e.g. 1h); 0 disables"`
	} `cmd:"" help:"Rebuild whenever a source root changes on disk"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	adapter := werrors.NewCLIErrorAdapter(CLI.Verbose, logger)

	switch ctx.Command() {
	case "build":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			adapter.HandleError(err)
		}
		if err := runBuild(cfg); err != nil {
			adapter.HandleError(err)
		}
	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			adapter.HandleError(err)
		}
		slog.Info("Wrote configuration file", logfields.Path(CLI.Config))
	case "watch":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			adapter.HandleError(err)
		}
		if err := runWatch(cfg); err != nil {
			adapter.HandleError(err)
		}
	}
}

func runBuild(cfg *config.Config) error {
	opts := build.Options{
		Output:      CLI.Build.Output,
		WriteReport: CLI.Build.Report,
	}

	var recorder *metrics.PrometheusRecorder
	if CLI.Build.MetricsFile != "" {
		recorder = metrics.NewPrometheusRecorder(prom.NewRegistry())
		opts.Recorder = recorder
	}

	err := build.Run(context.Background(), cfg, opts)

	if recorder != nil {
		if werr := metrics.WriteTextfile(CLI.Build.MetricsFile, recorder.Registry()); werr != nil {
			slog.Warn("Failed to write metrics textfile", logfields.Error(werr))
		}
	}
	return err
}

func runWatch(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var roots []string
	for _, src := range cfg.Sources {
		if src.Path != "" {
			roots = append(roots, src.Path)
		}
	}
	if len(roots) == 0 {
		return werrors.ValidationFailed("sources", "watch mode requires at least one local source root")
	}

	doBuild := func(ctx context.Context) error {
		return build.Run(ctx, cfg, build.Options{Output: CLI.Watch.Output, WriteReport: true})
	}
	w, err := watch.New(roots, CLI.Watch.Interval, doBuild)
	if err != nil {
		return werrors.Wrap(err, werrors.CategoryRuntime, werrors.SeverityFatal, "failed to start watcher")
	}
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return werrors.Wrap(err, werrors.CategoryRuntime, werrors.SeverityFatal, "watch loop failed")
	}
	return nil
}
