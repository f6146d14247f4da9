package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/angeloszaimis/availability-checker/config"
	"github.com/angeloszaimis/availability-checker/internal/checker"
	"github.com/angeloszaimis/availability-checker/internal/report"
	"github.com/angeloszaimis/availability-checker/internal/source"
	"github.com/angeloszaimis/availability-checker/pkg/logger"
)

// Exit codes:
//
//	0 - every target is up
//	1 - at least one target is down or malformed
//	2 - configuration, input or report errors
const (
	exitOK    = 0
	exitDown  = 1
	exitError = 2
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("availability-checker", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	config.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitError
	}

	cfg, err := config.Load(fs)
	if err != nil {
		logger.New(config.LogLevelInfo, false, config.EnvDev, stderr).
			Error("Failed to load config", slog.Any("err", err))
		return exitError
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.AddSource, cfg.Environment, stderr)

	rows, err := source.Load(ctx, cfg.Input.Path, source.Options{Sheet: cfg.Input.Sheet})
	if err != nil {
		log.Error("Failed to load targets",
			slog.String("input", cfg.Input.Path),
			slog.Any("err", err))
		return exitError
	}

	targets := checker.Targets(rows)
	log.Info("Loaded targets",
		slog.String("input", cfg.Input.Path),
		slog.Int("count", len(targets)))

	retryDelay := cfg.Check.RetryDelay
	if retryDelay == 0 {
		retryDelay = checker.NoRetryDelay
	}

	c := checker.New(checker.Options{
		Attempts:       cfg.Check.Attempts,
		RetryDelay:     retryDelay,
		ConnectTimeout: cfg.Check.ConnectTimeout,
		RequestTimeout: cfg.Check.RequestTimeout,
		UserAgent:      cfg.Check.UserAgent,
	}, log)

	results := c.Run(ctx, targets)
	rep := report.New(results, time.Now())

	if err := buildSinks(cfg, stdout).Publish(ctx, rep); err != nil {
		log.Error("Failed to publish report", slog.Any("err", err))
		if !rep.Failed() {
			return exitError
		}
	}

	if rep.Failed() {
		log.Error("Availability check failed",
			slog.Int("down", len(rep.Failures)),
			slog.Int("checked", len(results)))
		return exitDown
	}

	log.Info("All targets are up", slog.Int("checked", len(results)))
	return exitOK
}
