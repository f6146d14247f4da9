package main

import (
	"io"

	"github.com/angeloszaimis/availability-checker/config"
	"github.com/angeloszaimis/availability-checker/internal/report"
)

func buildSinks(cfg *config.Config, stdout io.Writer) report.Multi {
	sinks := report.Multi{report.ConsoleSink{Out: stdout}}

	if cfg.Report.FailureFile != "" {
		sinks = append(sinks, report.FileSink{Path: cfg.Report.FailureFile})
	}
	if cfg.Report.EnvFile != "" {
		sinks = append(sinks, report.EnvSink{Path: cfg.Report.EnvFile, Prefix: cfg.Report.EnvPrefix})
	}
	if cfg.Report.YAMLFile != "" {
		sinks = append(sinks, report.YAMLSink{Path: cfg.Report.YAMLFile})
	}

	return sinks
}
