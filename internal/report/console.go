package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/angeloszaimis/availability-checker/internal/metrics"
)

const banner = "====================================="

// ConsoleSink prints the outcome and a one-line summary to Out.
type ConsoleSink struct {
	Out io.Writer
}

func (s ConsoleSink) Publish(_ context.Context, r Report) error {
	var sb strings.Builder

	sb.WriteString("\n" + banner + "\n")
	if r.Failed() {
		sb.WriteString(alertTitle + "\n")
		sb.WriteString(r.Message())
	} else {
		sb.WriteString("ALL WEBSITES ARE UP\n")
	}
	sb.WriteString("Checked at: " + r.Timestamp() + "\n")
	sb.WriteString("Summary: " + metrics.Summarize(r.Results).String() + "\n")
	sb.WriteString(banner + "\n\n")

	if _, err := io.WriteString(s.Out, sb.String()); err != nil {
		return fmt.Errorf("write console report: %w", err)
	}
	return nil
}
