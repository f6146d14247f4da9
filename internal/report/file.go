package report

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

const alertTitle = "WEBSITE DOWN ALERT"

// FileSink writes the alert text to Path when the run failed, so CI mail
// plugins can attach it. A passing run removes the file left by an earlier
// failure.
type FileSink struct {
	Path string
}

func (s FileSink) Publish(_ context.Context, r Report) error {
	if !r.Failed() {
		if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove stale failure file: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(s.Path, []byte(AlertText(r)), 0644); err != nil {
		return fmt.Errorf("write failure file: %w", err)
	}
	return nil
}

// AlertText renders the failure file body.
func AlertText(r Report) string {
	var sb strings.Builder
	sb.WriteString(alertTitle)
	sb.WriteString("\n\n")
	sb.WriteString(r.Message())
	sb.WriteString("\nChecked at: ")
	sb.WriteString(r.Timestamp())
	return sb.String()
}
