package report

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/angeloszaimis/availability-checker/internal/metrics"
)

// YAMLSink writes every result and the run summary to Path.
type YAMLSink struct {
	Path string
}

type yamlDocument struct {
	Status    string          `yaml:"status"`
	CheckedAt string          `yaml:"checked_at"`
	Summary   metrics.Summary `yaml:"summary"`
	Results   []yamlResult    `yaml:"results"`
}

type yamlResult struct {
	URL      string        `yaml:"url"`
	Up       bool          `yaml:"up"`
	Status   int           `yaml:"status"`
	Attempts int           `yaml:"attempts"`
	Duration time.Duration `yaml:"duration,omitempty"`
	Kind     string        `yaml:"kind,omitempty"`
	Reason   string        `yaml:"reason,omitempty"`
	Error    string        `yaml:"error,omitempty"`
}

func (s YAMLSink) Publish(_ context.Context, r Report) error {
	doc := yamlDocument{
		Status:    StatusPassed,
		CheckedAt: r.Timestamp(),
		Summary:   metrics.Summarize(r.Results),
		Results:   make([]yamlResult, 0, len(r.Results)),
	}
	if r.Failed() {
		doc.Status = StatusFailed
	}

	for _, res := range r.Results {
		doc.Results = append(doc.Results, yamlResult{
			URL:      res.URL,
			Up:       res.OK,
			Status:   res.StatusCode,
			Attempts: res.Attempts,
			Duration: res.Duration,
			Kind:     string(res.Kind),
			Reason:   res.Reason(),
			Error:    res.LastError,
		})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode yaml report: %w", err)
	}

	if err := os.WriteFile(s.Path, out, 0644); err != nil {
		return fmt.Errorf("write yaml report: %w", err)
	}
	return nil
}
