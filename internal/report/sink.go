package report

import (
	"context"
	"errors"
)

// Sink publishes a finished report somewhere.
type Sink interface {
	Publish(ctx context.Context, r Report) error
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ctx context.Context, r Report) error

func (f SinkFunc) Publish(ctx context.Context, r Report) error {
	return f(ctx, r)
}

// Multi publishes to every sink in order. A failing sink does not stop the
// others; all errors are joined.
type Multi []Sink

func (m Multi) Publish(ctx context.Context, r Report) error {
	var errs []error
	for _, s := range m {
		if err := s.Publish(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
