package retry

import (
	"context"
	"time"
)

// Policy sets how many attempts to make and how long to pause between them.
type Policy struct {
	Attempts int
	Delay    time.Duration
}

// Do calls fn until it reports success or the attempts run out, and returns
// the number of attempts made. Attempts are numbered from 1. A policy with
// fewer than one attempt still calls fn once. Cancelling ctx stops the loop
// during a pause.
func (p Policy) Do(ctx context.Context, fn func(attempt int) bool) int {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; ; attempt++ {
		if fn(attempt) || attempt == attempts {
			return attempt
		}
		if !p.wait(ctx) {
			return attempt
		}
	}
}

func (p Policy) wait(ctx context.Context) bool {
	if p.Delay <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(p.Delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
