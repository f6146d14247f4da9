package checker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/angeloszaimis/availability-checker/internal/retry"
)

// Options configures a Checker. Zero values fall back to the defaults below.
type Options struct {
	Attempts       int
	// RetryDelay is the pause between attempts. Use NoRetryDelay to retry
	// immediately.
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
	UserAgent      string

	// Transport replaces the dialing transport, mostly for tests.
	Transport http.RoundTripper
}

const (
	DefaultAttempts       = 3
	DefaultRetryDelay     = 2 * time.Second
	DefaultConnectTimeout = 10 * time.Second
	DefaultRequestTimeout = 10 * time.Second
)

// NoRetryDelay disables the pause between attempts.
const NoRetryDelay time.Duration = -1

// Checker runs availability checks against targets.
type Checker struct {
	client         *http.Client
	policy         retry.Policy
	connectTimeout time.Duration
	userAgent      string
	logger         *slog.Logger
}

// New creates a Checker. Redirects are never followed, so a 3xx response
// counts as a success on its own.
func New(opts Options, logger *slog.Logger) *Checker {
	if opts.Attempts <= 0 {
		opts.Attempts = DefaultAttempts
	}
	switch {
	case opts.RetryDelay == 0:
		opts.RetryDelay = DefaultRetryDelay
	case opts.RetryDelay < 0:
		opts.RetryDelay = 0
	}
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = DefaultConnectTimeout
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = DefaultRequestTimeout
	}

	transport := opts.Transport
	if transport == nil {
		transport = &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   opts.ConnectTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout: opts.ConnectTimeout,
			ForceAttemptHTTP2:   true,
			MaxIdleConns:        10,
			IdleConnTimeout:     90 * time.Second,
		}
	}

	return &Checker{
		client: &http.Client{
			Timeout:   opts.RequestTimeout,
			Transport: transport,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		policy: retry.Policy{
			Attempts: opts.Attempts,
			Delay:    opts.RetryDelay,
		},
		connectTimeout: opts.ConnectTimeout,
		userAgent:      opts.UserAgent,
		logger:         logger,
	}
}

// ValidURL reports whether target carries an http:// or https:// prefix.
func ValidURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// Targets turns raw first-column rows into targets. The first row is a
// header and is always skipped, blank rows are dropped and the rest are
// trimmed.
func Targets(rows []string) []string {
	targets := make([]string, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue
		}
		target := strings.TrimSpace(row)
		if target == "" {
			continue
		}
		targets = append(targets, target)
	}
	return targets
}

// Run checks every target in order and returns one Result per target.
func (c *Checker) Run(ctx context.Context, targets []string) []Result {
	results := make([]Result, 0, len(targets))
	for _, target := range targets {
		results = append(results, c.Check(ctx, target))
	}
	return results
}

// Check probes a single target with the retry policy.
func (c *Checker) Check(ctx context.Context, rawURL string) Result {
	target := strings.TrimSpace(rawURL)
	res := Result{
		URL:        target,
		StatusCode: NoStatus,
	}

	if !ValidURL(target) {
		res.Kind = InvalidURLFormat
		c.logger.Warn("Invalid target URL", slog.String("url", target))
		return res
	}

	res.Attempts = c.policy.Do(ctx, func(attempt int) bool {
		code, elapsed, err := c.get(ctx, target)
		res.Duration = elapsed

		if err != nil {
			res.LastError = err.Error()
			c.logger.Debug("Attempt failed",
				slog.String("url", target),
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()))
			return false
		}

		res.StatusCode = code
		res.LastError = ""
		c.logger.Debug("Attempt completed",
			slog.String("url", target),
			slog.Int("attempt", attempt),
			slog.Int("status", code),
			slog.Duration("duration", elapsed))

		res.OK = code < http.StatusBadRequest
		return res.OK
	})

	if res.OK {
		c.logger.Info("Target is up",
			slog.String("url", target),
			slog.Int("status", res.StatusCode),
			slog.Int("attempts", res.Attempts))
		return res
	}

	res.Kind = UnreachableAfterRetries
	c.logger.Warn("Target is down",
		slog.String("url", target),
		slog.Int("status", res.StatusCode),
		slog.Int("attempts", res.Attempts),
		slog.String("last_error", res.LastError))
	return res
}

func (c *Checker) get(ctx context.Context, target string) (int, time.Duration, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, 0, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	res, err := c.client.Do(req)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			err = errRequestTimedOut
		}
		return 0, time.Since(start), err
	}
	defer res.Body.Close()

	_, _ = io.Copy(io.Discard, res.Body)

	return res.StatusCode, time.Since(start), nil
}

var errRequestTimedOut = errors.New("request timed out")
