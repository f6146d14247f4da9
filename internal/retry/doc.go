// Package retry runs an operation a fixed number of times with a fixed pause
// between attempts.
//
// Usage:
//
//	policy := retry.Policy{Attempts: 3, Delay: 2 * time.Second}
//	attempts := policy.Do(ctx, func(attempt int) bool {
//	    return probe() == nil
//	})
//
// The delay is not exponential and no pause follows the final attempt.
package retry
