package service

import (
	"context"
	"time"
)

// retry runs op up to attempts times with a fixed delay between failed
// attempts, returning the first successful result or the last error.
// A canceled context stops the loop early.
func retry[T any](ctx context.Context, attempts int, delay time.Duration, op func() (T, error)) (T, error) {
	var result T
	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		result, err = op()
		if err == nil {
			return result, nil
		}

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(delay):
		}
	}

	return result, err
}
