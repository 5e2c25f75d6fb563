package pipeline

import (
	"context"
	"errors"
	"log"
	"net"
	"strings"
	"time"
)

const (
	retryBaseDelay = 300 * time.Millisecond
	retryAttempts  = 3
)

// withRetry runs fn up to retryAttempts times with exponential backoff,
// retrying only transient failures. Context cancellation aborts the wait
// between attempts.
func withRetry(ctx context.Context, fn func() error) error {
	delay := retryBaseDelay
	var err error

	for attempt := 1; attempt <= retryAttempts; attempt++ {
		err = fn()
		if err == nil || !shouldRetry(err) {
			return err
		}
		if attempt == retryAttempts {
			break
		}

		log.Printf("llm retry attempt=%d delay=%s error=%v", attempt, delay, err)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
	}

	return err
}

// shouldRetry reports whether an error looks transient. Deadline overruns,
// network timeouts, and common connection-level failures qualify; anything
// else is treated as permanent.
func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "server_error") {
		return true
	}
	if strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}
