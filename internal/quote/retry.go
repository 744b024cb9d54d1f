package quote

import (
	"context"
	"net/http"
	"time"
)

// state is a step of the retry loop.
type state int

const (
	stateAttempting state = iota
	stateSleeping
	stateSucceeded
	stateFailedFatal
	stateFailedExhausted
)

func (s state) String() string {
	switch s {
	case stateAttempting:
		return "attempting"
	case stateSleeping:
		return "sleeping"
	case stateSucceeded:
		return "succeeded"
	case stateFailedFatal:
		return "failed_fatal"
	case stateFailedExhausted:
		return "failed_exhausted"
	default:
		return "unknown"
	}
}

// outcome classifies a single attempt.
type outcome int

const (
	outcomeSuccess outcome = iota
	// outcomeRetryableStatus covers 404, 429 and any other non-200 except 504.
	outcomeRetryableStatus
	outcomeFatalStatus
	// outcomeTransport is a connection error or timeout; no response was read.
	outcomeTransport
	// outcomeInvalid is a 200 whose body is not JSON.
	outcomeInvalid
)

func (o outcome) String() string {
	switch o {
	case outcomeSuccess:
		return "success"
	case outcomeRetryableStatus:
		return "retryable_status"
	case outcomeFatalStatus:
		return "fatal_status"
	case outcomeTransport:
		return "transport"
	case outcomeInvalid:
		return "invalid_body"
	default:
		return "unknown"
	}
}

// classify maps an HTTP status to an attempt outcome.
func classify(status int) outcome {
	switch status {
	case http.StatusOK:
		return outcomeSuccess
	case http.StatusGatewayTimeout:
		return outcomeFatalStatus
	default:
		return outcomeRetryableStatus
	}
}

// next is the transition function of the retry loop. attempt is the 1-based
// number of the attempt that produced o; limit is the attempt budget.
//
// HTTP-level failures pass through stateSleeping, transport failures go
// straight back to stateAttempting. No sleep follows the last attempt.
func next(s state, o outcome, attempt, limit int) state {
	switch s {
	case stateSleeping:
		return stateAttempting
	case stateAttempting:
		switch o {
		case outcomeSuccess:
			return stateSucceeded
		case outcomeFatalStatus, outcomeInvalid:
			return stateFailedFatal
		case outcomeRetryableStatus:
			if attempt >= limit {
				return stateFailedExhausted
			}
			return stateSleeping
		case outcomeTransport:
			if attempt >= limit {
				return stateFailedExhausted
			}
			return stateAttempting
		}
	}
	return s
}

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
