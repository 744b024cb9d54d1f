package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/guttosm/pricestats/internal/logger"
)

const (
	DefaultMaxAttempts    = 15
	DefaultAttemptTimeout = 5 * time.Second
	DefaultRetryDelay     = 1500 * time.Millisecond
)

// RequestOptions describes one logical upstream call.
type RequestOptions struct {
	Method  string
	URL     string
	Headers map[string]string
	Body    any
}

// Recorder receives per-attempt and per-call observations.
type Recorder interface {
	RecordAttempt(outcome string)
	RecordCall(result string, seconds float64)
}

type noopRecorder struct{}

func (noopRecorder) RecordAttempt(string)       {}
func (noopRecorder) RecordCall(string, float64) {}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// Executor performs HTTP calls with bounded retries.
//
// Safe for concurrent use; it holds no per-call state.
type Executor struct {
	client      *http.Client
	headers     map[string]string
	maxAttempts int
	timeout     time.Duration
	delay       time.Duration
	sleep       Sleeper
	rec         Recorder
}

// NewExecutor builds an Executor with the default budget
// (15 attempts, 5s per attempt, 1.5s between HTTP failures).
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		maxAttempts: DefaultMaxAttempts,
		timeout:     DefaultAttemptTimeout,
		delay:       DefaultRetryDelay,
		sleep:       sleepContext,
		rec:         noopRecorder{},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.client == nil {
		e.client = &http.Client{Timeout: e.timeout}
	}
	return e
}

// WithHTTPClient replaces the underlying client. Its Timeout is used as the
// per-attempt timeout.
func WithHTTPClient(c *http.Client) ExecutorOption {
	return func(e *Executor) { e.client = c }
}

// WithHeaders sets headers sent with every request.
func WithHeaders(h map[string]string) ExecutorOption {
	return func(e *Executor) {
		e.headers = make(map[string]string, len(h))
		for k, v := range h {
			e.headers[k] = v
		}
	}
}

// WithMaxAttempts sets the attempt budget. Values below 1 are ignored.
func WithMaxAttempts(n int) ExecutorOption {
	return func(e *Executor) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// WithAttemptTimeout sets the network timeout of each attempt.
func WithAttemptTimeout(d time.Duration) ExecutorOption {
	return func(e *Executor) {
		if d > 0 {
			e.timeout = d
		}
	}
}

// WithRetryDelay sets the wait applied after an HTTP-level failure.
func WithRetryDelay(d time.Duration) ExecutorOption {
	return func(e *Executor) {
		if d >= 0 {
			e.delay = d
		}
	}
}

// WithSleeper replaces the wait function; tests use it to avoid real delays.
func WithSleeper(s Sleeper) ExecutorOption {
	return func(e *Executor) { e.sleep = s }
}

// WithRecorder attaches a metrics recorder.
func WithRecorder(r Recorder) ExecutorOption {
	return func(e *Executor) {
		if r != nil {
			e.rec = r
		}
	}
}

// attemptResult is what one call to upstream produced.
type attemptResult struct {
	outcome outcome
	status  int
	body    json.RawMessage
	err     error
}

// Execute performs the call and returns the JSON document of the first 200
// response. The document is returned verbatim.
//
// Failures:
//   - ErrUnsupportedMethod for methods other than GET/POST, with no attempt made.
//   - ErrFatalStatus wrapping *StatusError on 504, without retrying.
//   - ErrAttemptsExhausted once the budget is spent.
//   - ctx.Err() when the context ends during an attempt or a wait.
func (e *Executor) Execute(ctx context.Context, opts *RequestOptions) (json.RawMessage, error) {
	if opts.Method != http.MethodGet && opts.Method != http.MethodPost {
		return nil, fmt.Errorf("%w: <%s>", ErrUnsupportedMethod, opts.Method)
	}

	start := time.Now()
	st := stateAttempting
	attempt := 0
	var last attemptResult

	for {
		switch st {
		case stateAttempting:
			attempt++
			last = e.attempt(ctx, opts, attempt)
			e.rec.RecordAttempt(last.outcome.String())
			if last.outcome == outcomeTransport && ctx.Err() != nil {
				e.rec.RecordCall("canceled", time.Since(start).Seconds())
				return nil, ctx.Err()
			}
			st = next(st, last.outcome, attempt, e.maxAttempts)

		case stateSleeping:
			if err := e.sleep(ctx, e.delay); err != nil {
				e.rec.RecordCall("canceled", time.Since(start).Seconds())
				return nil, err
			}
			st = next(st, last.outcome, attempt, e.maxAttempts)

		case stateSucceeded:
			e.rec.RecordCall("success", time.Since(start).Seconds())
			return last.body, nil

		case stateFailedFatal:
			e.rec.RecordCall("fatal", time.Since(start).Seconds())
			if last.err != nil {
				return nil, last.err
			}
			return nil, fmt.Errorf("%w: %w", ErrFatalStatus, &StatusError{URL: opts.URL, Status: last.status})

		case stateFailedExhausted:
			e.rec.RecordCall("exhausted", time.Since(start).Seconds())
			logger.L().Error().Str("url", opts.URL).Int("attempts", attempt).Msg("upstream attempts exhausted")
			return nil, fmt.Errorf("%w after %d attempts, check URL: %s", ErrAttemptsExhausted, attempt, opts.URL)
		}
	}
}

func (e *Executor) attempt(ctx context.Context, opts *RequestOptions, n int) attemptResult {
	req, err := e.buildRequest(ctx, opts)
	if err != nil {
		return attemptResult{outcome: outcomeInvalid, err: err}
	}

	resp, err := e.client.Do(req)
	if err != nil {
		logger.L().Warn().Str("url", opts.URL).Int("attempt", n).Err(err).Msg("upstream transport failure")
		return attemptResult{outcome: outcomeTransport, err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, readErr := io.ReadAll(resp.Body)
	o := classify(resp.StatusCode)

	switch o {
	case outcomeSuccess:
		if readErr != nil {
			logger.L().Warn().Str("url", opts.URL).Int("attempt", n).Err(readErr).Msg("upstream body read failure")
			return attemptResult{outcome: outcomeTransport, status: resp.StatusCode, err: readErr}
		}
		if !json.Valid(body) {
			return attemptResult{
				outcome: outcomeInvalid,
				status:  resp.StatusCode,
				err:     fmt.Errorf("decode response from %s: invalid JSON", opts.URL),
			}
		}
		return attemptResult{outcome: o, status: resp.StatusCode, body: json.RawMessage(body)}

	case outcomeFatalStatus:
		return attemptResult{outcome: o, status: resp.StatusCode}

	default:
		ev := logger.L().Warn()
		msg := "unexpected upstream response"
		if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusTooManyRequests {
			ev = logger.L().Error()
			msg = "upstream rejected request"
		}
		ev.Str("url", opts.URL).Int("status", resp.StatusCode).Int("attempt", n).Str("body", string(body)).Msg(msg)
		return attemptResult{outcome: o, status: resp.StatusCode}
	}
}

func (e *Executor) buildRequest(ctx context.Context, opts *RequestOptions) (*http.Request, error) {
	var body io.Reader
	if opts.Method == http.MethodPost && opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, opts.URL, body)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	for k, v := range e.headers {
		req.Header.Set(k, v)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
