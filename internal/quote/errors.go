package quote

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedMethod is returned before any attempt for methods other than GET and POST.
	ErrUnsupportedMethod = errors.New("method not supported")

	// ErrFatalStatus is returned when upstream answers with a status that aborts retrying.
	ErrFatalStatus = errors.New("fatal upstream status")

	// ErrAttemptsExhausted is returned once the attempt budget is spent without a 200.
	ErrAttemptsExhausted = errors.New("attempts reached")

	// ErrMalformedData is returned when the chart document lacks the expected fields.
	ErrMalformedData = errors.New("malformed upstream data")
)

// StatusError describes a non-200 upstream response.
type StatusError struct {
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("URL: %s Status: %d | can't process request", e.URL, e.Status)
}
