package dto

import "time"

// ErrorResponse is the JSON body returned by middleware-level failures
// (panics, rate limiting, errors attached to the gin context).
type ErrorResponse struct {
	Message      string    `json:"message" example:"Internal server error"`
	ErrorDetails string    `json:"error,omitempty" example:"runtime error"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse stamped with the current time.
// err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	e := ErrorResponse{Message: message, Timestamp: time.Now()}
	if err != nil {
		e.ErrorDetails = err.Error()
	}
	return e
}
