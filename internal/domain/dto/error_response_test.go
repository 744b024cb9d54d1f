package dto

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorResponse_Error(t *testing.T) {
	assert.Equal(t, "rate limit exceeded", ErrorResponse{Message: "rate limit exceeded"}.Error())
	assert.Equal(t, "Internal server error: boom",
		ErrorResponse{Message: "Internal server error", ErrorDetails: "boom"}.Error())
}

func TestNewErrorResponse(t *testing.T) {
	e := NewErrorResponse("rate limit exceeded", nil)
	assert.Empty(t, e.ErrorDetails)
	assert.WithinDuration(t, time.Now(), e.Timestamp, time.Second)

	b, err := json.Marshal(e)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"error"`)

	e = NewErrorResponse("Internal server error", errors.New("boom"))
	assert.Equal(t, "boom", e.ErrorDetails)

	b, err = json.Marshal(e)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"error":"boom"`)
}
