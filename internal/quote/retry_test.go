package quote

import (
	"net/http"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		status int
		want   outcome
	}{
		{http.StatusOK, outcomeSuccess},
		{http.StatusNotFound, outcomeRetryableStatus},
		{http.StatusTooManyRequests, outcomeRetryableStatus},
		{http.StatusInternalServerError, outcomeRetryableStatus},
		{http.StatusBadRequest, outcomeRetryableStatus},
		{http.StatusGatewayTimeout, outcomeFatalStatus},
	}
	for _, c := range cases {
		if got := classify(c.status); got != c.want {
			t.Fatalf("classify(%d)=%v, want %v", c.status, got, c.want)
		}
	}
}

func TestNext_Transitions(t *testing.T) {
	cases := []struct {
		name    string
		from    state
		o       outcome
		attempt int
		want    state
	}{
		{"success", stateAttempting, outcomeSuccess, 1, stateSucceeded},
		{"fatal status", stateAttempting, outcomeFatalStatus, 1, stateFailedFatal},
		{"invalid body", stateAttempting, outcomeInvalid, 3, stateFailedFatal},
		{"http failure sleeps", stateAttempting, outcomeRetryableStatus, 1, stateSleeping},
		{"transport retries immediately", stateAttempting, outcomeTransport, 1, stateAttempting},
		{"http failure on last attempt", stateAttempting, outcomeRetryableStatus, 15, stateFailedExhausted},
		{"transport failure on last attempt", stateAttempting, outcomeTransport, 15, stateFailedExhausted},
		{"wake up", stateSleeping, outcomeRetryableStatus, 4, stateAttempting},
		{"terminal stays", stateSucceeded, outcomeTransport, 2, stateSucceeded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := next(tc.from, tc.o, tc.attempt, 15); got != tc.want {
				t.Fatalf("next(%v,%v,%d)=%v, want %v", tc.from, tc.o, tc.attempt, got, tc.want)
			}
		})
	}
}
