package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pricestats/internal/logger"
)

func TestToString(t *testing.T) {
	if s := toString(nil); s != "" {
		t.Fatalf("nil -> %q, want empty", s)
	}
	if s := toString("abc"); s != "abc" {
		t.Fatalf("string -> %q, want 'abc'", s)
	}
	if s := toString(123); s != "" {
		t.Fatalf("non-string -> %q, want empty", s)
	}
}

func TestRequestLogger_Fields(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger.Configure(&buf, "info", false)
	t.Cleanup(logger.Init)

	router := gin.New()
	router.Use(RequestID(), RequestLogger())
	router.GET("/covariance", func(c *gin.Context) { c.String(http.StatusBadRequest, "Invalid token_1 value: foo") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/covariance?token_1=foo", nil))

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	want := map[string]any{
		"level":      "warn",
		"method":     "GET",
		"path":       "/covariance",
		"query":      "token_1=foo",
		"status":     float64(400),
		"message":    "http_request",
		"request_id": w.Header().Get(RequestIDHeader),
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s = %v, want %v", k, entry[k], v)
		}
	}
	if _, ok := entry["latency_ms"]; !ok {
		t.Errorf("latency_ms missing")
	}
}
