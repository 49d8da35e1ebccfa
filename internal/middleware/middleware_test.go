package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/nyayai/LegalAPI/internal/config"
	"github.com/nyayai/LegalAPI/internal/data/redisStore"
	"github.com/redis/go-redis/v9"
)

func TestWrap_InjectsATraceId(t *testing.T) {
	InitRateLimiter(nil)

	var gotTrace string
	handler := Wrap(func(w http.ResponseWriter, r *http.Request) {
		gotTrace, _ = r.Context().Value(config.TRACE_ID_KEY).(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "203.0.113.9:1111"
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Got status %d", rec.Code)
	}
	if gotTrace == "" {
		t.Error("Expected a generated trace id in the request context")
	}
	if req.Header.Get("X-Trace-Id") != gotTrace {
		t.Error("The trace id header should match the context value")
	}
}

func TestWrap_KeepsAProvidedTraceId(t *testing.T) {
	InitRateLimiter(nil)

	var gotTrace string
	handler := Wrap(func(w http.ResponseWriter, r *http.Request) {
		gotTrace, _ = r.Context().Value(config.TRACE_ID_KEY).(string)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.RemoteAddr = "203.0.113.10:1111"
	req.Header.Set("X-Trace-Id", "caller-supplied-trace")
	handler(httptest.NewRecorder(), req)

	if gotTrace != "caller-supplied-trace" {
		t.Errorf("Got trace %q, want the caller's", gotTrace)
	}
}

func TestWrap_RateLimitReturns429(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	InitRateLimiter(redisStore.NewTestStore(client))
	defer InitRateLimiter(nil)

	handler := Wrap(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	var lastCode int
	for i := 0; i < config.RateLimitRequestsWindow+1; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/verify", nil)
		req.RemoteAddr = "198.51.100.77:2222"
		rec := httptest.NewRecorder()
		handler(rec, req)
		lastCode = rec.Code
	}

	if lastCode != http.StatusTooManyRequests {
		t.Errorf("Got status %d after exceeding the window, want 429", lastCode)
	}
}
