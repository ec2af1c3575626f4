package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kapu/member-directory-go/internal/domain"
	"github.com/kapu/member-directory-go/internal/service"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, upstream http.HandlerFunc, maxRangeSize int) *gin.Engine {
	t.Helper()

	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	fetcher := service.NewDocumentFetcher(server.URL, 0, zap.NewNop())
	engine := service.NewExtractorEngine(fetcher, service.EngineConfig{
		DefaultChunkSize:       3,
		DefaultInterChunkDelay: time.Millisecond,
	}, zap.NewNop())

	return NewRouter(NewHandler(engine, maxRangeSize), zap.NewNop())
}

func serveProfile(w http.ResponseWriter, r *http.Request) {
	var memberID int
	fmt.Sscanf(r.URL.Path, "/member/%d", &memberID)
	fmt.Fprintf(w, `<html><body>
<h1>John Patel</h1>
<p>LM Number: %d</p>
<p>Name: John</p>
<p>Surname: Patel</p>
<p>Gaam: Karamsad</p>
<p>Area: Wembley</p>
<p>Mobile Number: 9876543210</p>
<p>Status: Active</p>
</body></html>`, memberID)
}

func TestGetMemberReturnsRecord(t *testing.T) {
	router := newTestRouter(t, serveProfile, 100)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members/42", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var record domain.MemberRecord
	if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if record.MemberID != 42 || record.LMNumber != "42" {
		t.Errorf("unexpected record: %+v", record)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID response header")
	}
}

func TestGetMemberRejectsBadID(t *testing.T) {
	router := newTestRouter(t, serveProfile, 100)

	for _, path := range []string{"/api/members/abc", "/api/members/-1", "/api/members/0"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, w.Code)
		}
	}
}

func TestGetMemberUpstreamFailure(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}, 100)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members/42", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error == "" || resp.RequestID == "" {
		t.Errorf("error payload incomplete: %+v", resp)
	}
}

func TestGetMemberRangeValidation(t *testing.T) {
	router := newTestRouter(t, serveProfile, 10)

	tests := []struct {
		name  string
		query string
	}{
		{"missing params", ""},
		{"bad start", "?start=abc&end=5"},
		{"bad end", "?start=1&end=x"},
		{"inverted", "?start=5&end=1"},
		{"oversized range", "?start=1&end=50"},
		{"bad chunk size", "?start=1&end=5&chunkSize=0"},
		{"bad delay", "?start=1&end=5&delayMs=-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/members/range"+tt.query, nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestGetMemberRangeReturnsBatchResult(t *testing.T) {
	router := newTestRouter(t, serveProfile, 10)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members/range?start=1&end=5&chunkSize=2&delayMs=1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.BatchResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to decode batch result: %v", err)
	}
	if result.Summary.TotalProcessed != 5 || result.Summary.SuccessCount != 5 {
		t.Errorf("unexpected summary: %+v", result.Summary)
	}
}

func TestGetMemberRangeZeroDelaySkipsDefaultPause(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(serveProfile))
	t.Cleanup(server.Close)

	fetcher := service.NewDocumentFetcher(server.URL, 0, zap.NewNop())
	engine := service.NewExtractorEngine(fetcher, service.EngineConfig{
		DefaultChunkSize:       2,
		DefaultInterChunkDelay: 300 * time.Millisecond,
	}, zap.NewNop())
	router := NewRouter(NewHandler(engine, 100), zap.NewNop())

	start := time.Now()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/members/range?start=1&end=6&chunkSize=2&delayMs=0", nil)
	router.ServeHTTP(w, req)
	elapsed := time.Since(start)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	// Two chunk boundaries at the 300ms default would add 600ms.
	if elapsed >= 250*time.Millisecond {
		t.Errorf("delayMs=0 still paused between chunks: took %v", elapsed)
	}
}

func TestGetMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, serveProfile, 10)

	// Drive one extraction so the counters move.
	seed := httptest.NewRecorder()
	router.ServeHTTP(seed, httptest.NewRequest(http.MethodGet, "/api/members/1", nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/extractor/metrics", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var snap domain.MetricsSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("failed to decode snapshot: %v", err)
	}
	if snap.TotalRequests != 1 || snap.SuccessfulExtractions != 1 {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, serveProfile, 10)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
