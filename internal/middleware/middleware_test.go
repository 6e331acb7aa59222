package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(Logger(logger))
	r.Use(Metrics)
	r.Use(WithLogger(logger))

	r.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/fail", func(w http.ResponseWriter, r *http.Request) {
		LoggerFrom(r.Context(), nil).Info("handler log")
		w.WriteHeader(http.StatusInternalServerError)
	})
	return r
}

func TestLogger(t *testing.T) {
	testCases := []struct {
		name      string
		path      string
		wantLevel string
		wantRoute string
		status    string
	}{
		{name: "ok", path: "/orders/42", wantLevel: "level=INFO", wantRoute: "route=/orders/{id}", status: "status=200"},
		{name: "server error", path: "/fail", wantLevel: "level=ERROR", wantRoute: "route=/fail", status: "status=500"},
		{name: "not found", path: "/missing", wantLevel: "level=WARN", wantRoute: "path=/missing", status: "status=404"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			rr := httptest.NewRecorder()
			newTestRouter(logger).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))

			out := buf.String()
			assert.Contains(t, out, tc.wantLevel)
			assert.Contains(t, out, tc.wantRoute)
			assert.Contains(t, out, tc.status)
			assert.Contains(t, out, "request_id=")
		})
	}
}

func TestWithLogger_CarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	rr := httptest.NewRecorder()
	newTestRouter(logger).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/fail", nil))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "handler log")
	assert.Contains(t, string(lines[0]), "request_id=")
}

func TestMetrics(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/orders/{id}", "200")
	before := testutil.ToFloat64(counter)

	r := newTestRouter(logger)
	for range 3 {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/1", nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
	assert.Zero(t, testutil.ToFloat64(httpInFlight))
}

func TestResponseWriter_KeepsFirstStatus(t *testing.T) {
	rr := httptest.NewRecorder()
	rw := wrapResponseWriter(rr)

	rw.Write([]byte("hello"))
	rw.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, 5, rw.bytes)
}
