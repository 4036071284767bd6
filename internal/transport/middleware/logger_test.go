package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/budgetms/budgetvote/pkg/ctxutil"
)

func newCaptureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})), &buf
}

func serveWithLogger(t *testing.T, status int, method, path string, mutate func(*http.Request) *http.Request) string {
	t.Helper()

	logger, buf := newCaptureLogger()
	wrapped := Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))

	req := httptest.NewRequest(method, path, nil)
	if mutate != nil {
		req = mutate(req)
	}
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	return buf.String()
}

func TestLogger_RecordsRequestLine(t *testing.T) {
	out := serveWithLogger(t, http.StatusOK, http.MethodGet, "/api/voting/sessions/ab12cd34", nil)

	for _, want := range []string{"http.request", "GET", "/api/voting/sessions/ab12cd34", `"status":200`, "INFO"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %q", want, out)
		}
	}
}

func TestLogger_ServerErrorsLogAtError(t *testing.T) {
	out := serveWithLogger(t, http.StatusInternalServerError, http.MethodPost, "/api/budget/items", nil)

	if !strings.Contains(out, "ERROR") {
		t.Errorf("expected ERROR level for status 500, got %q", out)
	}
	if !strings.Contains(out, `"status":500`) {
		t.Errorf("expected status 500 in log, got %q", out)
	}
}

func TestLogger_ClientErrorsStayAtInfo(t *testing.T) {
	out := serveWithLogger(t, http.StatusForbidden, http.MethodPost, "/api/voting/sessions/ab12cd34/votes", nil)

	if strings.Contains(out, "ERROR") {
		t.Errorf("4xx must not log at ERROR, got %q", out)
	}
	if !strings.Contains(out, `"status":403`) {
		t.Errorf("expected status 403 in log, got %q", out)
	}
}

func TestLogger_IncludesRequestID(t *testing.T) {
	out := serveWithLogger(t, http.StatusOK, http.MethodGet, "/", func(r *http.Request) *http.Request {
		return r.WithContext(ctxutil.WithRequestID(r.Context(), "req-77f0"))
	})

	if !strings.Contains(out, "req-77f0") {
		t.Errorf("expected request_id in log, got %q", out)
	}
}
