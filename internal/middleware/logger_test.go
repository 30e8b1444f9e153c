package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/techlens/provider-lab/internal/middleware"
)

func TestLogger_LogsRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	wrapped := middleware.Logger(logger)(okHandler())

	req := httptest.NewRequest("GET", "/api/providers", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	out := buf.String()

	if !strings.Contains(out, "method=GET") {
		t.Errorf("log output missing method, got %q", out)
	}

	if !strings.Contains(out, "path=/api/providers") {
		t.Errorf("log output missing path, got %q", out)
	}

	if !strings.Contains(out, "status=200") {
		t.Errorf("log output missing status, got %q", out)
	}
}

func TestLogger_RecordsErrorStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	wrapped := middleware.Logger(logger)(next)

	req := httptest.NewRequest("GET", "/missing", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if !strings.Contains(buf.String(), "status=404") {
		t.Errorf("log output missing error status, got %q", buf.String())
	}
}

func TestLogger_DoesNotLogQueryString(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	wrapped := middleware.Logger(logger)(okHandler())

	req := httptest.NewRequest("GET", "/api/providers?search=secret-term", nil)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if strings.Contains(buf.String(), "secret-term") {
		t.Errorf("log output should not contain query values, got %q", buf.String())
	}
}

func TestMaxBody_LimitsRequestBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 1024)
		if _, err := r.Body.Read(buf); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	wrapped := middleware.MaxBody(8)(next)

	body := strings.NewReader(strings.Repeat("x", 64))
	req := httptest.NewRequest("POST", "/api/providers", body)
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
}

func TestMaxBody_AllowsSmallBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 1024)
		n, _ := r.Body.Read(buf)
		w.WriteHeader(http.StatusOK)
		w.Write(buf[:n])
	})

	wrapped := middleware.MaxBody(1024)(next)

	req := httptest.NewRequest("POST", "/api/providers", strings.NewReader("small"))
	rec := httptest.NewRecorder()
	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	if rec.Body.String() != "small" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "small")
	}
}
