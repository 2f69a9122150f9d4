package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func recordedFields(entry observer.LoggedEntry) map[string]zap.Field {
	fields := map[string]zap.Field{}
	for _, f := range entry.Context {
		fields[f.Key] = f
	}
	return fields
}

func TestTraceFieldsSampled(t *testing.T) {
	header := "105445aa7843bc8bf206b12000100000/1;o=1"
	fields := traceFields(header, "test-project")

	if len(fields) != 3 {
		t.Fatalf("expected 3 trace fields, got %d", len(fields))
	}
	if fields[0].String != "projects/test-project/traces/105445aa7843bc8bf206b12000100000" {
		t.Fatalf("unexpected trace resource: %s", fields[0].String)
	}
}

func TestTraceFieldsInvalidHeader(t *testing.T) {
	if fields := traceFields("not-a-trace-header", "test-project"); fields != nil {
		t.Fatalf("expected nil for invalid header, got %+v", fields)
	}
	if fields := traceFields("105445aa7843bc8bf206b12000100000/1;o=1", ""); fields != nil {
		t.Fatalf("expected nil without project ID, got %+v", fields)
	}
}

func TestTraceResource(t *testing.T) {
	got := traceResource("105445aa7843bc8bf206b12000100000/1;o=1", "test-project")
	if got != "projects/test-project/traces/105445aa7843bc8bf206b12000100000" {
		t.Fatalf("unexpected trace resource: %s", got)
	}
	if traceResource("garbage", "test-project") != "" {
		t.Fatal("expected empty resource for invalid header")
	}
}

func TestLoggerWithTraceAddsRequestID(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	logger := loggerWithTrace(base, "", "", "req-123")
	logger.Info("hello")

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := recordedFields(entries[0])
	if f, ok := fields["requestId"]; !ok || f.String != "req-123" {
		t.Fatalf("expected requestId field, got %+v", fields)
	}
}

func TestAccessLogger(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	access := AccessLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/tea", nil)
	req = req.WithContext(contextWithLogger(req.Context(), logger))
	resp := httptest.NewRecorder()
	access.ServeHTTP(resp, req)

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}
	if entries[0].Message != "request completed" {
		t.Fatalf("unexpected message: %s", entries[0].Message)
	}
	fields := recordedFields(entries[0])
	if f, ok := fields["status"]; !ok || f.Integer != http.StatusTeapot {
		t.Fatalf("expected status 418, got %+v", f)
	}
	if f, ok := fields["path"]; !ok || f.String != "/tea" {
		t.Fatalf("expected path /tea, got %+v", f)
	}
}

func TestLogErrorAppendsErrorField(t *testing.T) {
	core, recorded := observer.New(zapcore.ErrorLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))

	LogError(ctx, "failed", errors.New("boom"), zap.String("foo", "bar"))

	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := recordedFields(entries[0])
	if f, ok := fields["error"]; !ok || f.Type != zapcore.ErrorType {
		t.Fatalf("expected error field, got %+v", fields)
	}
	if f, ok := fields["foo"]; !ok || f.String != "bar" {
		t.Fatalf("expected foo field, got %+v", fields)
	}
}

func TestLogWarnAndInfoLevels(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	ctx := contextWithLogger(context.Background(), zap.New(core))

	LogInfo(ctx, "informational")
	LogWarn(ctx, "suspicious")

	entries := recorded.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("unexpected levels: %s, %s", entries[0].Level, entries[1].Level)
	}
}

func TestLoggerFromContextFallsBack(t *testing.T) {
	if LoggerFromContext(nil) == nil {
		t.Fatal("expected fallback logger for nil context")
	}
	if LoggerFromContext(context.Background()) == nil {
		t.Fatal("expected fallback logger for bare context")
	}
}

func TestTraceIDFromContext(t *testing.T) {
	if got := TraceIDFromContext(context.Background()); got != nil {
		t.Fatalf("expected nil trace ID, got %v", *got)
	}

	ctx := contextWithTraceID(context.Background(), "trace-xyz")
	got := TraceIDFromContext(ctx)
	if got == nil || *got != "trace-xyz" {
		t.Fatalf("expected trace-xyz, got %v", got)
	}

	// Empty trace IDs are not stored.
	ctx = contextWithTraceID(context.Background(), "")
	if got := TraceIDFromContext(ctx); got != nil {
		t.Fatalf("expected nil for empty trace ID, got %v", *got)
	}
}

func TestRequestLoggerFallsBackToRequestID(t *testing.T) {
	var captured *string
	h := RequestID()(RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = TraceIDFromContext(r.Context())
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "fallback-trace")
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if captured == nil || *captured != "fallback-trace" {
		t.Fatalf("expected request ID as trace fallback, got %v", captured)
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "", "third"); got != "third" {
		t.Fatalf("expected third, got %q", got)
	}
	if got := firstNonEmpty(); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
