package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:       "info",
		Format:      "json",
		ServiceName: "test-service",
		Version:     "1.0.0",
		Environment: "test",
		AddSource:   false,
	}

	InitLoggerWithWriter(config, &buf)

	Info("test message", "key", "value", "number", 42)

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if logEntry["service"] != "test-service" {
		t.Errorf("Expected service=test-service, got %v", logEntry["service"])
	}

	if logEntry["version"] != "1.0.0" {
		t.Errorf("Expected version=1.0.0, got %v", logEntry["version"])
	}

	if logEntry["environment"] != "test" {
		t.Errorf("Expected environment=test, got %v", logEntry["environment"])
	}

	if logEntry["msg"] != "test message" {
		t.Errorf("Expected msg='test message', got %v", logEntry["msg"])
	}

	if logEntry["key"] != "value" {
		t.Errorf("Expected key=value, got %v", logEntry["key"])
	}
}

func TestTextLogging(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:  "debug",
		Format: "text",
	}

	InitLoggerWithWriter(config, &buf)

	Debug("debug message", "detail", "visible")

	out := buf.String()
	if !strings.Contains(out, "debug message") {
		t.Errorf("Expected output to contain message, got %q", out)
	}
	if !strings.Contains(out, "detail=visible") {
		t.Errorf("Expected output to contain attribute, got %q", out)
	}
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	config := Config{
		Level:  "warn",
		Format: "text",
	}

	InitLoggerWithWriter(config, &buf)

	Info("should be filtered")
	Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "should be filtered") {
		t.Errorf("Info log leaked past warn level: %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("Warn log missing: %q", out)
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	if _, ok := RequestIDFromContext(ctx); ok {
		t.Fatal("Empty context should have no request ID")
	}

	id := GenerateRequestID()
	ctx = WithRequestID(ctx, id)

	got, ok := RequestIDFromContext(ctx)
	if !ok {
		t.Fatal("Request ID missing after WithRequestID")
	}
	if got != id {
		t.Errorf("Expected %q, got %q", id, got)
	}
}

func TestFromContextIncludesRequestID(t *testing.T) {
	var buf bytes.Buffer

	InitLoggerWithWriter(Config{Level: "info", Format: "json"}, &buf)

	ctx := WithRequestID(context.Background(), "req-123")
	FromContext(ctx).Info("traced")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if logEntry["request_id"] != "req-123" {
		t.Errorf("Expected request_id=req-123, got %v", logEntry["request_id"])
	}
}
