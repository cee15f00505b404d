package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"shellac/internal/config"
	"shellac/internal/logging"
)

func TestNewConsoleWritesAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("generating script", "track_count", 3)

	out := buf.String()
	if !strings.Contains(out, "INFO") {
		t.Fatalf("missing level label in %q", out)
	}
	if !strings.Contains(out, "generating script") {
		t.Fatalf("missing message in %q", out)
	}
	if !strings.Contains(out, "track_count=3") {
		t.Fatalf("missing attr in %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no color codes for non-TTY writer, got %q", out)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("event", "key", "value")
	if !strings.Contains(buf.String(), `"key":"value"`) {
		t.Fatalf("unexpected json output %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	logger, err := logging.NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger instance")
	}
}

func TestRunIDContext(t *testing.T) {
	ctx := logging.WithRunID(context.Background())
	id, ok := logging.RunIDFromContext(ctx)
	if !ok || id == "" {
		t.Fatal("expected run id on context")
	}

	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logging.WithContext(ctx, logger).Info("tagged")
	if !strings.Contains(buf.String(), "run_id="+id) {
		t.Fatalf("expected run id in output, got %q", buf.String())
	}
}

func TestNopLoggerSilent(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("nothing happens")
}
