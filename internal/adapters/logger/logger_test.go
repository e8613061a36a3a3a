package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/MaryChris21/Estify/internal/core/port"
)

type capturedPost struct {
	tag  string
	data map[string]interface{}
}

type fakePoster struct {
	posts []capturedPost
}

func (f *fakePoster) Post(tag string, message interface{}) error {
	f.posts = append(f.posts, capturedPost{tag: tag, data: message.(map[string]interface{})})
	return nil
}

func TestSlogAdapterJSONCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug, IsJSON: true})

	logger.WithFields(port.Fields{"trace_id": "t-1"}).Error("boom", errors.New("bad"), port.Fields{"property_id": "p-1"})

	var rec map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if rec["msg"] != "boom" || rec["trace_id"] != "t-1" || rec["property_id"] != "p-1" || rec["err"] != "bad" {
		t.Fatalf("unexpected record: %v", rec)
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn})

	logger.Info("hidden", nil)
	logger.Warn("shown", nil)

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestFluentAdapterPostsMergedFields(t *testing.T) {
	poster := &fakePoster{}
	adapter, err := NewFluentLoggerAdapter(poster, slog.LevelInfo)
	if err != nil {
		t.Fatalf("adapter: %v", err)
	}

	child := adapter.WithFields(port.Fields{"component": "test"})
	child.Debug("dropped", nil)
	child.Warn("kept", port.Fields{"k": "v"})

	if len(poster.posts) != 1 {
		t.Fatalf("expected one post, got %d", len(poster.posts))
	}
	p := poster.posts[0]
	if p.tag != "warn" || p.data["message"] != "kept" || p.data["component"] != "test" || p.data["k"] != "v" {
		t.Fatalf("unexpected post: %+v", p)
	}

	if _, ok := adapter.fields["component"]; ok {
		t.Fatalf("WithFields must not leak into the parent")
	}
}

func TestMultiLoggerNeedsASink(t *testing.T) {
	if _, err := NewMultiLoggerAdapter(); err == nil {
		t.Fatalf("expected error without loggers")
	}
	if _, err := NewMultiLoggerAdapter(nil, nil); err == nil {
		t.Fatalf("expected error when every sink is nil")
	}

	poster := &fakePoster{}
	fluentLogger, _ := NewFluentLoggerAdapter(poster, nil)
	multi, err := NewMultiLoggerAdapter(fluentLogger, fluentLogger)
	if err != nil {
		t.Fatalf("multi: %v", err)
	}
	multi.Info("twice", nil)
	if len(poster.posts) != 2 {
		t.Fatalf("expected fan-out to both sinks, got %d", len(poster.posts))
	}
}

func TestMultiLoggerSkipsNilSinks(t *testing.T) {
	poster := &fakePoster{}
	fluentLogger, _ := NewFluentLoggerAdapter(poster, nil)

	single, err := NewMultiLoggerAdapter(nil, fluentLogger)
	if err != nil {
		t.Fatalf("multi: %v", err)
	}
	if single != port.LoggerPort(fluentLogger) {
		t.Fatalf("a single sink must be returned unwrapped, got %T", single)
	}

	multi, _ := NewMultiLoggerAdapter(fluentLogger, nil, fluentLogger)
	multi.WithFields(port.Fields{"trace_id": "t-1"}).Warn("scoped", nil)
	if len(poster.posts) != 2 {
		t.Fatalf("expected two posts, got %d", len(poster.posts))
	}
	for _, p := range poster.posts {
		if p.data["trace_id"] != "t-1" {
			t.Fatalf("scoped fields missing: %+v", p.data)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{"debug": slog.LevelDebug, "WARN": slog.LevelWarn, "error": slog.LevelError, "": slog.LevelInfo}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("%q: expected %v, got %v", in, want, got)
		}
	}
}
