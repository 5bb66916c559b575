package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func reset(t *testing.T) {
	t.Helper()
	root.Store(nil)
	t.Cleanup(func() { root.Store(nil) })
}

func TestInit_JSONWithServiceFields(t *testing.T) {
	reset(t)

	var buf bytes.Buffer
	log := Init(Options{Level: "debug", Output: &buf, Service: "legal-assistant", Version: "1.2.3"})
	log.Debug().Msg("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if entry["service"] != "legal-assistant" || entry["version"] != "1.2.3" {
		t.Fatalf("missing service fields: %v", entry)
	}
	if entry["message"] != "hello" || entry["level"] != "debug" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestInit_OnlyFirstCallApplies(t *testing.T) {
	reset(t)

	var first, second bytes.Buffer
	Init(Options{Output: &first})
	Init(Options{Output: &second})

	l := Get()
	l.Info().Msg("x")
	if first.Len() == 0 || second.Len() != 0 {
		t.Fatalf("expected output only on the first writer")
	}
}

func TestComponent(t *testing.T) {
	reset(t)

	var buf bytes.Buffer
	Init(Options{Output: &buf})
	l := Component("llm")
	l.Info().Msg("x")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["component"] != "llm" {
		t.Fatalf("missing component field: %v", entry)
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	reset(t)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	Get()
}

func TestInit_PrettyWritesConsoleLines(t *testing.T) {
	reset(t)

	var buf bytes.Buffer
	Init(Options{Output: &buf, Pretty: true, Service: "legal-assistant"})
	l := Get()
	l.Info().Msg("listening")

	line := buf.String()
	if json.Valid(buf.Bytes()) {
		t.Fatalf("expected console output, got JSON %q", line)
	}
	if !strings.Contains(line, "listening") || !strings.Contains(line, "legal-assistant") {
		t.Fatalf("unexpected console line %q", line)
	}
}

func TestInit_SkipsEmptyServiceFields(t *testing.T) {
	reset(t)

	var buf bytes.Buffer
	Init(Options{Output: &buf, Level: "warn"})
	l := Get()
	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected exactly one JSON line, got %q", buf.String())
	}
	if _, ok := entry["service"]; ok {
		t.Fatalf("service must be omitted when empty: %v", entry)
	}
	if entry["message"] != "kept" {
		t.Fatalf("unexpected entry: %v", entry)
	}
}

func TestLevelOf(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" info ":  zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := levelOf(in); got != want {
			t.Errorf("levelOf(%q) = %s, want %s", in, got, want)
		}
	}
}
