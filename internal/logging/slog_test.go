package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	l := slog.New(h)
	return NewSlogLogger(l), &buf
}

func TestSlogLogger_Levels_WriteExpectedOutput(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()

	tests := []struct {
		level string
		msg   string
		key   string
		val   string
	}{
		{"DEBUG", "dbg", "a", "1"},
		{"INFO", "inf", "b", "2"},
		{"WARN", "wrn", "c", "3"},
		{"ERROR", "err", "d", "4"},
	}

	for _, tc := range tests {
		if !strings.Contains(out, "level="+tc.level) {
			t.Fatalf("expected line with level=%s in output:\n%s", tc.level, out)
		}
		if !strings.Contains(out, "msg="+tc.msg) {
			t.Fatalf("expected line with msg=%q in output:\n%s", tc.msg, out)
		}
		if !strings.Contains(out, tc.key+"="+tc.val) {
			t.Fatalf("expected attribute %s=%s in output:\n%s", tc.key, tc.val, out)
		}
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log2 := log.With("request_id", "123", "identity", "alice")
	log2.Info(ctx, "hello", "k", "v")

	out := buf.String()
	wantSubs := []string{
		"level=INFO",
		"msg=hello",
		"request_id=123",
		"identity=alice",
		"k=v",
	}
	for _, s := range wantSubs {
		if !strings.Contains(out, s) {
			t.Fatalf("expected %q in output, got:\n%s", s, out)
		}
	}
}

func TestSlogLogger_ContextDoesNotPanic(t *testing.T) {
	log, _ := newTestLogger(t)

	ctx := context.TODO()
	log.Info(ctx, "ctx-ok")
	log.Debug(ctx, "ctx-ok")
	log.Warn(ctx, "ctx-ok")
	log.Error(ctx, "ctx-ok")
}

func TestNewJSONLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewJSONLogger(&buf, slog.LevelWarn)
	ctx := context.Background()

	log.Info(ctx, "hidden")
	log.Warn(ctx, "shown", "module", "test")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered out:\n%s", out)
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"module":"test"`) {
		t.Fatalf("expected JSON warn record, got:\n%s", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warning", want: slog.LevelWarn},
		{in: " error ", want: slog.LevelError},
		{in: "loud", want: slog.LevelInfo, wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseLevel(%q) err=%v, wantErr=%v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q)=%v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNop_DiscardsAndChains(t *testing.T) {
	var l Logger = Nop{}
	l = l.With("k", "v")
	l.Info(context.Background(), "nothing")
}
