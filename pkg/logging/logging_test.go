package logging

import (
	"bytes"
	"context"
	"log"
	"testing"
)

func newTestLogger() (*DefaultLogger, *bytes.Buffer, *bytes.Buffer) {
	var outBuf, errBuf bytes.Buffer
	d := &DefaultLogger{
		stdoutLogger: log.New(&outBuf, "", 0),
		stderrLogger: log.New(&errBuf, "", 0),
		level:        InfoLevel,
		fields:       make(Fields),
		useColors:    false,
	}
	return d, &outBuf, &errBuf
}

func TestDefaultLoggerFiltersBelowLevel(t *testing.T) {
	d, out, _ := newTestLogger()
	d.Debug("should be filtered")
	if out.Len() != 0 {
		t.Errorf("expected Debug to be filtered at InfoLevel, got %q", out.String())
	}

	d.Info("should appear")
	if out.Len() == 0 {
		t.Errorf("expected Info to be logged at InfoLevel")
	}
}

func TestDefaultLoggerRoutesByLevel(t *testing.T) {
	d, out, errOut := newTestLogger()
	d.SetLevel(DebugLevel)

	d.Info("to stdout")
	if out.Len() == 0 {
		t.Errorf("expected Info on stdout")
	}
	if errOut.Len() != 0 {
		t.Errorf("expected nothing on stderr yet, got %q", errOut.String())
	}

	d.Warn("to stderr")
	if errOut.Len() == 0 {
		t.Errorf("expected Warn on stderr")
	}
}

func TestDefaultLoggerWithFieldsMerges(t *testing.T) {
	d, out, _ := newTestLogger()
	d2 := d.WithFields(Fields{"a": 1})
	d2.Info("msg", Fields{"b": 2})

	got := out.String()
	if got == "" {
		t.Fatalf("expected output, got none")
	}
	if !bytes.Contains([]byte(got), []byte("a:1")) || !bytes.Contains([]byte(got), []byte("b:2")) {
		t.Errorf("expected both preset and call-site fields in output, got %q", got)
	}
}

func TestDefaultLoggerWithFieldsDoesNotMutateParent(t *testing.T) {
	d, _, _ := newTestLogger()
	base := d.WithFields(Fields{"x": 1})
	_ = base.WithFields(Fields{"y": 2})

	bd, ok := base.(*DefaultLogger)
	if !ok {
		t.Fatalf("expected *DefaultLogger")
	}
	if _, present := bd.fields["y"]; present {
		t.Errorf("child WithFields call mutated parent fields")
	}
}

func TestDefaultLoggerWithContextNoFields(t *testing.T) {
	d, _, _ := newTestLogger()
	got := d.WithContext(context.Background())
	if got != Logger(d) {
		t.Errorf("expected WithContext with no fields in context to return the same logger")
	}
}

func TestNoOpLoggerDoesNothing(t *testing.T) {
	var n NoOpLogger
	n.Debug("x")
	n.Info("x")
	n.Warn("x")
	n.Error(nil, "x")
	if n.WithFields(Fields{"a": 1}) != Logger(&n) {
		t.Errorf("expected WithFields to return the same no-op logger")
	}
	if n.WithContext(context.Background()) != Logger(&n) {
		t.Errorf("expected WithContext to return the same no-op logger")
	}
}

func TestSetGlobalLoggerNilInstallsNoOp(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	if _, ok := GetGlobalLogger().(*NoOpLogger); !ok {
		t.Errorf("expected SetGlobalLogger(nil) to install a NoOpLogger")
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		DebugLevel: "DEBUG",
		InfoLevel:  "INFO",
		WarnLevel:  "WARN",
		ErrorLevel: "ERROR",
		FatalLevel: "FATAL",
		Level(99):  "UNKNOWN",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}
