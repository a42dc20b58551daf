package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestGlobalDefaultsToNoop(t *testing.T) {
	SetGlobal(nil)

	logger := Global()
	if logger == nil {
		t.Fatal("Global() returned nil")
	}
	// Should not panic
	Info("test message")
}

func TestSetGlobal(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, &Config{Level: LevelDebug})

	SetGlobal(logger)
	defer SetGlobal(nil)

	if Global() != logger {
		t.Error("Global() should return the logger set by SetGlobal()")
	}

	Debug("debug via global")
	Info("info via global")
	Warn("warn via global")
	Error("error via global")

	out := buf.String()
	for _, want := range []string{"debug via global", "info via global", "warn via global", "error via global"} {
		if !strings.Contains(out, want) {
			t.Errorf("Global output missing %q", want)
		}
	}
}

func TestInitAndCloseGlobal(t *testing.T) {
	if err := InitGlobal(&Config{Level: LevelInfo, LogDir: t.TempDir()}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}
	if Global().LogPath() == "" {
		t.Error("Global logger should write to a file after InitGlobal")
	}

	if err := CloseGlobal(); err != nil {
		t.Errorf("CloseGlobal() error = %v", err)
	}
	if Global().LogPath() != "" {
		t.Error("Global logger should be the no-op logger after CloseGlobal")
	}
	if err := CloseGlobal(); err != nil {
		t.Errorf("Second CloseGlobal() error = %v", err)
	}
}
