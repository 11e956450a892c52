package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"warning", zapcore.WarnLevel},
		{" error ", zapcore.ErrorLevel},
		{"verbose", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInitialize_SilentByDefault(t *testing.T) {
	if err := Initialize(Options{}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if GetLogger().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("logger should be a no-op when no level is set")
	}
}

func TestInitialize_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "form.log")

	if err := Initialize(Options{Level: "debug", File: path}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer SetLogger(nil)

	LogTransition("view", "form", "results")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "State transition") {
		t.Errorf("log file should contain the transition entry, got: %s", data)
	}
}

func TestInitialize_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.json")

	if err := Initialize(Options{Level: "debug", File: path, JSON: true}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	defer SetLogger(nil)

	LogTransition("view", "form", "results")
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	if !scanner.Scan() {
		t.Fatal("log file is empty")
	}
	var entry map[string]any
	if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, scanner.Bytes())
	}
	if entry["msg"] != "State transition" || entry["level"] != "debug" {
		t.Errorf("entry = %v, want a debug State transition", entry)
	}
	if entry["machine"] != "view" || entry["to"] != "results" {
		t.Errorf("entry fields = %v", entry)
	}
}

func TestLogValidation_Fields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	LogValidation(7, 0, "", "Input text cannot be empty.")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["valid"] != false {
		t.Errorf("valid = %v, want false", ctx["valid"])
	}
	if ctx["name_length"] != int64(7) {
		t.Errorf("name_length = %v, want 7", ctx["name_length"])
	}
}

func TestGetLogger_Fallback(t *testing.T) {
	SetLogger(nil)
	if GetLogger() == nil {
		t.Fatal("GetLogger() should never return nil")
	}
}
