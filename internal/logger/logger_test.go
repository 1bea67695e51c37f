package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(WARN, TextFormat, &buf)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message", nil)

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("Expected debug message to be filtered out")
	}
	if strings.Contains(output, "info message") {
		t.Error("Expected info message to be filtered out")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("Expected warn message in output")
	}
	if !strings.Contains(output, "error message") {
		t.Error("Expected error message in output")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(INFO, JSONFormat, &buf)

	log.Info("report built", map[string]interface{}{"records": 5})

	var entry LogEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected valid JSON entry, got error: %v (output: %s)", err, buf.String())
	}
	if entry.Level != "INFO" {
		t.Errorf("Expected level INFO, got %s", entry.Level)
	}
	if entry.Message != "report built" {
		t.Errorf("Expected message 'report built', got %q", entry.Message)
	}
	if entry.Fields["records"] != float64(5) {
		t.Errorf("Expected records field 5, got %v", entry.Fields["records"])
	}
}

func TestTextFormatWithFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	log := New(DEBUG, TextFormat, &buf)

	log.Error("store failed", errTest, map[string]interface{}{"file": "report.html"})

	output := buf.String()
	if !strings.Contains(output, "store failed") {
		t.Errorf("Expected message in output, got %q", output)
	}
	if !strings.Contains(output, "file=report.html") {
		t.Errorf("Expected field in output, got %q", output)
	}
	if !strings.Contains(output, "error=boom") {
		t.Errorf("Expected error in output, got %q", output)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(INFO, TextFormat, &buf).WithComponent("mailer")

	log.Info("message sent")

	if !strings.Contains(buf.String(), "[mailer]") {
		t.Errorf("Expected component tag in output, got %q", buf.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		ok       bool
	}{
		{"debug", DEBUG, true},
		{"INFO", INFO, true},
		{"Warning", WARN, true},
		{"error", ERROR, true},
		{"fatal", FATAL, true},
		{"verbose", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseLogLevel(tt.input)
		if ok != tt.ok || (ok && got != tt.expected) {
			t.Errorf("parseLogLevel(%q) = (%v, %v), expected (%v, %v)", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

var errTest = errBoom{}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }
