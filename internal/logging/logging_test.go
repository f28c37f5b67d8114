package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetupWritesTraceFileAtFullVerbosity(t *testing.T) {
	traceFile := filepath.Join(t.TempDir(), "trace.log")

	logger, closer, err := Setup(traceFile, false)
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	logger.Trace().Str("payload", "raw response").Msg("transliteration response")
	logger.Info().Msg("processing row")
	closer()

	content, err := os.ReadFile(traceFile)
	if err != nil {
		t.Fatalf("Failed to read trace file: %v", err)
	}

	// Trace entries land in the file even though the console is at info
	if !strings.Contains(string(content), "transliteration response") {
		t.Errorf("Trace file missing trace-level entry: %s", content)
	}
	if !strings.Contains(string(content), "processing row") {
		t.Errorf("Trace file missing info-level entry: %s", content)
	}
}

func TestSetupFailsOnBadPath(t *testing.T) {
	_, _, err := Setup(filepath.Join(t.TempDir(), "missing", "trace.log"), false)
	if err == nil {
		t.Error("Expected error for unwritable trace file path")
	}
}
