// Package logging configures the process-wide zerolog logger: a console
// stream at the configured verbosity plus a full-verbosity trace.log file.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// levelWriter caps the level written to the console so the trace file can
// stay at full verbosity independently.
type levelWriter struct {
	io.Writer
	min zerolog.Level
}

func (w levelWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < w.min {
		return len(p), nil
	}
	return w.Writer.Write(p)
}

// Setup builds the combined logger. The returned closer flushes and closes
// the trace file; callers defer it for the life of the process.
func Setup(traceFile string, verbose bool) (zerolog.Logger, func(), error) {
	consoleLevel := zerolog.InfoLevel
	if verbose {
		consoleLevel = zerolog.DebugLevel
	}

	console := levelWriter{
		Writer: zerolog.ConsoleWriter{Out: os.Stderr},
		min:    consoleLevel,
	}

	f, err := os.Create(traceFile)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("failed to create trace log: %w", err)
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(console, f)).
		Level(zerolog.TraceLevel).
		With().Timestamp().Logger()

	return logger, func() { f.Close() }, nil
}
