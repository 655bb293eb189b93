package logs

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Logger is built once and never reassigned; Initialize, SetOutput and
// Close swap the writer underneath it, so goroutines may log at any time.
var (
	Logger  = newLogger(out)
	out     = &swapWriter{w: io.Discard}
	logFile *os.File
	level   = new(slog.LevelVar)
	mu      sync.Mutex
)

// swapWriter forwards to a writer that can be replaced while other
// goroutines write. The terminal belongs to the TUI, so it starts out
// discarding.
type swapWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.w.Write(p)
}

func (s *swapWriter) set(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

func newLogger(w io.Writer) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level, AddSource: true})
	return slog.New(h).With("app", "calnotes")
}

// SetLevel accepts debug, info, warn or error. Anything else means info.
func SetLevel(s string) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		level.Set(slog.LevelDebug)
	case "warn", "warning":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	default:
		level.Set(slog.LevelInfo)
	}
}

// Initialize points the logger at <logDir>/debug.log.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" {
		return nil
	}

	logPath := filepath.Join(logDir, "debug.log")

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		Logger.Error("failed to open log file", "path", logPath, "err", err)
		return err
	}

	// the old file is closed only after no write can reach it
	out.set(f)
	if logFile != nil {
		logFile.Close()
	}
	logFile = f

	Logger.Debug("logger initialized", "path", logPath)

	return nil
}

// SetOutput redirects logging to w, used by tests to capture output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out.set(w)
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		out.set(io.Discard)
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
