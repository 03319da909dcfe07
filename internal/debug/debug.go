// Package debug provides optional file-based debug logging.
//
// When the TUICSS_DEBUG environment variable is set to a file path, or Init is
// called explicitly, messages are appended to that file. Otherwise logging is
// a no-op so the terminal never sees diagnostic output.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EnvVar names the environment variable that enables logging at startup.
const EnvVar = "TUICSS_DEBUG"

var (
	out      io.Writer
	logFile  *os.File
	mu       sync.Mutex
	envTried bool
)

// Init opens path for appending and routes all log output to it.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		return fmt.Errorf("debug log path is empty")
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	out = f
	return nil
}

// SetOutput routes log output to w. Passing nil disables logging.
// Tests use this to capture diagnostics without touching the filesystem.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	envTried = true
}

// Enabled reports whether log output currently goes anywhere.
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	ensureLocked()
	return out != nil
}

// Close closes the debug log file, if one is open.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	out = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

func ensureLocked() {
	if out != nil || envTried {
		return
	}
	envTried = true
	if path := os.Getenv(EnvVar); path != "" {
		_ = initLocked(path)
	}
}

// Log writes a message to the debug log with a timestamp.
func Log(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureLocked()
	if out == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
	if logFile != nil {
		logFile.Sync()
	}
}
