package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// EnvVar names the environment variable holding the log file path.
const EnvVar = "MOUNT_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *slog.Logger
	level   = new(slog.LevelVar)
	envOnce sync.Once
)

// Init starts logging to the file at path. If path is empty, uses
// "debug.log" in the current directory.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked(path)
}

// initLocked does the actual init work. Caller must hold mu.
func initLocked(path string) error {
	if path == "" {
		path = "debug.log"
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// InitWriter logs to w instead of a file. Used by tests and the CLI.
func InitWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Close closes the debug log file and returns to discarding.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// SetLevel sets the minimum level: debug, info, warn or error. Unknown
// values select debug.
func SetLevel(name string) {
	level.Set(ParseLevel(name))
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// Logger returns the shared logger. The first call honours MOUNT_DEBUG.
func Logger() *slog.Logger {
	envOnce.Do(func() {
		if path := os.Getenv(EnvVar); path != "" {
			mu.Lock()
			if logger == nil {
				_ = initLocked(path)
			}
			mu.Unlock()
		}
	})

	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		return Nop()
	}
	return logger
}

// Nop returns a logger that discards everything.
func Nop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Log writes a formatted debug message.
func Log(format string, args ...any) {
	Logger().Debug(fmt.Sprintf(format, args...))
}
