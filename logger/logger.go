package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FilePrefix names the per-run log files: deckgen_2006-01-02_N.log
const FilePrefix = "deckgen"

// Logger handles run logging to a file and optional console writers
type Logger struct {
	file       *os.File
	console    io.Writer
	errConsole io.Writer
	mu         sync.Mutex
}

// NewLogger creates a new Logger. Either writer may be nil.
func NewLogger(console, errConsole io.Writer) *Logger {
	return &Logger{console: console, errConsole: errConsole}
}

// Init opens a new numbered log file for today in logDir
func (l *Logger) Init(logDir string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		l.file.Close()
		l.file = nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	dateStr := time.Now().Format("2006-01-02")
	pattern := filepath.Join(logDir, fmt.Sprintf("%s_%s_*.log", FilePrefix, dateStr))
	matches, _ := filepath.Glob(pattern)
	runCount := len(matches) + 1
	filename := filepath.Join(logDir, fmt.Sprintf("%s_%s_%d.log", FilePrefix, dateStr, runCount))

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	l.file = f
	l.logInternal("Run started")
	return nil
}

// Path returns the current log file, or "" when logging to console only
func (l *Logger) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return ""
	}
	return l.file.Name()
}

// Log writes a message
func (l *Logger) Log(message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logInternal(message)
}

// Logf writes a formatted message
func (l *Logger) Logf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logInternal(fmt.Sprintf(format, args...))
}

// Errorf writes a formatted error to the log file and the error console
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	message := fmt.Sprintf(format, args...)
	l.writeFile("ERROR " + message)
	if l.errConsole != nil {
		fmt.Fprintln(l.errConsole, message)
	}
}

func (l *Logger) logInternal(message string) {
	l.writeFile(message)
	if l.console != nil {
		fmt.Fprintln(l.console, message)
	}
}

func (l *Logger) writeFile(message string) {
	if l.file != nil {
		fmt.Fprintf(l.file, "[%s] %s\n", time.Now().Format("15:04:05.000"), message)
	}
}

// Close closes the log file
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.writeFile("Run finished")
		l.file.Close()
		l.file = nil
	}
}
