// Package logger provides leveled logging for the tutormatch server with a
// console/syslog backend, a file backend and an in-memory buffer of recent entries.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/op/go-logging"
	"github.com/tutormatch/tutormatch/config"
)

const (
	maxLogBufferSize = 10240
	logFileName      = "tutormatch.log"
	timeFormat       = "2006/01/02 15:04:05"
	module           = "tutormatch"
)

type entry struct {
	time  string
	level logging.Level
	log   string
}

var (
	logger  *logging.Logger
	logFile *os.File

	bufferMu  sync.Mutex
	logBuffer []entry
)

func init() {
	// Usable before InitLogger; only warnings and above reach stderr.
	backend := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), newFormatter(true))
	leveled := logging.AddModuleLevel(backend)
	leveled.SetLevel(logging.WARNING, module)
	logger = logging.MustGetLogger(module)
	logger.SetBackend(leveled)
}

// ParseLevel maps a configured level to a go-logging level.
func ParseLevel(level config.LogLevel) (logging.Level, error) {
	switch level {
	case config.Debug:
		return logging.DEBUG, nil
	case config.Info:
		return logging.INFO, nil
	case config.Notice:
		return logging.NOTICE, nil
	case config.Warn:
		return logging.WARNING, nil
	case config.Error:
		return logging.ERROR, nil
	}
	return logging.INFO, fmt.Errorf("unknown log level: %s", level)
}

// InitLogger initializes the console/syslog backend at the given level and
// the file backend at DEBUG.
func InitLogger(level logging.Level) {
	newLogger := logging.MustGetLogger(module)
	backends := make([]logging.Backend, 0, 2)

	if consoleBackend := initDefaultBackend(); consoleBackend != nil {
		leveledBackend := logging.AddModuleLevel(consoleBackend)
		leveledBackend.SetLevel(level, module)
		backends = append(backends, leveledBackend)
	}

	if fileBackend := initFileBackend(); fileBackend != nil {
		leveledBackend := logging.AddModuleLevel(fileBackend)
		leveledBackend.SetLevel(logging.DEBUG, module)
		backends = append(backends, leveledBackend)
	}

	multiBackend := logging.MultiLogger(backends...)
	newLogger.SetBackend(multiBackend)
	logger = newLogger
}

// initDefaultBackend uses syslog where available and stderr otherwise.
func initDefaultBackend() logging.Backend {
	var backend logging.Backend
	includeTime := false

	if runtime.GOOS == "windows" {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
		includeTime = true
	} else {
		if syslogBackend, err := logging.NewSyslogBackend(""); err != nil {
			fmt.Fprintf(os.Stderr, "syslog backend disabled: %v\n", err)
			backend = logging.NewLogBackend(os.Stderr, "", 0)
			includeTime = os.Getppid() > 0
		} else {
			backend = syslogBackend
		}
	}

	return logging.NewBackendFormatter(backend, newFormatter(includeTime))
}

// initFileBackend truncates the log file on startup.
func initFileBackend() logging.Backend {
	logDir := config.GetLogFolder()
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log folder %s: %v\n", logDir, err)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o660)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", logPath, err)
		return nil
	}

	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file

	backend := logging.NewLogBackend(file, "", 0)
	return logging.NewBackendFormatter(backend, newFormatter(true))
}

func newFormatter(withTime bool) logging.Formatter {
	format := `%{level} - %{message}`
	if withTime {
		format = `%{time:` + timeFormat + `} %{level} - %{message}`
	}
	return logging.MustStringFormatter(format)
}

// CloseLogger closes the log file. Called during shutdown.
func CloseLogger() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// Debug logs a debug message and adds it to the log buffer.
func Debug(args ...any) {
	logger.Debug(args...)
	addToBuffer(logging.DEBUG, fmt.Sprint(args...))
}

// Debugf logs a formatted debug message and adds it to the log buffer.
func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
	addToBuffer(logging.DEBUG, fmt.Sprintf(format, args...))
}

// Info logs an info message and adds it to the log buffer.
func Info(args ...any) {
	logger.Info(args...)
	addToBuffer(logging.INFO, fmt.Sprint(args...))
}

// Infof logs a formatted info message and adds it to the log buffer.
func Infof(format string, args ...any) {
	logger.Infof(format, args...)
	addToBuffer(logging.INFO, fmt.Sprintf(format, args...))
}

// Notice logs a notice message and adds it to the log buffer.
func Notice(args ...any) {
	logger.Notice(args...)
	addToBuffer(logging.NOTICE, fmt.Sprint(args...))
}

// Noticef logs a formatted notice message and adds it to the log buffer.
func Noticef(format string, args ...any) {
	logger.Noticef(format, args...)
	addToBuffer(logging.NOTICE, fmt.Sprintf(format, args...))
}

// Warning logs a warning message and adds it to the log buffer.
func Warning(args ...any) {
	logger.Warning(args...)
	addToBuffer(logging.WARNING, fmt.Sprint(args...))
}

// Warningf logs a formatted warning message and adds it to the log buffer.
func Warningf(format string, args ...any) {
	logger.Warningf(format, args...)
	addToBuffer(logging.WARNING, fmt.Sprintf(format, args...))
}

// Error logs an error message and adds it to the log buffer.
func Error(args ...any) {
	logger.Error(args...)
	addToBuffer(logging.ERROR, fmt.Sprint(args...))
}

// Errorf logs a formatted error message and adds it to the log buffer.
func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
	addToBuffer(logging.ERROR, fmt.Sprintf(format, args...))
}

// addToBuffer keeps at most maxLogBufferSize entries, dropping the oldest.
func addToBuffer(level logging.Level, newLog string) {
	bufferMu.Lock()
	defer bufferMu.Unlock()

	if len(logBuffer) >= maxLogBufferSize {
		logBuffer = logBuffer[1:]
	}
	logBuffer = append(logBuffer, entry{
		time:  time.Now().Format(timeFormat),
		level: level,
		log:   newLog,
	})
}

// GetLogs returns up to c of the newest entries at or above the severity of level.
func GetLogs(c int, level string) []string {
	bufferMu.Lock()
	defer bufferMu.Unlock()

	var output []string
	logLevel, err := logging.LogLevel(level)
	if err != nil {
		logLevel = logging.DEBUG
	}

	for i := len(logBuffer) - 1; i >= 0 && len(output) < c; i-- {
		if logBuffer[i].level <= logLevel {
			output = append(output, fmt.Sprintf("%s %s - %s", logBuffer[i].time, logBuffer[i].level, logBuffer[i].log))
		}
	}
	return output
}
