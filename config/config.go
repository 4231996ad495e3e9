package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

// LoadEnv reads key=value pairs from the given files into the process
// environment. Variables already set win. Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}
	return nil
}

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("TUTOR_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("TUTOR_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("TUTOR_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/tutormatch"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("TUTOR_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("TUTOR_LISTEN")
}

// GetWebDomain returns the only Host the server answers for; empty allows any.
func GetWebDomain() string {
	return os.Getenv("TUTOR_WEB_DOMAIN")
}

func GetPort() (int, error) {
	return getEnvInt("TUTOR_PORT", 8080)
}

// GetSessionSecret returns the cookie signing key. Empty means the caller
// should generate a per-process key.
func GetSessionSecret() string {
	return os.Getenv("TUTOR_SESSION_SECRET")
}

// GetSessionMaxAge returns the session lifetime in minutes.
func GetSessionMaxAge() (int, error) {
	return getEnvInt("TUTOR_SESSION_MAX_AGE", 60)
}

// GetBasePath always returns a path with a leading and trailing slash.
func GetBasePath() string {
	basePath := os.Getenv("TUTOR_BASE_PATH")
	if basePath == "" {
		return "/"
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	if !strings.HasSuffix(basePath, "/") {
		basePath += "/"
	}
	return basePath
}

func getEnvInt(key string, defaultVal int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return defaultVal, nil
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return intVal, nil
}
