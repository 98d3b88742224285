package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
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
	logLevel := os.Getenv("EDUPANEL_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("EDUPANEL_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("EDUPANEL_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("EDUPANEL_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 5000
	}
	return port
}

// GetSessionSecret returns the cookie signing secret. The default is only
// suitable for development.
func GetSessionSecret() string {
	secret := os.Getenv("EDUPANEL_SESSION_SECRET")
	if secret == "" {
		secret = "ngo-management-secret-key"
	}
	return secret
}

// GetSessionMaxAge returns the session lifetime in minutes.
func GetSessionMaxAge() int {
	maxAge, err := strconv.Atoi(os.Getenv("EDUPANEL_SESSION_MAX_AGE"))
	if err != nil || maxAge <= 0 {
		return 24 * 60
	}
	return maxAge
}

// GetRedisAddr returns the address of an external Redis used for session
// storage. Empty means sessions live in an embedded in-process store.
func GetRedisAddr() string {
	return os.Getenv("EDUPANEL_REDIS_ADDR")
}

func GetJWTSecret() string {
	secret := os.Getenv("EDUPANEL_JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return secret
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("EDUPANEL_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "/etc/edupanel"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("EDUPANEL_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

// GetLogRetentionDays returns how long activity log entries are kept before
// the daily cleanup job removes them.
func GetLogRetentionDays() int {
	days, err := strconv.Atoi(os.Getenv("EDUPANEL_LOG_RETENTION_DAYS"))
	if err != nil || days <= 0 {
		return 90
	}
	return days
}

// GetDefaultCredentials returns the seed admin credentials used when the user
// store is empty on first start.
func GetDefaultCredentials() (username string, password string) {
	username = os.Getenv("EDUPANEL_DEFAULT_USERNAME")
	if username == "" {
		username = "admin"
	}
	password = os.Getenv("EDUPANEL_DEFAULT_PASSWORD")
	if password == "" {
		password = "admin"
	}
	return username, password
}
