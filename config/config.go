// Package config exposes the environment-driven settings of the postboard API
// along with the embedded name and version of the build.
package config

import (
	_ "embed"
	"fmt"
	"os"
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
	logLevel := os.Getenv("PB_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("PB_DEBUG") == "true"
}

func GetListenPort() string {
	port := os.Getenv("PB_PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("PB_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "data"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("PB_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

// GetAdminEmail returns the email of the admin user seeded on first boot.
func GetAdminEmail() string {
	email := os.Getenv("PB_ADMIN_EMAIL")
	if email == "" {
		email = "admin@postboard.local"
	}
	return email
}

// GetAdminPassword returns the initial password of the seeded admin user.
func GetAdminPassword() string {
	password := os.Getenv("PB_ADMIN_PASSWORD")
	if password == "" {
		password = "admin"
	}
	return password
}
