package config

import "os"

// LogFile returns the path for rotating file logs, or "" when logging
// goes to stderr only.
func LogFile() string {
	return os.Getenv("APP_LOG_FILE")
}


