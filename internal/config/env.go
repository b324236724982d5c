package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment win over the file.
//
// Recognized variables:
//
//	TASKTRACKER_PROJECT_ID
//	TASKTRACKER_API_KEY
//	TASKTRACKER_CREDENTIALS_FILE
//	TASKTRACKER_DB_PATH
//	TASKTRACKER_LOG_LEVEL
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	overlay := func(dst *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}
	overlay(&cfg.ProjectID, "TASKTRACKER_PROJECT_ID")
	overlay(&cfg.APIKey, "TASKTRACKER_API_KEY")
	overlay(&cfg.CredentialsFile, "TASKTRACKER_CREDENTIALS_FILE")
	overlay(&cfg.DBPath, "TASKTRACKER_DB_PATH")
	overlay(&cfg.LogLevel, "TASKTRACKER_LOG_LEVEL")
}
