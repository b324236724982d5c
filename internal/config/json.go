package config

import (
	"encoding/json"
	"os"

	"github.com/developerekene/task-tracker-main/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only non-empty
// values are copied into the runtime Config, so a partial file leaves the
// remaining fields at their earlier-stage values.
type JsonConfig struct {
	ProjectID       string `json:"project_id"`
	APIKey          string `json:"api_key"`
	CredentialsFile string `json:"credentials_file"`
	DBPath          string `json:"db_path"`
	LogLevel        string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	overlay(&cfg.ProjectID, jc.ProjectID)
	overlay(&cfg.APIKey, jc.APIKey)
	overlay(&cfg.CredentialsFile, jc.CredentialsFile)
	overlay(&cfg.DBPath, jc.DBPath)
	overlay(&cfg.LogLevel, jc.LogLevel)
}
