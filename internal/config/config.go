// Package config handles configuration for the task tracker client,
// including defaults, environment overlay, JSON overlay, and command-line
// flags.
package config

// Config holds runtime settings for the task tracker CLI.
//
// Fields:
//   - ProjectID: Firebase project id hosting the user documents.
//   - APIKey: Identity Toolkit web API key, used for password sign-in.
//   - CredentialsFile: path to a service-account JSON file; empty means
//     application default credentials.
//   - DBPath: path of the local SQLite file mirroring the signed-in state.
//   - LogLevel: minimal level emitted by the logger (debug|info|warn|error).
type Config struct {
	ProjectID       string
	APIKey          string
	CredentialsFile string
	DBPath          string
	LogLevel        string
}

// LoadDefaults populates c with development defaults. The project and key
// placeholders never work against a real backend and must be overridden.
func (c *Config) LoadDefaults() {
	c.ProjectID = "task-tracker-dev"
	c.APIKey = ""
	c.CredentialsFile = ""
	c.DBPath = "tasktracker.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including an optional .env file), a JSON file (if
// present) and command-line flags. Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
