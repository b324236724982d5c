package config

import (
	"flag"
	"os"

	"github.com/developerekene/task-tracker-main/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-p string   Firebase project id
//	-k string   Identity Toolkit web API key
//	-f string   path to a service-account credentials file
//	-d string   path of the local SQLite database
//	-l string   log level (debug|info|warn|error)
//
// Note: The function filters os.Args to only include the flags it knows
// about, using flagx.FilterArgs, to avoid interference with other
// components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-p", "-k", "-f", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ProjectID, "p", cfg.ProjectID, "firebase project id")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "identity toolkit web api key")
	fs.StringVar(&cfg.CredentialsFile, "f", cfg.CredentialsFile, "service account credentials file")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local sqlite database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
