// Package config reads wktwatch's configuration file, in either JSON or
// TOML form (the format is picked by the file's extension), the way
// apps/rtcmlogger/config reads its JSON config.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds wktwatch's settings: the directory of *.wkt files to
// validate, the cron schedule for periodic sweeps, and the event log
// location.
type Config struct {
	// Directory is the path to watch for *.wkt files.
	Directory string `json:"directory" toml:"directory"`

	// Schedule is a robfig/cron expression controlling how often "watch"
	// re-sweeps Directory.
	Schedule string `json:"schedule" toml:"schedule"`

	// Strict selects strict parsing by default for both "validate" and
	// "watch".
	Strict bool `json:"strict" toml:"strict"`

	// LogEvents turns on the daily event log of rejected documents.
	LogEvents bool `json:"log_events" toml:"log_events"`

	// EventLogDirectory is where the daily event log is written.
	EventLogDirectory string `json:"event_log_directory" toml:"event_log_directory"`
}

// GetConfig reads and parses the config file at path, selecting JSON or
// TOML by its extension (".toml" picks TOML; everything else is
// treated as JSON).
func GetConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open config file: %w", err)
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("not a valid TOML config file: %w", err)
		}
	} else {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("not a valid JSON config file: %w", err)
		}
	}

	if cfg.Directory == "" {
		cfg.Directory = "."
	}
	if cfg.Schedule == "" {
		cfg.Schedule = "0 * * * *"
	}
	return &cfg, nil
}
