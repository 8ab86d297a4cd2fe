// Package config loads service configuration from an optional YAML
// file with environment overrides. Everything has a working default so
// a bare `peopled serve` runs against the built-in roster.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration.
type Config struct {
	// DatasetPath points at the employee CSV. Empty serves the
	// built-in sample roster.
	DatasetPath string `yaml:"dataset"`

	// HistoryDB is the chat transcript database path.
	HistoryDB string `yaml:"history_db"`

	OpenAI OpenAIConfig `yaml:"openai"`
}

// OpenAIConfig configures the optional remote intent classifier.
type OpenAIConfig struct {
	APIKey  string   `yaml:"api_key"`
	Model   string   `yaml:"model"`
	Timeout Duration `yaml:"timeout"`
}

// Duration unmarshals from YAML strings like "5s" or "1m30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("config: duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Default returns the configuration used when no file exists.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		HistoryDB: filepath.Join(home, ".peopled", "chat_history.db"),
		OpenAI: OpenAIConfig{
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			Timeout: Duration(10 * time.Second),
		},
	}
}

// DefaultPath is where Load looks when no explicit path is given.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".peopled", "config.yaml")
}

// Load reads the config file at path (or DefaultPath when path is
// empty), layered over Default. A missing file is not an error; a
// malformed one is — serving with half-read configuration is worse
// than refusing to start.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	// The environment always wins for the key — config files get
	// committed, keys must not.
	if env := os.Getenv("OPENAI_API_KEY"); env != "" {
		cfg.OpenAI.APIKey = env
	}
	if cfg.OpenAI.Timeout <= 0 {
		cfg.OpenAI.Timeout = Duration(10 * time.Second)
	}

	return cfg, nil
}
