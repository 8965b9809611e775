// Package config loads the settings of the nausea tool. Values come from,
// in increasing precedence: defaults, a YAML file, a .env file and the
// process environment. Command-line flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"academic_nausea/internal/db"
	"academic_nausea/internal/ingest"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	// Database is the path of the SQLite file. Empty means the workspace
	// default.
	Database string `yaml:"database"`
	Table    string `yaml:"table"`
	// Workers bounds the analysis pool; 0 means one per CPU.
	Workers  int    `yaml:"workers"`
	Encoding string `yaml:"encoding"`
	LogLevel string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		Table:    db.DefaultTable,
		Encoding: ingest.DefaultEncoding,
		LogLevel: "info",
	}
}

// Load reads path when it is set, otherwise the first existing file among
// fallbacks, then applies .env and NAUSEA_* environment variables.
func Load(path string, fallbacks ...string) (Config, error) {
	cfg := Default()

	if path == "" {
		for _, loc := range fallbacks {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Database = getenv("NAUSEA_DATABASE", c.Database)
	c.Table = getenv("NAUSEA_TABLE", c.Table)
	c.Workers = getenvInt("NAUSEA_WORKERS", c.Workers)
	c.Encoding = getenv("NAUSEA_ENCODING", c.Encoding)
	c.LogLevel = getenv("NAUSEA_LOG_LEVEL", c.LogLevel)
}

func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if err := db.ValidateTable(c.Table); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := ingest.LookupEncoding(c.Encoding); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
