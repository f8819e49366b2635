package app

import (
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options, read from the environment.
type Config struct {
	// Home is the data directory, e.g. $HOME/.idvault.
	Home string `env:"IDVAULT_HOME"`
	// DBFile is the database filename inside Home.
	DBFile string `env:"IDVAULT_DB" envDefault:"idvault.db"`
}

// FromEnv parses Config from process environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DBPath returns the full path of the database file.
func (c Config) DBPath() string { return filepath.Join(c.Home, c.DBFile) }
