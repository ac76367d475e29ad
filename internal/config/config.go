package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Prefix is prepended to every environment variable, e.g. TODO_THEME.
const Prefix = "TODO"

// Config holds everything the program reads from the environment.
// Command-line flags are applied on top by the caller.
type Config struct {
	Theme     string `envconfig:"THEME" default:"classic"`
	IDSource  string `envconfig:"ID_SOURCE" default:"uuid"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile   string `envconfig:"LOG_FILE"`
	AltScreen bool   `envconfig:"ALT_SCREEN" default:"true"`
}

// Load reads an optional .env file from the working directory and then the
// environment. A missing .env file is not an error.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errors.Wrap(err, "load .env")
	}
	return FromEnv()
}

// FromEnv reads only the process environment.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, errors.Wrap(err, "process env")
	}
	return &cfg, nil
}
