package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const defaultConfigName = ".containers.yaml"

var ErrBadConfig = errors.New("invalid config")

// RandomConfig holds the defaults for the random command.
type RandomConfig struct {
	Num     int   `yaml:"num"`
	Rounds  int   `yaml:"rounds"`
	Workers int   `yaml:"workers"`
	Seed    int64 `yaml:"seed"`
}

type Config struct {
	LogLevel string       `yaml:"log_level"`
	Random   RandomConfig `yaml:"random"`
}

func defaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Random: RandomConfig{
			Num:     1000,
			Rounds:  100,
			Workers: 8,
		},
	}
}

// LoadConfig reads the YAML config at path. If path is empty,
// ~/.containers.yaml is used.
// A config file that is missing or cannot be read gives the defaults.
// Fields left out of the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return config, nil
		}
		path = filepath.Join(homeDir, defaultConfigName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, nil
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadConfig, path, err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrBadConfig, err)
	}

	if c.Random.Num < 0 {
		return fmt.Errorf("%w: random.num must not be negative", ErrBadConfig)
	}

	if c.Random.Rounds < 0 {
		return fmt.Errorf("%w: random.rounds must not be negative", ErrBadConfig)
	}

	return nil
}
