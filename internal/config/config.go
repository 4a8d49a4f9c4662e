package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application's YAML configuration.
type Config struct {
	Seed struct {
		// Path to an optional YAML file of bootstrap users and
		// questions loaded at startup.
		Path string `yaml:"path"`
	} `yaml:"seed"`
}

// Load reads YAML config from path.
func Load(path string) (Config, error) {
	cfg := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadOrDefault returns the zero Config when the file does not exist.
func LoadOrDefault(path string) (Config, error) {
	cfg, err := Load(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	return cfg, err
}
