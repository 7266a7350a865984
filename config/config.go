package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Seed names the two static reference files loaded by the seed command.
type Seed struct {
	Customers string `yaml:"customers"`
	Items     string `yaml:"items"`
}

// Config is the full application configuration.
type Config struct {
	Addr     string `yaml:"addr"`
	Database string `yaml:"database"`
	Seed     Seed   `yaml:"seed"`
}

// Default returns the configuration used when a field is left unset.
func Default() Config {
	return Config{
		Addr:     ":8080",
		Database: "orderdesk.db",
		Seed: Seed{
			Customers: "data/customers.yaml",
			Items:     "data/items.yaml",
		},
	}
}

// Load reads a YAML config from path. Unknown keys are rejected; unset
// fields fall back to Default.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	def := Default()
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.Database == "" {
		cfg.Database = def.Database
	}
	if cfg.Seed.Customers == "" {
		cfg.Seed.Customers = def.Seed.Customers
	}
	if cfg.Seed.Items == "" {
		cfg.Seed.Items = def.Seed.Items
	}
	return cfg, nil
}

// Find returns the first config file present in the usual locations.
func Find() (string, error) {
	candidates := []string{"config.yaml", "config.example.yaml"}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fs.ErrNotExist
}
