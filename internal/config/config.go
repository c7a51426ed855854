// Package config loads the shopsight.yaml file configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where commands look for configuration when --config is not
// given. A missing file is not an error; defaults apply.
const DefaultPath = "shopsight.yaml"

// Config is the full file configuration.
type Config struct {
	Paths     Paths     `yaml:"paths"`
	Generator Generator `yaml:"generator"`
}

// Paths locate the data files and database.
type Paths struct {
	DataDir   string `yaml:"data_dir"`
	OutputDir string `yaml:"output_dir"`
	Database  string `yaml:"database"`
}

// Generator controls the synthetic ledger generator.
type Generator struct {
	Seed      int64  `yaml:"seed"`
	Customers int    `yaml:"customers"`
	Orders    int    `yaml:"orders"`
	Products  int    `yaml:"products"`
	StartDate string `yaml:"start_date"`
	EndDate   string `yaml:"end_date"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Paths: Paths{
			DataDir:   "data",
			OutputDir: "output",
			Database:  "shopsight.db",
		},
		Generator: Generator{
			Seed:      42,
			Customers: 15000,
			Orders:    60000,
			Products:  500,
			StartDate: "2023-01-01",
			EndDate:   "2025-05-31",
		},
	}
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// DateRange parses the generator date bounds.
func (g Generator) DateRange() (start, end time.Time, err error) {
	start, err = time.ParseInLocation("2006-01-02", g.StartDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad start_date %q: %w", g.StartDate, err)
	}
	end, err = time.ParseInLocation("2006-01-02", g.EndDate, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad end_date %q: %w", g.EndDate, err)
	}
	return start, end, nil
}
