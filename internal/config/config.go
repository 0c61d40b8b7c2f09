// Package config loads the labpay.yaml settings file: payer banking
// details, defaults and form hints. The pipeline only ever reads it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the default settings file name.
const FileName = "labpay.yaml"

// Config represents the top-level labpay.yaml configuration.
type Config struct {
	Payer    PayerConfig `yaml:"payer"`
	Currency string      `yaml:"currency"`
	Schema   string      `yaml:"schema"`
	Defaults Defaults    `yaml:"defaults"`
	Hints    Hints       `yaml:"hints"`
}

// PayerConfig identifies the ordering party.
type PayerConfig struct {
	Name string `yaml:"name"`
	IBAN string `yaml:"iban"`
	BIC  string `yaml:"bic"`
}

// Defaults holds prefill values for the editing step.
type Defaults struct {
	Amount string `yaml:"amount"`
}

// Hints holds placeholder texts for the free-text fields.
type Hints struct {
	Reference  string `yaml:"reference"`
	Experiment string `yaml:"experiment"`
}

// Load reads a labpay.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with placeholder payer details.
func Default() *Config {
	return &Config{
		Payer: PayerConfig{
			Name: "My Company GmbH",
			IBAN: "DE02100100109307118603",
			BIC:  "PBNKDEFFXXX",
		},
		Currency: "EUR",
		Schema:   "pain.001.001.03",
		Defaults: Defaults{
			Amount: "5.00",
		},
		Hints: Hints{
			Reference:  "e.g., Lab Payment 10 July 2025 - 10am",
			Experiment: "e.g., Study A - Session 1",
		},
	}
}
