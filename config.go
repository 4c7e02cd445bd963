package fifolot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration for a matching run. Every field
// has a working default; a missing file is not an error.
type Config struct {
	// Currency is the ISO code used to render prices and costs.
	Currency string `yaml:"currency"`
	// Rounding is the number of decimal places applied to costs.
	Rounding int32 `yaml:"rounding"`
	// Chronology is "strict" (out-of-order securities are excluded) or
	// "lenient" (warned about but matched in file order anyway).
	Chronology string `yaml:"chronology"`
	// Columns overrides the trade CSV header names.
	Columns Columns `yaml:"columns"`
	// Import maps broker JSON exports onto trade rows.
	Import ImportSpec `yaml:"import"`
}

// DefaultConfig returns the configuration used when no file is given:
// INR amounts, 2 decimal places, strict chronology, standard headings.
func DefaultConfig() *Config {
	return &Config{
		Currency:   "INR",
		Rounding:   2,
		Chronology: "strict",
		Columns:    DefaultColumns(),
	}
}

// LoadConfig reads a YAML configuration file and fills the blanks with
// defaults. An empty path returns the defaults directly.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config %q: %w", path, err)
	}
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.Currency == "" {
		cfg.Currency = def.Currency
	}
	if cfg.Rounding <= 0 {
		cfg.Rounding = def.Rounding
	}
	if cfg.Chronology == "" {
		cfg.Chronology = def.Chronology
	}
	defCols := def.Columns
	cols := &cfg.Columns
	for _, f := range []struct {
		dst *string
		def string
	}{
		{&cols.ClientCode, defCols.ClientCode},
		{&cols.TradeDate, defCols.TradeDate},
		{&cols.Segment, defCols.Segment},
		{&cols.ScripName, defCols.ScripName},
		{&cols.BuyQty, defCols.BuyQty},
		{&cols.BuyPrice, defCols.BuyPrice},
		{&cols.BuyAmount, defCols.BuyAmount},
		{&cols.SellQty, defCols.SellQty},
		{&cols.SellPrice, defCols.SellPrice},
		{&cols.SellAmount, defCols.SellAmount},
		{&cols.OrderNo, defCols.OrderNo},
	} {
		if *f.dst == "" {
			*f.dst = f.def
		}
	}
}

// Validate checks the configuration values that have a closed domain.
func (c *Config) Validate() error {
	switch c.Chronology {
	case "strict", "lenient":
	default:
		return fmt.Errorf("chronology must be %q or %q, got %q", "strict", "lenient", c.Chronology)
	}
	if c.Rounding > 8 {
		return fmt.Errorf("rounding must be at most 8 decimal places, got %d", c.Rounding)
	}
	return nil
}

// Options converts the configuration into engine options.
func (c *Config) Options() Options {
	opts := Options{Rounding: c.Rounding}
	if c.Chronology == "lenient" {
		opts.Chronology = Lenient
	}
	return opts
}
