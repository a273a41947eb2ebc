// Package config loads the batch job configuration from a YAML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Indicator names accepted in a column spec.
const (
	IndSMA       = "sma"
	IndEMA       = "ema"
	IndMACD      = "macd"
	IndATR       = "atr"
	IndRSI       = "rsi"
	IndGaps      = "gaps"
	IndPctChange = "pct_change"
	IndNewHigh   = "new_high"
	IndFrequency = "frequency"
)

// ColumnSpec declares one derived column to compute and append.
// Which parameters apply depends on the indicator: lag for sma/ema/
// atr/rsi/pct_change, field for sma/ema, slow/fast/signal for macd,
// normalize for atr, keys (previously declared boolean columns) for
// frequency.
type ColumnSpec struct {
	Name      string   `yaml:"name"`
	Indicator string   `yaml:"indicator"`
	Field     string   `yaml:"field"`
	Lag       int      `yaml:"lag"`
	Slow      int      `yaml:"slow"`
	Fast      int      `yaml:"fast"`
	Signal    int      `yaml:"signal"`
	Normalize bool     `yaml:"normalize"`
	Keys      []string `yaml:"keys"`
}

// Config holds one batch job: where bars come from, which columns to
// compute, and where the frame goes.
type Config struct {
	Source struct {
		CSV    string `yaml:"csv"`    // bar CSV path; takes precedence over db
		DB     string `yaml:"db"`     // SQLite bar store path
		Symbol string `yaml:"symbol"` // symbol to read from the db
		After  int64  `yaml:"after"`  // only bars with ts > after (0 = all)
	} `yaml:"source"`

	Output struct {
		CSV   string `yaml:"csv"`
		Clean bool   `yaml:"clean"` // drop warm-up rows before writing
	} `yaml:"output"`

	Columns []ColumnSpec `yaml:"columns"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides (TAFRAME_SOURCE_CSV, TAFRAME_DB, TAFRAME_SYMBOL,
// TAFRAME_OUT).
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("TAFRAME_SOURCE_CSV"); v != "" {
		cfg.Source.CSV = v
	}
	if v := os.Getenv("TAFRAME_DB"); v != "" {
		cfg.Source.DB = v
	}
	if v := os.Getenv("TAFRAME_SYMBOL"); v != "" {
		cfg.Source.Symbol = v
	}
	if v := os.Getenv("TAFRAME_OUT"); v != "" {
		cfg.Output.CSV = v
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	for i := range c.Columns {
		col := &c.Columns[i]
		if col.Field == "" {
			col.Field = "c"
		}
		if col.Name == "" {
			col.Name = defaultName(col)
		}
	}
}

func defaultName(col *ColumnSpec) string {
	switch col.Indicator {
	case IndMACD:
		return fmt.Sprintf("macd_%d_%d_%d", col.Slow, col.Fast, col.Signal)
	case IndGaps, IndNewHigh, IndFrequency:
		return col.Indicator
	default:
		return fmt.Sprintf("%s_%d", col.Indicator, col.Lag)
	}
}

// Validate checks the job is runnable: a bar source, an output path,
// and well-formed column specs.
func (c *Config) Validate() error {
	if c.Source.CSV == "" && c.Source.DB == "" {
		return fmt.Errorf("config: no bar source (set source.csv or source.db)")
	}
	if c.Source.CSV == "" && c.Source.Symbol == "" {
		return fmt.Errorf("config: source.db requires source.symbol")
	}
	if c.Output.CSV == "" {
		return fmt.Errorf("config: no output.csv path")
	}

	for i, col := range c.Columns {
		switch col.Indicator {
		case IndSMA, IndEMA, IndATR, IndRSI, IndPctChange:
			if col.Lag < 1 {
				return fmt.Errorf("config: column %d (%s): lag must be >= 1", i, col.Name)
			}
		case IndMACD:
			if col.Slow < 1 || col.Fast < 1 || col.Signal < 1 {
				return fmt.Errorf("config: column %d (%s): macd needs slow, fast and signal >= 1", i, col.Name)
			}
		case IndGaps, IndNewHigh:
			// no parameters
		case IndFrequency:
			if len(col.Keys) == 0 {
				return fmt.Errorf("config: column %d (%s): frequency needs at least one key", i, col.Name)
			}
		default:
			return fmt.Errorf("config: column %d (%s): unknown indicator %q", i, col.Name, col.Indicator)
		}
	}
	return nil
}
