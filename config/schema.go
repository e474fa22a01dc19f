// SPDX-License-Identifier: MIT

// Package config loads chroma settings from TOML or YAML files.
package config

// Config is the root of a configuration file.
type Config struct {
	Log      LogConfig      `toml:"log" yaml:"log"`
	Coloring ColoringConfig `toml:"coloring" yaml:"coloring"`
	Server   ServerConfig   `toml:"server" yaml:"server"`
	Bench    BenchConfig    `toml:"bench" yaml:"bench"`
}

// LogConfig selects level and output format of the charmbracelet logger.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`   // debug, info, warn, error
	Format string `toml:"format" yaml:"format"` // text, json, logfmt
}

// ColoringConfig holds the defaults for colouring runs.
type ColoringConfig struct {
	Strategy    string `toml:"strategy" yaml:"strategy"`
	Interchange bool   `toml:"interchange" yaml:"interchange"`
	Seed        int64  `toml:"seed" yaml:"seed"`
	TimeoutMs   int    `toml:"timeout_ms" yaml:"timeout_ms"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr        string `toml:"addr" yaml:"addr"`
	MaxVertices int    `toml:"max_vertices" yaml:"max_vertices"`
	MaxEdges    int    `toml:"max_edges" yaml:"max_edges"`
	MaxBodyKB   int    `toml:"max_body_kb" yaml:"max_body_kb"`
}

// BenchConfig is the default plan of `chroma bench`.
type BenchConfig struct {
	Sizes         []int     `toml:"sizes" yaml:"sizes"`
	Probabilities []float64 `toml:"probabilities" yaml:"probabilities"`
	Workers       int       `toml:"workers" yaml:"workers"`
	Seed          int64     `toml:"seed" yaml:"seed"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Coloring.Strategy == "" {
		cfg.Coloring.Strategy = "dsatur"
	}
	if cfg.Coloring.Seed == 0 {
		cfg.Coloring.Seed = 1
	}
	if cfg.Coloring.TimeoutMs == 0 {
		cfg.Coloring.TimeoutMs = 30000
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.MaxVertices == 0 {
		cfg.Server.MaxVertices = 10000
	}
	if cfg.Server.MaxEdges == 0 {
		cfg.Server.MaxEdges = 500000
	}
	if cfg.Server.MaxBodyKB == 0 {
		cfg.Server.MaxBodyKB = 8192
	}
	if len(cfg.Bench.Sizes) == 0 {
		cfg.Bench.Sizes = []int{100, 200}
	}
	if len(cfg.Bench.Probabilities) == 0 {
		cfg.Bench.Probabilities = []float64{0.1, 0.5, 0.9}
	}
	if cfg.Bench.Seed == 0 {
		cfg.Bench.Seed = 1
	}
}
