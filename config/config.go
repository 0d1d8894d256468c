// SPDX-License-Identifier: MIT
//
// Package config holds the experiment file of the motive command: motif
// extraction, scoring and synthetic-graph settings.
//
// A file is read on top of Default(), so every key is optional; unknown keys
// are rejected. MOTIVE_* environment variables override the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

type Config struct {
	Extraction ExtractionConfig `yaml:"extraction"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Beta       BetaConfig       `yaml:"beta"`
	Synthetic  SyntheticConfig  `yaml:"synthetic"`
}

type ExtractionConfig struct {
	Samples      int    `yaml:"samples"`
	MinSize      int    `yaml:"min_size"`
	MaxSize      int    `yaml:"max_size"`
	MinFrequency int    `yaml:"min_frequency"`
	Seed         uint64 `yaml:"seed"`
	CacheSize    int    `yaml:"cache_size"`
	MaxMotifs    int    `yaml:"max_motifs"`
	ScoreRanking bool   `yaml:"score_ranking"`
}

type ScoringConfig struct {
	Models       []string `yaml:"models"`
	Prior        string   `yaml:"prior"`
	ResetWiring  bool     `yaml:"reset_wiring"`
	MaxRewrites  int      `yaml:"max_rewrites"`
	MotifWorkers int      `yaml:"motif_workers"`
	FastDegrees  bool     `yaml:"fast_degrees"`
}

type BetaConfig struct {
	Iterations int     `yaml:"iterations"`
	Alpha      float64 `yaml:"alpha"`
	Workers    int     `yaml:"workers"`
	Seed       uint64  `yaml:"seed"`
}

// SyntheticConfig drives the planted-motif experiment.
type SyntheticConfig struct {
	Nodes      int    `yaml:"nodes"`
	Links      int    `yaml:"links"`
	MotifSize  int    `yaml:"motif_size"`
	MotifLinks int    `yaml:"motif_links"`
	Instances  []int  `yaml:"instances"`
	MaxDegree  int    `yaml:"max_degree"`
	Runs       int    `yaml:"runs"`
	Directed   bool   `yaml:"directed"`
	Seed       uint64 `yaml:"seed"`
}

func Default() *Config {
	return &Config{
		Extraction: ExtractionConfig{
			Samples:      10000,
			MinSize:      3,
			MaxSize:      6,
			MinFrequency: 1,
			CacheSize:    4096,
			MaxMotifs:    30,
		},
		Scoring: ScoringConfig{
			Models:       []string{"er", "el", "beta"},
			Prior:        "complete",
			ResetWiring:  true,
			MaxRewrites:  0,
			MotifWorkers: 1,
			FastDegrees:  true,
		},
		Beta: BetaConfig{
			Iterations: 50,
			Alpha:      0.05,
			Workers:    runtime.GOMAXPROCS(0),
		},
		Synthetic: SyntheticConfig{
			Nodes:      5000,
			Links:      10000,
			MotifSize:  4,
			MotifLinks: 5,
			Instances:  []int{0, 10, 100},
			MaxDegree:  5,
			Runs:       1,
		},
	}
}

// Load reads the file at path over Default(), applies the environment and
// validates the result. A missing file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.ApplyEnvironment(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes data over Default() and validates it. The environment is
// not consulted.
func Parse(data []byte) (*Config, error) {
	cfg, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decode(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnvironment overrides fields from MOTIVE_* variables. Every
// unparsable value is reported, wrapped in ErrInvalid; parsable ones are
// applied regardless.
func (c *Config) ApplyEnvironment() error {
	errs := []error{
		envInt("MOTIVE_SAMPLES", &c.Extraction.Samples),
		envUint("MOTIVE_SEED", &c.Extraction.Seed),
		envInt("MOTIVE_MOTIF_WORKERS", &c.Scoring.MotifWorkers),
		envInt("MOTIVE_BETA_WORKERS", &c.Beta.Workers),
		envInt("MOTIVE_BETA_ITERATIONS", &c.Beta.Iterations),
	}
	if v := os.Getenv("MOTIVE_PRIOR"); v != "" {
		c.Scoring.Prior = v
	}

	return errors.Join(errs...)
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return invalid("%s=%q: not an integer", key, v)
	}
	*dst = n

	return nil
}

func envUint(key string, dst *uint64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return invalid("%s=%q: not an unsigned integer", key, v)
	}
	*dst = n

	return nil
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
