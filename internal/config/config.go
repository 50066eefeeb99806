package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/Abbub1/schedsim/internal/schedule"
)

// Config represents project config
type Config struct {
	ServerConfig

	Quantum    int64    `env:"SCHEDSIM_QUANTUM" envDefault:"2"`
	Algorithms []string `env:"SCHEDSIM_ALGORITHMS" envSeparator:"," envDefault:"fcfs,sjf,priority,rr"`
	LogLevel   string   `env:"SCHEDSIM_LOG_LEVEL" envDefault:"info"`
	ChartPath  string   `env:"SCHEDSIM_CHART_PATH"`

	GraphiteHost string `env:"GRAPHITE_HOST"`
}

// ServerConfig represents config for the HTTP API
type ServerConfig struct {
	Port         int   `env:"SCHEDSIM_PORT" envDefault:"9095"`
	CacheMaxCost int64 `env:"SCHEDSIM_CACHE_MAX_COST" envDefault:"524288"`
}

// Load reads envFile if it exists, then parses and validates the environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the quantum and algorithm names.
func (c *Config) Validate() error {
	if c.Quantum <= 0 {
		return fmt.Errorf("%w: SCHEDSIM_QUANTUM=%d", schedule.ErrInvalidQuantum, c.Quantum)
	}
	if len(c.Algorithms) == 0 {
		return fmt.Errorf("%w: SCHEDSIM_ALGORITHMS is empty", schedule.ErrUnknownAlgorithm)
	}
	_, err := c.SelectedAlgorithms()
	return err
}

// SelectedAlgorithms returns the configured algorithms in presentation order
// (FCFS, SJF, Priority, RR) regardless of how they were listed.
func (c *Config) SelectedAlgorithms() ([]schedule.Algorithm, error) {
	wanted := make(map[schedule.Algorithm]bool, len(c.Algorithms))
	for _, name := range c.Algorithms {
		alg, err := schedule.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		wanted[alg] = true
	}

	selected := make([]schedule.Algorithm, 0, len(wanted))
	for _, alg := range schedule.Algorithms {
		if wanted[alg] {
			selected = append(selected, alg)
		}
	}
	return selected, nil
}
