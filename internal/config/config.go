// Package config loads runtime settings from the environment and game balance
// overrides from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"candygalaxy/internal/pet"
)

// Storage backends
const (
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config holds process settings
type Config struct {
	StateDir      string        `env:"CANDY_STATE_DIR"`
	Store         string        `env:"CANDY_STORE" envDefault:"json"`
	DecayInterval time.Duration `env:"CANDY_DECAY_INTERVAL" envDefault:"1m"`
	TuningFile    string        `env:"CANDY_TUNING_FILE"`
	LogFile       string        `env:"CANDY_LOG_FILE"`
}

// Load reads the environment and fills in defaults that depend on the home directory
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StateDir == "" {
		dir, err := pet.DefaultStateDir()
		if err != nil {
			return Config{}, err
		}
		cfg.StateDir = dir
	}
	if cfg.TuningFile == "" {
		cfg.TuningFile = filepath.Join(cfg.StateDir, "tuning.toml")
	}
	if cfg.LogFile == "" {
		cfg.LogFile = filepath.Join(cfg.StateDir, "candygalaxy.log")
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the game cannot run with
func (c Config) Validate() error {
	switch c.Store {
	case StoreJSON, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreJSON, StoreSQLite)
	}
	if c.DecayInterval <= 0 {
		return fmt.Errorf("decay interval must be positive, got %s", c.DecayInterval)
	}
	return nil
}

// StatePath returns the save file for the configured backend
func (c Config) StatePath() string {
	if c.Store == StoreSQLite {
		return filepath.Join(c.StateDir, "save.db")
	}
	return filepath.Join(c.StateDir, "save.json")
}

// Tuning returns the game balance: defaults, overridden by the tuning file
// when it exists, with the decay interval from the environment.
func (c Config) Tuning() (pet.Tuning, error) {
	t, err := LoadTuning(c.TuningFile)
	if err != nil {
		return pet.Tuning{}, err
	}
	t.DecayInterval = c.DecayInterval
	return t, nil
}

// LoadTuning decodes a TOML file over the default tuning. A missing file
// yields the defaults.
func LoadTuning(path string) (pet.Tuning, error) {
	t := pet.DefaultTuning()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return t, nil
	}
	if err != nil {
		return pet.Tuning{}, fmt.Errorf("read tuning file: %w", err)
	}
	if err := toml.Unmarshal(data, &t); err != nil {
		return pet.Tuning{}, fmt.Errorf("parse tuning file: %w", err)
	}
	if err := validateTuning(t); err != nil {
		return pet.Tuning{}, fmt.Errorf("tuning file %s: %w", path, err)
	}
	return t, nil
}

func validateTuning(t pet.Tuning) error {
	values := map[string]float64{
		"hungerDecayPerHour":     t.HungerDecayRate,
		"happinessDecayPerHour":  t.HappinessDecayRate,
		"energyDecayPerHour":     t.EnergyDecayRate,
		"feedHungerRestore":      t.FeedHungerRestore,
		"feedHappinessBonus":     t.FeedHappinessBonus,
		"playHappinessRestore":   t.PlayHappinessRestore,
		"playEnergyCost":         t.PlayEnergyCost,
		"cuddleHappinessRestore": t.CuddleHappinessRestore,
		"sleepEnergyRestore":     t.SleepEnergyRestore,
	}
	for name, v := range values {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %g", name, v)
		}
	}
	return nil
}

// WriteTuning saves a tuning file, e.g. to give players a template to edit
func WriteTuning(path string, t pet.Tuning) error {
	data, err := toml.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal tuning: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create tuning directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write tuning file: %w", err)
	}
	return nil
}
