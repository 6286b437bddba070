package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/example/encore/internal/core/performance"
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ENCORE_"

// Config represents the flat encore configuration
type Config struct {
	Version  string     `json:"version"`
	Seed     uint64     `json:"seed,omitempty" env:"SEED"`           // 0 picks a random seed per run
	LogLevel string     `json:"log_level,omitempty" env:"LOG_LEVEL"` // zerolog level name
	NoColor  bool       `json:"no_color,omitempty" env:"NO_COLOR"`
	Game     GameConfig `json:"rules" envPrefix:"RULES_"`
}

// GameConfig holds rule overrides.
type GameConfig struct {
	StartingAudience int `json:"starting_audience" env:"STARTING_AUDIENCE"`
	StartingMomentum int `json:"starting_momentum" env:"STARTING_MOMENTUM"`
	StartingStamina  int `json:"starting_stamina" env:"STARTING_STAMINA"`
	HandSize         int `json:"hand_size" env:"HAND_SIZE"`
	StaminaGain      int `json:"stamina_gain" env:"STAMINA_GAIN"`
	MaxRounds        int `json:"max_rounds" env:"MAX_ROUNDS"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	rules := performance.DefaultRules()
	return &Config{
		Version:  CurrentVersion,
		LogLevel: "warn",
		Game: GameConfig{
			StartingAudience: rules.StartingAudience,
			StartingMomentum: rules.StartingMomentum,
			StartingStamina:  rules.StartingStamina,
			HandSize:         rules.HandSize,
			StaminaGain:      rules.StaminaGain,
			MaxRounds:        rules.MaxRounds,
		},
	}
}

// Rules converts the rule overrides into validated performance rules.
func (c *Config) Rules() (performance.Rules, error) {
	rules := performance.Rules{
		StartingAudience: c.Game.StartingAudience,
		StartingMomentum: c.Game.StartingMomentum,
		StartingStamina:  c.Game.StartingStamina,
		HandSize:         c.Game.HandSize,
		StaminaGain:      c.Game.StaminaGain,
		MaxRounds:        c.Game.MaxRounds,
	}
	if err := rules.Validate(); err != nil {
		return performance.Rules{}, fmt.Errorf("invalid config: %w", err)
	}
	return rules, nil
}

// Load resolves the configuration for dir.
// Resolution order: defaults, then .encore/config.json, then .env in dir, then the
// process environment. Later sources win.
func Load(dir string) (*Config, error) {
	cfg := Default()

	fileCfg, err := LoadConfig(dir)
	switch {
	case err == nil:
		cfg = fileCfg
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	environment, err := readDotEnv(filepath.Join(dir, ".env"))
	if err != nil {
		return nil, err
	}
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			environment[key] = value
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix, Environment: environment}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return cfg, nil
}

func readDotEnv(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return values, nil
}

// LoadConfig reads .encore/config.json from the specified directory.
// Fields missing from the file keep their defaults.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, ".encore", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	encoreDir := filepath.Join(dir, ".encore")
	if err := os.MkdirAll(encoreDir, 0755); err != nil {
		return fmt.Errorf("failed to create .encore dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(encoreDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
