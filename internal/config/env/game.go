package env

import (
	"fmt"
	"os"
	"plinko_backend/internal/config"

	"gopkg.in/yaml.v3"
)

type gameYAML struct {
	Game struct {
		DefaultBallPrice float64 `yaml:"default_ball_price"`
		DemoBallLimit    int     `yaml:"demo_ball_limit"`
	} `yaml:"game"`
	SettingsDefaults struct {
		BallLimit        int     `yaml:"ball_limit"`
		InitialBalance   float64 `yaml:"initial_balance"`
		MaxBallPrice     float64 `yaml:"max_ball_price"`
		DropResetTimeMs  int64   `yaml:"drop_reset_time_ms"`
		TotalCycleTimeMs int64   `yaml:"total_cycle_time_ms"`
	} `yaml:"settings_defaults"`
}

type gameConfig struct {
	defaultBallPrice float64
	demoBallLimit    int
	settingsDefaults config.SettingsDefaults
}

// NewGameConfigFromYAML - читает игровые параметры из yaml файла
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}

	var parsed gameYAML
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if parsed.Game.DemoBallLimit <= 0 {
		return nil, fmt.Errorf("demo_ball_limit must be positive")
	}

	return &gameConfig{
		defaultBallPrice: parsed.Game.DefaultBallPrice,
		demoBallLimit:    parsed.Game.DemoBallLimit,
		settingsDefaults: config.SettingsDefaults{
			BallLimit:        parsed.SettingsDefaults.BallLimit,
			InitialBalance:   parsed.SettingsDefaults.InitialBalance,
			MaxBallPrice:     parsed.SettingsDefaults.MaxBallPrice,
			DropResetTimeMs:  parsed.SettingsDefaults.DropResetTimeMs,
			TotalCycleTimeMs: parsed.SettingsDefaults.TotalCycleTimeMs,
		},
	}, nil
}

func (cfg *gameConfig) DefaultBallPrice() float64 {
	return cfg.defaultBallPrice
}

func (cfg *gameConfig) DemoBallLimit() int {
	return cfg.demoBallLimit
}

func (cfg *gameConfig) DefaultSettings() config.SettingsDefaults {
	return cfg.settingsDefaults
}
