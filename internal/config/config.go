package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type GameConfig interface {
	DefaultBallPrice() float64
	DemoBallLimit() int
	DefaultSettings() SettingsDefaults
}

// SettingsDefaults - значения для создания singleton-настроек при первом чтении
type SettingsDefaults struct {
	BallLimit        int
	InitialBalance   float64
	MaxBallPrice     float64
	DropResetTimeMs  int64
	TotalCycleTimeMs int64
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
