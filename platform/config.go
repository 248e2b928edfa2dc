package platform

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ByterGame/data-analytics-FEFU/platform/database"
	"github.com/pelletier/go-toml/v2"
)

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	var cfg Config
	if err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.Simulation.applyDefaults()
	return &cfg, nil
}

type Config struct {
	Log        LogConfig         `toml:"log"`
	DB         database.DBConfig `toml:"db"`
	Simulation SimulationConfig  `toml:"simulation"`
}

type LogConfig struct {
	Level slog.Level `toml:"level"`
}

type SimulationConfig struct {
	// StartDate is the simulated calendar date the run begins at,
	// formatted as 2006-01-02. Empty means today.
	StartDate string `toml:"start_date"`

	// RealSecondsPerDay compresses wall-clock time: that many real
	// seconds map to one simulated day.
	RealSecondsPerDay float64 `toml:"real_seconds_per_day"`

	// TickIntervalSeconds is the real-time cadence of the scheduler loop.
	TickIntervalSeconds int `toml:"tick_interval_seconds"`

	// Seed for the simulation RNG. Zero picks a time-based seed.
	Seed int64 `toml:"seed"`

	RetentionDays         int     `toml:"retention_days"`
	UserEmissionThreshold int     `toml:"user_emission_threshold"`
	BaseActivityMin       float64 `toml:"base_activity_min"`
	BaseActivityMax       float64 `toml:"base_activity_max"`
	InitialUsers          int     `toml:"initial_users"`
	InitialDevelopers     int     `toml:"initial_developers"`
}

func (c *SimulationConfig) applyDefaults() {
	if c.RealSecondsPerDay <= 0 {
		c.RealSecondsPerDay = 60
	}
	if c.TickIntervalSeconds <= 0 {
		c.TickIntervalSeconds = 60
	}
	if c.RetentionDays <= 0 {
		c.RetentionDays = 730
	}
	if c.UserEmissionThreshold <= 0 {
		c.UserEmissionThreshold = 5
	}
	if c.BaseActivityMin <= 0 {
		c.BaseActivityMin = 0.10
	}
	if c.BaseActivityMax <= 0 {
		c.BaseActivityMax = 0.25
	}
	if c.InitialUsers <= 0 {
		c.InitialUsers = 10000
	}
	if c.InitialDevelopers <= 0 {
		c.InitialDevelopers = 10
	}
}
