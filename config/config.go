package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"os-scheduler/internal/core"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	DiskDirection         string
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads ./config.yaml once. A missing file falls back to
// defaults; an invalid one is fatal.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		cfg, err := Load("./")
		if err != nil {
			log.Fatalln(err)
		}
		config = cfg
	})

	return config
}

// Load reads config.yaml from dir, applies environment overrides (PORT,
// SCHEDULER_ROUND_ROBIN_TIME_QUANTUM, SCHEDULER_DISK_DIRECTION) and validates
// the result.
func Load(dir string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.disk.direction", "right")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("config file not found, using defaults")
	}

	cfg := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		DiskDirection:         strings.ToLower(v.GetString("scheduler.disk.direction")),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *SchedulerConfig) validate() error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("%w: port must be in 1..65535, got %d", core.ErrInvalidParameter, cfg.Port)
	}
	if cfg.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("%w: round robin time quantum must be > 0, got %d", core.ErrInvalidParameter, cfg.RoundRobinTimeQuantum)
	}
	if cfg.DiskDirection != "right" && cfg.DiskDirection != "left" {
		return fmt.Errorf("%w: disk direction must be right or left, got %q", core.ErrInvalidParameter, cfg.DiskDirection)
	}
	return nil
}
