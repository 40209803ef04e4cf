package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"yonkadingo/internal/game"
)

type Config struct {
	HTTPAddr  string     `yaml:"http_addr"`
	LogLevel  string     `yaml:"log_level"`
	LogFormat string     `yaml:"log_format"`
	Seed      uint64     `yaml:"seed"`
	Rules     game.Rules `yaml:"rules"`
}

func Default() Config {
	return Config{
		HTTPAddr:  ":8080",
		LogLevel:  "info",
		LogFormat: "json",
		Rules:     game.DefaultRules(),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvUint(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseUint(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

// Load starts from Default, applies the YAML file named by CONFIG_FILE if set,
// then lets environment variables override individual keys.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.HTTPAddr = getenv("HTTP_ADDR", cfg.HTTPAddr)
	cfg.LogLevel = getenv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenv("LOG_FORMAT", cfg.LogFormat)
	cfg.Seed = getenvUint("RNG_SEED", cfg.Seed)

	r := &cfg.Rules
	r.Rows = getenvInt("BOARD_ROWS", r.Rows)
	r.Columns = getenvInt("BOARD_COLUMNS", r.Columns)
	r.StartHP = getenvInt("SHIP_HP", r.StartHP)
	r.StartFood = getenvInt("SHIP_FOOD", r.StartFood)
	r.StartPellets = getenvInt("SHIP_PELLETS", r.StartPellets)
	r.CannonDamage = getenvInt("CANNON_DAMAGE", r.CannonDamage)
	r.MineDamage = getenvInt("MINE_DAMAGE", r.MineDamage)

	return cfg, nil
}
