package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageNone   = "none"
	StorageRedis  = "redis"
	StorageSQLite = "sqlite"
)

const defaultSQLiteFile = "reversi/results.db"

type Config struct {
	LogLevel    string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	Storage     Storage `yaml:"storage"`
	Redis       Redis   `yaml:"redis"`
	SQLite      SQLite  `yaml:"sqlite"`
	HistorySize int     `yaml:"history-size" env:"HISTORY_SIZE" env-default:"5"`
}

type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"none"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type SQLite struct {
	Path string `yaml:"path" env:"SQLITE_PATH"`
}

// MustLoad - reads .env, then the config file at path. Without the file only the environment is used.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// GetPath - the configured database file, or results.db under the user's data directory.
func (that *SQLite) GetPath() (string, error) {
	if that.Path != "" {
		return that.Path, nil
	}

	path, err := xdg.DataFile(defaultSQLiteFile)
	if err != nil {
		return "", fmt.Errorf("failed to resolve data file: %w", err)
	}

	return path, nil
}
