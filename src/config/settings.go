package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults describe the demo building: a basement, a lobby and five floors above it.
const (
	DefaultCarCount   = 2
	DefaultMinFloor   = -1
	DefaultMaxFloor   = 5
	DefaultLobbyFloor = 0
	DefaultListenAddr = ":8080"
	DefaultLogLevel   = "info"
)

type Config struct {
	CarCount   int    `yaml:"car_count"`
	MinFloor   int    `yaml:"min_floor"`
	MaxFloor   int    `yaml:"max_floor"`
	LobbyFloor int    `yaml:"lobby_floor"`
	ListenAddr string `yaml:"listen_addr"`
	LogLevel   string `yaml:"log_level"`
	LogFile    string `yaml:"log_file"`
}

func Default() Config {
	return Config{
		CarCount:   DefaultCarCount,
		MinFloor:   DefaultMinFloor,
		MaxFloor:   DefaultMaxFloor,
		LobbyFloor: DefaultLobbyFloor,
		ListenAddr: DefaultListenAddr,
		LogLevel:   DefaultLogLevel,
	}
}

// Load builds the config from defaults, then the YAML file at path, then the
// environment. The .env file at envPath is loaded into the environment first
// without overriding variables that are already set. Missing files are skipped.
func Load(path, envPath string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return cfg, err
		}
	}

	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading %s: %w", envPath, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()

	// An empty file decodes to io.EOF and leaves the defaults in place.
	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"ELEVATOR_CAR_COUNT", &cfg.CarCount},
		{"ELEVATOR_MIN_FLOOR", &cfg.MinFloor},
		{"ELEVATOR_MAX_FLOOR", &cfg.MaxFloor},
		{"ELEVATOR_LOBBY_FLOOR", &cfg.LobbyFloor},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.key)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", v.key, err)
		}
		*v.dst = n
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"ELEVATOR_LISTEN_ADDR", &cfg.ListenAddr},
		{"ELEVATOR_LOG_LEVEL", &cfg.LogLevel},
		{"ELEVATOR_LOG_FILE", &cfg.LogFile},
	}
	for _, v := range strs {
		if raw, ok := os.LookupEnv(v.key); ok && raw != "" {
			*v.dst = raw
		}
	}
	return nil
}

func (cfg Config) Validate() error {
	if cfg.CarCount < 1 {
		return fmt.Errorf("car_count must be positive, got %d", cfg.CarCount)
	}
	if cfg.MinFloor > cfg.MaxFloor {
		return fmt.Errorf("min_floor %d is above max_floor %d", cfg.MinFloor, cfg.MaxFloor)
	}
	if err := cfg.Floors().Check(cfg.LobbyFloor); err != nil {
		return fmt.Errorf("lobby_floor: %w", err)
	}
	return nil
}

func (cfg Config) Floors() FloorRange {
	return FloorRange{Min: cfg.MinFloor, Max: cfg.MaxFloor}
}
