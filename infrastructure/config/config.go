package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/alexmorbo/build-hipchat-notifier/domain/notification"
)

type Config struct {
	Server     ServerConfig
	HipChat    HipChatConfig
	Redis      RedisConfig
	Watch      WatchConfig
	ConfigPath string
}

type ServerConfig struct {
	Port     int
	LogLevel string
}

func (c *ServerConfig) Addr() string {
	return "0.0.0.0:" + strconv.Itoa(c.Port)
}

// HipChatConfig seeds the global defaults. Empty values are allowed: they can
// be set later through the settings API.
type HipChatConfig struct {
	Server string
	Token  string
	Room   string
}

func (c HipChatConfig) GlobalConfig() notification.GlobalConfig {
	return notification.GlobalConfig{
		Server: c.Server,
		Token:  c.Token,
		Room:   c.Room,
	}
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// WatchConfig controls reloading of the job file when it changes on disk.
type WatchConfig struct {
	Enabled  bool
	Debounce time.Duration
}

func LoadFromEnv() (*Config, error) {
	serverPort, err := getEnvOrDefaultInt("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}

	redisDB, err := getEnvOrDefaultInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	watchEnabled, err := getEnvOrDefaultBool("CONFIG_WATCH", true)
	if err != nil {
		return nil, err
	}

	watchDebounce, err := getEnvOrDefaultDuration("CONFIG_WATCH_DEBOUNCE", 250*time.Millisecond)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:     serverPort,
			LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		HipChat: HipChatConfig{
			Server: getEnvOrDefault("HIPCHAT_SERVER", "api.hipchat.com"),
			Token:  os.Getenv("HIPCHAT_TOKEN"),
			Room:   os.Getenv("HIPCHAT_ROOM"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Watch: WatchConfig{
			Enabled:  watchEnabled,
			Debounce: watchDebounce,
		},
		ConfigPath: getEnvOrDefault("CONFIG_PATH", "/etc/hcnotifier/jobs.yaml"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("REDIS_DB must not be negative, got %d", c.Redis.DB)
	}
	if c.Watch.Enabled && c.Watch.Debounce <= 0 {
		return fmt.Errorf("CONFIG_WATCH_DEBOUNCE must be positive, got %s", c.Watch.Debounce)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	return i, nil
}

func getEnvOrDefaultBool(key string, defaultValue bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	return b, nil
}

func getEnvOrDefaultDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, v, err)
	}
	return d, nil
}
