package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	Redis  RedisConfig
	Source SourceConfig
	Drill  DrillConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// RedisConfig is optional; an empty Address runs the service without a cache.
type RedisConfig struct {
	Address  string
	Password string
	DB       int
	BankTTL  time.Duration
}

// SourceConfig points at the question dump. Path wins over URL when both are set.
type SourceConfig struct {
	Path    string
	URL     string
	Timeout time.Duration
}

type DrillConfig struct {
	MaxQuestions int
	SessionTTL   time.Duration
	MaxSessions  int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("server.idle_timeout", "20s")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", envOr("ENV", "development"))

	v.SetDefault("redis.address", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.bank_ttl", "1h")

	v.SetDefault("source.path", "./static/sat_vocab.txt")
	v.SetDefault("source.url", "")
	v.SetDefault("source.timeout", "10s")

	v.SetDefault("drill.max_questions", 20)
	v.SetDefault("drill.session_ttl", "2h")
	v.SetDefault("drill.max_sessions", 10000)
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// SOURCE_PATH="" must be able to clear the default so SOURCE_URL takes over.
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			BankTTL:  v.GetDuration("redis.bank_ttl"),
		},
		Source: SourceConfig{
			Path:    v.GetString("source.path"),
			URL:     v.GetString("source.url"),
			Timeout: v.GetDuration("source.timeout"),
		},
		Drill: DrillConfig{
			MaxQuestions: v.GetInt("drill.max_questions"),
			SessionTTL:   v.GetDuration("drill.session_ttl"),
			MaxSessions:  v.GetInt("drill.max_sessions"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Source.Path == "" && c.Source.URL == "" {
		return errors.New("either source.path or source.url must be set")
	}
	if c.Drill.MaxQuestions <= 0 {
		return fmt.Errorf("drill.max_questions must be positive: %d", c.Drill.MaxQuestions)
	}
	if c.Drill.MaxSessions <= 0 {
		return fmt.Errorf("drill.max_sessions must be positive: %d", c.Drill.MaxSessions)
	}
	return nil
}
