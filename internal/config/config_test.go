package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Empty(t, cfg.Redis.Address)
	assert.Equal(t, time.Hour, cfg.Redis.BankTTL)
	assert.Equal(t, "./static/sat_vocab.txt", cfg.Source.Path)
	assert.Equal(t, 10*time.Second, cfg.Source.Timeout)
	assert.Equal(t, 20, cfg.Drill.MaxQuestions)
	assert.Equal(t, 2*time.Hour, cfg.Drill.SessionTTL)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("server.port", 9000)
	v.Set("redis.address", "localhost:6379")
	v.Set("source.path", "")
	v.Set("source.url", "https://example.com/sat_vocab.txt")
	v.Set("drill.session_ttl", "30m")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Empty(t, cfg.Source.Path)
	assert.Equal(t, "https://example.com/sat_vocab.txt", cfg.Source.URL)
	assert.Equal(t, 30*time.Minute, cfg.Drill.SessionTTL)
}

func TestLoadConfig_EmptyEnvClearsSourcePath(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("SOURCE_PATH", "")
	t.Setenv("SOURCE_URL", "https://example.com/sat_vocab.txt")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Empty(t, cfg.Source.Path)
	assert.Equal(t, "https://example.com/sat_vocab.txt", cfg.Source.URL)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8090},
			Source: SourceConfig{Path: "dump.txt"},
			Drill:  DrillConfig{MaxQuestions: 20, MaxSessions: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "server.port"},
		{name: "no source", mutate: func(c *Config) { c.Source.Path = "" }, wantErr: "source.path or source.url"},
		{name: "no questions", mutate: func(c *Config) { c.Drill.MaxQuestions = 0 }, wantErr: "drill.max_questions"},
		{name: "no sessions", mutate: func(c *Config) { c.Drill.MaxSessions = -1 }, wantErr: "drill.max_sessions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
