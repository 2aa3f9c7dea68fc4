package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Database DatabaseConfig

	// AI provider (single active provider per deployment)
	AI AIConfig

	// Response caches
	Cache CacheConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string

	// AllowedOrigins is the CORS allow list for the embedded chat widget.
	// Empty means any origin.
	AllowedOrigins []string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DatabaseConfig points at the SQLite file backing conversations and
// analytics. Menu and restaurant tables live in the same file.
type DatabaseConfig struct {
	Path string
}

// AIConfig holds the text-generation provider settings.
type AIConfig struct {
	Provider string // openai | groq | grok
	APIKey   string
	BaseURL  string // optional override; provider default used when empty
	Model    string
	Timeout  time.Duration
}

// CacheConfig holds TTLs and sizing for the in-process response caches.
type CacheConfig struct {
	KnowledgeTTL time.Duration // deterministic knowledge answers
	SemanticTTL  time.Duration // full generated answers
	ConfigTTL    time.Duration // per-restaurant AI config
	MaxEntries   int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.AllowedOrigins = viper.GetStringSlice("http_server.allowed_origins")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Database.Path = viper.GetString("database.path")
	if dbPath := viper.GetString("database_path"); dbPath != "" {
		cfg.Database.Path = dbPath
	}

	// AI provider
	cfg.AI.Provider = strings.ToLower(viper.GetString("ai.provider"))
	cfg.AI.APIKey = expandEnvVar(viper.GetString("ai.api_key"))
	cfg.AI.BaseURL = viper.GetString("ai.base_url")
	cfg.AI.Model = viper.GetString("ai.model")
	if apiKey := viper.GetString("ai_api_key"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}

	timeout, err := time.ParseDuration(viper.GetString("ai.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid ai.timeout: %w", err)
	}
	cfg.AI.Timeout = timeout

	// Caches
	if cfg.Cache.KnowledgeTTL, err = time.ParseDuration(viper.GetString("cache.knowledge_ttl")); err != nil {
		return nil, fmt.Errorf("invalid cache.knowledge_ttl: %w", err)
	}
	if cfg.Cache.SemanticTTL, err = time.ParseDuration(viper.GetString("cache.semantic_ttl")); err != nil {
		return nil, fmt.Errorf("invalid cache.semantic_ttl: %w", err)
	}
	if cfg.Cache.ConfigTTL, err = time.ParseDuration(viper.GetString("cache.config_ttl")); err != nil {
		return nil, fmt.Errorf("invalid cache.config_ttl: %w", err)
	}
	cfg.Cache.MaxEntries = viper.GetInt("cache.max_entries")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("database.path", "./data/restaurant-ai.db")

	// AI defaults
	viper.SetDefault("ai.provider", "openai")
	viper.SetDefault("ai.model", "gpt-4o-mini")
	viper.SetDefault("ai.timeout", "30s")

	// Cache defaults: knowledge answers live a day, generated answers an hour.
	viper.SetDefault("cache.knowledge_ttl", "24h")
	viper.SetDefault("cache.semantic_ttl", "1h")
	viper.SetDefault("cache.config_ttl", "1h")
	viper.SetDefault("cache.max_entries", 4096)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
