package config

import (
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMongoURIMissing is returned by LoadConfig when MONGO_URI is not set.
var ErrMongoURIMissing = errors.New("environment variable MONGO_URI is required")

// Config holds application configuration
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	Ollama    OllamaConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	LogLevel  string
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Debug reports whether verbose diagnostics (gin debug mode) are enabled.
func (s ServerConfig) Debug() bool {
	return s.Environment == "development"
}

type MongoDBConfig struct {
	URI              string
	Database         string
	Collection       string
	Timeout          time.Duration
	AllowMemoryStore bool
}

type OllamaConfig struct {
	Host  string
	Model string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Enabled       bool
	RPS           float64
	Burst         int
	UseRedis      bool
	WindowSeconds int
}

// LoadConfig loads configuration from environment variables and .env file
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8000")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_ENVIRONMENT", "development")
	v.SetDefault("MONGODB_DATABASE", "blogai")
	v.SetDefault("MONGODB_COLLECTION", "blogs")
	v.SetDefault("MONGODB_TIMEOUT", 10)
	v.SetDefault("ALLOW_MEMORY_STORE", false)
	v.SetDefault("OLLAMA_HOST", "http://localhost:11434")
	v.SetDefault("OLLAMA_MODEL", "llama3.2")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("RATE_LIMIT_ENABLED", false)
	v.SetDefault("RATE_LIMIT_RPS", 1.0)
	v.SetDefault("RATE_LIMIT_BURST", 5)
	v.SetDefault("RATE_LIMIT_USE_REDIS", false)
	v.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("SERVER_PORT"),
			Host:         v.GetString("SERVER_HOST"),
			Environment:  strings.ToLower(v.GetString("SERVER_ENVIRONMENT")),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 0, // model calls are unbounded
		},
		MongoDB: MongoDBConfig{
			URI:              os.Getenv("MONGO_URI"),
			Database:         v.GetString("MONGODB_DATABASE"),
			Collection:       v.GetString("MONGODB_COLLECTION"),
			Timeout:          time.Duration(v.GetInt("MONGODB_TIMEOUT")) * time.Second,
			AllowMemoryStore: v.GetBool("ALLOW_MEMORY_STORE"),
		},
		Ollama: OllamaConfig{
			Host:  v.GetString("OLLAMA_HOST"),
			Model: v.GetString("OLLAMA_MODEL"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       0,
		},
		RateLimit: RateLimitConfig{
			Enabled:       v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:           v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:         v.GetInt("RATE_LIMIT_BURST"),
			UseRedis:      v.GetBool("RATE_LIMIT_USE_REDIS"),
			WindowSeconds: v.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	if cfg.LogLevel == "" {
		if cfg.Server.Debug() {
			cfg.LogLevel = "debug"
		} else {
			cfg.LogLevel = "info"
		}
	}

	if cfg.MongoDB.URI == "" {
		return nil, ErrMongoURIMissing
	}
	if cfg.RateLimit.UseRedis && cfg.Redis.Host == "" {
		log.Println("WARNING: RATE_LIMIT_USE_REDIS is set but REDIS_HOST is empty; falling back to in-memory limiter")
	}

	return cfg, nil
}
