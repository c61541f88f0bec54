package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DATABASE", "blogai_test")
	t.Setenv("OLLAMA_MODEL", "llama3.2:1b")
	t.Setenv("SERVER_ENVIRONMENT", "development")
	t.Setenv("MONGODB_COLLECTION", "")
	t.Setenv("MONGODB_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.MongoDB.URI == "" || cfg.MongoDB.Database != "blogai_test" {
		t.Fatalf("unexpected mongo config: %+v", cfg.MongoDB)
	}
	if cfg.MongoDB.Collection != "blogs" {
		t.Fatalf("collection = %q, want %q", cfg.MongoDB.Collection, "blogs")
	}
	if cfg.MongoDB.Timeout != 10*time.Second {
		t.Fatalf("timeout = %v, want 10s", cfg.MongoDB.Timeout)
	}
	if cfg.Ollama.Model != "llama3.2:1b" {
		t.Fatalf("model = %q", cfg.Ollama.Model)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != "8000" {
		t.Fatalf("unexpected listen address %s:%s", cfg.Server.Host, cfg.Server.Port)
	}
	if !cfg.Server.Debug() || cfg.LogLevel != "debug" {
		t.Fatalf("development should default to debug, got debug=%v level=%q", cfg.Server.Debug(), cfg.LogLevel)
	}
}

func TestLoadConfig_ProductionDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("SERVER_ENVIRONMENT", "Production")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Server.Debug() {
		t.Fatalf("production must not enable debug mode")
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoadConfig_MissingMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")

	_, err := LoadConfig()
	if !errors.Is(err, ErrMongoURIMissing) {
		t.Fatalf("expected ErrMongoURIMissing, got %v", err)
	}
}
