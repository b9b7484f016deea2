// Package config loads typed application configuration from the
// environment (and an optional .env file) and binds it into a registry.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/km-arc/go-registry/registry"
)

// Config is the central typed configuration struct.
type Config struct {
	App    AppConfig
	Server ServerConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | production | testing
	Debug bool
}

type ServerConfig struct {
	Host string
	Port string
}

// Load reads .env (if present) and populates a Config from environment
// variables. Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "go-registry"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", true),
		},
		Server: ServerConfig{
			Host: env("SERVER_HOST", "localhost"),
			Port: env("SERVER_PORT", "8000"),
		},
	}
}

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── Provider ────────────────────────────────────────────────────────────────

// Provider binds the loaded configuration into a registry as the
// "config" service, so it is read from the environment once, on first
// resolution.
//
//	set := registry.NewProviderSet(r)
//	set.Register(&config.Provider{})
//	set.Boot()
//	cfg := registry.MustResolve[*config.Config](r, "config")
type Provider struct {
	registry.BaseProvider
	EnvFiles []string
}

func (p *Provider) Register(r *registry.Registry) {
	envFiles := p.EnvFiles
	r.Set("config", registry.Service(func(r *registry.Registry) (any, error) {
		return Load(envFiles...), nil
	}))
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
