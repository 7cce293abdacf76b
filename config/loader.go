package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderConfig holds optional file overrides for Load.
type LoaderConfig struct {
	ConfigFile string
	EnvFile    string
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load reads the service configuration. The YAML file provides the base,
// then a .env file (when present) and process environment variables are
// layered on top. The result has defaults applied and is validated.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.ConfigFile == "" {
		lc.ConfigFile = findFirst(
			os.Getenv("AUTHZD_CONFIG"),
			"./config.yml",
			"./cmd/authzd/config.yml",
			"../cmd/authzd/config.yml",
		)
	}
	if lc.EnvFile == "" {
		lc.EnvFile = findFirst("./.env", "../.env")
	}

	if lc.EnvFile != "" {
		if err := godotenv.Load(lc.EnvFile); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: failed to load %s: %v\n", lc.EnvFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("AUTHZD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKeys(v)

	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", lc.ConfigFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// bindKeys registers every settable key so AutomaticEnv can resolve nested
// fields (e.g. AUTHZD_AUTH_JWT_SECRET -> auth.jwt_secret).
func bindKeys(v *viper.Viper) {
	keys := []string{
		"name", "environment", "debug",
		"logging.level", "logging.format", "logging.output", "logging.no_color",
		"server.host", "server.port",
		"server.read_timeout", "server.write_timeout", "server.idle_timeout",
		"auth.jwt_secret", "auth.issuer", "auth.admin_key_hash",
		"graph.domain", "graph.file", "graph.seed",
		"evaluator.max_depth",
		"observability.enabled", "observability.endpoint",
		"observability.insecure", "observability.sample_rate",
	}
	for _, k := range keys {
		// BindEnv only errors on an empty key.
		_ = v.BindEnv(k)
	}
}

func findFirst(paths ...string) string {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}
