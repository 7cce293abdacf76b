package config

import (
	"fmt"

	"github.com/kbukum/authzkit/logger"
	"github.com/kbukum/authzkit/observability"
	"github.com/kbukum/authzkit/rebac"
)

// Config is the full configuration of the authorization service.
type Config struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Environment string        `yaml:"environment" mapstructure:"environment"`
	Debug       bool          `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config `yaml:"logging" mapstructure:"logging"`
	Server      ServerConfig  `yaml:"server" mapstructure:"server"`
	Auth        AuthConfig    `yaml:"auth" mapstructure:"auth"`
	Graph       GraphConfig   `yaml:"graph" mapstructure:"graph"`
	Evaluator   EvalConfig    `yaml:"evaluator" mapstructure:"evaluator"`

	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ServerConfig holds HTTP server settings. Timeouts are in seconds.
type ServerConfig struct {
	Host         string `yaml:"host" mapstructure:"host"`
	Port         int    `yaml:"port" mapstructure:"port"`
	ReadTimeout  int    `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout int    `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  int    `yaml:"idle_timeout" mapstructure:"idle_timeout"`
}

// AuthConfig holds authentication settings for the HTTP surface.
type AuthConfig struct {
	// JWTSecret signs and verifies bearer tokens. Empty disables JWT
	// verification and the service falls back to the X-User-Id header.
	JWTSecret string `yaml:"jwt_secret" mapstructure:"jwt_secret"`
	Issuer    string `yaml:"issuer" mapstructure:"issuer"`
	// AdminKeyHash is the bcrypt hash of the key guarding admin endpoints.
	// Empty disables the admin surface entirely.
	AdminKeyHash string `yaml:"admin_key_hash" mapstructure:"admin_key_hash"`
}

// GraphConfig selects the relationship graph the service evaluates.
type GraphConfig struct {
	// Domain selects the built-in policy and fixture set.
	Domain string `yaml:"domain" mapstructure:"domain"`
	// File optionally points at a YAML graph document loaded on top of
	// (or instead of) the built-in fixture.
	File string `yaml:"file" mapstructure:"file"`
	// Seed controls whether the built-in fixture is loaded.
	Seed bool `yaml:"seed" mapstructure:"seed"`
}

// EvalConfig tunes the permission evaluator.
type EvalConfig struct {
	MaxDepth int `yaml:"max_depth" mapstructure:"max_depth"`
}

// Domains the service knows how to run.
const (
	DomainBanking = "banking"
	DomainGenAI   = "genai"
)

// ApplyDefaults fills unset fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "authzd"
	}
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	c.Logging.ApplyDefaults()
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Graph.Domain == "" {
		c.Graph.Domain = DomainBanking
		c.Graph.Seed = true
	}
	if c.Evaluator.MaxDepth == 0 {
		c.Evaluator.MaxDepth = rebac.DefaultMaxDepth
	}
	c.Observability.ServiceName = c.Name
	c.Observability.Environment = c.Environment
	if c.Observability.Enabled {
		c.Observability.ApplyDefaults()
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535 (got: %d)", c.Server.Port)
	}
	if c.Graph.Domain != DomainBanking && c.Graph.Domain != DomainGenAI {
		return fmt.Errorf("graph.domain must be %q or %q (got: %s)", DomainBanking, DomainGenAI, c.Graph.Domain)
	}
	if !c.Graph.Seed && c.Graph.File == "" {
		return fmt.Errorf("graph: either seed must be enabled or graph.file must be set")
	}
	if c.Evaluator.MaxDepth < 1 {
		return fmt.Errorf("evaluator.max_depth must be positive (got: %d)", c.Evaluator.MaxDepth)
	}
	return nil
}
