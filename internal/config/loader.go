package config

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if COMPASS_CONFIG is set
//  3. env (prefix COMPASS_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("COMPASS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: COMPASS_ADDR, COMPASS_MOCK_WRITES, ...
	// Map env keys like COMPASS_DEMO_SCHEMA -> demo_schema (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("COMPASS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "compass_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.DemoSchema == cfg.ProductionSchema {
		return nil, errors.New("demo_schema and production_schema must differ")
	}
	if cfg.AuditBufferSize < 1 {
		return nil, errors.New("audit_buffer_size must be positive")
	}
	return &cfg, nil
}
