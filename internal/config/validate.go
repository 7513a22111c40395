package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.AdminEmail != "" && len(c.Auth.AdminPassword) < 8 {
		return fmt.Errorf("auth.admin_password must be at least 8 characters when auth.admin_email is set")
	}

	if c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be <= 31 (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.Store.validate(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if c.Store.IsRemote() && strings.TrimSpace(c.Database.DSN) == "" {
		return fmt.Errorf("database.dsn is required when store.mode is remote")
	}

	if !c.Store.IsRemote() && c.Store.LocalBackend == LocalBackendRedis && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when store.local_backend is redis")
	}

	if c.RateLimit.UploadsPerMinute < 1 || c.RateLimit.LoginsPerMinute < 1 {
		return fmt.Errorf("rate_limit: per-minute limits must be >= 1")
	}

	if err := c.Extraction.validate(); err != nil {
		return fmt.Errorf("extraction: %w", err)
	}

	return nil
}

func (s *StoreConfig) validate() error {
	switch strings.ToLower(s.Mode) {
	case "local", "remote":
	default:
		return fmt.Errorf("mode must be local or remote (got %q)", s.Mode)
	}
	switch s.LocalBackend {
	case LocalBackendMemory, LocalBackendFile, LocalBackendRedis:
	default:
		return fmt.Errorf("local_backend must be memory, file or redis (got %q)", s.LocalBackend)
	}
	if s.SeedBatchSize <= 0 || s.SeedBatchSize > 500 {
		return fmt.Errorf("seed_batch_size must be in 1..500 (got %d)", s.SeedBatchSize)
	}
	return nil
}

func (e *ExtractionConfig) validate() error {
	if e.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be >= 1 (got %d)", e.MaxAttempts)
	}
	if e.BaseDelay < 0 {
		return fmt.Errorf("base_delay must be >= 0 (got %v)", e.BaseDelay)
	}
	if e.MaxPayloadBytes <= 0 {
		return fmt.Errorf("max_payload_bytes must be > 0 (got %d)", e.MaxPayloadBytes)
	}
	if e.Jitter < 0 || e.Jitter >= 1 {
		return fmt.Errorf("jitter must be in [0, 1) (got %v)", e.Jitter)
	}
	return nil
}
