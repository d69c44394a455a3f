package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.RatePerMinute <= 0 {
		return fmt.Errorf("server.rate_per_minute must be > 0 (got %d)", c.Server.RatePerMinute)
	}

	if err := c.Board.validate(); err != nil {
		return fmt.Errorf("board: %w", err)
	}

	return nil
}

func (b *BoardConfig) validate() error {
	if b.MaxSubjectLen <= 0 {
		return fmt.Errorf("max_subject_len must be > 0 (got %d)", b.MaxSubjectLen)
	}
	if b.MaxContentLen <= 0 {
		return fmt.Errorf("max_content_len must be > 0 (got %d)", b.MaxContentLen)
	}
	if b.DefaultPageSize <= 0 {
		return fmt.Errorf("default_page_size must be > 0 (got %d)", b.DefaultPageSize)
	}
	if b.MaxPageSize < b.DefaultPageSize {
		return fmt.Errorf("max_page_size must be >= default_page_size (got %d < %d)", b.MaxPageSize, b.DefaultPageSize)
	}
	return nil
}
