package config

import (
	"fmt"
	"time"
	_ "time/tzdata" // report timezones resolve without system zoneinfo
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}
	if c.Auth.AccessTokenTTL <= 0 || c.Auth.RefreshTokenTTL <= 0 {
		return fmt.Errorf("auth token TTLs must be > 0")
	}

	if c.Backup.Timeout <= 0 {
		return fmt.Errorf("backup.timeout must be > 0 (got %s)", c.Backup.Timeout)
	}
	if c.RateLimit.AuthRequests <= 0 {
		return fmt.Errorf("rate_limit.auth_requests must be > 0 (got %d)", c.RateLimit.AuthRequests)
	}

	if err := c.Report.validate(); err != nil {
		return fmt.Errorf("report: %w", err)
	}

	return nil
}

func (r *ReportConfig) validate() error {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return fmt.Errorf("timezone %q: %w", r.Timezone, err)
	}
	r.Location = loc
	return nil
}
