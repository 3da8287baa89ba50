package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Session backend constants
const (
	SessionBackendCookie   = "cookie"
	SessionBackendDatabase = "database"
)

// SessionSettings holds the session cookie and backend configuration.
//
// The cookie backend signs a stateless token with SecretKey; the database
// backend stores opaque tokens server-side and ignores SecretKey.
type SessionSettings struct {
	Backend        string `mapstructure:"backend" validate:"required,oneof=cookie database"`
	SecretKey      string `mapstructure:"secret_key"`
	CookieName     string `mapstructure:"cookie_name" validate:"required"`
	CookieSecure   bool   `mapstructure:"cookie_secure"`
	CookieSameSite string `mapstructure:"cookie_same_site" validate:"required,oneof=lax strict none"`
	LifetimeHours  int    `mapstructure:"lifetime_hours" validate:"required,min=1"`
}

// Validate checks that all fields in SessionSettings are valid
func (s *SessionSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for SessionSettings: %w", err)
	}

	if s.Backend == SessionBackendCookie && s.SecretKey == "" {
		return fmt.Errorf("secret key is required for the cookie session backend")
	}

	return nil
}
