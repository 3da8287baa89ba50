package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ServerSettings holds the HTTP server configuration.
type ServerSettings struct {
	Port      string `mapstructure:"port" validate:"required,numeric"`
	StaticDir string `mapstructure:"static_dir"`
}

// Validate checks that all fields in ServerSettings are valid
func (s *ServerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ServerSettings: %w", err)
	}

	return nil
}

// CORSSettings holds the allowed cross-origin configuration for the
// frontend. Credentials are always allowed for the listed origins.
type CORSSettings struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1"`
}

// Validate checks that all fields in CORSSettings are valid
func (s *CORSSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CORSSettings: %w", err)
	}

	return nil
}
