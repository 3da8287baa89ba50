//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid sqlite settings",
			settings: &DatabaseSettings{
				Type: SqliteDbType,
				DSN:  "instance/database.db",
			},
			expectedError: false,
		},
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type: PostgresDbType,
				DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
				Name: "coupleapp",
			},
			expectedError: false,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN: "instance/database.db",
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type: "mysql",
				DSN:  "user:password@tcp(localhost:3306)/dbname",
			},
			expectedError: true,
		},
		{
			name: "missing DSN",
			settings: &DatabaseSettings{
				Type: SqliteDbType,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestSessionSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *SessionSettings
		expectedError bool
	}{
		{
			name: "valid cookie backend",
			settings: &SessionSettings{
				Backend:        SessionBackendCookie,
				SecretKey:      "a-strong-secret",
				CookieName:     "session",
				CookieSameSite: "lax",
				LifetimeHours:  720,
			},
			expectedError: false,
		},
		{
			name: "valid database backend without secret",
			settings: &SessionSettings{
				Backend:        SessionBackendDatabase,
				CookieName:     "session",
				CookieSameSite: "strict",
				LifetimeHours:  24,
			},
			expectedError: false,
		},
		{
			name: "cookie backend without secret",
			settings: &SessionSettings{
				Backend:        SessionBackendCookie,
				CookieName:     "session",
				CookieSameSite: "lax",
				LifetimeHours:  720,
			},
			expectedError: true,
		},
		{
			name: "unknown backend",
			settings: &SessionSettings{
				Backend:        "redis",
				CookieName:     "session",
				CookieSameSite: "lax",
				LifetimeHours:  720,
			},
			expectedError: true,
		},
		{
			name: "invalid same site",
			settings: &SessionSettings{
				Backend:        SessionBackendDatabase,
				CookieName:     "session",
				CookieSameSite: "sometimes",
				LifetimeHours:  720,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestLoggerSettingsValidation(t *testing.T) {
	valid := &LoggerSettings{
		LogLevel: LogLevelInfo,
		LogType:  LogTypeConsole,
	}
	assert.NoError(t, valid.Validate())

	fileWithoutPath := &LoggerSettings{
		LogLevel: LogLevelInfo,
		LogType:  LogTypeFile,
	}
	assert.Error(t, fileWithoutPath.Validate())

	fileWithRotation := &LoggerSettings{
		LogLevel:   LogLevelDebug,
		LogType:    LogTypeFile,
		FilePath:   "/var/log/couple-app/api.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     30,
	}
	assert.NoError(t, fileWithRotation.Validate())
}
