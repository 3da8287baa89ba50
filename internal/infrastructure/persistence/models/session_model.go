package models

import (
	"time"

	"github.com/TikhonFedorov/couple-app/internal/domain/sessions"
)

// SessionModel is the GORM database model for server-side sessions
// (infrastructure concern). Only the database session backend uses it.
type SessionModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	Token     string    `gorm:"type:uuid;not null;uniqueIndex"`
	UserID    string    `gorm:"not null;index;type:uuid"`
	CreatedAt time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return "sessions"
}

// ToDomain converts GORM model to domain entity
func (m *SessionModel) ToDomain() *sessions.Session {
	return &sessions.Session{
		ID:        m.ID,
		Token:     m.Token,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		ExpiresAt: m.ExpiresAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SessionModel) FromDomain(s *sessions.Session) {
	m.ID = s.ID
	m.Token = s.Token
	m.UserID = s.UserID
	m.CreatedAt = s.CreatedAt
	m.ExpiresAt = s.ExpiresAt
}
