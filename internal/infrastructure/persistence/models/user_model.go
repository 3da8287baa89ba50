package models

import (
	"strings"

	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
)

// List field delimiters. Skills entries never contain commas; about entries
// may, so they are pipe-joined. Existing rows from earlier deployments use
// the same encoding.
const (
	skillsSeparator = ","
	aboutSeparator  = "|"
)

// UserModel is the GORM database model for users (infrastructure concern)
type UserModel struct {
	ID           string  `gorm:"primaryKey;type:uuid"`
	Username     string  `gorm:"type:varchar(80);not null;uniqueIndex"`
	PasswordHash string  `gorm:"type:varchar(120);not null"`
	CoupleID     *string `gorm:"type:uuid;index"`

	Name        string `gorm:"type:varchar(120)"`
	Email       string `gorm:"type:varchar(120)"`
	AvatarURL   string `gorm:"type:varchar(500)"`
	Description string `gorm:"type:text"`
	Skills      string `gorm:"type:text"`
	About       string `gorm:"type:text"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *accounts.User {
	coupleID := ""
	if m.CoupleID != nil {
		coupleID = *m.CoupleID
	}
	return &accounts.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		CoupleID:     coupleID,
		Name:         m.Name,
		Email:        m.Email,
		AvatarURL:    m.AvatarURL,
		Description:  m.Description,
		Skills:       splitList(m.Skills, skillsSeparator),
		About:        splitList(m.About, aboutSeparator),
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *accounts.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.PasswordHash = u.PasswordHash
	if u.CoupleID == "" {
		m.CoupleID = nil
	} else {
		coupleID := u.CoupleID
		m.CoupleID = &coupleID
	}
	m.Name = u.Name
	m.Email = u.Email
	m.AvatarURL = u.AvatarURL
	m.Description = u.Description
	m.Skills = joinList(u.Skills, skillsSeparator)
	m.About = joinList(u.About, aboutSeparator)
}

func splitList(encoded, sep string) []string {
	if encoded == "" {
		return nil
	}
	return strings.Split(encoded, sep)
}

func joinList(items []string, sep string) string {
	return strings.Join(items, sep)
}
