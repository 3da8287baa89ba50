package models

import (
	"github.com/TikhonFedorov/couple-app/internal/domain/accounts"
)

// CoupleModel is the GORM database model for couples (infrastructure concern)
type CoupleModel struct {
	ID   string `gorm:"primaryKey;type:uuid"`
	Name string `gorm:"type:varchar(100);not null"`
}

// TableName specifies the table name for GORM
func (CoupleModel) TableName() string {
	return "couples"
}

// ToDomain converts GORM model to domain entity
func (m *CoupleModel) ToDomain() *accounts.Couple {
	return &accounts.Couple{
		ID:   m.ID,
		Name: m.Name,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CoupleModel) FromDomain(c *accounts.Couple) {
	m.ID = c.ID
	m.Name = c.Name
}
