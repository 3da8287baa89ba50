// Package models contains the GORM database models. Each model converts to
// and from its domain entity so the schema stays an infrastructure concern.
package models
