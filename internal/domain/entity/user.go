// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account that owns recipes, tags and ingredients.
// Everything else in the domain is scoped to exactly one User.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"` // Login identifier, unique across the system.
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Never serialized.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
