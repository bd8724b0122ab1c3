// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Ingredient is a user-scoped named component of recipes. It shares the
// shape and lifecycle of Tag but lives in an independent namespace, so a
// user may own both a tag and an ingredient called "lemon".
type Ingredient struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
