// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is a dish owned by a single user. Its tags and ingredients are
// always owned by the same user; the reconciliation logic in the usecase
// layer guarantees that invariant.
type Recipe struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"user_id"` // Owner. Immutable after creation.
	Title       string        `json:"title"`
	TimeMinutes int           `json:"time_minutes"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Link        string        `json:"link"`
	Tags        []*Tag        `json:"tags,omitempty"`
	Ingredients []*Ingredient `json:"ingredients,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
