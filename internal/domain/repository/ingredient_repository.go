// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"cookbook/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for ingredient persistence.
var (
	// ErrIngredientNotFound is returned when an ingredient is absent or foreign-owned.
	ErrIngredientNotFound = errors.New("ingredient not found")
	// ErrDuplicateIngredient is returned when (owner, name) already exists.
	ErrDuplicateIngredient = errors.New("ingredient already exists")
)

// IngredientRepository defines the interface for ingredient-related database
// operations. It mirrors TagRepository over the independent ingredient namespace.
type IngredientRepository interface {
	// Create persists a new ingredient. Returns ErrDuplicateIngredient when
	// the owner already has an ingredient with that name.
	Create(ctx context.Context, ingredient *entity.Ingredient) error

	// FindByOwner retrieves all ingredients owned by ownerID in reverse
	// lexicographic name order.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Ingredient, error)

	// FindByOwnerAndName retrieves the ingredient with that exact,
	// case-sensitive name. Returns ErrIngredientNotFound on a miss.
	FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Ingredient, error)

	// FindByIDForOwner returns ErrIngredientNotFound when absent or foreign-owned.
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*entity.Ingredient, error)

	// Update persists a renamed ingredient.
	Update(ctx context.Context, ingredient *entity.Ingredient) error

	// Delete removes an ingredient and its recipe association rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
