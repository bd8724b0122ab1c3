// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"cookbook/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecipeNotFound is returned when a recipe does not exist for the
// requesting owner. A recipe owned by a different user produces the same
// error so that foreign callers cannot probe for existence.
var ErrRecipeNotFound = errors.New("recipe not found")

// RecipeRepository defines the interface for recipe-related database operations.
// Every read and mutation is scoped to an owner; there is no unscoped access.
type RecipeRepository interface {
	// Create persists a new recipe's scalar fields. Association rows are
	// managed through ReplaceTags/ReplaceIngredients.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// FindByOwner retrieves all recipes owned by ownerID, most recently
	// created first. Tags and ingredients are not loaded at list granularity.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Recipe, error)

	// FindByIDForOwner retrieves a single recipe with its tags and
	// ingredients. Returns ErrRecipeNotFound when the recipe is absent or
	// owned by another user.
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*entity.Recipe, error)

	// Update persists changed scalar fields of an existing recipe.
	// Association sets are managed through ReplaceTags/ReplaceIngredients.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// ReplaceTags swaps the recipe's tag association set wholesale.
	// An empty slice clears all tag associations.
	ReplaceTags(ctx context.Context, recipeID uuid.UUID, tags []*entity.Tag) error

	// ReplaceIngredients swaps the recipe's ingredient association set wholesale.
	ReplaceIngredients(ctx context.Context, recipeID uuid.UUID, ingredients []*entity.Ingredient) error

	// Delete removes a recipe and its association rows. The referenced tag
	// and ingredient entities are left untouched.
	Delete(ctx context.Context, id uuid.UUID) error
}
