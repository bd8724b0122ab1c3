// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cookbook/internal/domain/entity"

	"github.com/google/uuid"
)

// NamedRef is a reference to a tag or ingredient by name, as submitted in
// recipe payloads. Reconciliation turns it into an owned entity reference.
type NamedRef struct {
	Name string `json:"name" validate:"required,max=255"`
}

// CreateRecipeInput defines the data required to create a recipe.
// Tags and ingredients are optional name lists resolved by reconciliation.
type CreateRecipeInput struct {
	Title       string     `json:"title" validate:"required,max=255"`
	TimeMinutes int        `json:"time_minutes" validate:"gte=0"`
	Price       float64    `json:"price" validate:"gte=0"`
	Description string     `json:"description"`
	Link        string     `json:"link" validate:"omitempty,max=255"`
	Tags        []NamedRef `json:"tags" validate:"dive"`
	Ingredients []NamedRef `json:"ingredients" validate:"dive"`
}

// UpdateRecipeInput defines a partial update. Nil fields are left untouched;
// a non-nil Tags/Ingredients pointer replaces that association set wholesale
// (an empty list clears it). There is deliberately no owner field: the owner
// of a recipe can never change through an update.
type UpdateRecipeInput struct {
	Title       *string     `json:"title" validate:"omitempty,max=255"`
	TimeMinutes *int        `json:"time_minutes" validate:"omitempty,gte=0"`
	Price       *float64    `json:"price" validate:"omitempty,gte=0"`
	Description *string     `json:"description"`
	Link        *string     `json:"link" validate:"omitempty,max=255"`
	Tags        *[]NamedRef `json:"tags" validate:"omitempty,dive"`
	Ingredients *[]NamedRef `json:"ingredients" validate:"omitempty,dive"`
}

// RecipeUsecase defines the interface for recipe management use cases.
// Every operation is scoped to the authenticated owner.
type RecipeUsecase interface {
	// ListRecipes retrieves the owner's recipes, most recently created first.
	ListRecipes(ctx context.Context, ownerID uuid.UUID) ([]*entity.Recipe, error)

	// GetRecipe retrieves one recipe with its tags and ingredients.
	GetRecipe(ctx context.Context, ownerID, recipeID uuid.UUID) (*entity.Recipe, error)

	// CreateRecipe validates the input, reconciles tag/ingredient names and
	// persists the recipe with its association sets in one transaction.
	CreateRecipe(ctx context.Context, ownerID uuid.UUID, input *CreateRecipeInput) (*entity.Recipe, error)

	// UpdateRecipe applies only the supplied fields. PATCH and PUT share
	// these semantics.
	UpdateRecipe(ctx context.Context, ownerID, recipeID uuid.UUID, input *UpdateRecipeInput) (*entity.Recipe, error)

	// DeleteRecipe removes the recipe and its association rows. Tags and
	// ingredients themselves survive.
	DeleteRecipe(ctx context.Context, ownerID, recipeID uuid.UUID) error
}
