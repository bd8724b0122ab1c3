package usecase

import (
	"context"

	"cookbook/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertIngredientInput carries the name for creating or renaming an ingredient.
type UpsertIngredientInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

// IngredientUsecase defines direct ingredient CRUD, owner-scoped, without reconciliation.
type IngredientUsecase interface {
	// ListIngredients retrieves the owner's ingredients in reverse
	// lexicographic name order.
	ListIngredients(ctx context.Context, ownerID uuid.UUID) ([]*entity.Ingredient, error)

	// CreateIngredient creates an ingredient; duplicate (owner, name) is a conflict.
	CreateIngredient(ctx context.Context, ownerID uuid.UUID, input *UpsertIngredientInput) (*entity.Ingredient, error)

	// RenameIngredient renames an owned ingredient.
	RenameIngredient(ctx context.Context, ownerID, ingredientID uuid.UUID, input *UpsertIngredientInput) (*entity.Ingredient, error)

	// DeleteIngredient removes an owned ingredient and its recipe associations.
	DeleteIngredient(ctx context.Context, ownerID, ingredientID uuid.UUID) error
}
