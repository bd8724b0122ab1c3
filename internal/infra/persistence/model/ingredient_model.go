package model

import (
	"time"

	"github.com/google/uuid"
)

// IngredientModel is the GORM-specific struct for the 'ingredients' table.
// Same shape as TagModel, independent namespace.
type IngredientModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_ingredients_owner_name"`
	Name      string         `gorm:"size:255;not null;uniqueIndex:idx_ingredients_owner_name"`
	Recipes   []*RecipeModel `gorm:"many2many:recipe_ingredients;joinForeignKey:ingredient_id;joinReferences:recipe_id"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}
