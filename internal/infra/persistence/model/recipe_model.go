package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel is the GORM-specific struct for the 'recipes' table.
// The join tables carry a composite primary key on (recipe_id, tag_id) /
// (recipe_id, ingredient_id), so an association pair can exist only once.
type RecipeModel struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	Title       string             `gorm:"size:255;not null"`
	TimeMinutes int                `gorm:"not null;default:0"`
	Price       float64            `gorm:"type:decimal(8,2);not null;default:0"`
	Description string             `gorm:"type:text;not null;default:''"`
	Link        string             `gorm:"size:255;not null;default:''"`
	Tags        []*TagModel        `gorm:"many2many:recipe_tags;joinForeignKey:recipe_id;joinReferences:tag_id"`
	Ingredients []*IngredientModel `gorm:"many2many:recipe_ingredients;joinForeignKey:recipe_id;joinReferences:ingredient_id"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
