package model

import (
	"time"

	"github.com/google/uuid"
)

// TagModel is the GORM-specific struct for the 'tags' table.
// (user_id, name) is unique per owner; reconciliation relies on it.
type TagModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_tags_owner_name"`
	Name      string         `gorm:"size:255;not null;uniqueIndex:idx_tags_owner_name"`
	Recipes   []*RecipeModel `gorm:"many2many:recipe_tags;joinForeignKey:tag_id;joinReferences:recipe_id"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}
