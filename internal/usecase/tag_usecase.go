package usecase

import (
	"context"

	"cookbook/internal/domain/entity"

	"github.com/google/uuid"
)

// UpsertTagInput carries the name for creating or renaming a tag.
type UpsertTagInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

// TagUsecase defines direct tag CRUD, owner-scoped, without reconciliation.
type TagUsecase interface {
	// ListTags retrieves the owner's tags in reverse lexicographic name order.
	ListTags(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tag, error)

	// CreateTag creates a tag; duplicate (owner, name) is a conflict.
	CreateTag(ctx context.Context, ownerID uuid.UUID, input *UpsertTagInput) (*entity.Tag, error)

	// RenameTag renames an owned tag.
	RenameTag(ctx context.Context, ownerID, tagID uuid.UUID, input *UpsertTagInput) (*entity.Tag, error)

	// DeleteTag removes an owned tag and its recipe associations.
	DeleteTag(ctx context.Context, ownerID, tagID uuid.UUID) error
}
