// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"cookbook/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for tag persistence.
var (
	// ErrTagNotFound is returned when a tag is absent or foreign-owned.
	ErrTagNotFound = errors.New("tag not found")
	// ErrDuplicateTag is returned when (owner, name) already exists.
	ErrDuplicateTag = errors.New("tag already exists")
)

// TagRepository defines the interface for tag-related database operations.
type TagRepository interface {
	// Create persists a new tag. Returns ErrDuplicateTag when the owner
	// already has a tag with that name.
	Create(ctx context.Context, tag *entity.Tag) error

	// FindByOwner retrieves all tags owned by ownerID in reverse
	// lexicographic name order.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tag, error)

	// FindByOwnerAndName retrieves the tag with that exact, case-sensitive
	// name. Returns ErrTagNotFound on a miss.
	FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Tag, error)

	// FindByIDForOwner returns ErrTagNotFound when absent or foreign-owned.
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*entity.Tag, error)

	// Update persists a renamed tag.
	Update(ctx context.Context, tag *entity.Tag) error

	// Delete removes a tag and its recipe association rows.
	Delete(ctx context.Context, id uuid.UUID) error
}
