package postgres

import (
	"context"

	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tagRepository implements the domain.TagRepository interface using GORM.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

// Create persists a new tag. The (user_id, name) unique index is the single
// source of truth for duplicates; a violation surfaces as ErrDuplicateTag.
func (repo *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	tagM := fromTagDomain(tag)

	if err := repo.db.WithContext(ctx).Create(tagM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTag
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required tag information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create tag")
	}

	// Update the entity with generated values
	tag.ID = tagM.ID
	tag.CreatedAt = tagM.CreatedAt
	tag.UpdatedAt = tagM.UpdatedAt

	return nil
}

// FindByOwner retrieves all tags owned by ownerID in reverse lexicographic name order.
func (repo *tagRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Tag, error) {
	var tagModels []*model.TagModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name DESC").
		Find(&tagModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find tags by owner")
	}

	tags := make([]*entity.Tag, 0, len(tagModels))
	for _, tagM := range tagModels {
		tags = append(tags, toTagDomain(tagM))
	}

	return tags, nil
}

// FindByOwnerAndName retrieves the tag with that exact, case-sensitive name.
func (repo *tagRepository) FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Tag, error) {
	var tagM model.TagModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", ownerID, name).
		First(&tagM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag by name")
	}

	return toTagDomain(&tagM), nil
}

// FindByIDForOwner retrieves a single tag scoped to its owner.
func (repo *tagRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*entity.Tag, error) {
	var tagM model.TagModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&tagM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTagNotFound
		}

		return nil, errors.Wrap(err, "failed to find tag by id")
	}

	return toTagDomain(&tagM), nil
}

// Update persists a renamed tag.
func (repo *tagRepository) Update(ctx context.Context, tag *entity.Tag) error {
	tagM := fromTagDomain(tag)

	if err := repo.db.WithContext(ctx).Save(tagM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateTag
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update tag")
	}

	tag.UpdatedAt = tagM.UpdatedAt

	return nil
}

// Delete removes a tag together with its recipe association rows.
func (repo *tagRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.TagModel{ID: id}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete tag")
	}

	return nil
}

// --- Mapper Functions ---

// toTagDomain converts a GORM TagModel to a domain Tag entity.
func toTagDomain(data *model.TagModel) *entity.Tag {
	if data == nil {
		return nil
	}

	return &entity.Tag{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTagDomain converts a domain Tag entity to a GORM TagModel for persistence.
func fromTagDomain(data *entity.Tag) *model.TagModel {
	if data == nil {
		return nil
	}

	return &model.TagModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}
