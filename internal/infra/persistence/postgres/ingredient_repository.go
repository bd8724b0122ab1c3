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

// ingredientRepository implements the domain.IngredientRepository interface using GORM.
// It mirrors tagRepository over the independent ingredient namespace.
type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository is the constructor for ingredientRepository.
func NewIngredientRepository(db *gorm.DB) repository.IngredientRepository {
	return &ingredientRepository{db: db}
}

// Create persists a new ingredient. A (user_id, name) unique index violation
// surfaces as ErrDuplicateIngredient.
func (repo *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	ingredientM := fromIngredientDomain(ingredient)

	if err := repo.db.WithContext(ctx).Create(ingredientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateIngredient
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required ingredient information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ingredient")
	}

	// Update the entity with generated values
	ingredient.ID = ingredientM.ID
	ingredient.CreatedAt = ingredientM.CreatedAt
	ingredient.UpdatedAt = ingredientM.UpdatedAt

	return nil
}

// FindByOwner retrieves all ingredients owned by ownerID in reverse lexicographic name order.
func (repo *ingredientRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Ingredient, error) {
	var ingredientModels []*model.IngredientModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name DESC").
		Find(&ingredientModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find ingredients by owner")
	}

	ingredients := make([]*entity.Ingredient, 0, len(ingredientModels))
	for _, ingredientM := range ingredientModels {
		ingredients = append(ingredients, toIngredientDomain(ingredientM))
	}

	return ingredients, nil
}

// FindByOwnerAndName retrieves the ingredient with that exact, case-sensitive name.
func (repo *ingredientRepository) FindByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Ingredient, error) {
	var ingredientM model.IngredientModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", ownerID, name).
		First(&ingredientM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIngredientNotFound
		}

		return nil, errors.Wrap(err, "failed to find ingredient by name")
	}

	return toIngredientDomain(&ingredientM), nil
}

// FindByIDForOwner retrieves a single ingredient scoped to its owner.
func (repo *ingredientRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*entity.Ingredient, error) {
	var ingredientM model.IngredientModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&ingredientM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIngredientNotFound
		}

		return nil, errors.Wrap(err, "failed to find ingredient by id")
	}

	return toIngredientDomain(&ingredientM), nil
}

// Update persists a renamed ingredient.
func (repo *ingredientRepository) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	ingredientM := fromIngredientDomain(ingredient)

	if err := repo.db.WithContext(ctx).Save(ingredientM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateIngredient
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update ingredient")
	}

	ingredient.UpdatedAt = ingredientM.UpdatedAt

	return nil
}

// Delete removes an ingredient together with its recipe association rows.
func (repo *ingredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.IngredientModel{ID: id}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ingredient")
	}

	return nil
}

// --- Mapper Functions ---

// toIngredientDomain converts a GORM IngredientModel to a domain Ingredient entity.
func toIngredientDomain(data *model.IngredientModel) *entity.Ingredient {
	if data == nil {
		return nil
	}

	return &entity.Ingredient{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromIngredientDomain converts a domain Ingredient entity to a GORM IngredientModel for persistence.
func fromIngredientDomain(data *entity.Ingredient) *model.IngredientModel {
	if data == nil {
		return nil
	}

	return &model.IngredientModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
}
