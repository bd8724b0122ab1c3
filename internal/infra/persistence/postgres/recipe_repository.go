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

// recipeRepository implements the domain.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// Create persists a new recipe's scalar fields. Association rows are written
// separately through ReplaceTags/ReplaceIngredients so that both paths share
// one wholesale-replace semantic.
func (repo *recipeRepository) Create(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(recipeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRecipeCreationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRecipeCreationFailed.WrapMessage("missing required recipe information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create recipe")
	}

	// Update the entity with generated values
	recipe.ID = recipeM.ID
	recipe.CreatedAt = recipeM.CreatedAt
	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// FindByOwner retrieves all recipes owned by ownerID, most recently created
// first. The id tiebreak keeps the order stable for recipes created within
// the same timestamp tick.
func (repo *recipeRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Recipe, error) {
	var recipeModels []*model.RecipeModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC, id DESC").
		Find(&recipeModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by owner")
	}

	recipes := make([]*entity.Recipe, 0, len(recipeModels))
	for _, recipeM := range recipeModels {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// FindByIDForOwner retrieves a single recipe with its tags and ingredients.
// Owner scoping happens in the WHERE clause, so a foreign recipe is
// indistinguishable from a missing one.
func (repo *recipeRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*entity.Recipe, error) {
	var recipeM model.RecipeModel
	err := repo.db.WithContext(ctx).
		Preload("Tags", func(db *gorm.DB) *gorm.DB {
			return db.Order("tags.name DESC")
		}).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("ingredients.name DESC")
		}).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&recipeM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe by id")
	}

	return toRecipeDomain(&recipeM), nil
}

// Update persists the scalar fields of an existing recipe.
func (repo *recipeRepository) Update(ctx context.Context, recipe *entity.Recipe) error {
	recipeM := fromRecipeDomain(recipe)

	if err := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(recipeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrRecipeUpdateFailed.WrapMessage("missing required recipe information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update recipe")
	}

	recipe.UpdatedAt = recipeM.UpdatedAt

	return nil
}

// ReplaceTags swaps the recipe's tag association set wholesale.
func (repo *recipeRepository) ReplaceTags(ctx context.Context, recipeID uuid.UUID, tags []*entity.Tag) error {
	assoc := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{ID: recipeID}).
		Omit("Tags.*"). // Only touch join rows, never the tag rows themselves.
		Association("Tags")

	if len(tags) == 0 {
		if err := assoc.Clear(); err != nil {
			return errors.Wrap(err, "failed to clear recipe tags")
		}

		return nil
	}

	tagModels := make([]*model.TagModel, 0, len(tags))
	for _, tag := range tags {
		tagModels = append(tagModels, fromTagDomain(tag))
	}

	if err := assoc.Replace(tagModels); err != nil {
		return errors.Wrap(err, "failed to replace recipe tags")
	}

	return nil
}

// ReplaceIngredients swaps the recipe's ingredient association set wholesale.
func (repo *recipeRepository) ReplaceIngredients(ctx context.Context, recipeID uuid.UUID, ingredients []*entity.Ingredient) error {
	assoc := repo.db.WithContext(ctx).
		Model(&model.RecipeModel{ID: recipeID}).
		Omit("Ingredients.*").
		Association("Ingredients")

	if len(ingredients) == 0 {
		if err := assoc.Clear(); err != nil {
			return errors.Wrap(err, "failed to clear recipe ingredients")
		}

		return nil
	}

	ingredientModels := make([]*model.IngredientModel, 0, len(ingredients))
	for _, ingredient := range ingredients {
		ingredientModels = append(ingredientModels, fromIngredientDomain(ingredient))
	}

	if err := assoc.Replace(ingredientModels); err != nil {
		return errors.Wrap(err, "failed to replace recipe ingredients")
	}

	return nil
}

// Delete removes a recipe together with its association rows. The referenced
// tag and ingredient rows stay untouched.
func (repo *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&model.RecipeModel{ID: id}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete recipe")
	}

	return nil
}

// --- Mapper Functions ---

// toRecipeDomain converts a GORM RecipeModel to a domain Recipe entity.
func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	var tags []*entity.Tag
	if data.Tags != nil {
		tags = make([]*entity.Tag, 0, len(data.Tags))
		for _, tagM := range data.Tags {
			tags = append(tags, toTagDomain(tagM))
		}
	}

	var ingredients []*entity.Ingredient
	if data.Ingredients != nil {
		ingredients = make([]*entity.Ingredient, 0, len(data.Ingredients))
		for _, ingredientM := range data.Ingredients {
			ingredients = append(ingredients, toIngredientDomain(ingredientM))
		}
	}

	return &entity.Recipe{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		TimeMinutes: data.TimeMinutes,
		Price:       data.Price,
		Description: data.Description,
		Link:        data.Link,
		Tags:        tags,
		Ingredients: ingredients,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromRecipeDomain converts a domain Recipe entity to a GORM RecipeModel for persistence.
// Associations are intentionally left empty; they are managed via ReplaceTags/ReplaceIngredients.
func fromRecipeDomain(data *entity.Recipe) *model.RecipeModel {
	if data == nil {
		return nil
	}

	return &model.RecipeModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Title:       data.Title,
		TimeMinutes: data.TimeMinutes,
		Price:       data.Price,
		Description: data.Description,
		Link:        data.Link,
		CreatedAt:   data.CreatedAt,
	}
}
