package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	deliverycontext "cookbook/internal/delivery/context"
	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// recipeService implements the RecipeUsecase interface.
type recipeService struct {
	txManager  repository.TransactionManager
	recipeRepo repository.RecipeRepository
	logger     *slog.Logger
}

// RecipeServiceParams holds dependencies for RecipeService, injected by Fx.
type RecipeServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RecipeRepo repository.RecipeRepository
	Logger     *slog.Logger
}

// NewRecipeService is the constructor for recipeService.
func NewRecipeService(params RecipeServiceParams) usecase.RecipeUsecase {
	return &recipeService{
		txManager:  params.TxManager,
		recipeRepo: params.RecipeRepo,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *recipeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListRecipes retrieves the owner's recipes, most recently created first.
func (srv *recipeService) ListRecipes(ctx context.Context, ownerID uuid.UUID) ([]*entity.Recipe, error) {
	recipes, err := srv.recipeRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recipes")
	}

	return recipes, nil
}

// GetRecipe retrieves one recipe with its tags and ingredients.
func (srv *recipeService) GetRecipe(ctx context.Context, ownerID, recipeID uuid.UUID) (*entity.Recipe, error) {
	recipe, err := srv.recipeRepo.FindByIDForOwner(ctx, ownerID, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecipeNotFound) {
			return nil, domainerrors.ErrRecipeNotFound
		}

		return nil, errors.Wrap(err, "failed to find recipe")
	}

	return recipe, nil
}

// CreateRecipe validates the input, reconciles tag/ingredient names and
// persists the recipe with its association sets in one transaction.
func (srv *recipeService) CreateRecipe(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateRecipeInput) (*entity.Recipe, error) {
	if err := validateRecipeFields(input.Title, input.TimeMinutes, input.Price); err != nil {
		srv.log(ctx).Warn("Recipe validation failed on create", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, err
	}

	recipe := &entity.Recipe{
		ID:          uuid.New(),
		UserID:      ownerID,
		Title:       input.Title,
		TimeMinutes: input.TimeMinutes,
		Price:       input.Price,
		Description: input.Description,
		Link:        input.Link,
	}

	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		tags, err := srv.resolveTags(ctx, f, ownerID, input.Tags)
		if err != nil {
			return err
		}

		ingredients, err := srv.resolveIngredients(ctx, f, ownerID, input.Ingredients)
		if err != nil {
			return err
		}

		recipeRepo := f.NewRecipeRepository()
		if err := recipeRepo.Create(ctx, recipe); err != nil {
			return errors.Wrap(err, "failed to create recipe")
		}
		if err := recipeRepo.ReplaceTags(ctx, recipe.ID, tags); err != nil {
			return errors.Wrap(err, "failed to attach tags")
		}
		if err := recipeRepo.ReplaceIngredients(ctx, recipe.ID, ingredients); err != nil {
			return errors.Wrap(err, "failed to attach ingredients")
		}

		recipe.Tags = tags
		recipe.Ingredients = ingredients

		return nil
	})
	if err != nil {
		if isAppError(err) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to execute recipe creation transaction")
	}

	srv.log(ctx).Debug("Recipe created", slog.Any("ownerID", ownerID), slog.Any("recipeID", recipe.ID))

	return recipe, nil
}

// UpdateRecipe applies only the supplied fields. A non-nil Tags/Ingredients
// pointer replaces that association set wholesale; nil leaves it untouched.
func (srv *recipeService) UpdateRecipe(ctx context.Context, ownerID, recipeID uuid.UUID, input *usecase.UpdateRecipeInput) (*entity.Recipe, error) {
	var updated *entity.Recipe

	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		recipeRepo := f.NewRecipeRepository()

		recipe, err := recipeRepo.FindByIDForOwner(ctx, ownerID, recipeID)
		if err != nil {
			if errors.Is(err, repository.ErrRecipeNotFound) {
				return domainerrors.ErrRecipeNotFound
			}

			return errors.Wrap(err, "failed to find recipe for update")
		}

		if err := applyRecipeFields(recipe, input); err != nil {
			return err
		}

		if err := recipeRepo.Update(ctx, recipe); err != nil {
			return errors.Wrap(err, "failed to update recipe")
		}

		if input.Tags != nil {
			tags, err := srv.resolveTags(ctx, f, ownerID, *input.Tags)
			if err != nil {
				return err
			}
			if err := recipeRepo.ReplaceTags(ctx, recipe.ID, tags); err != nil {
				return errors.Wrap(err, "failed to replace tags")
			}
			recipe.Tags = tags
		}

		if input.Ingredients != nil {
			ingredients, err := srv.resolveIngredients(ctx, f, ownerID, *input.Ingredients)
			if err != nil {
				return err
			}
			if err := recipeRepo.ReplaceIngredients(ctx, recipe.ID, ingredients); err != nil {
				return errors.Wrap(err, "failed to replace ingredients")
			}
			recipe.Ingredients = ingredients
		}

		updated = recipe

		return nil
	})
	if err != nil {
		if isAppError(err) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to execute recipe update transaction")
	}

	return updated, nil
}

// DeleteRecipe removes the recipe and its association rows.
func (srv *recipeService) DeleteRecipe(ctx context.Context, ownerID, recipeID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		recipeRepo := f.NewRecipeRepository()

		recipe, err := recipeRepo.FindByIDForOwner(ctx, ownerID, recipeID)
		if err != nil {
			if errors.Is(err, repository.ErrRecipeNotFound) {
				return domainerrors.ErrRecipeNotFound
			}

			return errors.Wrap(err, "failed to find recipe for delete")
		}

		return recipeRepo.Delete(ctx, recipe.ID)
	})
	if err != nil {
		if isAppError(err) {
			return err
		}

		return errors.Wrap(err, "failed to execute recipe deletion transaction")
	}

	srv.log(ctx).Debug("Recipe deleted", slog.Any("ownerID", ownerID), slog.Any("recipeID", recipeID))

	return nil
}

// resolveTags reconciles a submitted tag name list into owned tag references.
func (srv *recipeService) resolveTags(ctx context.Context, f repository.RepositoryFactory, ownerID uuid.UUID, refs []usecase.NamedRef) ([]*entity.Tag, error) {
	names, err := dedupedNames("tag", refs)
	if err != nil {
		return nil, err
	}

	repo := f.NewTagRepository()

	return reconcile(ctx, names, repository.ErrTagNotFound,
		func(ctx context.Context, name string) (*entity.Tag, error) {
			return repo.FindByOwnerAndName(ctx, ownerID, name)
		},
		func(ctx context.Context, name string) (*entity.Tag, error) {
			tag := &entity.Tag{ID: uuid.New(), UserID: ownerID, Name: name}
			if err := repo.Create(ctx, tag); err != nil {
				return nil, err
			}

			return tag, nil
		},
	)
}

// resolveIngredients reconciles a submitted ingredient name list into owned
// ingredient references.
func (srv *recipeService) resolveIngredients(ctx context.Context, f repository.RepositoryFactory, ownerID uuid.UUID, refs []usecase.NamedRef) ([]*entity.Ingredient, error) {
	names, err := dedupedNames("ingredient", refs)
	if err != nil {
		return nil, err
	}

	repo := f.NewIngredientRepository()

	return reconcile(ctx, names, repository.ErrIngredientNotFound,
		func(ctx context.Context, name string) (*entity.Ingredient, error) {
			return repo.FindByOwnerAndName(ctx, ownerID, name)
		},
		func(ctx context.Context, name string) (*entity.Ingredient, error) {
			ingredient := &entity.Ingredient{ID: uuid.New(), UserID: ownerID, Name: name}
			if err := repo.Create(ctx, ingredient); err != nil {
				return nil, err
			}

			return ingredient, nil
		},
	)
}

// validateRecipeFields guards the scalar invariants independent of the HTTP
// validator, so the service holds them for any caller.
func validateRecipeFields(title string, timeMinutes int, price float64) error {
	if strings.TrimSpace(title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if utf8.RuneCountInString(title) > maxNameLength {
		return domainerrors.ErrValidationFailed.WithDetails("title exceeds the maximum length")
	}
	if timeMinutes < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("time_minutes must not be negative")
	}
	if price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	return nil
}

// applyRecipeFields copies the supplied fields of a partial update onto the
// stored recipe. The owner is never touched.
func applyRecipeFields(recipe *entity.Recipe, input *usecase.UpdateRecipeInput) error {
	title := recipe.Title
	timeMinutes := recipe.TimeMinutes
	price := recipe.Price

	if input.Title != nil {
		title = *input.Title
	}
	if input.TimeMinutes != nil {
		timeMinutes = *input.TimeMinutes
	}
	if input.Price != nil {
		price = *input.Price
	}

	if err := validateRecipeFields(title, timeMinutes, price); err != nil {
		return err
	}

	recipe.Title = title
	recipe.TimeMinutes = timeMinutes
	recipe.Price = price

	if input.Description != nil {
		recipe.Description = *input.Description
	}
	if input.Link != nil {
		recipe.Link = *input.Link
	}

	return nil
}

// isAppError reports whether err carries a domain AppError that already maps
// to a client-facing status, so the transaction wrapper must not bury it.
func isAppError(err error) bool {
	var appErr domainerrors.AppError

	return errors.As(err, &appErr)
}
