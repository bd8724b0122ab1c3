package impl

import (
	"context"
	"log/slog"

	deliverycontext "cookbook/internal/delivery/context"
	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ingredientService implements the IngredientUsecase interface. It mirrors
// tagService over the independent ingredient namespace.
type ingredientService struct {
	ingredientRepo repository.IngredientRepository
	logger         *slog.Logger
}

// IngredientServiceParams holds dependencies for IngredientService, injected by Fx.
type IngredientServiceParams struct {
	fx.In

	IngredientRepo repository.IngredientRepository
	Logger         *slog.Logger
}

// NewIngredientService is the constructor for ingredientService.
func NewIngredientService(params IngredientServiceParams) usecase.IngredientUsecase {
	return &ingredientService{
		ingredientRepo: params.IngredientRepo,
		logger:         params.Logger,
	}
}

func (srv *ingredientService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListIngredients retrieves the owner's ingredients in reverse lexicographic name order.
func (srv *ingredientService) ListIngredients(ctx context.Context, ownerID uuid.UUID) ([]*entity.Ingredient, error) {
	ingredients, err := srv.ingredientRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ingredients")
	}

	return ingredients, nil
}

// CreateIngredient creates an ingredient for the owner; duplicate (owner, name) is a conflict.
func (srv *ingredientService) CreateIngredient(ctx context.Context, ownerID uuid.UUID, input *usecase.UpsertIngredientInput) (*entity.Ingredient, error) {
	if err := validateName("ingredient", input.Name); err != nil {
		return nil, err
	}

	ingredient := &entity.Ingredient{
		ID:     uuid.New(),
		UserID: ownerID,
		Name:   input.Name,
	}

	if err := srv.ingredientRepo.Create(ctx, ingredient); err != nil {
		if errors.Is(err, repository.ErrDuplicateIngredient) {
			return nil, domainerrors.ErrIngredientAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create ingredient")
	}

	srv.log(ctx).Debug("Ingredient created", slog.Any("ownerID", ownerID), slog.String("name", ingredient.Name))

	return ingredient, nil
}

// RenameIngredient renames an owned ingredient; absent or foreign ingredients are not found.
func (srv *ingredientService) RenameIngredient(ctx context.Context, ownerID, ingredientID uuid.UUID, input *usecase.UpsertIngredientInput) (*entity.Ingredient, error) {
	if err := validateName("ingredient", input.Name); err != nil {
		return nil, err
	}

	ingredient, err := srv.ingredientRepo.FindByIDForOwner(ctx, ownerID, ingredientID)
	if err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return nil, domainerrors.ErrIngredientNotFound
		}

		return nil, errors.Wrap(err, "failed to find ingredient")
	}

	ingredient.Name = input.Name
	if err := srv.ingredientRepo.Update(ctx, ingredient); err != nil {
		if errors.Is(err, repository.ErrDuplicateIngredient) {
			return nil, domainerrors.ErrIngredientAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to rename ingredient")
	}

	return ingredient, nil
}

// DeleteIngredient removes an owned ingredient together with its recipe association rows.
func (srv *ingredientService) DeleteIngredient(ctx context.Context, ownerID, ingredientID uuid.UUID) error {
	ingredient, err := srv.ingredientRepo.FindByIDForOwner(ctx, ownerID, ingredientID)
	if err != nil {
		if errors.Is(err, repository.ErrIngredientNotFound) {
			return domainerrors.ErrIngredientNotFound
		}

		return errors.Wrap(err, "failed to find ingredient")
	}

	if err := srv.ingredientRepo.Delete(ctx, ingredient.ID); err != nil {
		return errors.Wrap(err, "failed to delete ingredient")
	}

	return nil
}
