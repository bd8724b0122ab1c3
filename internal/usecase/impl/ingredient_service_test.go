package impl

import (
	"context"
	"testing"

	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/domain/repository"
	mockRepo "cookbook/internal/mocks/repository"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ingredientServiceFixtures holds all test dependencies for ingredient service tests.
type ingredientServiceFixtures struct {
	service        usecase.IngredientUsecase
	ingredientRepo *mockRepo.MockIngredientRepository
}

func createTestIngredientService(t *testing.T) ingredientServiceFixtures {
	ingredientRepo := mockRepo.NewMockIngredientRepository(t)

	service := NewIngredientService(IngredientServiceParams{
		IngredientRepo: ingredientRepo,
		Logger:         newDiscardLogger(),
	})

	return ingredientServiceFixtures{
		service:        service,
		ingredientRepo: ingredientRepo,
	}
}

func TestIngredientService_ListIngredients_Success(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	ingredients := []*entity.Ingredient{
		{ID: uuid.New(), UserID: ownerID, Name: "Salt"},
		{ID: uuid.New(), UserID: ownerID, Name: "Pepper"},
	}

	fx.ingredientRepo.EXPECT().FindByOwner(ctx, ownerID).Return(ingredients, nil)

	got, err := fx.service.ListIngredients(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, ingredients, got)
}

func TestIngredientService_CreateIngredient_Success(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.UpsertIngredientInput{Name: "Salt"}

	fx.ingredientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Ingredient")).
		Run(func(ctx context.Context, ingredient *entity.Ingredient) {
			assert.Equal(t, ownerID, ingredient.UserID)
			assert.Equal(t, "Salt", ingredient.Name)
		}).
		Return(nil)

	ingredient, err := fx.service.CreateIngredient(ctx, ownerID, input)

	require.NoError(t, err)
	require.NotNil(t, ingredient)
	assert.Equal(t, "Salt", ingredient.Name)
}

func TestIngredientService_CreateIngredient_Duplicate(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	input := &usecase.UpsertIngredientInput{Name: "Salt"}

	fx.ingredientRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Ingredient")).
		Return(repository.ErrDuplicateIngredient)

	ingredient, err := fx.service.CreateIngredient(ctx, uuid.New(), input)

	assert.Nil(t, ingredient)
	assert.True(t, errors.Is(err, domainerrors.ErrIngredientAlreadyExists))
}

func TestIngredientService_RenameIngredient_NotFound(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	ingredientID := uuid.New()
	input := &usecase.UpsertIngredientInput{Name: "Sea Salt"}

	fx.ingredientRepo.EXPECT().
		FindByIDForOwner(ctx, ownerID, ingredientID).
		Return(nil, repository.ErrIngredientNotFound)

	ingredient, err := fx.service.RenameIngredient(ctx, ownerID, ingredientID, input)

	assert.Nil(t, ingredient)
	assert.True(t, errors.Is(err, domainerrors.ErrIngredientNotFound))
}

func TestIngredientService_RenameIngredient_Success(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	ingredientID := uuid.New()
	stored := &entity.Ingredient{ID: ingredientID, UserID: ownerID, Name: "Salt"}
	input := &usecase.UpsertIngredientInput{Name: "Sea Salt"}

	fx.ingredientRepo.EXPECT().FindByIDForOwner(ctx, ownerID, ingredientID).Return(stored, nil)
	fx.ingredientRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Ingredient")).
		Run(func(ctx context.Context, ingredient *entity.Ingredient) {
			assert.Equal(t, "Sea Salt", ingredient.Name)
		}).
		Return(nil)

	ingredient, err := fx.service.RenameIngredient(ctx, ownerID, ingredientID, input)

	require.NoError(t, err)
	assert.Equal(t, "Sea Salt", ingredient.Name)
}

func TestIngredientService_DeleteIngredient_Success(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	ingredientID := uuid.New()
	stored := &entity.Ingredient{ID: ingredientID, UserID: ownerID, Name: "Salt"}

	fx.ingredientRepo.EXPECT().FindByIDForOwner(ctx, ownerID, ingredientID).Return(stored, nil)
	fx.ingredientRepo.EXPECT().Delete(ctx, ingredientID).Return(nil)

	err := fx.service.DeleteIngredient(ctx, ownerID, ingredientID)

	require.NoError(t, err)
}

func TestIngredientService_DeleteIngredient_NotFound(t *testing.T) {
	fx := createTestIngredientService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	ingredientID := uuid.New()

	fx.ingredientRepo.EXPECT().
		FindByIDForOwner(ctx, ownerID, ingredientID).
		Return(nil, repository.ErrIngredientNotFound)

	err := fx.service.DeleteIngredient(ctx, ownerID, ingredientID)

	assert.True(t, errors.Is(err, domainerrors.ErrIngredientNotFound))
}
