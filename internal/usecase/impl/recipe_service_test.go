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

// recipeServiceFixtures holds all test dependencies for recipe service tests.
type recipeServiceFixtures struct {
	service    usecase.RecipeUsecase
	txManager  *mockRepo.MockTransactionManager
	recipeRepo *mockRepo.MockRecipeRepository
}

func createTestRecipeService(t *testing.T) recipeServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	recipeRepo := mockRepo.NewMockRecipeRepository(t)

	service := NewRecipeService(RecipeServiceParams{
		TxManager:  txManager,
		RecipeRepo: recipeRepo,
		Logger:     newDiscardLogger(),
	})

	return recipeServiceFixtures{
		service:    service,
		txManager:  txManager,
		recipeRepo: recipeRepo,
	}
}

// runTransaction wires the Execute expectation so the transaction body runs
// against the given factory and its error is surfaced unchanged.
func (fx recipeServiceFixtures) runTransaction(ctx context.Context, factory *mockRepo.MockRepositoryFactory) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestRecipeService_ListRecipes_Success(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipes := []*entity.Recipe{
		{ID: uuid.New(), UserID: ownerID, Title: "Newer"},
		{ID: uuid.New(), UserID: ownerID, Title: "Older"},
	}

	fx.recipeRepo.EXPECT().FindByOwner(ctx, ownerID).Return(recipes, nil)

	got, err := fx.service.ListRecipes(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, recipes, got)
}

func TestRecipeService_GetRecipe_NotFound(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipeID := uuid.New()

	fx.recipeRepo.EXPECT().
		FindByIDForOwner(ctx, ownerID, recipeID).
		Return(nil, repository.ErrRecipeNotFound)

	got, err := fx.service.GetRecipe(ctx, ownerID, recipeID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}

func TestRecipeService_CreateRecipe_ReusesExistingAndCreatesMissing(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateRecipeInput{
		Title:       "Pad Thai",
		TimeMinutes: 30,
		Price:       12.5,
		Tags:        []usecase.NamedRef{{Name: "Thai"}, {Name: "Quick"}},
		Ingredients: []usecase.NamedRef{{Name: "Rice Noodles"}},
	}

	existingTag := &entity.Tag{ID: uuid.New(), UserID: ownerID, Name: "Thai"}

	factory := mockRepo.NewMockRepositoryFactory(t)
	tagRepo := mockRepo.NewMockTagRepository(t)
	ingredientRepo := mockRepo.NewMockIngredientRepository(t)
	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)

	factory.EXPECT().NewTagRepository().Return(tagRepo)
	factory.EXPECT().NewIngredientRepository().Return(ingredientRepo)
	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)

	tagRepo.EXPECT().FindByOwnerAndName(ctx, ownerID, "Thai").Return(existingTag, nil)
	tagRepo.EXPECT().FindByOwnerAndName(ctx, ownerID, "Quick").Return(nil, repository.ErrTagNotFound)
	tagRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Tag")).Return(nil)

	ingredientRepo.EXPECT().
		FindByOwnerAndName(ctx, ownerID, "Rice Noodles").
		Return(nil, repository.ErrIngredientNotFound)
	ingredientRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Ingredient")).Return(nil)

	txRecipeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Recipe")).Return(nil)
	txRecipeRepo.EXPECT().
		ReplaceTags(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("[]*entity.Tag")).
		Run(func(ctx context.Context, recipeID uuid.UUID, tags []*entity.Tag) {
			require.Len(t, tags, 2)
			assert.Equal(t, existingTag.ID, tags[0].ID)
			assert.Equal(t, "Quick", tags[1].Name)
		}).
		Return(nil)
	txRecipeRepo.EXPECT().
		ReplaceIngredients(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("[]*entity.Ingredient")).
		Run(func(ctx context.Context, recipeID uuid.UUID, ingredients []*entity.Ingredient) {
			require.Len(t, ingredients, 1)
			assert.Equal(t, "Rice Noodles", ingredients[0].Name)
		}).
		Return(nil)

	fx.runTransaction(ctx, factory)

	recipe, err := fx.service.CreateRecipe(ctx, ownerID, input)

	require.NoError(t, err)
	require.NotNil(t, recipe)
	assert.Equal(t, ownerID, recipe.UserID)
	assert.Len(t, recipe.Tags, 2)
	assert.Len(t, recipe.Ingredients, 1)
}

func TestRecipeService_CreateRecipe_CollapsesDuplicateNames(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := &usecase.CreateRecipeInput{
		Title: "Soup",
		Tags:  []usecase.NamedRef{{Name: "Vegan"}, {Name: "Vegan"}},
	}

	existingTag := &entity.Tag{ID: uuid.New(), UserID: ownerID, Name: "Vegan"}

	factory := mockRepo.NewMockRepositoryFactory(t)
	tagRepo := mockRepo.NewMockTagRepository(t)
	ingredientRepo := mockRepo.NewMockIngredientRepository(t)
	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)

	factory.EXPECT().NewTagRepository().Return(tagRepo)
	factory.EXPECT().NewIngredientRepository().Return(ingredientRepo)
	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)

	tagRepo.EXPECT().FindByOwnerAndName(ctx, ownerID, "Vegan").Return(existingTag, nil).Once()

	txRecipeRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Recipe")).Return(nil)
	txRecipeRepo.EXPECT().
		ReplaceTags(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("[]*entity.Tag")).
		Run(func(ctx context.Context, recipeID uuid.UUID, tags []*entity.Tag) {
			require.Len(t, tags, 1)
			assert.Equal(t, existingTag.ID, tags[0].ID)
		}).
		Return(nil)
	txRecipeRepo.EXPECT().
		ReplaceIngredients(ctx, mock.AnythingOfType("uuid.UUID"), mock.AnythingOfType("[]*entity.Ingredient")).
		Run(func(ctx context.Context, recipeID uuid.UUID, ingredients []*entity.Ingredient) {
			assert.Empty(t, ingredients)
		}).
		Return(nil)

	fx.runTransaction(ctx, factory)

	recipe, err := fx.service.CreateRecipe(ctx, ownerID, input)

	require.NoError(t, err)
	assert.Len(t, recipe.Tags, 1)
}

func TestRecipeService_CreateRecipe_BlankTitle(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	input := &usecase.CreateRecipeInput{Title: "   "}

	recipe, err := fx.service.CreateRecipe(ctx, uuid.New(), input)

	assert.Nil(t, recipe)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRecipeService_CreateRecipe_NegativePrice(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	input := &usecase.CreateRecipeInput{Title: "Stew", Price: -1}

	recipe, err := fx.service.CreateRecipe(ctx, uuid.New(), input)

	assert.Nil(t, recipe)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRecipeService_CreateRecipe_BlankTagName(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	input := &usecase.CreateRecipeInput{
		Title: "Stew",
		Tags:  []usecase.NamedRef{{Name: " "}},
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	fx.runTransaction(ctx, factory)

	recipe, err := fx.service.CreateRecipe(ctx, uuid.New(), input)

	assert.Nil(t, recipe)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestRecipeService_UpdateRecipe_PartialFieldsOnly(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipeID := uuid.New()
	stored := &entity.Recipe{
		ID:          recipeID,
		UserID:      ownerID,
		Title:       "Old Title",
		TimeMinutes: 20,
		Price:       8,
		Tags:        []*entity.Tag{{ID: uuid.New(), UserID: ownerID, Name: "Keep"}},
	}

	newTitle := "New Title"
	input := &usecase.UpdateRecipeInput{Title: &newTitle}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)

	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)

	txRecipeRepo.EXPECT().FindByIDForOwner(ctx, ownerID, recipeID).Return(stored, nil)
	txRecipeRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Recipe")).
		Run(func(ctx context.Context, recipe *entity.Recipe) {
			assert.Equal(t, "New Title", recipe.Title)
			assert.Equal(t, 20, recipe.TimeMinutes)
			assert.Equal(t, ownerID, recipe.UserID)
		}).
		Return(nil)

	fx.runTransaction(ctx, factory)

	updated, err := fx.service.UpdateRecipe(ctx, ownerID, recipeID, input)

	require.NoError(t, err)
	assert.Equal(t, "New Title", updated.Title)
	// No tags key in the payload, so the association set stays untouched.
	assert.Len(t, updated.Tags, 1)
}

func TestRecipeService_UpdateRecipe_ClearsTags(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipeID := uuid.New()
	stored := &entity.Recipe{
		ID:     recipeID,
		UserID: ownerID,
		Title:  "Curry",
		Tags:   []*entity.Tag{{ID: uuid.New(), UserID: ownerID, Name: "Spicy"}},
	}

	empty := []usecase.NamedRef{}
	input := &usecase.UpdateRecipeInput{Tags: &empty}

	factory := mockRepo.NewMockRepositoryFactory(t)
	tagRepo := mockRepo.NewMockTagRepository(t)
	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)

	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)
	factory.EXPECT().NewTagRepository().Return(tagRepo)

	txRecipeRepo.EXPECT().FindByIDForOwner(ctx, ownerID, recipeID).Return(stored, nil)
	txRecipeRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Recipe")).Return(nil)
	txRecipeRepo.EXPECT().
		ReplaceTags(ctx, recipeID, mock.AnythingOfType("[]*entity.Tag")).
		Run(func(ctx context.Context, id uuid.UUID, tags []*entity.Tag) {
			assert.Empty(t, tags)
		}).
		Return(nil)

	fx.runTransaction(ctx, factory)

	updated, err := fx.service.UpdateRecipe(ctx, ownerID, recipeID, input)

	require.NoError(t, err)
	assert.Empty(t, updated.Tags)
}

func TestRecipeService_UpdateRecipe_NotFound(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipeID := uuid.New()

	newTitle := "New Title"
	input := &usecase.UpdateRecipeInput{Title: &newTitle}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)

	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)
	txRecipeRepo.EXPECT().
		FindByIDForOwner(ctx, ownerID, recipeID).
		Return(nil, repository.ErrRecipeNotFound)

	fx.runTransaction(ctx, factory)

	updated, err := fx.service.UpdateRecipe(ctx, ownerID, recipeID, input)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}

func TestRecipeService_UpdateRecipe_InvalidMergedTitle(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipeID := uuid.New()
	stored := &entity.Recipe{ID: recipeID, UserID: ownerID, Title: "Curry"}

	blank := ""
	input := &usecase.UpdateRecipeInput{Title: &blank}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)

	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)
	txRecipeRepo.EXPECT().FindByIDForOwner(ctx, ownerID, recipeID).Return(stored, nil)

	fx.runTransaction(ctx, factory)

	updated, err := fx.service.UpdateRecipe(ctx, ownerID, recipeID, input)

	assert.Nil(t, updated)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	// The stored record keeps its title when the merge fails validation.
	assert.Equal(t, "Curry", stored.Title)
}

func TestRecipeService_DeleteRecipe_Success(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipeID := uuid.New()
	stored := &entity.Recipe{ID: recipeID, UserID: ownerID, Title: "Curry"}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)

	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)
	txRecipeRepo.EXPECT().FindByIDForOwner(ctx, ownerID, recipeID).Return(stored, nil)
	txRecipeRepo.EXPECT().Delete(ctx, recipeID).Return(nil)

	fx.runTransaction(ctx, factory)

	err := fx.service.DeleteRecipe(ctx, ownerID, recipeID)

	require.NoError(t, err)
}

func TestRecipeService_DeleteRecipe_NotFound(t *testing.T) {
	fx := createTestRecipeService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	recipeID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRecipeRepo := mockRepo.NewMockRecipeRepository(t)

	factory.EXPECT().NewRecipeRepository().Return(txRecipeRepo)
	txRecipeRepo.EXPECT().
		FindByIDForOwner(ctx, ownerID, recipeID).
		Return(nil, repository.ErrRecipeNotFound)

	fx.runTransaction(ctx, factory)

	err := fx.service.DeleteRecipe(ctx, ownerID, recipeID)

	assert.True(t, errors.Is(err, domainerrors.ErrRecipeNotFound))
}
