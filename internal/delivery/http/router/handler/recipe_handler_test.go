package handler

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cookbook/internal/delivery/http/validator"
	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	mockUsecase "cookbook/internal/mocks/usecase"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRecipeTestContext(t *testing.T, method, target, idParam string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(idParam)

	return c
}

func TestRecipeHandler_GetRecipe_MalformedID(t *testing.T) {
	handler := &RecipeHandler{}

	c := newRecipeTestContext(t, http.MethodGet, "/recipes/not-a-uuid", "not-a-uuid")

	err := handler.GetRecipe(c)

	require.Error(t, err)
	// A malformed ID can never reference a resource, so it is a not-found,
	// not a bad request.
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestRecipeHandler_DeleteRecipe_MalformedID(t *testing.T) {
	handler := &RecipeHandler{}

	c := newRecipeTestContext(t, http.MethodDelete, "/recipes/12345", "12345")

	err := handler.DeleteRecipe(c)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestRecipeHandler_UpdateRecipe_IgnoresUserKeyInPayload(t *testing.T) {
	ownerID := uuid.New()
	foreignID := uuid.New()
	recipeID := uuid.New()

	uc := mockUsecase.NewMockRecipeUsecase(t)
	handler := NewRecipeHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	e.Validator = validator.New()
	body := fmt.Sprintf(`{"title":"Renamed","user":%q}`, foreignID)
	req := httptest.NewRequest(http.MethodPatch, "/recipes/"+recipeID.String(), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", ownerID)
	c.SetParamNames("id")
	c.SetParamValues(recipeID.String())

	uc.EXPECT().
		UpdateRecipe(mock.Anything, ownerID, recipeID, mock.AnythingOfType("*usecase.UpdateRecipeInput")).
		RunAndReturn(func(ctx context.Context, gotOwner, gotRecipe uuid.UUID, input *usecase.UpdateRecipeInput) (*entity.Recipe, error) {
			require.NotNil(t, input.Title)
			assert.Equal(t, "Renamed", *input.Title)

			return &entity.Recipe{ID: recipeID, UserID: gotOwner, Title: *input.Title}, nil
		})

	err := handler.UpdateRecipe(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	// The owner comes from the access token; the payload's user key has no
	// bindable field, so the stored owner never changes.
	assert.Contains(t, rec.Body.String(), ownerID.String())
	assert.NotContains(t, rec.Body.String(), foreignID.String())
}
