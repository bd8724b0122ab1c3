package handler

import (
	"log/slog"
	"net/http"
	"time"

	"cookbook/internal/delivery/http/middleware"
	"cookbook/internal/delivery/http/response"
	"cookbook/internal/domain/entity"
	domainerrors "cookbook/internal/domain/errors"
	"cookbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RecipeHandler holds dependencies for recipe-related handlers.
type RecipeHandler struct {
	uc     usecase.RecipeUsecase
	logger *slog.Logger
}

// NewRecipeHandler is the constructor for RecipeHandler, injected by Fx.
func NewRecipeHandler(uc usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		uc:     uc,
		logger: logger,
	}
}

// recipeSummary is the list-granularity shape: scalar fields only, no tag or
// ingredient detail.
type recipeSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	TimeMinutes int       `json:"time_minutes"`
	Price       float64   `json:"price"`
	Link        string    `json:"link"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toRecipeSummary(recipe *entity.Recipe) recipeSummary {
	return recipeSummary{
		ID:          recipe.ID,
		Title:       recipe.Title,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
		CreatedAt:   recipe.CreatedAt,
		UpdatedAt:   recipe.UpdatedAt,
	}
}

// ListRecipes returns the authenticated user's recipes, newest first.
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	recipes, err := h.uc.ListRecipes(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	summaries := make([]recipeSummary, 0, len(recipes))
	for _, recipe := range recipes {
		summaries = append(summaries, toRecipeSummary(recipe))
	}

	return response.Success(c, http.StatusOK, summaries, "Recipes retrieved successfully")
}

// GetRecipe returns one recipe with its tags and ingredients embedded.
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	recipeID, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	recipe, err := h.uc.GetRecipe(c.Request().Context(), userID, recipeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe retrieved successfully")
}

// CreateRecipe creates a recipe together with its tag/ingredient associations.
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input := new(usecase.CreateRecipeInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	recipe, err := h.uc.CreateRecipe(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, recipe, "Recipe created successfully")
}

// UpdateRecipe applies a partial update. PATCH and PUT are both routed here;
// absent fields stay untouched either way.
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	recipeID, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpdateRecipeInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recipe input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	recipe, err := h.uc.UpdateRecipe(c.Request().Context(), userID, recipeID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, recipe, "Recipe updated successfully")
}

// DeleteRecipe removes a recipe. The referenced tags and ingredients survive.
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	recipeID, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteRecipe(c.Request().Context(), userID, recipeID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// parseIDParam parses the :id path parameter. A malformed UUID cannot match
// any resource, so it renders as the same not-found error.
func parseIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrNotFound
	}

	return id, nil
}
