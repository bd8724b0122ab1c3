package handler

import (
	"log/slog"
	"net/http"

	"cookbook/internal/delivery/http/middleware"
	"cookbook/internal/delivery/http/response"
	"cookbook/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// IngredientHandler holds dependencies for ingredient-related handlers.
// It mirrors TagHandler over the independent ingredient namespace.
type IngredientHandler struct {
	uc     usecase.IngredientUsecase
	logger *slog.Logger
}

// NewIngredientHandler is the constructor for IngredientHandler, injected by Fx.
func NewIngredientHandler(uc usecase.IngredientUsecase, logger *slog.Logger) *IngredientHandler {
	return &IngredientHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListIngredients returns the authenticated user's ingredients in reverse name order.
func (h *IngredientHandler) ListIngredients(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ingredients, err := h.uc.ListIngredients(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ingredients, "Ingredients retrieved successfully")
}

// CreateIngredient creates an ingredient directly; a duplicate name is a conflict.
func (h *IngredientHandler) CreateIngredient(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input := new(usecase.UpsertIngredientInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	ingredient, err := h.uc.CreateIngredient(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ingredient, "Ingredient created successfully")
}

// RenameIngredient renames an owned ingredient.
func (h *IngredientHandler) RenameIngredient(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ingredientID, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpsertIngredientInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ingredient input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	ingredient, err := h.uc.RenameIngredient(c.Request().Context(), userID, ingredientID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ingredient, "Ingredient renamed successfully")
}

// DeleteIngredient removes an owned ingredient and its recipe association rows.
func (h *IngredientHandler) DeleteIngredient(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ingredientID, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteIngredient(c.Request().Context(), userID, ingredientID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
