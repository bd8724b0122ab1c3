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

// TagHandler holds dependencies for tag-related handlers.
type TagHandler struct {
	uc     usecase.TagUsecase
	logger *slog.Logger
}

// NewTagHandler is the constructor for TagHandler, injected by Fx.
func NewTagHandler(uc usecase.TagUsecase, logger *slog.Logger) *TagHandler {
	return &TagHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListTags returns the authenticated user's tags in reverse name order.
func (h *TagHandler) ListTags(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	tags, err := h.uc.ListTags(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tags, "Tags retrieved successfully")
}

// CreateTag creates a tag directly; a duplicate name is a conflict.
func (h *TagHandler) CreateTag(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	input := new(usecase.UpsertTagInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tag input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	tag, err := h.uc.CreateTag(c.Request().Context(), userID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, tag, "Tag created successfully")
}

// RenameTag renames an owned tag.
func (h *TagHandler) RenameTag(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	tagID, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := new(usecase.UpsertTagInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tag input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	tag, err := h.uc.RenameTag(c.Request().Context(), userID, tagID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tag, "Tag renamed successfully")
}

// DeleteTag removes an owned tag and its recipe association rows.
func (h *TagHandler) DeleteTag(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	tagID, err := parseIDParam(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteTag(c.Request().Context(), userID, tagID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
