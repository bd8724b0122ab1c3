// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cookbook/internal/delivery/http/middleware"
	"cookbook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	RecipeHandler     *handler.RecipeHandler
	TagHandler        *handler.TagHandler
	IngredientHandler *handler.IngredientHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	recipeHandler     *handler.RecipeHandler
	tagHandler        *handler.TagHandler
	ingredientHandler *handler.IngredientHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		recipeHandler:     params.RecipeHandler,
		tagHandler:        params.TagHandler,
		ingredientHandler: params.IngredientHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
	}

	// Recipe routes, all owner-scoped behind authentication
	recipeGroup := e.Group("/recipes")
	recipeGroup.Use(r.authMiddleware.Authenticate)
	{
		recipeGroup.GET("", r.recipeHandler.ListRecipes)
		recipeGroup.POST("", r.recipeHandler.CreateRecipe)
		recipeGroup.GET("/:id", r.recipeHandler.GetRecipe)
		// PATCH and PUT share partial-update semantics.
		recipeGroup.PATCH("/:id", r.recipeHandler.UpdateRecipe)
		recipeGroup.PUT("/:id", r.recipeHandler.UpdateRecipe)
		recipeGroup.DELETE("/:id", r.recipeHandler.DeleteRecipe)
	}

	// Tag routes
	tagGroup := e.Group("/tags")
	tagGroup.Use(r.authMiddleware.Authenticate)
	{
		tagGroup.GET("", r.tagHandler.ListTags)
		tagGroup.POST("", r.tagHandler.CreateTag)
		tagGroup.PATCH("/:id", r.tagHandler.RenameTag)
		tagGroup.DELETE("/:id", r.tagHandler.DeleteTag)
	}

	// Ingredient routes
	ingredientGroup := e.Group("/ingredients")
	ingredientGroup.Use(r.authMiddleware.Authenticate)
	{
		ingredientGroup.GET("", r.ingredientHandler.ListIngredients)
		ingredientGroup.POST("", r.ingredientHandler.CreateIngredient)
		ingredientGroup.PATCH("/:id", r.ingredientHandler.RenameIngredient)
		ingredientGroup.DELETE("/:id", r.ingredientHandler.DeleteIngredient)
	}
}
