package routes

import (
	"recipevault/internal/api/handlers"
	"recipevault/internal/middleware"
	"recipevault/pkg/jwt"
	"recipevault/pkg/user"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	RecipeHandler handlers.RecipeHandler
	UserHandler   handlers.UserHandler
	MediaHandler  handlers.MediaHandler
	Middleware    middleware.Middleware
	JWTService    jwt.JWTService
	UserService   user.UserService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Recipes()
	c.Favorites()
	c.CookingHistory()
	c.Media()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	auth.Get("/user", c.Middleware.AuthMiddleware(c.JWTService, c.UserService), c.UserHandler.Me)
}

func (c *Config) Recipes() {
	authRequired := c.Middleware.AuthMiddleware(c.JWTService, c.UserService)
	authOptional := c.Middleware.OptionalAuthMiddleware(c.JWTService, c.UserService)

	recipes := c.App.Group("/api/recipes")
	// static paths first so they never match the :id parameter
	{
		recipes.Get("/public", c.RecipeHandler.GetPublicRecipes)
		recipes.Get("/search", authOptional, c.RecipeHandler.SearchRecipes)
		recipes.Get("", authRequired, c.RecipeHandler.GetMyRecipes)
		recipes.Post("", authRequired, c.RecipeHandler.CreateRecipe)
		recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
		recipes.Put("/:id", authRequired, c.RecipeHandler.UpdateRecipe)
		recipes.Delete("/:id", authRequired, c.RecipeHandler.DeleteRecipe)
	}
}

func (c *Config) Favorites() {
	favorites := c.App.Group("/api/favorites", c.Middleware.AuthMiddleware(c.JWTService, c.UserService))
	{
		favorites.Get("", c.RecipeHandler.GetFavorites)
		favorites.Post("/:recipeId", c.RecipeHandler.AddFavorite)
		favorites.Delete("/:recipeId", c.RecipeHandler.RemoveFavorite)
	}
}

func (c *Config) CookingHistory() {
	history := c.App.Group("/api/cooking-history", c.Middleware.AuthMiddleware(c.JWTService, c.UserService))
	{
		history.Get("", c.RecipeHandler.GetCookingHistory)
		history.Post("", c.RecipeHandler.AddCookingHistory)
	}
}

func (c *Config) Media() {
	c.App.Post("/api/upload", c.Middleware.AuthMiddleware(c.JWTService, c.UserService), c.MediaHandler.UploadImage)
}
