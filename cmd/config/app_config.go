package config

import (
	"os"
	"time"

	"recipevault/internal/api/handlers"
	"recipevault/internal/api/routes"
	"recipevault/internal/middleware"
	"recipevault/internal/utils"
	"recipevault/internal/utils/storage"
	"recipevault/pkg/jwt"
	"recipevault/pkg/media"
	"recipevault/pkg/recipe"
	"recipevault/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		// uploads are capped at 10MB by the media service; leave headroom
		// for the multipart framing
		BodyLimit: 12 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository)
	recipeService := recipe.NewRecipeService(recipeRepository)
	mediaService := media.NewMediaService(s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	mediaHandler := handlers.NewMediaHandler(mediaService)

	// routes
	routesConfig := routes.Config{
		App:           app,
		RecipeHandler: recipeHandler,
		UserHandler:   userHandler,
		MediaHandler:  mediaHandler,
		Middleware:    middlewares,
		JWTService:    jwtService,
		UserService:   userService,
	}
	routesConfig.Setup()
	return app, nil
}
