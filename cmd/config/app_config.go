package config

import (
	"Cookbook-Backend/internal/api/handlers"
	"Cookbook-Backend/internal/api/routes"
	"Cookbook-Backend/internal/middleware"
	"Cookbook-Backend/internal/utils"
	"Cookbook-Backend/internal/utils/storage"
	"Cookbook-Backend/pkg/cookbook"
	"Cookbook-Backend/pkg/editor"
	"Cookbook-Backend/pkg/jwt"
	"Cookbook-Backend/pkg/material"
	"Cookbook-Backend/pkg/step"
	"Cookbook-Backend/pkg/tag"
	"os"
	"time"

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
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
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
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	cookbookRepository := cookbook.NewCookbookRepository(db)
	stepRepository := step.NewStepRepository(db)
	materialRepository := material.NewMaterialRepository(db)
	tagRepository := tag.NewTagRepository(db)
	editorRepository := editor.NewEditorRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	cookbookService := cookbook.NewCookbookService(cookbookRepository, stepRepository, s3)
	stepService := step.NewStepService(stepRepository, s3)
	materialService := material.NewMaterialService(materialRepository, s3)
	tagService := tag.NewTagService(tagRepository)
	editorService := editor.NewEditorService(editorRepository, jwtService)

	// Handler
	cookbookHandler := handlers.NewCookbookHandler(cookbookService, validator)
	stepHandler := handlers.NewStepHandler(stepService, validator)
	materialHandler := handlers.NewMaterialHandler(materialService, validator)
	tagHandler := handlers.NewTagHandler(tagService, validator)
	editorHandler := handlers.NewEditorHandler(editorService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		CookbookHandler: cookbookHandler,
		StepHandler:     stepHandler,
		MaterialHandler: materialHandler,
		TagHandler:      tagHandler,
		EditorHandler:   editorHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
