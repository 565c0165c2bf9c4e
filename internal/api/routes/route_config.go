package routes

import (
	"Cookbook-Backend/internal/api/handlers"
	"Cookbook-Backend/internal/middleware"
	"Cookbook-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	CookbookHandler handlers.CookbookHandler
	StepHandler     handlers.StepHandler
	MaterialHandler handlers.MaterialHandler
	TagHandler      handlers.TagHandler
	EditorHandler   handlers.EditorHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.PublicRoute()
	c.EditorRoute()
	c.AdminRoute()
}

// PublicRoute serves the end-user catalog: only checked cookbooks.
func (c *Config) PublicRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})

	public := c.App.Group("/api/v1/cookbooks")
	{
		public.Get("", c.CookbookHandler.GetPublicCookbooks)
		public.Get("/:id", c.CookbookHandler.GetPublicCookbookDetail)
		public.Get("/:id/materials", c.CookbookHandler.GetMaterials)
		public.Get("/:cookbook_id/steps", c.StepHandler.GetSteps)
	}

	c.App.Get("/api/v1/steps/:id/materials", c.StepHandler.GetMaterialSet)
	c.App.Get("/api/v1/tags", c.TagHandler.GetTags)
}

func (c *Config) EditorRoute() {
	editors := c.App.Group("/api/v1/editors")
	{
		editors.Post("/login", c.EditorHandler.Login)
		editors.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.EditorHandler.Me)
	}
}

// AdminRoute serves the editor dashboard: the unfiltered scope and all
// catalog mutations.
func (c *Config) AdminRoute() {
	admin := c.App.Group("/api/v1/admin", c.Middleware.AuthMiddleware(c.JWTService))

	cookbooks := admin.Group("/cookbooks")
	{
		cookbooks.Get("", c.CookbookHandler.GetAllCookbooks)
		cookbooks.Post("", c.CookbookHandler.CreateCookbook)
		cookbooks.Get("/:id", c.CookbookHandler.GetCookbookDetail)
		cookbooks.Put("/:id", c.CookbookHandler.UpdateCookbook)
		cookbooks.Delete("/:id", c.CookbookHandler.DeleteCookbook)
		cookbooks.Patch("/:id/checked", c.CookbookHandler.SetChecked)
		cookbooks.Post("/:id/tags", c.CookbookHandler.AddTag)
		cookbooks.Get("/:id/materials", c.CookbookHandler.GetMaterials)
		cookbooks.Post("/:id/cover", c.CookbookHandler.UploadCoverImage)
		cookbooks.Get("/:cookbook_id/steps", c.StepHandler.GetSteps)
	}

	steps := admin.Group("/steps")
	{
		steps.Post("", c.StepHandler.CreateStep)
		steps.Put("/:id", c.StepHandler.UpdateStep)
		steps.Delete("/:id", c.StepHandler.DeleteStep)
		steps.Get("/:id/materials", c.StepHandler.GetMaterialSet)
		steps.Post("/:id/materials", c.StepHandler.AddMaterial)
		steps.Post("/:id/image", c.StepHandler.UploadStepImage)
	}

	materials := admin.Group("/materials")
	{
		materials.Get("", c.MaterialHandler.GetMaterials)
		materials.Post("", c.MaterialHandler.CreateMaterial)
		materials.Put("/:id", c.MaterialHandler.UpdateMaterial)
		materials.Delete("/:id", c.MaterialHandler.DeleteMaterial)
		materials.Post("/:id/image", c.MaterialHandler.UploadMaterialImage)
	}

	tags := admin.Group("/tags")
	{
		tags.Post("", c.TagHandler.CreateTag)
		tags.Put("/:id", c.TagHandler.UpdateTag)
		tags.Delete("/:id", c.TagHandler.DeleteTag)
		tags.Post("/:id/refresh-count", c.TagHandler.UpdateCookbookSum)
	}
}
