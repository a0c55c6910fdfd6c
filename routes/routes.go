package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muskanbandta23/socialmedia/handlers"
)

// Setup registers the API's routes. The surface is POST-only: every route
// maps to exactly one repository operation and carries its arguments in the
// JSON body.
func Setup(app *fiber.App) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Social content API up",
			"version": "1.0.0",
		})
	})

	// Auth routes
	app.Post("/register", handlers.Register)
	app.Post("/login", handlers.Login)

	// Post routes
	app.Post("/createPost", handlers.CreatePost)
	app.Post("/posts", handlers.ListPosts)
	app.Post("/addComment", handlers.AddComment)
	app.Post("/editPost", handlers.EditPost)
	app.Post("/deletePost", handlers.DeletePost)
	app.Post("/likePost", handlers.LikePost)
}
