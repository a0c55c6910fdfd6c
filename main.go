package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/muskanbandta23/socialmedia/cache"
	"github.com/muskanbandta23/socialmedia/config"
	"github.com/muskanbandta23/socialmedia/handlers"
	"github.com/muskanbandta23/socialmedia/models"
	"github.com/muskanbandta23/socialmedia/repository"
	"github.com/muskanbandta23/socialmedia/routes"
	"github.com/muskanbandta23/socialmedia/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}

	// Load configuration
	cfg := config.LoadConfig()

	// Initialize the optional Redis listing cache
	postCache := cache.New(cfg.RedisURL)
	defer postCache.Close()

	// Open the collections backing the document store
	users, err := store.NewCollection[models.User](cfg.UsersFile())
	if err != nil {
		log.Fatalf("Failed to open users collection: %v", err)
	}
	posts, err := store.NewCollection[models.Post](cfg.PostsFile())
	if err != nil {
		log.Fatalf("Failed to open posts collection: %v", err)
	}

	// Initialize handlers with the repositories
	handlers.Init(
		repository.NewUserRepository(users),
		repository.NewPostRepository(posts, postCache),
	)

	// Initialize Fiber app
	app := fiber.New(fiber.Config{
		AppName: "Social Content API",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Setup routes
	routes.Setup(app)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.ShutdownWithContext(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	log.Printf("Server starting on port %s...", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
