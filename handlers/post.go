package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muskanbandta23/socialmedia/models"
)

type CreatePostRequest struct {
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ListPostsRequest struct {
	UserID string `json:"userId"`
}

type EditPostRequest struct {
	PostID      string `json:"postId"`
	UserID      string `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type DeletePostRequest struct {
	PostID   string `json:"postId"`
	UserID   string `json:"userId"`
	UserRole string `json:"userRole"`
}

type LikePostRequest struct {
	PostID string `json:"postId"`
	UserID string `json:"userId"`
}

// CreatePost handles POST /createPost
func CreatePost(c *fiber.Ctx) error {
	req := new(CreatePostRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	post, err := postRepo.Create(c.Context(), req.UserID, req.Title, req.Description)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Post created",
		"post":    post,
	})
}

// ListPosts handles POST /posts
func ListPosts(c *fiber.Ctx) error {
	req := new(ListPostsRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	return c.JSON(postRepo.ListVisible(c.Context(), req.UserID))
}

// EditPost handles POST /editPost
func EditPost(c *fiber.Ctx) error {
	req := new(EditPostRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	post, err := postRepo.Edit(c.Context(), req.PostID, req.UserID, req.Title, req.Description)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Post updated",
		"post":    post,
	})
}

// DeletePost handles POST /deletePost. The requester's role comes from the
// request body; with no sessions there is nothing server-side to check it
// against.
func DeletePost(c *fiber.Ctx) error {
	req := new(DeletePostRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := postRepo.Delete(c.Context(), req.PostID, req.UserID, req.UserRole); err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.JSON(fiber.Map{
		"message": "Post deleted",
	})
}

// LikePost handles POST /likePost. Repeated calls alternate between liked
// and unliked.
func LikePost(c *fiber.Ctx) error {
	req := new(LikePostRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	count, err := postRepo.ToggleLike(c.Context(), req.PostID, req.UserID)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.JSON(fiber.Map{
		"message":    "Post liked/unliked",
		"likesCount": count,
	})
}
