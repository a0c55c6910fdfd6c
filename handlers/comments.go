package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muskanbandta23/socialmedia/models"
)

type AddCommentRequest struct {
	PostID      string `json:"postId"`
	UserID      string `json:"userId"`
	CommentText string `json:"commentText"`
}

// AddComment handles POST /addComment
func AddComment(c *fiber.Ctx) error {
	req := new(AddCommentRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := postRepo.AddComment(c.Context(), req.PostID, req.UserID, req.CommentText); err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Comment added",
	})
}
