package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muskanbandta23/socialmedia/models"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Mobile   string `json:"mobile"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles POST /register
func Register(c *fiber.Ctx) error {
	req := new(RegisterRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Username == "" || req.Email == "" || req.Password == "" || req.Mobile == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Username, email, password, and mobile are required",
		})
	}

	if _, err := userRepo.Register(req.Username, req.Email, req.Password, req.Mobile); err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully.",
	})
}

// Login handles POST /login. No session or token is issued; the response
// carries the user's role and nothing else.
func Login(c *fiber.Ctx) error {
	req := new(LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	role, err := userRepo.Authenticate(req.Email, req.Password)
	if err != nil {
		return models.RespondWithError(c, models.HTTPStatus(err), err)
	}

	return c.JSON(fiber.Map{
		"message":  "Login successful",
		"userRole": role,
	})
}
