package authValidator

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Register validator middleware
func Register() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username string `json:"username" form:"username"`
			Password string `json:"password" form:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
		}

		if strings.TrimSpace(reqData.Username) == "" || reqData.Password == "" {
			return c.Status(fiber.StatusBadRequest).SendString("Username and password are required")
		}

		return c.Next()
	}
}

// Login validator middleware
func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username string `json:"username" form:"username"`
			Password string `json:"password" form:"password"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
		}

		if strings.TrimSpace(reqData.Username) == "" || reqData.Password == "" {
			return c.Status(fiber.StatusBadRequest).SendString("Username and password are required")
		}

		return c.Next()
	}
}
