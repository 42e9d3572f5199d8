package authController

import (
	"errors"
	"log"

	"github.com/ProfessorBrownBear/QuizVibe/config"
	"github.com/ProfessorBrownBear/QuizVibe/database"
	"github.com/ProfessorBrownBear/QuizVibe/middleware"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Controller handles registration and login against the credential store.
type Controller struct {
	users *database.UserStore
}

func New(users *database.UserStore) *Controller {
	return &Controller{users: users}
}

func (ctl *Controller) Register(c *fiber.Ctx) error {
	reqData := new(struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}

	if _, err := ctl.users.Register(reqData.Username, reqData.Password); err != nil {
		if errors.Is(err, database.ErrDuplicateUsername) {
			return c.Status(fiber.StatusConflict).SendString("Username already registered")
		}
		log.Printf("Error registering user: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to register user")
	}

	return c.SendString("User registered")
}

func (ctl *Controller) Login(c *fiber.Ctx) error {
	reqData := new(struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}

	user, err := ctl.users.FindByUsername(reqData.Username)
	if err != nil {
		log.Printf("Error looking up user: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to log in")
	}
	if user == nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid credentials")
	}

	token, err := middleware.GenerateJWT(user.ID)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to generate token")
	}

	return c.JSON(fiber.Map{"token": token})
}

// LoginPage renders the login form.
func (ctl *Controller) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Branding": config.Branding,
	})
}
