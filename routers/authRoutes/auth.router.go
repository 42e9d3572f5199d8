package authRoutes

import (
	authController "github.com/ProfessorBrownBear/QuizVibe/controllers/auth"
	authValidator "github.com/ProfessorBrownBear/QuizVibe/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, ctl *authController.Controller) {
	app.Post("/register", authValidator.Register(), ctl.Register)
	app.Post("/login", authValidator.Login(), ctl.Login)
	app.Get("/login", ctl.LoginPage)
}
