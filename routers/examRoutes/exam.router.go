package examRoutes

import (
	examController "github.com/ProfessorBrownBear/QuizVibe/controllers/exam"
	"github.com/ProfessorBrownBear/QuizVibe/middleware"
	examValidator "github.com/ProfessorBrownBear/QuizVibe/validators/exam"

	"github.com/gofiber/fiber/v2"
)

func SetupExamRoutes(app *fiber.App, ctl *examController.Controller) {
	app.Get("/healthz", ctl.Healthz)

	app.Get("/exam", middleware.JWTMiddleware, ctl.ExamPage)
	app.Post("/submit", middleware.JWTMiddleware, examValidator.Submit(), ctl.Submit)
	app.Get("/my-performance", middleware.JWTMiddleware, ctl.MyPerformance)
}
