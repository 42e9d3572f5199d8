package examValidator

import (
	"github.com/ProfessorBrownBear/QuizVibe/models"
	"github.com/gofiber/fiber/v2"
)

// Submit validator middleware
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ExamID  string          `json:"examId" form:"examId"`
			Answers []models.Answer `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
		}

		if len(reqData.Answers) == 0 {
			return c.Status(fiber.StatusBadRequest).SendString("At least one answer is required")
		}
		for _, answer := range reqData.Answers {
			if answer.QuestionID == "" || answer.Answer == "" {
				return c.Status(fiber.StatusBadRequest).SendString("Each answer needs a questionId and an answer")
			}
		}

		return c.Next()
	}
}
