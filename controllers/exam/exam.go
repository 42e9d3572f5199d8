package examController

import (
	"log"

	"github.com/ProfessorBrownBear/QuizVibe/config"
	"github.com/ProfessorBrownBear/QuizVibe/database"
	"github.com/ProfessorBrownBear/QuizVibe/models"
	"github.com/gofiber/fiber/v2"
)

// Controller serves the exam pages and submissions. The ready channel is
// the importer's completion signal: the exam page waits on it so the first
// fetch never observes a half-imported catalog.
type Controller struct {
	questions   *database.QuestionStore
	submissions *database.SubmissionStore
	ready       <-chan struct{}
}

func New(questions *database.QuestionStore, submissions *database.SubmissionStore, ready <-chan struct{}) *Controller {
	return &Controller{
		questions:   questions,
		submissions: submissions,
		ready:       ready,
	}
}

// ExamPage renders all catalog questions for the caller. Questions are
// redacted to the exam-taker projection: no correct answer, no rubric.
func (ctl *Controller) ExamPage(c *fiber.Ctx) error {
	select {
	case <-ctl.ready:
	case <-c.Context().Done():
		return c.SendStatus(fiber.StatusServiceUnavailable)
	}

	questions, err := ctl.questions.ListAll()
	if err != nil {
		log.Printf("Error listing questions: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load questions")
	}

	views := make([]models.QuestionView, 0, len(questions))
	for i := range questions {
		views = append(views, questions[i].View())
	}

	return c.Render("exam", fiber.Map{
		"Branding":  config.Branding,
		"Questions": views,
	})
}

func (ctl *Controller) Submit(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).SendString("Access denied")
	}

	reqData := new(struct {
		ExamID  string          `json:"examId" form:"examId"`
		Answers []models.Answer `json:"answers"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString("Invalid request body")
	}

	if _, err := ctl.submissions.Create(userID, reqData.ExamID, reqData.Answers); err != nil {
		log.Printf("Error saving submission: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to save submission")
	}

	return c.SendString("Answers submitted")
}

// MyPerformance renders the caller's own past submissions.
func (ctl *Controller) MyPerformance(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).SendString("Access denied")
	}

	submissions, err := ctl.submissions.FindByUser(userID)
	if err != nil {
		log.Printf("Error listing submissions: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load submissions")
	}

	return c.Render("performance", fiber.Map{
		"Branding":    config.Branding,
		"Submissions": submissions,
	})
}

// Healthz reports liveness and whether the question import has finished.
func (ctl *Controller) Healthz(c *fiber.Ctx) error {
	ready := false
	select {
	case <-ctl.ready:
		ready = true
	default:
	}
	return c.JSON(fiber.Map{
		"status":         "ok",
		"questionsReady": ready,
	})
}
