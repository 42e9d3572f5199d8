package main

import (
	"log"

	"github.com/ProfessorBrownBear/QuizVibe/config"
	authController "github.com/ProfessorBrownBear/QuizVibe/controllers/auth"
	examController "github.com/ProfessorBrownBear/QuizVibe/controllers/exam"
	"github.com/ProfessorBrownBear/QuizVibe/database"
	"github.com/ProfessorBrownBear/QuizVibe/importer"
	authRoutes "github.com/ProfessorBrownBear/QuizVibe/routers/authRoutes"
	examRoutes "github.com/ProfessorBrownBear/QuizVibe/routers/examRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

func main() {
	config.LoadConfig()

	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	users := database.NewUserStore(db, config.AppConfig.SaltRound)
	questions := database.NewQuestionStore(db)
	submissions := database.NewSubmissionStore(db)

	// Seed the question catalog in the background; the server starts
	// accepting requests right away and the exam page waits on Done.
	imp := importer.New(questions, config.AppConfig.QuestionsCSV)
	imp.Start()

	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app, authController.New(users))
	examRoutes.SetupExamRoutes(app, examController.New(questions, submissions, imp.Done()))

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
