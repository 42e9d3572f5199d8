package importer

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ProfessorBrownBear/QuizVibe/database"
	"github.com/ProfessorBrownBear/QuizVibe/models"
)

var optionColumns = []string{"option1", "option2", "option3", "option4"}

// QuestionImporter seeds the question catalog from a CSV file at startup.
// The server starts accepting requests before the import finishes; Done
// gives handlers an explicit readiness signal to wait on.
type QuestionImporter struct {
	catalog *database.QuestionStore
	path    string
	done    chan struct{}
	err     error
}

func New(catalog *database.QuestionStore, path string) *QuestionImporter {
	return &QuestionImporter{
		catalog: catalog,
		path:    path,
		done:    make(chan struct{}),
	}
}

// Start runs the import in the background. Done is closed when it finishes,
// successfully or not; a failed import is logged and never takes the
// running server down.
func (imp *QuestionImporter) Start() {
	go func() {
		defer close(imp.done)
		if err := imp.Run(); err != nil {
			imp.err = err
			log.Printf("Question import failed: %v", err)
		}
	}()
}

// Done is closed once the startup import has finished.
func (imp *QuestionImporter) Done() <-chan struct{} {
	return imp.done
}

// Err reports the import outcome. Only valid after Done is closed.
func (imp *QuestionImporter) Err() error {
	return imp.err
}

// Run reads the CSV and upserts one question per row, keyed on the id
// column. Re-running on identical input leaves the catalog unchanged.
func (imp *QuestionImporter) Run() error {
	file, err := os.Open(imp.path)
	if err != nil {
		return fmt.Errorf("failed to open questions file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return fmt.Errorf("failed to read questions file: %w", err)
	}
	if len(records) < 2 {
		return fmt.Errorf("questions file %s is empty or has only headers", imp.path)
	}

	// Map header indices
	headerIndex := make(map[string]int)
	for i, h := range records[0] {
		headerIndex[strings.TrimSpace(h)] = i
	}

	imported := 0
	skipped := 0
	for _, row := range records[1:] {
		id := getField(row, headerIndex, "id")
		if id == "" {
			skipped++
			continue
		}

		question := models.Question{
			QuestionID: id,
			Text:       getField(row, headerIndex, "question"),
			Type:       getField(row, headerIndex, "type"),
			Options:    BuildOptions(row, headerIndex),
		}
		if question.Type == "" {
			question.Type = models.QuestionTypeMCQ
		}
		if answer := getField(row, headerIndex, "correct_answer"); answer != "" {
			question.CorrectAnswer = &answer
		}
		if rubric := getField(row, headerIndex, "rubric"); rubric != "" {
			question.Rubric = &rubric
		}

		if err := imp.catalog.Upsert(&question); err != nil {
			log.Printf("Error importing question %s: %v", id, err)
			skipped++
			continue
		}
		imported++
	}

	log.Printf("Questions imported/updated: %d (skipped: %d)", imported, skipped)
	return nil
}

// BuildOptions collects the option1..option4 cells, dropping blanks while
// preserving order. Discussion questions end up with an empty list.
func BuildOptions(row []string, headerIndex map[string]int) []string {
	options := make([]string, 0, len(optionColumns))
	for _, col := range optionColumns {
		if v := getField(row, headerIndex, col); v != "" {
			options = append(options, v)
		}
	}
	return options
}

// getField safely gets a field from the row by header name
func getField(row []string, headerIndex map[string]int, field string) string {
	if idx, ok := headerIndex[field]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
