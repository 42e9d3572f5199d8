package database

import (
	"github.com/ProfessorBrownBear/QuizVibe/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuestionStore holds the question catalog. Only the importer writes here.
type QuestionStore struct {
	db *gorm.DB
}

func NewQuestionStore(db *gorm.DB) *QuestionStore {
	return &QuestionStore{db: db}
}

// Upsert inserts the question or overwrites the existing row with the same
// questionId. Re-running an import with unchanged rows is a no-op.
func (s *QuestionStore) Upsert(q *models.Question) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"text", "type", "options", "correct_answer", "rubric", "updated_at",
		}),
	}).Create(q).Error
}

// ListAll returns every question in import order.
func (s *QuestionStore) ListAll() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}
