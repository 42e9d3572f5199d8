package database

import (
	"github.com/ProfessorBrownBear/QuizVibe/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultExamID is used when a submit request names no exam.
const DefaultExamID = "final-exam-1"

// SubmissionStore persists exam attempts. Attempts are write-once: nothing
// updates a submission after it is created, and nothing stops a user from
// submitting the same exam again.
type SubmissionStore struct {
	db *gorm.DB
}

func NewSubmissionStore(db *gorm.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

func (s *SubmissionStore) Create(userID uint, examID string, answers []models.Answer) (*models.Submission, error) {
	if examID == "" {
		examID = DefaultExamID
	}
	submission := models.Submission{
		UserID:  userID,
		ExamID:  examID,
		Answers: datatypes.NewJSONSlice(answers),
	}
	if err := s.db.Create(&submission).Error; err != nil {
		return nil, err
	}
	return &submission, nil
}

func (s *SubmissionStore) FindByUser(userID uint) ([]models.Submission, error) {
	var submissions []models.Submission
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&submissions).Error; err != nil {
		return nil, err
	}
	return submissions, nil
}
