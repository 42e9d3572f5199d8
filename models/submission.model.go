package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Answer is one per-question response inside a submission. Grade and
// Feedback exist in the schema for a future grading pass; nothing in this
// system sets them.
type Answer struct {
	QuestionID string   `json:"questionId"`
	Answer     string   `json:"answer"`
	Grade      *float64 `json:"grade,omitempty"`
	Feedback   *string  `json:"feedback,omitempty"`
}

// Submission records one exam attempt. It is created once on submit and
// never updated; TotalScore and GradedAt stay unset until a grader exists.
type Submission struct {
	gorm.Model
	UserID     uint                        `gorm:"not null;index:idx_submission_user_exam" json:"userId"`
	ExamID     string                      `gorm:"default:'final-exam-1';index:idx_submission_user_exam" json:"examId"`
	Answers    datatypes.JSONSlice[Answer] `json:"answers"`
	TotalScore *float64                    `json:"totalScore"`
	GradedAt   *time.Time                  `json:"gradedAt"`
}
