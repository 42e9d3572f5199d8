package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	QuestionTypeMCQ        = "mcq"
	QuestionTypeDiscussion = "discussion"
)

// Question is a quiz question definition. Rows are written only by the CSV
// importer, keyed on QuestionID; everything else reads them.
type Question struct {
	gorm.Model
	QuestionID    string                      `gorm:"uniqueIndex;not null" json:"questionId"`
	Text          string                      `gorm:"not null" json:"text"`
	Type          string                      `gorm:"default:'mcq'" json:"type"` // mcq or discussion
	Options       datatypes.JSONSlice[string] `json:"options"`
	CorrectAnswer *string                     `json:"correctAnswer"`
	Rubric        *string                     `json:"rubric"`
}

// QuestionView is the projection served to exam takers. The correct answer
// and rubric never leave the server.
type QuestionView struct {
	QuestionID string
	Text       string
	Type       string
	Options    []string
}

func (q *Question) View() QuestionView {
	return QuestionView{
		QuestionID: q.QuestionID,
		Text:       q.Text,
		Type:       q.Type,
		Options:    []string(q.Options),
	}
}
