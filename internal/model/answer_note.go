package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnswerNote is a user-authored scratchpad tied to a question, independent of
// any interview set.
type AnswerNote struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string    `json:"user_id" gorm:"not null;index"` // JWT subject
	QuestionID     uuid.UUID `json:"question_id" gorm:"type:uuid;not null;index"`
	InitialAnswer  string    `json:"initial_answer" gorm:"type:text;not null"`
	FirstFeedback  *string   `json:"first_feedback,omitempty" gorm:"type:text"`
	SecondFeedback *string   `json:"second_feedback,omitempty" gorm:"type:text"`
	FinalAnswer    *string   `json:"final_answer,omitempty" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (n *AnswerNote) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}
