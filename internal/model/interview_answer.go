package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InterviewAnswer is one answer to one ordered question within a set.
// QuestionID is intentionally not constrained: a question may be removed
// from the catalog after it was answered, and the transcript must survive.
type InterviewAnswer struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SetID            uuid.UUID `json:"set_id" gorm:"type:uuid;not null;index"`
	QuestionID       uuid.UUID `json:"question_id" gorm:"type:uuid;not null;index"`
	QuestionOrder    int       `json:"question_order" gorm:"not null"`
	UserAnswer       string    `json:"user_answer" gorm:"type:text;not null"`
	FollowUpQuestion *string   `json:"follow_up_question,omitempty" gorm:"type:text"`
	FollowUpAnswer   *string   `json:"follow_up_answer,omitempty" gorm:"type:text"`
	CreatedAt        time.Time `json:"created_at"`
}

func (a *InterviewAnswer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
