package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InterviewEvaluation is the five-axis comprehensive result for a completed
// set. Per-question feedback lives in EvaluationFeedbackItem rows rather than
// a serialized blob so the shape is checked at the storage boundary.
type InterviewEvaluation struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SetID            uuid.UUID `json:"set_id" gorm:"type:uuid;not null;index"`
	Logic            int       `json:"logic" gorm:"not null"`
	Evidence         int       `json:"evidence" gorm:"not null"`
	JobUnderstanding int       `json:"job_understanding" gorm:"not null"`
	Formality        int       `json:"formality" gorm:"not null"`
	Completeness     int       `json:"completeness" gorm:"not null"`
	OverallFeedback  string    `json:"overall_feedback" gorm:"type:text;not null"`
	CreatedAt        time.Time `json:"created_at"`

	FeedbackItems []EvaluationFeedbackItem `json:"feedback_items,omitempty" gorm:"foreignKey:EvaluationID;constraint:OnDelete:CASCADE"`
}

func (e *InterviewEvaluation) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type EvaluationFeedbackItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	EvaluationID  uuid.UUID `json:"evaluation_id" gorm:"type:uuid;not null;index"`
	QuestionOrder int       `json:"question_order" gorm:"not null"`
	Feedback      string    `json:"feedback" gorm:"type:text;not null"`
	Improvements  string    `json:"improvements" gorm:"type:text;not null"`
}

func (i *EvaluationFeedbackItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
