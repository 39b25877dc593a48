package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QAHistory is an append-only audit record of one ad-hoc AI evaluation.
// AIResponse keeps the raw model output for later inspection.
type QAHistory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     string    `json:"user_id" gorm:"not null;index"` // JWT subject
	QuestionID uuid.UUID `json:"question_id" gorm:"type:uuid;not null;index"`
	UserAnswer string    `json:"user_answer" gorm:"type:text;not null"`
	AIModel    string    `json:"ai_model" gorm:"not null"`
	AIResponse string    `json:"ai_response" gorm:"type:text;not null"`
	Score      int       `json:"score" gorm:"not null"`
	Hints      string    `json:"hints" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (h *QAHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
