package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InterviewSet statuses. "completed" is terminal.
const (
	SetStatusInProgress = "in_progress"
	SetStatusCompleted  = "completed"
)

type InterviewSet struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string     `json:"user_id" gorm:"not null;index"` // JWT subject
	JobType     string     `json:"job_type" gorm:"not null;index"`
	Level       string     `json:"level" gorm:"not null;index"`
	Status      string     `json:"status" gorm:"not null;default:'in_progress'"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Answers     []InterviewAnswer     `json:"answers,omitempty" gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE"`
	Evaluations []InterviewEvaluation `json:"evaluations,omitempty" gorm:"foreignKey:SetID;constraint:OnDelete:CASCADE"`
}

func (s *InterviewSet) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
