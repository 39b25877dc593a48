package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question categories. A "job" question is always tied to a job type; the
// service layer enforces that coupling at creation time.
const (
	CategoryCommon    = "common"
	CategoryJob       = "job"
	CategoryForeigner = "foreigner"
)

type Question struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Question    string    `json:"question" gorm:"type:text;not null;index"`
	Category    string    `json:"category" gorm:"not null;index"` // "common", "job", "foreigner"
	JobType     *string   `json:"job_type,omitempty" gorm:"index"`
	Level       *string   `json:"level,omitempty"`
	ModelAnswer string    `json:"model_answer" gorm:"type:text;not null"`
	Reasoning   string    `json:"reasoning" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	AnswerNotes []AnswerNote `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
	QAHistory   []QAHistory  `json:"-" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
