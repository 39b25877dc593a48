package repository

import (
	"time"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewEvaluationRepository interface {
	// CreateWithSetCompletion persists the evaluation together with its
	// feedback items and marks the owning set completed in one transaction.
	CreateWithSetCompletion(evaluation *model.InterviewEvaluation, set *model.InterviewSet) error
	FindBySetID(setID uuid.UUID) (*model.InterviewEvaluation, error)
}

type interviewEvaluationRepository struct {
	db *gorm.DB
}

func NewInterviewEvaluationRepository(db *gorm.DB) InterviewEvaluationRepository {
	return &interviewEvaluationRepository{db: db}
}

func (r *interviewEvaluationRepository) CreateWithSetCompletion(evaluation *model.InterviewEvaluation, set *model.InterviewSet) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(evaluation).Error; err != nil {
			return err
		}
		now := time.Now()
		set.Status = model.SetStatusCompleted
		set.CompletedAt = &now
		return tx.Model(&model.InterviewSet{}).
			Where("id = ?", set.ID).
			Updates(map[string]interface{}{
				"status":       set.Status,
				"completed_at": set.CompletedAt,
			}).Error
	})
}

func (r *interviewEvaluationRepository) FindBySetID(setID uuid.UUID) (*model.InterviewEvaluation, error) {
	var evaluation model.InterviewEvaluation
	err := r.db.
		Preload("FeedbackItems").
		First(&evaluation, "set_id = ?", setID).Error
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}
