package repository

import (
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewSetRepository interface {
	Create(set *model.InterviewSet) error
	FindByID(id uuid.UUID) (*model.InterviewSet, error)
	FindAllByUser(userID string) ([]model.InterviewSet, error)
}

type interviewSetRepository struct {
	db *gorm.DB
}

func NewInterviewSetRepository(db *gorm.DB) InterviewSetRepository {
	return &interviewSetRepository{db: db}
}

func (r *interviewSetRepository) Create(set *model.InterviewSet) error {
	return r.db.Create(set).Error
}

func (r *interviewSetRepository) FindByID(id uuid.UUID) (*model.InterviewSet, error) {
	var set model.InterviewSet
	if err := r.db.First(&set, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *interviewSetRepository) FindAllByUser(userID string) ([]model.InterviewSet, error) {
	var sets []model.InterviewSet
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&sets).Error
	if err != nil {
		return nil, err
	}
	return sets, nil
}
