package repository

import (
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InterviewAnswerRepository interface {
	Create(answer *model.InterviewAnswer) error
	FindByID(id uuid.UUID) (*model.InterviewAnswer, error)
	FindBySetIDOrdered(setID uuid.UUID) ([]model.InterviewAnswer, error)
	Update(answer *model.InterviewAnswer) error
}

type interviewAnswerRepository struct {
	db *gorm.DB
}

func NewInterviewAnswerRepository(db *gorm.DB) InterviewAnswerRepository {
	return &interviewAnswerRepository{db: db}
}

func (r *interviewAnswerRepository) Create(answer *model.InterviewAnswer) error {
	return r.db.Create(answer).Error
}

func (r *interviewAnswerRepository) FindByID(id uuid.UUID) (*model.InterviewAnswer, error) {
	var answer model.InterviewAnswer
	if err := r.db.First(&answer, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &answer, nil
}

func (r *interviewAnswerRepository) FindBySetIDOrdered(setID uuid.UUID) ([]model.InterviewAnswer, error) {
	var answers []model.InterviewAnswer
	err := r.db.
		Where("set_id = ?", setID).
		Order("question_order asc").
		Find(&answers).Error
	if err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *interviewAnswerRepository) Update(answer *model.InterviewAnswer) error {
	return r.db.Save(answer).Error
}
