package repository

import (
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// poolCandidateLimit caps how many questions are fetched per category when
// composing a set. Composition samples from at most this many candidates.
const poolCandidateLimit = 20

type QuestionRepository interface {
	Create(question *model.Question) error
	FindByID(id uuid.UUID) (*model.Question, error)
	FindAll() ([]model.Question, error)
	FindPoolByCategory(category string) ([]model.Question, error)
	FindJobPool(jobType string) ([]model.Question, error)
	Update(question *model.Question) error
	Delete(id uuid.UUID) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uuid.UUID) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("created_at desc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindPoolByCategory(category string) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Where("category = ?", category).
		Limit(poolCandidateLimit).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindJobPool(jobType string) ([]model.Question, error) {
	var questions []model.Question
	err := r.db.
		Where("category = ?", model.CategoryJob).
		Where("job_type = ?", jobType).
		Limit(poolCandidateLimit).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) Update(question *model.Question) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uuid.UUID) error {
	// Dependent answer notes and QA history cascade at the database level.
	return r.db.Delete(&model.Question{}, "id = ?", id).Error
}
