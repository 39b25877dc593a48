package repository

import (
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QAHistoryRepository interface {
	Create(history *model.QAHistory) error
	FindAllByUser(userID string) ([]model.QAHistory, error)
	FindAllByUserAndQuestion(userID string, questionID uuid.UUID) ([]model.QAHistory, error)
}

type qaHistoryRepository struct {
	db *gorm.DB
}

func NewQAHistoryRepository(db *gorm.DB) QAHistoryRepository {
	return &qaHistoryRepository{db: db}
}

func (r *qaHistoryRepository) Create(history *model.QAHistory) error {
	return r.db.Create(history).Error
}

func (r *qaHistoryRepository) FindAllByUser(userID string) ([]model.QAHistory, error) {
	var histories []model.QAHistory
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}

func (r *qaHistoryRepository) FindAllByUserAndQuestion(userID string, questionID uuid.UUID) ([]model.QAHistory, error) {
	var histories []model.QAHistory
	err := r.db.
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Order("created_at desc").
		Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}
