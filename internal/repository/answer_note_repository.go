package repository

import (
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnswerNoteRepository interface {
	Create(note *model.AnswerNote) error
	FindByID(id uuid.UUID) (*model.AnswerNote, error)
	FindAllByUser(userID string) ([]model.AnswerNote, error)
	FindAllByUserAndQuestion(userID string, questionID uuid.UUID) ([]model.AnswerNote, error)
	Update(note *model.AnswerNote) error
	Delete(id uuid.UUID) error
}

type answerNoteRepository struct {
	db *gorm.DB
}

func NewAnswerNoteRepository(db *gorm.DB) AnswerNoteRepository {
	return &answerNoteRepository{db: db}
}

func (r *answerNoteRepository) Create(note *model.AnswerNote) error {
	return r.db.Create(note).Error
}

func (r *answerNoteRepository) FindByID(id uuid.UUID) (*model.AnswerNote, error) {
	var note model.AnswerNote
	if err := r.db.First(&note, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *answerNoteRepository) FindAllByUser(userID string) ([]model.AnswerNote, error) {
	var notes []model.AnswerNote
	err := r.db.
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *answerNoteRepository) FindAllByUserAndQuestion(userID string, questionID uuid.UUID) ([]model.AnswerNote, error) {
	var notes []model.AnswerNote
	err := r.db.
		Where("user_id = ? AND question_id = ?", userID, questionID).
		Order("updated_at desc").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *answerNoteRepository) Update(note *model.AnswerNote) error {
	return r.db.Save(note).Error
}

func (r *answerNoteRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.AnswerNote{}, "id = ?", id).Error
}
