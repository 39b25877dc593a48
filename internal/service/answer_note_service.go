package service

import (
	"errors"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/apperr"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/dto"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type AnswerNoteService interface {
	CreateNote(userID string, req dto.AnswerNoteCreateRequest) (*dto.AnswerNoteResponse, error)
	ListNotes(userID string, questionID *uuid.UUID) ([]dto.AnswerNoteResponse, error)
	UpdateNote(noteID uuid.UUID, userID string, req dto.AnswerNoteUpdateRequest) (*dto.AnswerNoteResponse, error)
	DeleteNote(noteID uuid.UUID, userID string) error
}

type answerNoteService struct {
	noteRepo     repository.AnswerNoteRepository
	questionRepo repository.QuestionRepository
}

func NewAnswerNoteService(noteRepo repository.AnswerNoteRepository, questionRepo repository.QuestionRepository) AnswerNoteService {
	return &answerNoteService{noteRepo: noteRepo, questionRepo: questionRepo}
}

func (s *answerNoteService) CreateNote(userID string, req dto.AnswerNoteCreateRequest) (*dto.AnswerNoteResponse, error) {
	if _, err := s.questionRepo.FindByID(req.QuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "question not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load question", err)
	}

	note := &model.AnswerNote{
		UserID:         userID,
		QuestionID:     req.QuestionID,
		InitialAnswer:  req.InitialAnswer,
		FirstFeedback:  req.FirstFeedback,
		SecondFeedback: req.SecondFeedback,
		FinalAnswer:    req.FinalAnswer,
	}
	if err := s.noteRepo.Create(note); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create answer note", err)
	}
	var resp dto.AnswerNoteResponse
	copier.Copy(&resp, note)
	return &resp, nil
}

func (s *answerNoteService) ListNotes(userID string, questionID *uuid.UUID) ([]dto.AnswerNoteResponse, error) {
	var notes []model.AnswerNote
	var err error
	if questionID != nil {
		notes, err = s.noteRepo.FindAllByUserAndQuestion(userID, *questionID)
	} else {
		notes, err = s.noteRepo.FindAllByUser(userID)
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list answer notes", err)
	}
	resp := make([]dto.AnswerNoteResponse, 0, len(notes))
	copier.Copy(&resp, &notes)
	return resp, nil
}

// loadOwnedNote resolves a note and enforces ownership.
func (s *answerNoteService) loadOwnedNote(noteID uuid.UUID, userID string) (*model.AnswerNote, error) {
	note, err := s.noteRepo.FindByID(noteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "answer note not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load answer note", err)
	}
	if note.UserID != userID {
		return nil, apperr.New(apperr.KindForbidden, "answer note belongs to another user")
	}
	return note, nil
}

func (s *answerNoteService) UpdateNote(noteID uuid.UUID, userID string, req dto.AnswerNoteUpdateRequest) (*dto.AnswerNoteResponse, error) {
	note, err := s.loadOwnedNote(noteID, userID)
	if err != nil {
		return nil, err
	}

	// Partial update: absent fields keep their stored values.
	if req.FirstFeedback != nil {
		note.FirstFeedback = req.FirstFeedback
	}
	if req.SecondFeedback != nil {
		note.SecondFeedback = req.SecondFeedback
	}
	if req.FinalAnswer != nil {
		note.FinalAnswer = req.FinalAnswer
	}

	if err := s.noteRepo.Update(note); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update answer note", err)
	}
	var resp dto.AnswerNoteResponse
	copier.Copy(&resp, note)
	return &resp, nil
}

func (s *answerNoteService) DeleteNote(noteID uuid.UUID, userID string) error {
	if _, err := s.loadOwnedNote(noteID, userID); err != nil {
		return err
	}
	if err := s.noteRepo.Delete(noteID); err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to delete answer note", err)
	}
	return nil
}
