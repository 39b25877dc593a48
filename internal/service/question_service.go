package service

import (
	"errors"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/apperr"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/dto"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type QuestionService interface {
	CreateQuestion(req dto.QuestionCreateRequest) (*dto.QuestionResponse, error)
	GetQuestion(id uuid.UUID) (*dto.QuestionResponse, error)
	GetAllQuestions() ([]dto.QuestionResponse, error)
	UpdateQuestion(id uuid.UUID, req dto.QuestionUpdateRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(id uuid.UUID) error
}

type questionService struct {
	repo repository.QuestionRepository
}

func NewQuestionService(repo repository.QuestionRepository) QuestionService {
	return &questionService{repo: repo}
}

// newQuestion validates the category/job-type coupling before a model ever
// exists, so an inconsistent question cannot be constructed.
func newQuestion(req dto.QuestionCreateRequest) (*model.Question, error) {
	switch req.Category {
	case model.CategoryJob:
		if req.JobType == nil || *req.JobType == "" {
			return nil, apperr.New(apperr.KindValidation, "job_type is required for job questions").WithFields("job_type")
		}
	case model.CategoryCommon, model.CategoryForeigner:
		if req.JobType != nil {
			return nil, apperr.Newf(apperr.KindValidation, "job_type must not be set for %s questions", req.Category).WithFields("job_type")
		}
	default:
		return nil, apperr.New(apperr.KindValidation, "unknown question category").WithFields("category")
	}

	question := &model.Question{}
	if err := copier.Copy(question, &req); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to map question request", err)
	}
	return question, nil
}

func (s *questionService) CreateQuestion(req dto.QuestionCreateRequest) (*dto.QuestionResponse, error) {
	question, err := newQuestion(req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create question", err)
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) GetQuestion(id uuid.UUID) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "question not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load question", err)
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) GetAllQuestions() ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list questions", err)
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	copier.Copy(&resp, &questions)
	return resp, nil
}

func (s *questionService) UpdateQuestion(id uuid.UUID, req dto.QuestionUpdateRequest) (*dto.QuestionResponse, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "question not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load question", err)
	}

	updated, err := newQuestion(req)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(updated); err != nil {
		log.Error().Err(err).Str("questionID", id.String()).Msg("Failed to update question")
		return nil, apperr.Wrap(apperr.KindInternal, "failed to update question", err)
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, updated)
	return &resp, nil
}

func (s *questionService) DeleteQuestion(id uuid.UUID) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.New(apperr.KindNotFound, "question not found")
		}
		return apperr.Wrap(apperr.KindInternal, "failed to load question", err)
	}
	if err := s.repo.Delete(id); err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to delete question", err)
	}
	return nil
}
