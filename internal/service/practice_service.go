package service

import (
	"context"
	"errors"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/apperr"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/dto"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// PracticeService evaluates an ad-hoc answer against a single question and
// keeps an audit trail of every evaluation.
type PracticeService interface {
	Evaluate(ctx context.Context, userID string, req dto.EvaluateRequest) (*dto.EvaluateResponse, error)
	History(userID string, questionID uuid.UUID) ([]dto.QAHistoryResponse, error)
}

type practiceService struct {
	questionRepo repository.QuestionRepository
	historyRepo  repository.QAHistoryRepository
	gateway      AIGatewayService
}

func NewPracticeService(
	questionRepo repository.QuestionRepository,
	historyRepo repository.QAHistoryRepository,
	gateway AIGatewayService,
) PracticeService {
	return &practiceService{
		questionRepo: questionRepo,
		historyRepo:  historyRepo,
		gateway:      gateway,
	}
}

func (s *practiceService) Evaluate(ctx context.Context, userID string, req dto.EvaluateRequest) (*dto.EvaluateResponse, error) {
	answerText, err := resolveAnswerText(req.UserAnswer, req.Audio)
	if err != nil {
		return nil, err
	}

	question, err := s.questionRepo.FindByID(req.QuestionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "question not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load question", err)
	}

	evaluation, err := s.gateway.ScoreAnswer(ctx, question, answerText, req.AIModel)
	if err != nil {
		return nil, err
	}

	history := &model.QAHistory{
		UserID:     userID,
		QuestionID: req.QuestionID,
		UserAnswer: answerText,
		AIModel:    req.AIModel,
		AIResponse: evaluation.RawResponse,
		Score:      evaluation.Score,
		Hints:      evaluation.Hints,
	}
	if err := s.historyRepo.Create(history); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to save evaluation history", err)
	}

	resp := &dto.EvaluateResponse{
		Score:      evaluation.Score,
		Hints:      evaluation.Hints,
		HistoryID:  history.ID,
		Transcript: nil,
	}
	if evaluation.Strengths != "" {
		resp.Strengths = &evaluation.Strengths
	}
	if evaluation.Improvements != "" {
		resp.Improvements = &evaluation.Improvements
	}
	return resp, nil
}

func (s *practiceService) History(userID string, questionID uuid.UUID) ([]dto.QAHistoryResponse, error) {
	histories, err := s.historyRepo.FindAllByUserAndQuestion(userID, questionID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load evaluation history", err)
	}
	resp := make([]dto.QAHistoryResponse, 0, len(histories))
	copier.Copy(&resp, &histories)
	return resp, nil
}
