package service

import (
	"context"
	"errors"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/apperr"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/dto"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type InterviewAnswerService interface {
	SubmitAnswer(ctx context.Context, userID string, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error)
	SubmitFollowUpAnswer(ctx context.Context, userID string, req dto.SubmitFollowUpRequest) (*dto.SubmitFollowUpResponse, error)
}

type interviewAnswerService struct {
	answerRepo   repository.InterviewAnswerRepository
	setRepo      repository.InterviewSetRepository
	questionRepo repository.QuestionRepository
	gateway      AIGatewayService
}

func NewInterviewAnswerService(
	answerRepo repository.InterviewAnswerRepository,
	setRepo repository.InterviewSetRepository,
	questionRepo repository.QuestionRepository,
	gateway AIGatewayService,
) InterviewAnswerService {
	return &interviewAnswerService{
		answerRepo:   answerRepo,
		setRepo:      setRepo,
		questionRepo: questionRepo,
		gateway:      gateway,
	}
}

// resolveAnswerText applies the text-or-audio rule shared by all submission
// endpoints: text wins when present, audio alone is not supported yet.
func resolveAnswerText(text *string, audio *dto.AudioInput) (string, error) {
	if text != nil && *text != "" {
		return *text, nil
	}
	if audio != nil {
		return "", apperr.New(apperr.KindNotImplemented, "audio transcription is not implemented yet")
	}
	return "", apperr.New(apperr.KindValidation, "either user_answer or audio is required").WithFields("user_answer", "audio")
}

func (s *interviewAnswerService) SubmitAnswer(ctx context.Context, userID string, req dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	answerText, err := resolveAnswerText(req.UserAnswer, req.Audio)
	if err != nil {
		return nil, err
	}

	set, err := s.setRepo.FindByID(req.SetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "interview set not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load interview set", err)
	}
	if set.UserID != userID {
		return nil, apperr.New(apperr.KindForbidden, "interview set belongs to another user")
	}
	if set.Status == model.SetStatusCompleted {
		return nil, apperr.New(apperr.KindPrecondition, "interview set is already completed")
	}

	answer := &model.InterviewAnswer{
		SetID:         req.SetID,
		QuestionID:    req.QuestionID,
		QuestionOrder: req.QuestionOrder,
		UserAnswer:    answerText,
	}

	// Follow-up generation is best effort. A gateway failure must never lose
	// the answer, so errors are logged and the follow-up stays nil.
	if req.EnableFollowUp {
		questionText := ""
		if question, qerr := s.questionRepo.FindByID(req.QuestionID); qerr == nil {
			questionText = question.Question
		}
		aiModel := ""
		if req.AIModel != nil {
			aiModel = *req.AIModel
		}
		followUp, ferr := s.gateway.GenerateFollowUp(ctx, questionText, answerText, aiModel)
		if ferr != nil {
			log.Warn().Err(ferr).Str("setID", req.SetID.String()).Msg("Follow-up generation failed, continuing without one")
		} else if followUp != "" {
			answer.FollowUpQuestion = &followUp
		}
	}

	if err := s.answerRepo.Create(answer); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to save answer", err)
	}

	return &dto.SubmitAnswerResponse{
		AnswerID:         answer.ID,
		FollowUpQuestion: answer.FollowUpQuestion,
		Transcript:       nil,
	}, nil
}

func (s *interviewAnswerService) SubmitFollowUpAnswer(ctx context.Context, userID string, req dto.SubmitFollowUpRequest) (*dto.SubmitFollowUpResponse, error) {
	answerText, err := resolveAnswerText(req.FollowUpAnswer, req.Audio)
	if err != nil {
		return nil, err
	}

	answer, err := s.answerRepo.FindByID(req.AnswerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "answer not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load answer", err)
	}

	set, err := s.setRepo.FindByID(answer.SetID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load interview set", err)
	}
	if set.UserID != userID {
		return nil, apperr.New(apperr.KindForbidden, "answer belongs to another user")
	}

	// Last write wins on resubmission.
	answer.FollowUpAnswer = &answerText
	if err := s.answerRepo.Update(answer); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to save follow-up answer", err)
	}

	return &dto.SubmitFollowUpResponse{Success: true, Transcript: nil}, nil
}
