package service

import (
	"context"
	"errors"
	"math/rand"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/apperr"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/dto"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Shuffler permutes n elements in place via swap. Production uses
// rand.Shuffle; tests substitute a deterministic permutation.
type Shuffler func(n int, swap func(i, j int))

// DefaultShuffler is rand.Shuffle on the package-level source.
func DefaultShuffler(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

const defaultQuestionCount = 3

type InterviewSetService interface {
	CreateSet(userID string, req dto.InterviewSetCreateRequest) (*dto.InterviewSetCreateResponse, error)
	GetSet(setID uuid.UUID, userID string) (*dto.InterviewSetDetailResponse, error)
	ListSets(userID string) ([]dto.InterviewSetResponse, error)
	CompleteSet(ctx context.Context, setID uuid.UUID, userID string) (*dto.InterviewEvaluationResponse, error)
}

type interviewSetService struct {
	setRepo      repository.InterviewSetRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.InterviewAnswerRepository
	evalRepo     repository.InterviewEvaluationRepository
	gateway      AIGatewayService
	shuffle      Shuffler
}

func NewInterviewSetService(
	setRepo repository.InterviewSetRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.InterviewAnswerRepository,
	evalRepo repository.InterviewEvaluationRepository,
	gateway AIGatewayService,
	shuffle Shuffler,
) InterviewSetService {
	return &interviewSetService{
		setRepo:      setRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		evalRepo:     evalRepo,
		gateway:      gateway,
		shuffle:      shuffle,
	}
}

// pickRandom shuffles the pool and takes up to want questions.
func (s *interviewSetService) pickRandom(pool []model.Question, want int) []model.Question {
	s.shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if want > len(pool) {
		want = len(pool)
	}
	return pool[:want]
}

func (s *interviewSetService) CreateSet(userID string, req dto.InterviewSetCreateRequest) (*dto.InterviewSetCreateResponse, error) {
	count := req.QuestionCount
	if count == 0 {
		count = defaultQuestionCount
	}

	// 40% common, 30% job-specific, remainder foreigner-specific.
	commonTarget := count * 4 / 10
	jobTarget := count * 3 / 10
	foreignerTarget := count - commonTarget - jobTarget

	commonPool, err := s.questionRepo.FindPoolByCategory(model.CategoryCommon)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load common question pool", err)
	}
	jobPool, err := s.questionRepo.FindJobPool(req.JobType)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load job question pool", err)
	}
	foreignerPool, err := s.questionRepo.FindPoolByCategory(model.CategoryForeigner)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load foreigner question pool", err)
	}

	selected := make([]model.Question, 0, count)
	selected = append(selected, s.pickRandom(commonPool, commonTarget)...)
	selected = append(selected, s.pickRandom(jobPool, jobTarget)...)
	selected = append(selected, s.pickRandom(foreignerPool, foreignerTarget)...)
	if len(selected) > count {
		selected = selected[:count]
	}

	if len(selected) < count {
		log.Warn().
			Int("requested", count).
			Int("common_pool", len(commonPool)).
			Int("job_pool", len(jobPool)).
			Int("foreigner_pool", len(foreignerPool)).
			Msg("Not enough questions to compose an interview set")
		return nil, apperr.Newf(apperr.KindPrecondition,
			"not enough questions available: requested %d, pools common=%d job=%d foreigner=%d",
			count, len(commonPool), len(jobPool), len(foreignerPool))
	}

	set := &model.InterviewSet{
		UserID:  userID,
		JobType: req.JobType,
		Level:   req.Level,
		Status:  model.SetStatusInProgress,
	}
	if err := s.setRepo.Create(set); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to create interview set", err)
	}

	questions := make([]dto.QuestionInfo, 0, len(selected))
	for i, q := range selected {
		questions = append(questions, dto.QuestionInfo{
			ID:       q.ID,
			Question: q.Question,
			Order:    i + 1,
			Category: q.Category,
		})
	}
	return &dto.InterviewSetCreateResponse{SetID: set.ID, Questions: questions}, nil
}

// loadOwnedSet resolves a set and enforces ownership. NotFound before
// Forbidden so a stranger cannot probe which set ids exist.
func (s *interviewSetService) loadOwnedSet(setID uuid.UUID, userID string) (*model.InterviewSet, error) {
	set, err := s.setRepo.FindByID(setID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.KindNotFound, "interview set not found")
		}
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load interview set", err)
	}
	if set.UserID != userID {
		return nil, apperr.New(apperr.KindForbidden, "interview set belongs to another user")
	}
	return set, nil
}

func (s *interviewSetService) GetSet(setID uuid.UUID, userID string) (*dto.InterviewSetDetailResponse, error) {
	set, err := s.loadOwnedSet(setID, userID)
	if err != nil {
		return nil, err
	}

	answers, err := s.answerRepo.FindBySetIDOrdered(setID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load answers", err)
	}

	answerResponses := make([]dto.InterviewAnswerResponse, 0, len(answers))
	for _, a := range answers {
		var resp dto.InterviewAnswerResponse
		copier.Copy(&resp, &a)
		if question, qerr := s.questionRepo.FindByID(a.QuestionID); qerr == nil {
			var qResp dto.QuestionResponse
			copier.Copy(&qResp, question)
			resp.Question = &qResp
		}
		answerResponses = append(answerResponses, resp)
	}

	var setResp dto.InterviewSetResponse
	copier.Copy(&setResp, set)

	detail := &dto.InterviewSetDetailResponse{
		Set:     setResp,
		Answers: answerResponses,
	}

	evaluation, err := s.evalRepo.FindBySetID(setID)
	if err == nil {
		detail.Evaluation = evaluationToResponse(evaluation)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load evaluation", err)
	}
	return detail, nil
}

func (s *interviewSetService) ListSets(userID string) ([]dto.InterviewSetResponse, error) {
	sets, err := s.setRepo.FindAllByUser(userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to list interview sets", err)
	}
	resp := make([]dto.InterviewSetResponse, 0, len(sets))
	copier.Copy(&resp, &sets)
	return resp, nil
}

func (s *interviewSetService) CompleteSet(ctx context.Context, setID uuid.UUID, userID string) (*dto.InterviewEvaluationResponse, error) {
	set, err := s.loadOwnedSet(setID, userID)
	if err != nil {
		return nil, err
	}
	if set.Status == model.SetStatusCompleted {
		return nil, apperr.New(apperr.KindPrecondition, "interview set is already completed")
	}

	answers, err := s.answerRepo.FindBySetIDOrdered(setID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to load answers", err)
	}
	if len(answers) == 0 {
		return nil, apperr.New(apperr.KindPrecondition, "interview set has no answers to evaluate")
	}

	contexts := make([]AnswerContext, 0, len(answers))
	for _, a := range answers {
		questionText := "unknown question"
		if question, qerr := s.questionRepo.FindByID(a.QuestionID); qerr == nil {
			questionText = question.Question
		}
		contexts = append(contexts, AnswerContext{
			Question:         questionText,
			UserAnswer:       a.UserAnswer,
			FollowUpQuestion: a.FollowUpQuestion,
			FollowUpAnswer:   a.FollowUpAnswer,
		})
	}

	result, err := s.gateway.EvaluateComprehensive(ctx, contexts)
	if err != nil {
		log.Error().Err(err).Str("setID", setID.String()).Msg("Comprehensive evaluation failed")
		return nil, err
	}

	evaluation := &model.InterviewEvaluation{
		SetID:            setID,
		Logic:            result.Logic,
		Evidence:         result.Evidence,
		JobUnderstanding: result.JobUnderstanding,
		Formality:        result.Formality,
		Completeness:     result.Completeness,
		OverallFeedback:  result.OverallFeedback,
	}
	for _, item := range result.DetailedFeedback {
		evaluation.FeedbackItems = append(evaluation.FeedbackItems, model.EvaluationFeedbackItem{
			QuestionOrder: item.QuestionOrder,
			Feedback:      item.Feedback,
			Improvements:  item.Improvements,
		})
	}

	if err := s.evalRepo.CreateWithSetCompletion(evaluation, set); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to persist evaluation", err)
	}
	return evaluationToResponse(evaluation), nil
}

func evaluationToResponse(evaluation *model.InterviewEvaluation) *dto.InterviewEvaluationResponse {
	items := make([]dto.DetailedFeedbackItem, 0, len(evaluation.FeedbackItems))
	for _, item := range evaluation.FeedbackItems {
		items = append(items, dto.DetailedFeedbackItem{
			QuestionOrder: item.QuestionOrder,
			Feedback:      item.Feedback,
			Improvements:  item.Improvements,
		})
	}
	return &dto.InterviewEvaluationResponse{
		ID:               evaluation.ID,
		SetID:            evaluation.SetID,
		Logic:            evaluation.Logic,
		Evidence:         evaluation.Evidence,
		JobUnderstanding: evaluation.JobUnderstanding,
		Formality:        evaluation.Formality,
		Completeness:     evaluation.Completeness,
		OverallFeedback:  evaluation.OverallFeedback,
		DetailedFeedback: items,
		CreatedAt:        evaluation.CreatedAt,
	}
}
