package user

import (
	"net/http"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/controller"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/dto"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/middleware"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type InterviewController struct {
	setService    service.InterviewSetService
	answerService service.InterviewAnswerService
}

func NewInterviewController(setService service.InterviewSetService, answerService service.InterviewAnswerService) *InterviewController {
	return &InterviewController{setService: setService, answerService: answerService}
}

// CreateSet godoc
// @Summary Create an interview set
// @Description Assembles a randomized question set: 40% common, 30% job-specific, the rest foreigner-specific.
// @Tags Interview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param set body dto.InterviewSetCreateRequest true "Job type, level and optional question count (default 3)"
// @Success 201 {object} dto.InterviewSetCreateResponse
// @Failure 400 {object} dto.ErrorResponse "Not enough questions available"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /interview/sets [post]
func (ctrl *InterviewController) CreateSet(c *gin.Context) {
	var req dto.InterviewSetCreateRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	resp, err := ctrl.setService.CreateSet(middleware.UserID(c), req)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to create interview set")
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListSets godoc
// @Summary List the caller's interview sets
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.InterviewSetResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Router /interview/sets [get]
func (ctrl *InterviewController) ListSets(c *gin.Context) {
	resp, err := ctrl.setService.ListSets(middleware.UserID(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSet godoc
// @Summary Get an interview set with its answers and evaluation
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Param set_id path string true "Set ID"
// @Success 200 {object} dto.InterviewSetDetailResponse
// @Failure 403 {object} dto.ErrorResponse "Set belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Set not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid id format"
// @Router /interview/sets/{set_id} [get]
func (ctrl *InterviewController) GetSet(c *gin.Context) {
	setID, ok := controller.ParseUUIDParam(c, "set_id")
	if !ok {
		return
	}
	resp, err := ctrl.setService.GetSet(setID, middleware.UserID(c))
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CompleteSet godoc
// @Summary Finalize an interview set with a comprehensive AI evaluation
// @Description Scores logic, evidence, job understanding, formality and completeness over the whole set and marks it completed.
// @Tags Interview
// @Produce json
// @Security BearerAuth
// @Param set_id path string true "Set ID"
// @Success 200 {object} dto.InterviewEvaluationResponse
// @Failure 400 {object} dto.ErrorResponse "No answers yet or already completed"
// @Failure 403 {object} dto.ErrorResponse "Set belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Set not found"
// @Failure 429 {object} dto.ErrorResponse "AI quota exceeded"
// @Failure 500 {object} dto.ErrorResponse "AI evaluation failed"
// @Router /interview/sets/{set_id}/complete [post]
func (ctrl *InterviewController) CompleteSet(c *gin.Context) {
	setID, ok := controller.ParseUUIDParam(c, "set_id")
	if !ok {
		return
	}
	resp, err := ctrl.setService.CompleteSet(c.Request.Context(), setID, middleware.UserID(c))
	if err != nil {
		log.Warn().Err(err).Str("setID", setID.String()).Msg("Failed to complete interview set")
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SubmitAnswer godoc
// @Summary Submit an answer to a set question
// @Description Stores the answer and, when requested, asks the AI for one probing follow-up question. A follow-up failure never loses the answer.
// @Tags Interview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answer body dto.SubmitAnswerRequest true "Answer payload; either user_answer or audio"
// @Success 201 {object} dto.SubmitAnswerResponse
// @Failure 400 {object} dto.ErrorResponse "Set already completed"
// @Failure 403 {object} dto.ErrorResponse "Set belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Set not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 501 {object} dto.ErrorResponse "Audio transcription not implemented"
// @Router /interview/answers [post]
func (ctrl *InterviewController) SubmitAnswer(c *gin.Context) {
	var req dto.SubmitAnswerRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	resp, err := ctrl.answerService.SubmitAnswer(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SubmitFollowUpAnswer godoc
// @Summary Submit an answer to a follow-up question
// @Description Attaches the follow-up answer to an existing answer row. Resubmitting replaces the previous value.
// @Tags Interview
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param answer body dto.SubmitFollowUpRequest true "Follow-up answer payload; either follow_up_answer or audio"
// @Success 200 {object} dto.SubmitFollowUpResponse
// @Failure 403 {object} dto.ErrorResponse "Answer belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 501 {object} dto.ErrorResponse "Audio transcription not implemented"
// @Router /interview/follow-up-answers [post]
func (ctrl *InterviewController) SubmitFollowUpAnswer(c *gin.Context) {
	var req dto.SubmitFollowUpRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	resp, err := ctrl.answerService.SubmitFollowUpAnswer(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
