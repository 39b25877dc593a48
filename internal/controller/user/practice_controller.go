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

type PracticeController struct {
	practiceService service.PracticeService
}

func NewPracticeController(practiceService service.PracticeService) *PracticeController {
	return &PracticeController{practiceService: practiceService}
}

// Evaluate godoc
// @Summary Evaluate a practice answer against a single question
// @Description Scores the answer 0-100 against the model answer and records the evaluation in the caller's history.
// @Tags Practice
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param evaluation body dto.EvaluateRequest true "Question id, answer text or audio, and the AI model to use"
// @Success 200 {object} dto.EvaluateResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 429 {object} dto.ErrorResponse "AI quota exceeded"
// @Failure 500 {object} dto.ErrorResponse "AI evaluation failed"
// @Failure 501 {object} dto.ErrorResponse "Audio transcription not implemented"
// @Router /practice/evaluate [post]
func (ctrl *PracticeController) Evaluate(c *gin.Context) {
	var req dto.EvaluateRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	resp, err := ctrl.practiceService.Evaluate(c.Request.Context(), middleware.UserID(c), req)
	if err != nil {
		log.Warn().Err(err).Str("questionID", req.QuestionID.String()).Msg("Practice evaluation failed")
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// History godoc
// @Summary List the caller's evaluation history for a question
// @Tags Practice
// @Produce json
// @Security BearerAuth
// @Param question_id path string true "Question ID"
// @Success 200 {array} dto.QAHistoryResponse
// @Failure 422 {object} dto.ErrorResponse "Invalid id format"
// @Router /practice/history/{question_id} [get]
func (ctrl *PracticeController) History(c *gin.Context) {
	questionID, ok := controller.ParseUUIDParam(c, "question_id")
	if !ok {
		return
	}
	resp, err := ctrl.practiceService.History(middleware.UserID(c), questionID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
