package admin

import (
	"net/http"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/controller"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/dto"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type QuestionController struct {
	questionService service.QuestionService
}

func NewQuestionController(questionService service.QuestionService) *QuestionController {
	return &QuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Admin) Create an interview question
// @Description Adds a question to the catalog. Job questions must carry a job_type; common and foreigner questions must not.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.QuestionCreateRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 403 {object} dto.ErrorResponse "Admin privileges required"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (ctrl *QuestionController) CreateQuestion(c *gin.Context) {
	var req dto.QuestionCreateRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	resp, err := ctrl.questionService.CreateQuestion(req)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to create question")
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetQuestion godoc
// @Summary (Admin) Get a question by id
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Param question_id path string true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid id format"
// @Router /admin/questions/{question_id} [get]
func (ctrl *QuestionController) GetQuestion(c *gin.Context) {
	id, ok := controller.ParseUUIDParam(c, "question_id")
	if !ok {
		return
	}
	resp, err := ctrl.questionService.GetQuestion(id)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListQuestions godoc
// @Summary (Admin) List all questions
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.QuestionResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [get]
func (ctrl *QuestionController) ListQuestions(c *gin.Context) {
	resp, err := ctrl.questionService.GetAllQuestions()
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question
// @Description Replaces every mutable field of the question.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question_id path string true "Question ID"
// @Param question body dto.QuestionCreateRequest true "Updated question data"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /admin/questions/{question_id} [put]
func (ctrl *QuestionController) UpdateQuestion(c *gin.Context) {
	id, ok := controller.ParseUUIDParam(c, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionUpdateRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	resp, err := ctrl.questionService.UpdateQuestion(id, req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Description Removes the question. Answer notes and evaluation history tied to it cascade.
// @Tags Admin - Questions
// @Security BearerAuth
// @Param question_id path string true "Question ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid id format"
// @Router /admin/questions/{question_id} [delete]
func (ctrl *QuestionController) DeleteQuestion(c *gin.Context) {
	id, ok := controller.ParseUUIDParam(c, "question_id")
	if !ok {
		return
	}
	if err := ctrl.questionService.DeleteQuestion(id); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
