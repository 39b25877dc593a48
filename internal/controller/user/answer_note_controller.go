package user

import (
	"net/http"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/controller"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/dto"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/middleware"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AnswerNoteController struct {
	noteService service.AnswerNoteService
}

func NewAnswerNoteController(noteService service.AnswerNoteService) *AnswerNoteController {
	return &AnswerNoteController{noteService: noteService}
}

// CreateNote godoc
// @Summary Create an answer note
// @Description Saves the caller's draft answer for a question, with optional feedback stages.
// @Tags Answer Notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note body dto.AnswerNoteCreateRequest true "Note data"
// @Success 201 {object} dto.AnswerNoteResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /answer-notes [post]
func (ctrl *AnswerNoteController) CreateNote(c *gin.Context) {
	var req dto.AnswerNoteCreateRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	resp, err := ctrl.noteService.CreateNote(middleware.UserID(c), req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListNotes godoc
// @Summary List the caller's answer notes
// @Description Lists the caller's notes newest first, optionally filtered by question.
// @Tags Answer Notes
// @Produce json
// @Security BearerAuth
// @Param question_id query string false "Filter by question ID"
// @Success 200 {array} dto.AnswerNoteResponse
// @Failure 422 {object} dto.ErrorResponse "Invalid question_id format"
// @Router /answer-notes [get]
func (ctrl *AnswerNoteController) ListNotes(c *gin.Context) {
	var questionID *uuid.UUID
	if raw := c.Query("question_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "invalid question_id format", Fields: []string{"question_id"}})
			return
		}
		questionID = &parsed
	}
	resp, err := ctrl.noteService.ListNotes(middleware.UserID(c), questionID)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateNote godoc
// @Summary Update an answer note
// @Description Partial update: only the provided feedback and final-answer fields are written.
// @Tags Answer Notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param note_id path string true "Note ID"
// @Param note body dto.AnswerNoteUpdateRequest true "Fields to update"
// @Success 200 {object} dto.AnswerNoteResponse
// @Failure 403 {object} dto.ErrorResponse "Note belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failed"
// @Router /answer-notes/{note_id} [put]
func (ctrl *AnswerNoteController) UpdateNote(c *gin.Context) {
	noteID, ok := controller.ParseUUIDParam(c, "note_id")
	if !ok {
		return
	}
	var req dto.AnswerNoteUpdateRequest
	if !controller.BindJSON(c, &req) {
		return
	}
	resp, err := ctrl.noteService.UpdateNote(noteID, middleware.UserID(c), req)
	if err != nil {
		controller.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteNote godoc
// @Summary Delete an answer note
// @Tags Answer Notes
// @Security BearerAuth
// @Param note_id path string true "Note ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.ErrorResponse "Note belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid id format"
// @Router /answer-notes/{note_id} [delete]
func (ctrl *AnswerNoteController) DeleteNote(c *gin.Context) {
	noteID, ok := controller.ParseUUIDParam(c, "note_id")
	if !ok {
		return
	}
	if err := ctrl.noteService.DeleteNote(noteID, middleware.UserID(c)); err != nil {
		controller.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
