package dto

import "github.com/google/uuid"

// AudioInput is accepted on answer-submission endpoints. Transcription is not
// implemented yet; audio-only submissions are rejected with 501.
type AudioInput struct {
	Data   string `json:"data" binding:"required"`
	Format string `json:"format" binding:"required"`
}

type QuestionCreateRequest struct {
	Question    string  `json:"question" binding:"required"`
	Category    string  `json:"category" binding:"required,oneof=common job foreigner"`
	JobType     *string `json:"job_type" binding:"omitempty,oneof=it marketing"`
	Level       *string `json:"level" binding:"omitempty,oneof=intern entry experienced"`
	ModelAnswer string  `json:"model_answer" binding:"required"`
	Reasoning   string  `json:"reasoning" binding:"required"`
}

// QuestionUpdateRequest carries the same shape as creation; updates replace
// every mutable field.
type QuestionUpdateRequest = QuestionCreateRequest

type InterviewSetCreateRequest struct {
	JobType       string `json:"job_type" binding:"required,oneof=it marketing"`
	Level         string `json:"level" binding:"required,oneof=intern entry experienced"`
	QuestionCount int    `json:"question_count" binding:"omitempty,min=1,max=10"`
}

type SubmitAnswerRequest struct {
	SetID          uuid.UUID   `json:"set_id" binding:"required"`
	QuestionID     uuid.UUID   `json:"question_id" binding:"required"`
	QuestionOrder  int         `json:"question_order" binding:"required,min=1"`
	UserAnswer     *string     `json:"user_answer" binding:"omitempty,min=1"`
	Audio          *AudioInput `json:"audio"`
	EnableFollowUp bool        `json:"enable_follow_up"`
	AIModel        *string     `json:"ai_model" binding:"omitempty,min=1"`
}

type SubmitFollowUpRequest struct {
	AnswerID       uuid.UUID   `json:"answer_id" binding:"required"`
	FollowUpAnswer *string     `json:"follow_up_answer" binding:"omitempty,min=1"`
	Audio          *AudioInput `json:"audio"`
}

type EvaluateRequest struct {
	QuestionID uuid.UUID   `json:"question_id" binding:"required"`
	UserAnswer *string     `json:"user_answer" binding:"omitempty,min=1"`
	Audio      *AudioInput `json:"audio"`
	AIModel    string      `json:"ai_model" binding:"required,min=1"`
}

type AnswerNoteCreateRequest struct {
	QuestionID     uuid.UUID `json:"question_id" binding:"required"`
	InitialAnswer  string    `json:"initial_answer" binding:"required,min=1"`
	FirstFeedback  *string   `json:"first_feedback"`
	SecondFeedback *string   `json:"second_feedback"`
	FinalAnswer    *string   `json:"final_answer"`
}

// AnswerNoteUpdateRequest is a partial update: only non-nil fields are
// written, the rest keep their stored values.
type AnswerNoteUpdateRequest struct {
	FirstFeedback  *string `json:"first_feedback" binding:"omitempty,min=1"`
	SecondFeedback *string `json:"second_feedback" binding:"omitempty,min=1"`
	FinalAnswer    *string `json:"final_answer" binding:"omitempty,min=1"`
}
