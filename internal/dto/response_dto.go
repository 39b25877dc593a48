package dto

import (
	"time"

	"github.com/google/uuid"
)

type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

type QuestionResponse struct {
	ID          uuid.UUID `json:"id"`
	Question    string    `json:"question"`
	Category    string    `json:"category"`
	JobType     *string   `json:"job_type,omitempty"`
	Level       *string   `json:"level,omitempty"`
	ModelAnswer string    `json:"model_answer"`
	Reasoning   string    `json:"reasoning"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// QuestionInfo is the slimmed-down view returned when a set is composed: the
// question text plus its assigned 1-based order and source category.
type QuestionInfo struct {
	ID       uuid.UUID `json:"id"`
	Question string    `json:"question"`
	Order    int       `json:"order"`
	Category string    `json:"category"`
}

type InterviewSetCreateResponse struct {
	SetID     uuid.UUID      `json:"set_id"`
	Questions []QuestionInfo `json:"questions"`
}

type InterviewSetResponse struct {
	ID          uuid.UUID  `json:"id"`
	UserID      string     `json:"user_id"`
	JobType     string     `json:"job_type"`
	Level       string     `json:"level"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

type SubmitAnswerResponse struct {
	AnswerID         uuid.UUID `json:"answer_id"`
	FollowUpQuestion *string   `json:"follow_up_question"`
	Transcript       *string   `json:"transcript"`
}

type SubmitFollowUpResponse struct {
	Success    bool    `json:"success"`
	Transcript *string `json:"transcript"`
}

type InterviewAnswerResponse struct {
	ID               uuid.UUID         `json:"id"`
	SetID            uuid.UUID         `json:"set_id"`
	QuestionID       uuid.UUID         `json:"question_id"`
	QuestionOrder    int               `json:"question_order"`
	UserAnswer       string            `json:"user_answer"`
	FollowUpQuestion *string           `json:"follow_up_question"`
	FollowUpAnswer   *string           `json:"follow_up_answer"`
	CreatedAt        time.Time         `json:"created_at"`
	Question         *QuestionResponse `json:"question,omitempty"`
}

type DetailedFeedbackItem struct {
	QuestionOrder int    `json:"question_order"`
	Feedback      string `json:"feedback"`
	Improvements  string `json:"improvements"`
}

type InterviewEvaluationResponse struct {
	ID               uuid.UUID              `json:"id"`
	SetID            uuid.UUID              `json:"set_id"`
	Logic            int                    `json:"logic"`
	Evidence         int                    `json:"evidence"`
	JobUnderstanding int                    `json:"job_understanding"`
	Formality        int                    `json:"formality"`
	Completeness     int                    `json:"completeness"`
	OverallFeedback  string                 `json:"overall_feedback"`
	DetailedFeedback []DetailedFeedbackItem `json:"detailed_feedback"`
	CreatedAt        time.Time              `json:"created_at"`
}

type InterviewSetDetailResponse struct {
	Set        InterviewSetResponse         `json:"set"`
	Answers    []InterviewAnswerResponse    `json:"answers"`
	Evaluation *InterviewEvaluationResponse `json:"evaluation"`
}

type EvaluateResponse struct {
	Score        int       `json:"score"`
	Hints        string    `json:"hints"`
	Strengths    *string   `json:"strengths,omitempty"`
	Improvements *string   `json:"improvements,omitempty"`
	HistoryID    uuid.UUID `json:"history_id"`
	Transcript   *string   `json:"transcript"`
}

type QAHistoryResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     string    `json:"user_id"`
	QuestionID uuid.UUID `json:"question_id"`
	UserAnswer string    `json:"user_answer"`
	AIModel    string    `json:"ai_model"`
	AIResponse string    `json:"ai_response"`
	Score      int       `json:"score"`
	Hints      string    `json:"hints"`
	CreatedAt  time.Time `json:"created_at"`
}

type AnswerNoteResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         string    `json:"user_id"`
	QuestionID     uuid.UUID `json:"question_id"`
	InitialAnswer  string    `json:"initial_answer"`
	FirstFeedback  *string   `json:"first_feedback"`
	SecondFeedback *string   `json:"second_feedback"`
	FinalAnswer    *string   `json:"final_answer"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
