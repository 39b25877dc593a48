package service

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/apperr"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/openrouter"
	"github.com/rs/zerolog/log"
)

// AnswerEvaluation is the parsed result of a single-answer scoring call.
// RawResponse keeps the unmodified model output for the audit log.
type AnswerEvaluation struct {
	Score        int
	Hints        string
	Strengths    string
	Improvements string
	RawResponse  string
}

// AnswerContext carries one set answer into the comprehensive evaluation prompt.
type AnswerContext struct {
	Question         string
	UserAnswer       string
	FollowUpQuestion *string
	FollowUpAnswer   *string
}

// FeedbackItem is per-question feedback within a comprehensive evaluation.
type FeedbackItem struct {
	QuestionOrder int    `json:"questionOrder"`
	Feedback      string `json:"feedback"`
	Improvements  string `json:"improvements"`
}

// ComprehensiveEvaluation is the five-axis result over a whole interview set.
type ComprehensiveEvaluation struct {
	Logic            int
	Evidence         int
	JobUnderstanding int
	Formality        int
	Completeness     int
	OverallFeedback  string
	DetailedFeedback []FeedbackItem
	RawResponse      string
}

// AIGatewayService is the single seam between the application and the
// language model. Every prompt lives here so the services above it deal
// only in typed results.
type AIGatewayService interface {
	ScoreAnswer(ctx context.Context, question *model.Question, userAnswer string, aiModel string) (*AnswerEvaluation, error)
	GenerateFollowUp(ctx context.Context, question string, userAnswer string, aiModel string) (string, error)
	EvaluateComprehensive(ctx context.Context, answers []AnswerContext) (*ComprehensiveEvaluation, error)
}

type aiGatewayService struct {
	client openrouter.ChatClient
}

func NewAIGatewayService(client openrouter.ChatClient) AIGatewayService {
	return &aiGatewayService{client: client}
}

// codeFencePattern matches markdown code fences with an optional language tag,
// e.g. ```json ... ```.
var codeFencePattern = regexp.MustCompile("```(?:[a-zA-Z]+)?\\s*\n?")

func stripMarkdownCodeFences(text string) string {
	return strings.TrimSpace(codeFencePattern.ReplaceAllString(text, ""))
}

// parseObjectResponse cleans fences off a model reply and unmarshals it into
// out. The root must be a JSON object; anything else is a hard error so a
// chatty or truncated reply never turns into zeroed-out scores.
func parseObjectResponse(raw string, out interface{}) error {
	cleaned := stripMarkdownCodeFences(raw)
	if cleaned == "" {
		return apperr.New(apperr.KindUpstream, "AI response is empty")
	}
	if !strings.HasPrefix(cleaned, "{") {
		return apperr.New(apperr.KindUpstream, "AI response is not a JSON object")
	}
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		log.Error().Err(err).Str("response", cleaned).Msg("Failed to parse AI response")
		return apperr.Wrap(apperr.KindUpstream, "failed to parse AI response", err)
	}
	return nil
}

func (s *aiGatewayService) ScoreAnswer(ctx context.Context, question *model.Question, userAnswer string, aiModel string) (*AnswerEvaluation, error) {
	systemPrompt := fmt.Sprintf(`You are a job interviewer. Evaluate the candidate's answer and suggest improvements.

Interview question: %s
Model answer: %s
Reasoning behind the model answer: %s

Evaluate the candidate's answer:
1. Score its similarity to the model answer from 0 to 100
2. Give concrete hints that would help the candidate answer better
3. Point out clearly what was done well and what needs improvement

Respond strictly in the following JSON format:
{
  "score": <number between 0 and 100>,
  "hints": "<concrete hints and feedback>",
  "strengths": "<what was done well>",
  "improvements": "<what needs improvement>"
}`, question.Question, question.ModelAnswer, question.Reasoning)

	raw, err := s.client.ChatCompletion(ctx, openrouter.Request{
		Model: aiModel,
		Messages: []openrouter.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: "Candidate's answer: " + userAnswer},
		},
		Temperature: 0.7,
		MaxTokens:   3000,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "AI evaluation failed", err)
	}

	var parsed struct {
		Score        int    `json:"score"`
		Hints        string `json:"hints"`
		Strengths    string `json:"strengths"`
		Improvements string `json:"improvements"`
	}
	if err := parseObjectResponse(raw, &parsed); err != nil {
		return nil, err
	}

	return &AnswerEvaluation{
		Score:        parsed.Score,
		Hints:        parsed.Hints,
		Strengths:    parsed.Strengths,
		Improvements: parsed.Improvements,
		RawResponse:  raw,
	}, nil
}

func (s *aiGatewayService) GenerateFollowUp(ctx context.Context, question string, userAnswer string, aiModel string) (string, error) {
	var prompt strings.Builder
	prompt.WriteString("You are an interviewer at a Korean company. Listen to the candidate's answer and produce one probing follow-up question.\n\n")
	if question != "" {
		prompt.WriteString("Original question: " + question + "\n")
	}
	prompt.WriteString("Candidate's answer: " + userAnswer + "\n\n")
	prompt.WriteString(`Identify the key point of the answer and generate ONE follow-up question that digs deeper into it or demands concrete evidence.
Make the question natural, like a real interview.

Respond in JSON format:
{
  "followUpQuestion": "<follow-up question>"
}`)

	raw, err := s.client.ChatCompletion(ctx, openrouter.Request{
		Model: aiModel,
		Messages: []openrouter.Message{
			{Role: "user", Content: prompt.String()},
		},
		Temperature: 0.8,
		MaxTokens:   1000,
	})
	if err != nil {
		return "", apperr.Wrap(apperr.KindUpstream, "follow-up generation failed", err)
	}

	var parsed struct {
		FollowUpQuestion string `json:"followUpQuestion"`
	}
	if err := parseObjectResponse(raw, &parsed); err != nil {
		return "", err
	}
	return parsed.FollowUpQuestion, nil
}

func (s *aiGatewayService) EvaluateComprehensive(ctx context.Context, answers []AnswerContext) (*ComprehensiveEvaluation, error) {
	var transcript strings.Builder
	for i, a := range answers {
		transcript.WriteString(fmt.Sprintf("\nQuestion %d: %s\nAnswer: %s\n", i+1, a.Question, a.UserAnswer))
		if a.FollowUpQuestion != nil {
			transcript.WriteString("Follow-up question: " + *a.FollowUpQuestion + "\n")
			if a.FollowUpAnswer != nil {
				transcript.WriteString("Follow-up answer: " + *a.FollowUpAnswer + "\n")
			} else {
				transcript.WriteString("Follow-up answer: (no answer)\n")
			}
		}
	}

	prompt := fmt.Sprintf(`You are a hiring manager at a Korean company. Evaluate this foreign candidate's interview answers as a whole.

Interview answers:
%s

Score each of the following five criteria from 0 to 100 and provide overall feedback:
1. logic: logical structure and consistency of the answers
2. evidence: use of concrete examples and supporting evidence
3. jobUnderstanding: understanding of the target job
4. formality: appropriate use of business Korean
5. completeness: completeness and thoroughness of the answers

Also provide detailed feedback for each answer.

Respond in JSON format:
{
  "logic": <score>,
  "evidence": <score>,
  "jobUnderstanding": <score>,
  "formality": <score>,
  "completeness": <score>,
  "overallFeedback": "<overall feedback>",
  "detailedFeedback": [
    {
      "questionOrder": 1,
      "feedback": "<detailed feedback for question 1>",
      "improvements": "<suggested improvements>"
    }
  ]
}`, transcript.String())

	raw, err := s.client.ChatCompletion(ctx, openrouter.Request{
		Messages: []openrouter.Message{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   5000,
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUpstream, "comprehensive evaluation failed", err)
	}

	var parsed struct {
		Logic            int            `json:"logic"`
		Evidence         int            `json:"evidence"`
		JobUnderstanding int            `json:"jobUnderstanding"`
		Formality        int            `json:"formality"`
		Completeness     int            `json:"completeness"`
		OverallFeedback  string         `json:"overallFeedback"`
		DetailedFeedback []FeedbackItem `json:"detailedFeedback"`
	}
	if err := parseObjectResponse(raw, &parsed); err != nil {
		return nil, err
	}

	feedback := parsed.DetailedFeedback
	if feedback == nil {
		feedback = []FeedbackItem{}
	}
	return &ComprehensiveEvaluation{
		Logic:            parsed.Logic,
		Evidence:         parsed.Evidence,
		JobUnderstanding: parsed.JobUnderstanding,
		Formality:        parsed.Formality,
		Completeness:     parsed.Completeness,
		OverallFeedback:  parsed.OverallFeedback,
		DetailedFeedback: feedback,
		RawResponse:      raw,
	}, nil
}
