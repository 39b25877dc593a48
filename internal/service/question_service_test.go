package service

import (
	"testing"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/apperr"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/dto"
	"github.com/google/uuid"
)

func TestCreateQuestionJobRequiresJobType(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())
	_, err := svc.CreateQuestion(dto.QuestionCreateRequest{
		Question:    "What stack do you use?",
		Category:    "job",
		ModelAnswer: "m",
		Reasoning:   "r",
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateQuestionCommonRejectsJobType(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())
	_, err := svc.CreateQuestion(dto.QuestionCreateRequest{
		Question:    "Introduce yourself",
		Category:    "common",
		JobType:     ptr("it"),
		ModelAnswer: "m",
		Reasoning:   "r",
	})
	if apperr.KindOf(err) != apperr.KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQuestionCRUDRoundTrip(t *testing.T) {
	repo := newFakeQuestionRepo()
	svc := NewQuestionService(repo)

	created, err := svc.CreateQuestion(dto.QuestionCreateRequest{
		Question:    "Why Korea?",
		Category:    "foreigner",
		ModelAnswer: "m",
		Reasoning:   "r",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetQuestion(created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Question != "Why Korea?" || got.Category != "foreigner" {
		t.Fatalf("unexpected question: %+v", got)
	}

	updated, err := svc.UpdateQuestion(created.ID, dto.QuestionUpdateRequest{
		Question:    "Why work in Korea?",
		Category:    "foreigner",
		ModelAnswer: "m2",
		Reasoning:   "r2",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Question != "Why work in Korea?" || updated.ModelAnswer != "m2" {
		t.Fatalf("update not applied: %+v", updated)
	}
	if updated.ID != created.ID {
		t.Fatalf("update must not change the id")
	}

	if err := svc.DeleteQuestion(created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetQuestion(created.ID); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestQuestionNotFoundPaths(t *testing.T) {
	svc := NewQuestionService(newFakeQuestionRepo())
	id := uuid.New()

	if _, err := svc.GetQuestion(id); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("get: expected not found, got %v", err)
	}
	if _, err := svc.UpdateQuestion(id, dto.QuestionUpdateRequest{Question: "q", Category: "common", ModelAnswer: "m", Reasoning: "r"}); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("update: expected not found, got %v", err)
	}
	if err := svc.DeleteQuestion(id); apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("delete: expected not found, got %v", err)
	}
}
