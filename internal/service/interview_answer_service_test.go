package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/apperr"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/dto"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/google/uuid"
)

type answerFixture struct {
	svc        InterviewAnswerService
	answerRepo *fakeAnswerRepo
	setRepo    *fakeSetRepo
	qRepo      *fakeQuestionRepo
	set        *model.InterviewSet
	question   *model.Question
}

func newAnswerFixture(client *fakeChatClient) *answerFixture {
	qRepo := newFakeQuestionRepo()
	question := qRepo.add(model.Question{Question: "q1", Category: model.CategoryCommon})
	setRepo := newFakeSetRepo()
	set := &model.InterviewSet{UserID: "owner", JobType: "it", Level: "entry", Status: model.SetStatusInProgress}
	setRepo.Create(set)
	answerRepo := newFakeAnswerRepo()
	var gateway AIGatewayService
	if client != nil {
		gateway = NewAIGatewayService(client)
	}
	return &answerFixture{
		svc:        NewInterviewAnswerService(answerRepo, setRepo, qRepo, gateway),
		answerRepo: answerRepo,
		setRepo:    setRepo,
		qRepo:      qRepo,
		set:        set,
		question:   question,
	}
}

func TestSubmitAnswerWithFollowUp(t *testing.T) {
	client := &fakeChatClient{reply: `{"followUpQuestion": "Why that approach?"}`}
	fx := newAnswerFixture(client)

	resp, err := fx.svc.SubmitAnswer(context.Background(), "owner", dto.SubmitAnswerRequest{
		SetID:          fx.set.ID,
		QuestionID:     fx.question.ID,
		QuestionOrder:  1,
		UserAnswer:     ptr("my answer"),
		EnableFollowUp: true,
	})
	if err != nil {
		t.Fatalf("submit answer: %v", err)
	}
	if resp.FollowUpQuestion == nil || *resp.FollowUpQuestion != "Why that approach?" {
		t.Fatalf("unexpected follow-up: %v", resp.FollowUpQuestion)
	}
	stored, err := fx.answerRepo.FindByID(resp.AnswerID)
	if err != nil {
		t.Fatalf("answer not persisted: %v", err)
	}
	if stored.UserAnswer != "my answer" {
		t.Fatalf("unexpected stored answer %q", stored.UserAnswer)
	}
}

func TestSubmitAnswerFollowUpFailureStillPersists(t *testing.T) {
	client := &fakeChatClient{err: errors.New("model offline")}
	fx := newAnswerFixture(client)

	resp, err := fx.svc.SubmitAnswer(context.Background(), "owner", dto.SubmitAnswerRequest{
		SetID:          fx.set.ID,
		QuestionID:     fx.question.ID,
		QuestionOrder:  1,
		UserAnswer:     ptr("my answer"),
		EnableFollowUp: true,
	})
	if err != nil {
		t.Fatalf("a follow-up failure must not fail the submission: %v", err)
	}
	if resp.FollowUpQuestion != nil {
		t.Fatalf("follow-up should be nil after a gateway failure")
	}
	if _, err := fx.answerRepo.FindByID(resp.AnswerID); err != nil {
		t.Fatalf("answer must be persisted despite the follow-up failure: %v", err)
	}
}

func TestSubmitAnswerAudioOnlyRejected(t *testing.T) {
	fx := newAnswerFixture(nil)

	_, err := fx.svc.SubmitAnswer(context.Background(), "owner", dto.SubmitAnswerRequest{
		SetID:         fx.set.ID,
		QuestionID:    fx.question.ID,
		QuestionOrder: 1,
		Audio:         &dto.AudioInput{Data: "base64", Format: "webm"},
	})
	if apperr.KindOf(err) != apperr.KindNotImplemented {
		t.Fatalf("expected not implemented, got %v", err)
	}
	if len(fx.answerRepo.answers) != 0 {
		t.Fatalf("nothing may be persisted on an audio-only submission")
	}
}

func TestSubmitAnswerOwnershipAndLifecycle(t *testing.T) {
	fx := newAnswerFixture(nil)

	_, err := fx.svc.SubmitAnswer(context.Background(), "stranger", dto.SubmitAnswerRequest{
		SetID: fx.set.ID, QuestionID: fx.question.ID, QuestionOrder: 1, UserAnswer: ptr("a"),
	})
	if apperr.KindOf(err) != apperr.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}

	_, err = fx.svc.SubmitAnswer(context.Background(), "owner", dto.SubmitAnswerRequest{
		SetID: uuid.New(), QuestionID: fx.question.ID, QuestionOrder: 1, UserAnswer: ptr("a"),
	})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	fx.setRepo.sets[fx.set.ID].Status = model.SetStatusCompleted
	_, err = fx.svc.SubmitAnswer(context.Background(), "owner", dto.SubmitAnswerRequest{
		SetID: fx.set.ID, QuestionID: fx.question.ID, QuestionOrder: 1, UserAnswer: ptr("a"),
	})
	if apperr.KindOf(err) != apperr.KindPrecondition {
		t.Fatalf("expected precondition on a completed set, got %v", err)
	}
}

func TestSubmitFollowUpAnswerLastWriteWins(t *testing.T) {
	fx := newAnswerFixture(nil)
	answer := &model.InterviewAnswer{SetID: fx.set.ID, QuestionID: fx.question.ID, QuestionOrder: 1, UserAnswer: "a"}
	fx.answerRepo.Create(answer)

	for _, text := range []string{"first try", "second try"} {
		resp, err := fx.svc.SubmitFollowUpAnswer(context.Background(), "owner", dto.SubmitFollowUpRequest{
			AnswerID:       answer.ID,
			FollowUpAnswer: ptr(text),
		})
		if err != nil {
			t.Fatalf("submit follow-up: %v", err)
		}
		if !resp.Success {
			t.Fatalf("expected success")
		}
	}
	stored, _ := fx.answerRepo.FindByID(answer.ID)
	if stored.FollowUpAnswer == nil || *stored.FollowUpAnswer != "second try" {
		t.Fatalf("resubmission should replace the follow-up answer, got %v", stored.FollowUpAnswer)
	}
}

func TestSubmitFollowUpAnswerUnknownID(t *testing.T) {
	fx := newAnswerFixture(nil)
	_, err := fx.svc.SubmitFollowUpAnswer(context.Background(), "owner", dto.SubmitFollowUpRequest{
		AnswerID:       uuid.New(),
		FollowUpAnswer: ptr("text"),
	})
	if apperr.KindOf(err) != apperr.KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
