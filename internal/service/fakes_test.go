package service

import (
	"context"
	"time"

	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/model"
	"github.com/Core-Foreign-Employee-Hiring/backend-ai/internal/openrouter"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes shared by the service tests.

type fakeQuestionRepo struct {
	questions map[uuid.UUID]*model.Question
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: make(map[uuid.UUID]*model.Question)}
}

func (f *fakeQuestionRepo) add(q model.Question) *model.Question {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	f.questions[q.ID] = &q
	return &q
}

func (f *fakeQuestionRepo) Create(question *model.Question) error {
	if question.ID == uuid.Nil {
		question.ID = uuid.New()
	}
	question.CreatedAt = time.Now()
	f.questions[question.ID] = question
	return nil
}

func (f *fakeQuestionRepo) FindByID(id uuid.UUID) (*model.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return q, nil
}

func (f *fakeQuestionRepo) FindAll() ([]model.Question, error) {
	out := make([]model.Question, 0, len(f.questions))
	for _, q := range f.questions {
		out = append(out, *q)
	}
	return out, nil
}

func (f *fakeQuestionRepo) FindPoolByCategory(category string) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.Category == category {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) FindJobPool(jobType string) ([]model.Question, error) {
	var out []model.Question
	for _, q := range f.questions {
		if q.Category == model.CategoryJob && q.JobType != nil && *q.JobType == jobType {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuestionRepo) Update(question *model.Question) error {
	f.questions[question.ID] = question
	return nil
}

func (f *fakeQuestionRepo) Delete(id uuid.UUID) error {
	delete(f.questions, id)
	return nil
}

type fakeSetRepo struct {
	sets map[uuid.UUID]*model.InterviewSet
}

func newFakeSetRepo() *fakeSetRepo {
	return &fakeSetRepo{sets: make(map[uuid.UUID]*model.InterviewSet)}
}

func (f *fakeSetRepo) Create(set *model.InterviewSet) error {
	if set.ID == uuid.Nil {
		set.ID = uuid.New()
	}
	set.CreatedAt = time.Now()
	f.sets[set.ID] = set
	return nil
}

func (f *fakeSetRepo) FindByID(id uuid.UUID) (*model.InterviewSet, error) {
	s, ok := f.sets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *s
	return &copy, nil
}

func (f *fakeSetRepo) FindAllByUser(userID string) ([]model.InterviewSet, error) {
	var out []model.InterviewSet
	for _, s := range f.sets {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type fakeAnswerRepo struct {
	answers map[uuid.UUID]*model.InterviewAnswer
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{answers: make(map[uuid.UUID]*model.InterviewAnswer)}
}

func (f *fakeAnswerRepo) Create(answer *model.InterviewAnswer) error {
	if answer.ID == uuid.Nil {
		answer.ID = uuid.New()
	}
	answer.CreatedAt = time.Now()
	f.answers[answer.ID] = answer
	return nil
}

func (f *fakeAnswerRepo) FindByID(id uuid.UUID) (*model.InterviewAnswer, error) {
	a, ok := f.answers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *a
	return &copy, nil
}

func (f *fakeAnswerRepo) FindBySetIDOrdered(setID uuid.UUID) ([]model.InterviewAnswer, error) {
	var out []model.InterviewAnswer
	for _, a := range f.answers {
		if a.SetID == setID {
			out = append(out, *a)
		}
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].QuestionOrder < out[i].QuestionOrder {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeAnswerRepo) Update(answer *model.InterviewAnswer) error {
	f.answers[answer.ID] = answer
	return nil
}

// fakeEvalRepo mimics the transactional completion: the evaluation row and
// the set status flip happen together or not at all.
type fakeEvalRepo struct {
	setRepo     *fakeSetRepo
	evaluations map[uuid.UUID]*model.InterviewEvaluation
	createErr   error
}

func newFakeEvalRepo(setRepo *fakeSetRepo) *fakeEvalRepo {
	return &fakeEvalRepo{setRepo: setRepo, evaluations: make(map[uuid.UUID]*model.InterviewEvaluation)}
}

func (f *fakeEvalRepo) CreateWithSetCompletion(evaluation *model.InterviewEvaluation, set *model.InterviewSet) error {
	if f.createErr != nil {
		return f.createErr
	}
	if evaluation.ID == uuid.Nil {
		evaluation.ID = uuid.New()
	}
	evaluation.CreatedAt = time.Now()
	f.evaluations[evaluation.SetID] = evaluation
	stored := f.setRepo.sets[set.ID]
	now := time.Now()
	stored.Status = model.SetStatusCompleted
	stored.CompletedAt = &now
	return nil
}

func (f *fakeEvalRepo) FindBySetID(setID uuid.UUID) (*model.InterviewEvaluation, error) {
	e, ok := f.evaluations[setID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

type fakeNoteRepo struct {
	notes map[uuid.UUID]*model.AnswerNote
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: make(map[uuid.UUID]*model.AnswerNote)}
}

func (f *fakeNoteRepo) Create(note *model.AnswerNote) error {
	if note.ID == uuid.Nil {
		note.ID = uuid.New()
	}
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	f.notes[note.ID] = note
	return nil
}

func (f *fakeNoteRepo) FindByID(id uuid.UUID) (*model.AnswerNote, error) {
	n, ok := f.notes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *n
	return &copy, nil
}

func (f *fakeNoteRepo) FindAllByUser(userID string) ([]model.AnswerNote, error) {
	var out []model.AnswerNote
	for _, n := range f.notes {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) FindAllByUserAndQuestion(userID string, questionID uuid.UUID) ([]model.AnswerNote, error) {
	var out []model.AnswerNote
	for _, n := range f.notes {
		if n.UserID == userID && n.QuestionID == questionID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNoteRepo) Update(note *model.AnswerNote) error {
	note.UpdatedAt = time.Now()
	f.notes[note.ID] = note
	return nil
}

func (f *fakeNoteRepo) Delete(id uuid.UUID) error {
	delete(f.notes, id)
	return nil
}

type fakeHistoryRepo struct {
	histories []*model.QAHistory
}

func (f *fakeHistoryRepo) Create(history *model.QAHistory) error {
	if history.ID == uuid.Nil {
		history.ID = uuid.New()
	}
	history.CreatedAt = time.Now()
	f.histories = append(f.histories, history)
	return nil
}

func (f *fakeHistoryRepo) FindAllByUser(userID string) ([]model.QAHistory, error) {
	var out []model.QAHistory
	for _, h := range f.histories {
		if h.UserID == userID {
			out = append(out, *h)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) FindAllByUserAndQuestion(userID string, questionID uuid.UUID) ([]model.QAHistory, error) {
	var out []model.QAHistory
	for _, h := range f.histories {
		if h.UserID == userID && h.QuestionID == questionID {
			out = append(out, *h)
		}
	}
	return out, nil
}

// fakeChatClient scripts the reply of the next ChatCompletion call and
// records what was sent.
type fakeChatClient struct {
	reply    string
	err      error
	lastReq  openrouter.Request
	numCalls int
}

func (f *fakeChatClient) ChatCompletion(ctx context.Context, req openrouter.Request) (string, error) {
	f.lastReq = req
	f.numCalls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// identityShuffle keeps pool order, making composition deterministic.
func identityShuffle(n int, swap func(i, j int)) {}
