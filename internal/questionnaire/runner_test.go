package questionnaire

import (
	"context"
	"errors"
	"testing"

	"github.com/gerdlab/refluxtrack/internal/models"
)

func staticLoad(q *models.Questionnaire) LoadFunc {
	return func(ctx context.Context) (*models.Questionnaire, error) {
		return q, nil
	}
}

func countingSubmit(calls *int, captured *models.QuestionnaireSubmission) SubmitFunc {
	return func(ctx context.Context, sub models.QuestionnaireSubmission) error {
		*calls++
		if captured != nil {
			*captured = sub
		}
		return nil
	}
}

func twoQuestionDefinition() *models.Questionnaire {
	return &models.Questionnaire{
		ID:    1,
		Title: "Symptoms",
		Questions: []models.Question{
			{ID: 11, Text: "Heartburn frequency", Order: 1, Options: []models.Option{
				{ID: 111, Text: "Never", Order: 1},
				{ID: 112, Text: "Daily", Order: 2},
			}},
			{ID: 12, Text: "Regurgitation", Order: 2, Options: []models.Option{
				{ID: 121, Text: "Never", Order: 1},
				{ID: 122, Text: "Daily", Order: 2},
			}},
		},
	}
}

func TestLoadSortsQuestionsAndOptions(t *testing.T) {
	q := &models.Questionnaire{
		Questions: []models.Question{
			{ID: 2, Order: 2, Options: []models.Option{
				{ID: 22, Order: 2},
				{ID: 21, Order: 1},
			}},
			{ID: 1, Order: 1, Options: []models.Option{{ID: 11, Order: 1}}},
		},
	}

	r := New(staticLoad(q), nil)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	loaded := r.Questionnaire()
	if loaded.Questions[0].ID != 1 || loaded.Questions[1].ID != 2 {
		t.Errorf("questions not sorted by order: got ids %d, %d", loaded.Questions[0].ID, loaded.Questions[1].ID)
	}
	opts := loaded.Questions[1].Options
	if opts[0].ID != 21 || opts[1].ID != 22 {
		t.Errorf("options not sorted by order: got ids %d, %d", opts[0].ID, opts[1].ID)
	}
}

func TestUnavailable(t *testing.T) {
	tests := []struct {
		name string
		q    *models.Questionnaire
		want bool
	}{
		{"renderable", twoQuestionDefinition(), false},
		{"no questions", &models.Questionnaire{}, true},
		{"question without options", &models.Questionnaire{
			Questions: []models.Question{{ID: 1}},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(staticLoad(tt.q), nil)
			if err := r.Load(context.Background()); err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got := r.Unavailable(); got != tt.want {
				t.Errorf("Unavailable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnavailableBeforeLoad(t *testing.T) {
	r := New(staticLoad(twoQuestionDefinition()), nil)
	if !r.Unavailable() {
		t.Error("Unavailable() before Load should be true")
	}
}

func TestIsCompleteRequiresEveryQuestion(t *testing.T) {
	r := New(staticLoad(twoQuestionDefinition()), nil)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if r.IsComplete() {
		t.Error("IsComplete() with no answers should be false")
	}

	r.SelectAnswer(11, 111)
	if r.IsComplete() {
		t.Error("IsComplete() with one of two answers should be false")
	}

	r.SelectAnswer(12, 121)
	if !r.IsComplete() {
		t.Error("IsComplete() with all answers should be true")
	}
}

func TestSelectAnswerLastWriteWins(t *testing.T) {
	r := New(staticLoad(twoQuestionDefinition()), nil)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	r.SelectAnswer(11, 111)
	r.SelectAnswer(11, 112)

	got, ok := r.Answered(11)
	if !ok || got != 112 {
		t.Errorf("Answered(11) = %d, %v; want 112, true", got, ok)
	}
	if len(r.Submission().Answers) != 1 {
		t.Errorf("re-selection should not add a second answer, got %d", len(r.Submission().Answers))
	}
}

func TestSubmissionInQuestionOrder(t *testing.T) {
	r := New(staticLoad(twoQuestionDefinition()), nil)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Answer in reverse order; serialization must follow question order.
	r.SelectAnswer(12, 122)
	r.SelectAnswer(11, 111)
	r.SelectAnswer(999, 1) // not part of the questionnaire

	sub := r.Submission()
	if len(sub.Answers) != 2 {
		t.Fatalf("Submission() has %d answers, want 2", len(sub.Answers))
	}
	if sub.Answers[0].QuestionID != 11 || sub.Answers[1].QuestionID != 12 {
		t.Errorf("Submission() order = %d, %d; want 11, 12", sub.Answers[0].QuestionID, sub.Answers[1].QuestionID)
	}
}

func TestSubmitIncompleteMakesNoNetworkCall(t *testing.T) {
	calls := 0
	r := New(staticLoad(twoQuestionDefinition()), countingSubmit(&calls, nil))
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	r.SelectAnswer(11, 111)
	if err := r.Submit(context.Background()); !errors.Is(err, ErrIncomplete) {
		t.Errorf("Submit() error = %v, want %v", err, ErrIncomplete)
	}
	if calls != 0 {
		t.Errorf("submit called %d times for incomplete form, want 0", calls)
	}
}

func TestSubmitUnavailableMakesNoNetworkCall(t *testing.T) {
	calls := 0
	r := New(staticLoad(&models.Questionnaire{}), countingSubmit(&calls, nil))
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if err := r.Submit(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Submit() error = %v, want %v", err, ErrUnavailable)
	}
	if calls != 0 {
		t.Errorf("submit called %d times for unavailable form, want 0", calls)
	}
}

func TestSubmitBeforeLoad(t *testing.T) {
	r := New(staticLoad(twoQuestionDefinition()), nil)
	if err := r.Submit(context.Background()); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Submit() error = %v, want %v", err, ErrNotLoaded)
	}
}

func TestSubmitSendsAndDiscardsAnswers(t *testing.T) {
	calls := 0
	var captured models.QuestionnaireSubmission
	r := New(staticLoad(twoQuestionDefinition()), countingSubmit(&calls, &captured))
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	r.SelectAnswer(11, 112)
	r.SelectAnswer(12, 121)
	if err := r.Submit(context.Background()); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if calls != 1 {
		t.Errorf("submit called %d times, want 1", calls)
	}
	if len(captured.Answers) != 2 {
		t.Errorf("submitted %d answers, want 2", len(captured.Answers))
	}
	if r.IsComplete() {
		t.Error("answers should be discarded after submit")
	}
}

func TestSubmitFailureStillDiscardsAnswers(t *testing.T) {
	submitErr := errors.New("server down")
	r := New(staticLoad(twoQuestionDefinition()), func(ctx context.Context, sub models.QuestionnaireSubmission) error {
		return submitErr
	})
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	r.SelectAnswer(11, 111)
	r.SelectAnswer(12, 121)
	if err := r.Submit(context.Background()); !errors.Is(err, submitErr) {
		t.Errorf("Submit() error = %v, want %v", err, submitErr)
	}
	if r.IsComplete() {
		t.Error("answers should be discarded even when the submit fails")
	}
}

func TestLoadDiscardsPreviousAnswers(t *testing.T) {
	r := New(staticLoad(twoQuestionDefinition()), nil)
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	r.SelectAnswer(11, 111)
	r.SelectAnswer(12, 121)

	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if r.IsComplete() {
		t.Error("reload should discard previous answers")
	}
}
