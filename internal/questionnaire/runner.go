// Package questionnaire is the generic load/answer/submit pattern shared by
// every questionnaire screen, parameterized by fetch and submit functions.
package questionnaire

import (
	"context"
	"errors"
	"sort"

	"github.com/gerdlab/refluxtrack/internal/models"
)

var (
	// ErrNotLoaded is returned when answers are used before Load.
	ErrNotLoaded = errors.New("questionnaire not loaded")
	// ErrIncomplete is returned by Submit when any question is unanswered.
	// No network call is made in that case.
	ErrIncomplete = errors.New("all questions must be answered before submitting")
	// ErrUnavailable is returned when the server definition cannot be
	// rendered as a form (no questions, or a question without options).
	ErrUnavailable = errors.New("questionnaire is unavailable")
)

// LoadFunc fetches a questionnaire definition.
type LoadFunc func(ctx context.Context) (*models.Questionnaire, error)

// SubmitFunc performs the one submission write.
type SubmitFunc func(ctx context.Context, sub models.QuestionnaireSubmission) error

// Runner collects answers keyed by question id and submits them as an
// ordered list. Answers live only for the current screen visit.
type Runner struct {
	load    LoadFunc
	submit  SubmitFunc
	q       *models.Questionnaire
	answers map[int]int
}

// New creates a Runner over the given fetch/submit pair.
func New(load LoadFunc, submit SubmitFunc) *Runner {
	return &Runner{
		load:    load,
		submit:  submit,
		answers: make(map[int]int),
	}
}

// Load fetches the definition and sorts questions and options by their order
// fields; server order is not guaranteed stable. Any previous answers are
// discarded.
func (r *Runner) Load(ctx context.Context) error {
	q, err := r.load(ctx)
	if err != nil {
		return err
	}

	sort.SliceStable(q.Questions, func(i, j int) bool {
		return q.Questions[i].Order < q.Questions[j].Order
	})
	for i := range q.Questions {
		opts := q.Questions[i].Options
		sort.SliceStable(opts, func(a, b int) bool {
			return opts[a].Order < opts[b].Order
		})
	}

	r.q = q
	r.answers = make(map[int]int)
	return nil
}

// Questionnaire returns the loaded definition, or nil before Load.
func (r *Runner) Questionnaire() *models.Questionnaire {
	return r.q
}

// Unavailable reports whether the loaded definition cannot be rendered as a
// form. Submission is refused in that state.
func (r *Runner) Unavailable() bool {
	if r.q == nil || len(r.q.Questions) == 0 {
		return true
	}
	for _, question := range r.q.Questions {
		if len(question.Options) == 0 {
			return true
		}
	}
	return false
}

// SelectAnswer records a selection. Re-selecting a question overwrites the
// previous choice (last write wins).
func (r *Runner) SelectAnswer(questionID, optionID int) {
	r.answers[questionID] = optionID
}

// Answered returns the recorded option for a question, if any.
func (r *Runner) Answered(questionID int) (int, bool) {
	optionID, ok := r.answers[questionID]
	return optionID, ok
}

// IsComplete is true iff every question has exactly one answer.
func (r *Runner) IsComplete() bool {
	return r.q != nil && len(r.answers) == len(r.q.Questions)
}

// Submission serializes the answer mapping in question order: one
// {question_id, selected_option_id} pair per answered question. Selections
// for ids not in the questionnaire are dropped.
func (r *Runner) Submission() models.QuestionnaireSubmission {
	sub := models.QuestionnaireSubmission{Answers: []models.Answer{}}
	if r.q == nil {
		return sub
	}
	for _, question := range r.q.Questions {
		if optionID, ok := r.answers[question.ID]; ok {
			sub.Answers = append(sub.Answers, models.Answer{
				QuestionID:       question.ID,
				SelectedOptionID: optionID,
			})
		}
	}
	return sub
}

// Submit performs the one POST for this questionnaire. It refuses without a
// network call when the form is unavailable or incomplete. Answers are
// discarded after the attempt regardless of outcome; a retry means redoing
// the selections.
func (r *Runner) Submit(ctx context.Context) error {
	if r.q == nil {
		return ErrNotLoaded
	}
	if r.Unavailable() {
		return ErrUnavailable
	}
	if !r.IsComplete() {
		return ErrIncomplete
	}

	sub := r.Submission()
	r.answers = make(map[int]int)
	return r.submit(ctx, sub)
}
