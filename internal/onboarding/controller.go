// Package onboarding sequences the fixed onboarding steps and persists the
// resumability checkpoint. The step order lives in one table; screens never
// name their successors.
package onboarding

import (
	"context"
	"time"

	"github.com/gerdlab/refluxtrack/internal/constants"
	"github.com/gerdlab/refluxtrack/internal/logger"
	"github.com/gerdlab/refluxtrack/internal/models"
	"github.com/gerdlab/refluxtrack/internal/store"
)

// Step identifies one onboarding screen. Values are persisted as the
// checkpoint, so renaming one invalidates stored checkpoints.
type Step string

const (
	StepGeneralInfo     Step = "general-info"
	StepSymptomSurvey   Step = "symptom-survey"
	StepImpactSurvey    Step = "impact-survey"
	StepClinicalFactors Step = "clinical-factors"
	StepDiagnosticTests Step = "diagnostic-tests"
	StepHabitSurvey     Step = "habit-survey"
	StepPhenotype       Step = "phenotype"
	StepGenerating      Step = "generating-program"
	StepDone            Step = "done"
)

// nextStep is the single forward-only transition table.
var nextStep = map[Step]Step{
	StepGeneralInfo:     StepSymptomSurvey,
	StepSymptomSurvey:   StepImpactSurvey,
	StepImpactSurvey:    StepClinicalFactors,
	StepClinicalFactors: StepDiagnosticTests,
	StepDiagnosticTests: StepHabitSurvey,
	StepHabitSurvey:     StepPhenotype,
	StepPhenotype:       StepGenerating,
	StepGenerating:      StepDone,
}

// Valid reports whether s is a known step.
func (s Step) Valid() bool {
	if s == StepDone {
		return true
	}
	_, ok := nextStep[s]
	return ok
}

// Next returns the step after s, or StepDone when s is terminal or unknown.
func Next(s Step) Step {
	if n, ok := nextStep[s]; ok {
		return n
	}
	return StepDone
}

const (
	// FinalizeTimeout bounds the whole program-generation step. After it the
	// user is forwarded home regardless of API outcome.
	FinalizeTimeout = 45 * time.Second

	// ForceCompleteDelay is how long the CLI waits before offering the
	// manual finish affordance.
	ForceCompleteDelay = 10 * time.Second
)

// Finalizer is the slice of the API client the terminal step needs.
type Finalizer interface {
	CompleteOnboarding(ctx context.Context) error
	GenerateProgram(ctx context.Context) (*models.Program, error)
	RegenerateRecommendations(ctx context.Context) error
}

// Controller owns checkpoint persistence and the terminal step.
type Controller struct {
	store store.Store
	api   Finalizer
}

// New creates a Controller.
func New(st store.Store, api Finalizer) *Controller {
	return &Controller{store: st, api: api}
}

// checkpointKeys returns the scoped key first, then the global fallback.
func (c *Controller) checkpointKeys() []string {
	keys := []string{}
	if username, err := c.store.Get(constants.KeyUsername); err == nil && username != "" {
		keys = append(keys, store.CheckpointKey(username))
	}
	return append(keys, store.CheckpointKey(""))
}

// Resume returns the step the user should land on: the stored checkpoint
// when one exists and is recognized, else the first step.
func (c *Controller) Resume() Step {
	for _, key := range c.checkpointKeys() {
		val, err := c.store.Get(key)
		if err != nil {
			continue
		}
		if step := Step(val); step.Valid() {
			return step
		}
		logger.Warn("Ignoring unrecognized onboarding checkpoint", "value", val)
	}
	return StepGeneralInfo
}

// Advance persists the checkpoint for the step after current and returns it.
// Call only after the step's server write succeeded; a failed write must
// leave the checkpoint untouched.
func (c *Controller) Advance(current Step) (Step, error) {
	next := Next(current)
	if next == StepDone {
		return StepDone, c.ClearCheckpoint()
	}
	key := c.checkpointKeys()[0]
	if err := c.store.Set(key, string(next)); err != nil {
		// The step itself succeeded server-side; losing the checkpoint only
		// costs resumability, so the flow continues.
		logger.Warn("Failed to persist onboarding checkpoint", "step", next, "error", err)
	}
	return next, nil
}

// ClearCheckpoint removes both the scoped and global checkpoint keys.
func (c *Controller) ClearCheckpoint() error {
	for _, key := range c.checkpointKeys() {
		if err := c.store.Delete(key); err != nil && err != store.ErrNotFound {
			return err
		}
	}
	return nil
}

// Finalize runs the terminal "generating program" sequence: mark onboarding
// complete, generate the program, regenerate recommendations, clear the
// checkpoint. Non-critical failures are logged, never surfaced, and the whole
// sequence is bounded by FinalizeTimeout so the user cannot get stuck here.
// The returned program may be nil when generation did not finish in time.
func (c *Controller) Finalize(ctx context.Context) *models.Program {
	ctx, cancel := context.WithTimeout(ctx, FinalizeTimeout)
	defer cancel()

	done := make(chan *models.Program, 1)
	go func() {
		done <- c.finalizeSequence(ctx)
	}()

	select {
	case program := <-done:
		return program
	case <-ctx.Done():
		logger.Warn("Onboarding finalization timed out, forwarding home", "timeout", FinalizeTimeout)
		return nil
	}
}

func (c *Controller) finalizeSequence(ctx context.Context) *models.Program {
	if err := withRetry(func() error { return c.api.CompleteOnboarding(ctx) }); err != nil {
		logger.Warn("Failed to mark onboarding complete", "error", err)
	}

	var program *models.Program
	err := withRetry(func() error {
		p, err := c.api.GenerateProgram(ctx)
		if err == nil {
			program = p
		}
		return err
	})
	if err != nil {
		logger.Warn("Program generation failed", "error", err)
	}

	if err := c.api.RegenerateRecommendations(ctx); err != nil {
		logger.Warn("Recommendation regeneration failed", "error", err)
	}

	if err := c.ClearCheckpoint(); err != nil {
		logger.Warn("Failed to clear onboarding checkpoint", "error", err)
	}

	return program
}

// ForceComplete is the manual escape hatch: one dedicated server call plus
// checkpoint cleanup.
func (c *Controller) ForceComplete(ctx context.Context) error {
	if err := c.api.CompleteOnboarding(ctx); err != nil {
		return err
	}
	return c.ClearCheckpoint()
}

// withRetry attempts fn, retrying once on failure.
func withRetry(fn func() error) error {
	if err := fn(); err == nil {
		return nil
	}
	return fn()
}
