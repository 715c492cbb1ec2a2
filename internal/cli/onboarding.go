package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/gerdlab/refluxtrack/internal/api"
	"github.com/gerdlab/refluxtrack/internal/constants"
	"github.com/gerdlab/refluxtrack/internal/models"
	"github.com/gerdlab/refluxtrack/internal/onboarding"
	"github.com/gerdlab/refluxtrack/internal/phenotype"
	"github.com/gerdlab/refluxtrack/internal/program"
	"github.com/gerdlab/refluxtrack/internal/questionnaire"
	"github.com/gerdlab/refluxtrack/internal/session"
	"github.com/gerdlab/refluxtrack/internal/validation"
)

type OnboardingCmd struct {
	ForceComplete bool `help:"Call the forced-completion endpoint instead of running the remaining steps."`
}

func (c *OnboardingCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.Guard(ctx, session.ScreenOnboarding); err != nil {
		return err
	}

	ctrl := onboarding.New(appCtx.Store, appCtx.API)

	if c.ForceComplete {
		if err := ctrl.ForceComplete(ctx); err != nil {
			if errors.Is(err, api.ErrUnauthorized) {
				return ErrLoginRequired
			}
			return err
		}
		fmt.Println("Onboarding marked complete. Run 'refluxtrack program' to see your program.")
		return nil
	}

	step := ctrl.Resume()
	for step != onboarding.StepDone {
		if step == onboarding.StepGenerating {
			return c.runGenerate(ctx, appCtx, ctrl)
		}

		if err := c.runStep(ctx, appCtx, step); err != nil {
			if errors.Is(err, api.ErrUnauthorized) {
				return ErrLoginRequired
			}
			return err
		}

		next, err := ctrl.Advance(step)
		if err != nil {
			return err
		}
		step = next
	}

	return nil
}

// runStep performs one step's form and its single server write.
func (c *OnboardingCmd) runStep(ctx context.Context, appCtx *Context, step onboarding.Step) error {
	switch step {
	case onboarding.StepGeneralInfo:
		return c.runGeneralInfo(ctx, appCtx)
	case onboarding.StepSymptomSurvey:
		return runQuestionnaireForm(ctx, "Symptom questionnaire",
			func(ctx context.Context) (*models.Questionnaire, error) {
				return appCtx.API.Questionnaire(ctx, constants.SymptomQuestionnaireID)
			},
			func(ctx context.Context, sub models.QuestionnaireSubmission) error {
				return appCtx.API.SubmitQuestionnaire(ctx, constants.SymptomQuestionnaireID, sub)
			})
	case onboarding.StepImpactSurvey:
		return runQuestionnaireForm(ctx, "Impact questionnaire",
			func(ctx context.Context) (*models.Questionnaire, error) {
				return appCtx.API.Questionnaire(ctx, constants.ImpactQuestionnaireID)
			},
			func(ctx context.Context, sub models.QuestionnaireSubmission) error {
				return appCtx.API.SubmitQuestionnaire(ctx, constants.ImpactQuestionnaireID, sub)
			})
	case onboarding.StepClinicalFactors:
		return c.runClinicalFactors(ctx, appCtx)
	case onboarding.StepDiagnosticTests:
		return c.runDiagnosticTests(ctx, appCtx)
	case onboarding.StepHabitSurvey:
		return runQuestionnaireForm(ctx, "Habit preferences",
			appCtx.API.HabitQuestionnaire,
			appCtx.API.SubmitHabitQuestionnaire)
	case onboarding.StepPhenotype:
		return c.runPhenotype(ctx, appCtx)
	}
	return fmt.Errorf("unknown onboarding step: %s", step)
}

func (c *OnboardingCmd) runGeneralInfo(ctx context.Context, appCtx *Context) error {
	var name, ageStr, sex, weightStr, heightStr string

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Your name").
			Validate(validation.RequireName).
			Value(&name),
		huh.NewInput().
			Title("Age").
			Validate(func(s string) error {
				_, err := validation.ParseAge(s)
				return err
			}).
			Value(&ageStr),
		huh.NewSelect[string]().
			Title("Sex").
			Options(
				huh.NewOption("Female", "female"),
				huh.NewOption("Male", "male"),
				huh.NewOption("Other / prefer not to say", "other"),
			).
			Value(&sex),
		huh.NewInput().
			Title("Weight (kg)").
			Validate(func(s string) error {
				_, err := validation.ParseWeight(s)
				return err
			}).
			Value(&weightStr),
		huh.NewInput().
			Title("Height (cm)").
			Validate(func(s string) error {
				_, err := validation.ParseHeight(s)
				return err
			}).
			Value(&heightStr),
	))
	if err := form.Run(); err != nil {
		return err
	}

	age, err := validation.ParseAge(ageStr)
	if err != nil {
		return err
	}
	weight, err := validation.ParseWeight(weightStr)
	if err != nil {
		return err
	}
	height, err := validation.ParseHeight(heightStr)
	if err != nil {
		return err
	}

	_, err = appCtx.API.UpdateMe(ctx, models.ProfileUpdate{
		Name:     &name,
		Age:      &age,
		Sex:      &sex,
		WeightKg: &weight,
		HeightCm: &height,
	})
	return err
}

func (c *OnboardingCmd) runClinicalFactors(ctx context.Context, appCtx *Context) error {
	var hernia, stress, smoker, nighttime bool

	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Have you been diagnosed with a hiatal hernia?").
			Value(&hernia),
		huh.NewConfirm().
			Title("Does stress noticeably worsen your symptoms?").
			Value(&stress),
		huh.NewConfirm().
			Title("Do you currently smoke?").
			Value(&smoker),
		huh.NewConfirm().
			Title("Do symptoms wake you up at night?").
			Value(&nighttime),
	))
	if err := form.Run(); err != nil {
		return err
	}

	_, err := appCtx.API.UpdateMe(ctx, models.ProfileUpdate{
		HerniaPresent:         &hernia,
		StressAffectsSymptoms: &stress,
		Smoker:                &smoker,
		NighttimeSymptoms:     &nighttime,
	})
	return err
}

func (c *OnboardingCmd) runDiagnosticTests(ctx context.Context, appCtx *Context) error {
	tests := models.DiagnosticTests{
		EndoscopyResult:    "none",
		PHMonitoringResult: "none",
		ManometryResult:    "none",
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Upper endoscopy result").
			Options(
				huh.NewOption("Not performed", "none"),
				huh.NewOption("No esophagitis", "normal"),
				huh.NewOption("Esophagitis found", "esophagitis"),
				huh.NewOption("Barrett's esophagus", "barrett"),
			).
			Value(&tests.EndoscopyResult),
		huh.NewSelect[string]().
			Title("pH monitoring result").
			Options(
				huh.NewOption("Not performed", "none"),
				huh.NewOption("Normal acid exposure", "normal"),
				huh.NewOption("Abnormal acid exposure", "abnormal"),
			).
			Value(&tests.PHMonitoringResult),
		huh.NewSelect[string]().
			Title("Manometry result").
			Options(
				huh.NewOption("Not performed", "none"),
				huh.NewOption("Normal motility", "normal"),
				huh.NewOption("Motility disorder", "abnormal"),
			).
			Value(&tests.ManometryResult),
	))
	if err := form.Run(); err != nil {
		return err
	}

	return appCtx.API.UpdateTests(ctx, tests)
}

func (c *OnboardingCmd) runPhenotype(ctx context.Context, appCtx *Context) error {
	result, err := appCtx.API.Phenotype(ctx)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(phenotype.Render(result))

	proceed := true
	if err := huh.NewConfirm().
		Title("Generate your personal program now?").
		Value(&proceed).
		Run(); err != nil {
		return err
	}
	if !proceed {
		return fmt.Errorf("stopped before program generation; run 'refluxtrack onboarding' to continue")
	}
	return nil
}

// runGenerate is the terminal step: best-effort server calls bounded by a
// hard timeout, so the user never gets stuck here.
func (c *OnboardingCmd) runGenerate(ctx context.Context, appCtx *Context, ctrl *onboarding.Controller) error {
	fmt.Println("Generating your program...")

	hint := time.AfterFunc(onboarding.ForceCompleteDelay, func() {
		fmt.Println("Still working... if this does not finish, run 'refluxtrack onboarding --force-complete'.")
	})
	defer hint.Stop()

	generated := ctrl.Finalize(ctx)
	fmt.Println()
	if generated != nil {
		fmt.Println(program.Render(generated))
	} else {
		fmt.Println("Your program is being prepared. Run 'refluxtrack program' in a moment to view it.")
	}
	fmt.Println("Onboarding complete. Track your habits with 'refluxtrack tracker'.")
	return nil
}

// runQuestionnaireForm drives the generic questionnaire runner with one huh
// group per question.
func runQuestionnaireForm(ctx context.Context, title string, load questionnaire.LoadFunc, submit questionnaire.SubmitFunc) error {
	runner := questionnaire.New(load, submit)
	if err := runner.Load(ctx); err != nil {
		return err
	}
	if runner.Unavailable() {
		return fmt.Errorf("%s is unavailable right now; try again later", title)
	}

	q := runner.Questionnaire()
	fmt.Printf("\n%s\n", q.Title)
	if q.Description != "" {
		fmt.Println(q.Description)
	}

	selections := make([]int, len(q.Questions))
	groups := make([]*huh.Group, len(q.Questions))
	for i, question := range q.Questions {
		options := make([]huh.Option[int], len(question.Options))
		for j, opt := range question.Options {
			options[j] = huh.NewOption(opt.Text, opt.ID)
		}
		groups[i] = huh.NewGroup(
			huh.NewSelect[int]().
				Title(question.Text).
				Options(options...).
				Value(&selections[i]),
		)
	}

	if err := huh.NewForm(groups...).Run(); err != nil {
		return err
	}

	for i, question := range q.Questions {
		runner.SelectAnswer(question.ID, selections[i])
	}

	return runner.Submit(ctx)
}
