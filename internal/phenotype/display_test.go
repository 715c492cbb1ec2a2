package phenotype

import (
	"strings"
	"testing"

	"github.com/gerdlab/refluxtrack/internal/models"
)

func TestDisplayForKnownCodes(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{models.PhenotypeErosive, "Erosive reflux disease"},
		{models.PhenotypeNonErosive, "Non-erosive reflux disease"},
		{models.PhenotypeExtraesophageal, "Extraesophageal reflux"},
		{models.PhenotypeFunctional, "Functional heartburn"},
		{models.PhenotypeSymptomsNoTests, "Symptoms without test data"},
		{models.PhenotypeNoSymptoms, "No active symptoms"},
		{models.PhenotypeUndetermined, "Undetermined"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := DisplayFor(tt.code).Label; got != tt.want {
				t.Errorf("DisplayFor(%q).Label = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestDisplayForUnknownCodeFallsBack(t *testing.T) {
	got := DisplayFor("FUTURE_PHENOTYPE_9")
	if got.Label != "Undetermined" {
		t.Errorf("DisplayFor(unknown).Label = %q, want fallback %q", got.Label, "Undetermined")
	}
}

func TestRenderPrefersServerDisplayName(t *testing.T) {
	out := Render(&models.PhenotypeResult{
		PhenotypeCode:    models.PhenotypeErosive,
		PhenotypeDisplay: "Erosive GERD (LA Grade B)",
		HasCompleteData:  true,
	})
	if !strings.Contains(out, "Erosive GERD (LA Grade B)") {
		t.Errorf("Render() = %q, want server display name used", out)
	}
}

func TestRenderIncompleteDataNote(t *testing.T) {
	out := Render(&models.PhenotypeResult{
		PhenotypeCode:   models.PhenotypeSymptomsNoTests,
		HasCompleteData: false,
	})
	if !strings.Contains(out, "incomplete data") {
		t.Errorf("Render() = %q, want incomplete-data note", out)
	}

	complete := Render(&models.PhenotypeResult{
		PhenotypeCode:   models.PhenotypeErosive,
		HasCompleteData: true,
	})
	if strings.Contains(complete, "incomplete data") {
		t.Error("Render() with complete data must not show the note")
	}
}

func TestRenderRecommendations(t *testing.T) {
	out := Render(&models.PhenotypeResult{
		PhenotypeCode:   models.PhenotypeNonErosive,
		HasCompleteData: true,
		Recommendations: []string{"Avoid late meals", "Raise the bed head"},
	})
	if !strings.Contains(out, "Avoid late meals") || !strings.Contains(out, "Raise the bed head") {
		t.Errorf("Render() = %q, want both recommendations listed", out)
	}
}
