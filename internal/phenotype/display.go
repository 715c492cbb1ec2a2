// Package phenotype maps server phenotype codes onto terminal presentation.
package phenotype

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gerdlab/refluxtrack/internal/models"
)

// Display is the presentation for one phenotype code.
type Display struct {
	Label string
	Color lipgloss.Color
	Icon  string
}

var displays = map[string]Display{
	models.PhenotypeErosive:         {Label: "Erosive reflux disease", Color: lipgloss.Color("196"), Icon: "▲"},
	models.PhenotypeNonErosive:      {Label: "Non-erosive reflux disease", Color: lipgloss.Color("214"), Icon: "◆"},
	models.PhenotypeExtraesophageal: {Label: "Extraesophageal reflux", Color: lipgloss.Color("135"), Icon: "●"},
	models.PhenotypeFunctional:      {Label: "Functional heartburn", Color: lipgloss.Color("39"), Icon: "◎"},
	models.PhenotypeSymptomsNoTests: {Label: "Symptoms without test data", Color: lipgloss.Color("220"), Icon: "◇"},
	models.PhenotypeNoSymptoms:      {Label: "No active symptoms", Color: lipgloss.Color("42"), Icon: "✓"},
	models.PhenotypeUndetermined:    {Label: "Undetermined", Color: lipgloss.Color("245"), Icon: "?"},
}

// defaultDisplay is used for codes outside the known set; an unknown code is
// rendered, never an error.
var defaultDisplay = Display{Label: "Undetermined", Color: lipgloss.Color("245"), Icon: "?"}

// DisplayFor returns the presentation for a code, falling back for unknown
// codes.
func DisplayFor(code string) Display {
	if d, ok := displays[code]; ok {
		return d
	}
	return defaultDisplay
}

// Render formats a phenotype result for terminal output.
func Render(result *models.PhenotypeResult) string {
	d := DisplayFor(result.PhenotypeCode)

	title := d.Label
	if result.PhenotypeDisplay != "" {
		title = result.PhenotypeDisplay
	}

	titleStyle := lipgloss.NewStyle().Foreground(d.Color).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s %s", d.Icon, title)))
	b.WriteString("\n")
	if result.Scenario != "" {
		b.WriteString("\n" + result.Scenario + "\n")
	}
	if !result.HasCompleteData {
		b.WriteString("\n" + dimStyle.Render("Classification is based on incomplete data; add diagnostic test results to refine it.") + "\n")
	}
	if len(result.Recommendations) > 0 {
		b.WriteString("\n")
		for _, rec := range result.Recommendations {
			b.WriteString(fmt.Sprintf("  • %s\n", rec))
		}
	}
	return b.String()
}
