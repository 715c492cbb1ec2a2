// Package program renders the generated program document: one server-selected
// display block plus a static fragment per set clinical factor. This is
// presentational branching only; the server owns what gets selected.
package program

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gerdlab/refluxtrack/internal/models"
)

// displayBlocks are the fixed prose templates selectable via
// profile_data.display_block.
var displayBlocks = map[int]string{
	1: "Your program centers on healing: consistent meal timing, smaller portions, and avoiding trigger foods while the esophageal lining recovers. Track every habit daily — adherence matters most in the first weeks.",
	2: "Your program focuses on symptom control without mucosal damage: meal composition, eating pace, and posture after meals carry the most weight. Expect gradual improvement as habits compound.",
	3: "Your program targets airway and throat symptoms: late meals and lying down after eating are your primary levers, alongside voice rest and hydration habits.",
	4: "Your program addresses symptom perception and stress response as much as acid exposure: relaxation practice and sleep regularity sit alongside the usual dietary habits.",
}

// generalWellnessBlock is the fallback for an unrecognized or missing block
// number.
const generalWellnessBlock = "Your program follows general digestive wellness guidance: regular meals, moderate portions, and daily habit tracking. As more of your data comes in, the program will be tailored further."

// factorFragments appends one static fragment per set clinical factor;
// absence of a factor simply omits its fragment.
var factorFragments = []struct {
	set      func(models.ProfileData) bool
	fragment string
}{
	{func(pd models.ProfileData) bool { return pd.HerniaPresent }, "Because a hiatal hernia is present, elevation of the head of the bed and avoiding heavy lifting after meals are especially important for you."},
	{func(pd models.ProfileData) bool { return pd.StressAffectsSymptoms }, "Since stress noticeably affects your symptoms, the daily relaxation habit in your tracker is a core part of the program, not an optional extra."},
	{func(pd models.ProfileData) bool { return pd.Smoker }, "Smoking weakens the lower esophageal sphincter; any reduction directly supports every other habit in this program."},
	{func(pd models.ProfileData) bool { return pd.NighttimeSymptoms }, "For nighttime symptoms, finish your last meal at least three hours before lying down and keep the head of the bed raised."},
}

// BlockFor returns the prose block for a profile, with the general-wellness
// fallback for unknown block numbers.
func BlockFor(pd models.ProfileData) string {
	if block, ok := displayBlocks[pd.DisplayBlock]; ok {
		return block
	}
	return generalWellnessBlock
}

// Fragments returns the clinical-factor fragments for a profile, in fixed
// order.
func Fragments(pd models.ProfileData) []string {
	var fragments []string
	for _, f := range factorFragments {
		if f.set(pd) {
			fragments = append(fragments, f.fragment)
		}
	}
	return fragments
}

// Render formats the full program document for terminal output.
func Render(p *models.Program) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	var b strings.Builder
	title := p.Title
	if title == "" {
		title = "Your program"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")
	b.WriteString(BlockFor(p.ProfileData) + "\n")
	for _, fragment := range Fragments(p.ProfileData) {
		b.WriteString("\n" + fragment + "\n")
	}
	return b.String()
}
