package models

// Known phenotype codes. The server may introduce new ones; display code
// must fall back rather than fail on values outside this set.
const (
	PhenotypeErosive         = "erosive"
	PhenotypeNonErosive      = "non_erosive"
	PhenotypeExtraesophageal = "extraesophageal"
	PhenotypeFunctional      = "functional"
	PhenotypeSymptomsNoTests = "symptoms_without_tests"
	PhenotypeNoSymptoms      = "no_symptoms"
	PhenotypeUndetermined    = "undetermined"
)

// PhenotypeResult is the server-computed classification. Read-only.
type PhenotypeResult struct {
	PhenotypeCode    string   `json:"phenotype_code"`
	PhenotypeDisplay string   `json:"phenotype_display"`
	Scenario         string   `json:"scenario"`
	Recommendations  []string `json:"recommendations"`
	HasCompleteData  bool     `json:"has_complete_data"`
}
