package models

// Questionnaire is a server-defined question set. Question and option order
// on the wire is not guaranteed stable; sort by the order fields before use.
type Questionnaire struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
}

// Question is a single question with its selectable options.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Order   int      `json:"order"`
	Options []Option `json:"options"`
}

// Option is one selectable answer. Value is the server-side score weight.
type Option struct {
	ID    int    `json:"id"`
	Text  string `json:"text"`
	Value int    `json:"value"`
	Order int    `json:"order"`
}

// Answer is one submitted selection.
type Answer struct {
	QuestionID       int `json:"question_id"`
	SelectedOptionID int `json:"selected_option_id"`
}

// QuestionnaireSubmission is the submit payload.
type QuestionnaireSubmission struct {
	Answers []Answer `json:"answers"`
}
