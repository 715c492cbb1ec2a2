package models

// Program is the generated program document.
type Program struct {
	ID          int         `json:"id"`
	Title       string      `json:"title"`
	CreatedAt   string      `json:"created_at"`
	ProfileData ProfileData `json:"profile_data"`
}

// ProfileData selects the static content shown with a program: one display
// block plus a fragment per set clinical factor.
type ProfileData struct {
	DisplayBlock          int  `json:"display_block"`
	HerniaPresent         bool `json:"hernia_present"`
	StressAffectsSymptoms bool `json:"stress_affects_symptoms"`
	Smoker                bool `json:"smoker"`
	NighttimeSymptoms     bool `json:"nighttime_symptoms"`
}

// Recommendation is one expandable recommendation item.
type Recommendation struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	IsRead bool   `json:"is_read"`
}
