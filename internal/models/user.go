package models

// Credentials is the login request payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the account creation payload.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by login and register.
type TokenResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
}

// PasswordChange is the change-password payload.
type PasswordChange struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Profile is the server-side user profile, including the onboarding flag the
// session guard branches on.
type Profile struct {
	Username           string  `json:"username"`
	Name               string  `json:"name"`
	Age                int     `json:"age"`
	Sex                string  `json:"sex"`
	WeightKg           float64 `json:"weight_kg"`
	HeightCm           float64 `json:"height_cm"`
	OnboardingComplete bool    `json:"onboarding_complete"`

	// Clinical factors
	HerniaPresent         *bool `json:"hernia_present,omitempty"`
	StressAffectsSymptoms *bool `json:"stress_affects_symptoms,omitempty"`
	Smoker                *bool `json:"smoker,omitempty"`
	NighttimeSymptoms     *bool `json:"nighttime_symptoms,omitempty"`
}

// ProfileUpdate is a partial profile patch; nil fields are omitted.
type ProfileUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Age      *int     `json:"age,omitempty"`
	Sex      *string  `json:"sex,omitempty"`
	WeightKg *float64 `json:"weight_kg,omitempty"`
	HeightCm *float64 `json:"height_cm,omitempty"`

	HerniaPresent         *bool `json:"hernia_present,omitempty"`
	StressAffectsSymptoms *bool `json:"stress_affects_symptoms,omitempty"`
	Smoker                *bool `json:"smoker,omitempty"`
	NighttimeSymptoms     *bool `json:"nighttime_symptoms,omitempty"`
}

// DiagnosticTests carries the diagnostic test facts submitted during
// onboarding. Result values are free-form server enums; "none" means the
// test was not performed.
type DiagnosticTests struct {
	EndoscopyResult    string `json:"endoscopy_result"`
	PHMonitoringResult string `json:"ph_monitoring_result"`
	ManometryResult    string `json:"manometry_result"`
}
