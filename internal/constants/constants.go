package constants

const (
	AppName = "refluxtrack"
	Version = "v0.3.1"

	// DefaultConfigDir is expanded relative to the user home directory.
	DefaultConfigDir = "~/.config/refluxtrack"
	ConfigFileName   = "config.yaml"

	DefaultServerURL      = "https://api.refluxtrack.app"
	DefaultRequestTimeout = 15 // seconds

	// DateFormat is the wire and display date format (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// HistoryWindowDays bounds the per-habit history fetch on tracker load
	HistoryWindowDays = 30

	// MaxCompletionLevel is the top of the 0..3 habit completion scale
	MaxCompletionLevel = 3

	// Server-assigned ids of the two fixed onboarding questionnaires
	SymptomQuestionnaireID = 1
	ImpactQuestionnaireID  = 2
)

// Persistent store keys. Per-user keys append "_<username>".
const (
	KeyAuthToken            = "authToken"
	KeyUsername             = "username"
	KeyDisplayName          = "userName"
	KeyNotificationsEnabled = "notificationsEnabled"
	KeyDeviceID             = "deviceId"
	KeyOnboardingScreen     = "onboardingScreen"
)
