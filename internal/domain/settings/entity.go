package settings

// Settings are process-wide UI and classification preferences. They are
// persisted locally, loaded once at startup and only change through an
// explicit update; classification always receives a snapshot, never reads
// these implicitly mid-call.
type Settings struct {
	Theme                string `json:"theme"`
	WorkStartTime        string `json:"work_start_time"` // "HH:MM"
	LateThresholdMinutes int    `json:"late_threshold_minutes"`
	Locale               string `json:"locale"`
}

// Defaults mirror what a fresh install of the web app used.
func Defaults() Settings {
	return Settings{
		Theme:                "light",
		WorkStartTime:        "09:00",
		LateThresholdMinutes: 15,
		Locale:               "es",
	}
}
