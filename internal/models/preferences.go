package models

// Preferences is the singleton settings record.
type Preferences struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	DailyGoal     int    `json:"dailyGoal"`
}

// DefaultPreferences is returned whenever no preferences were saved.
func DefaultPreferences() Preferences {
	return Preferences{Theme: "light", Notifications: true, DailyGoal: 120}
}
