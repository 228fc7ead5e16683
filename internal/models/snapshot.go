package models

import "time"

// Snapshot is a point-in-time export of planner state used for
// backup and restore.
type Snapshot struct {
	Sessions    []Session   `json:"sessions"`
	Scores      []Score     `json:"scores"`
	Preferences Preferences `json:"preferences"`
	ExportedAt  time.Time   `json:"exportDate"`
}
