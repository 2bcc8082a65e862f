package models

// DailyGoal holds the learner's daily targets for new and review cards
type DailyGoal struct {
	New            int     `json:"new"`
	Review         int     `json:"review"`
	AdaptiveFactor float64 `json:"adaptiveFactor"` // reserved for scaling
}

// DefaultDailyGoal returns the out-of-the-box targets
func DefaultDailyGoal() DailyGoal {
	return DailyGoal{New: 3, Review: 5, AdaptiveFactor: 1.0}
}

// SessionSummary records one completed study session for the current day
type SessionSummary struct {
	Time     string  `json:"time"`     // wall-clock label, e.g. "14:05"
	Words    int     `json:"words"`    // cards answered
	Accuracy float64 `json:"accuracy"` // percent, 0-100
}

// DailyProgress accumulates today's study activity; reset at the day boundary
type DailyProgress struct {
	New       int              `json:"new"`
	Review    int              `json:"review"`
	Sessions  []SessionSummary `json:"sessions"`
	TimeSpent float64          `json:"timeSpent"` // minutes
	CardsSeen map[int]bool     `json:"cardsSeen"` // card ids already counted today
}

// NewDailyProgress returns an empty progress record for a fresh day
func NewDailyProgress() *DailyProgress {
	return &DailyProgress{
		Sessions:  []SessionSummary{},
		CardsSeen: make(map[int]bool),
	}
}
