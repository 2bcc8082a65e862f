package models

import "time"

// CardKind tags how a card entered the session
type CardKind string

const (
	// CardNew marks a card the learner has never answered
	CardNew CardKind = "new"
	// CardReview marks a card whose review is due
	CardReview CardKind = "review"
)

// SessionCard is one entry in an ordered study session
type SessionCard struct {
	Word Word     `json:"word"`
	Kind CardKind `json:"kind"`
}

// SessionStats tracks running counters during a session
type SessionStats struct {
	Correct   int       `json:"correct"`
	Total     int       `json:"total"`
	StartTime time.Time `json:"startTime"`
}

// AccuracyPercent returns session accuracy as a 0-100 value
func (s SessionStats) AccuracyPercent() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}

// PausedSession is a wholesale snapshot of an interrupted session
type PausedSession struct {
	Cards        []SessionCard `json:"cards"`
	CurrentIndex int           `json:"currentIndex"`
	Stats        SessionStats  `json:"stats"`
	LanguagePair string        `json:"languagePair"`
}

// AppState is the persisted application-state snapshot
type AppState struct {
	CurrentLanguagePair string         `json:"currentLanguagePair"`
	DefaultSkillLevel   int            `json:"defaultSkillLevel"`
	DailyGoal           *DailyGoal     `json:"dailyGoal,omitempty"`
	PausedSession       *PausedSession `json:"pausedSession,omitempty"`
}
