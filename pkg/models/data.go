package models

// OverallAccuracy counts answers across all sessions and days
type OverallAccuracy struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// ProgressData is the whole persisted progress document. It is read,
// modified and written as a unit on every mutation.
type ProgressData struct {
	// Progress maps language pair -> card id -> progress record
	Progress          map[string]map[int]*CardProgress `json:"progress"`
	Streak            int                              `json:"streak"`
	LastStudied       string                           `json:"lastStudied"` // device-local date, "2006-01-02"
	DailyProgress     *DailyProgress                   `json:"dailyProgress"`
	Accuracy          OverallAccuracy                  `json:"accuracy"`
	TotalLearned      int                              `json:"totalLearned"`
	AdaptiveGoal      *DailyGoal                       `json:"adaptiveGoal,omitempty"`
	DefaultSkillLevel int                              `json:"defaultSkillLevel"` // 0 = auto, 1-3 = fixed tier
}

// NewProgressData initializes an empty document for a first-time learner
func NewProgressData(today string) *ProgressData {
	return &ProgressData{
		Progress:      make(map[string]map[int]*CardProgress),
		LastStudied:   today,
		DailyProgress: NewDailyProgress(),
	}
}

// Card returns the progress record for a card, or nil if never answered
func (d *ProgressData) Card(languagePair string, id int) *CardProgress {
	pair := d.Progress[languagePair]
	if pair == nil {
		return nil
	}
	return pair[id]
}

// SetCard stores a progress record, creating the pair bucket if needed
func (d *ProgressData) SetCard(languagePair string, p *CardProgress) {
	if d.Progress == nil {
		d.Progress = make(map[string]map[int]*CardProgress)
	}
	if d.Progress[languagePair] == nil {
		d.Progress[languagePair] = make(map[int]*CardProgress)
	}
	d.Progress[languagePair][p.ID] = p
}
