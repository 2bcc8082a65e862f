package models

import "time"

// TierStats tracks answer statistics for one skill tier of one card
type TierStats struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
	Streak  int `json:"streak"` // consecutive correct answers, reset on a miss
}

// Accuracy returns the correct/total ratio, 0 when nothing was attempted
func (s *TierStats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// CardProgress tracks a learner's progress with a specific word
type CardProgress struct {
	ID               int                `json:"id"`
	Level            float64            `json:"level"` // continuous mastery measure, 0..5
	LastSeen         time.Time          `json:"lastSeen"`
	NextReview       time.Time          `json:"nextReview"`
	TimesSeen        int                `json:"timesSeen"`
	TimesCorrect     int                `json:"timesCorrect"`
	SkillLevel       int                `json:"skillLevel"`            // tier last answered at
	RecommendedLevel int                `json:"recommendedSkillLevel"` // tier suggested for the next attempt
	SkillProgress    map[int]*TierStats `json:"skillProgress"`
}

// NewCardProgress initializes progress for a card seen for the first time
func NewCardProgress(id, skillLevel int, now time.Time) *CardProgress {
	p := &CardProgress{
		ID:               id,
		Level:            0,
		LastSeen:         now,
		NextReview:       now,
		SkillLevel:       skillLevel,
		RecommendedLevel: 1,
	}
	p.EnsureTiers()
	return p
}

// EnsureTiers guarantees stats entries exist for all three tiers
func (p *CardProgress) EnsureTiers() {
	if p.SkillProgress == nil {
		p.SkillProgress = make(map[int]*TierStats, 3)
	}
	for tier := 1; tier <= 3; tier++ {
		if p.SkillProgress[tier] == nil {
			p.SkillProgress[tier] = &TierStats{}
		}
	}
}

// Tier returns the stats entry for the given tier, creating it if missing
func (p *CardProgress) Tier(tier int) *TierStats {
	p.EnsureTiers()
	return p.SkillProgress[tier]
}
