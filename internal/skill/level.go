// Package skill implements the difficulty-tier system: tier selection per
// card, answer validation per tier, multiple-choice generation and the
// promotion rules.
package skill

import (
	"github.com/example/vocabtrainer/pkg/models"
)

// Level is a closed enumeration of difficulty tiers. Auto is only valid
// as a learner preference, never as a tier a card is answered at.
type Level int

const (
	Auto         Level = 0
	Beginner     Level = 1
	Intermediate Level = 2
	Advanced     Level = 3
)

// String returns the display name of the level
func (l Level) String() string {
	switch l {
	case Auto:
		return "Auto"
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	}
	return "Unknown"
}

// Valid reports whether l is an answerable tier
func (l Level) Valid() bool {
	return l >= Beginner && l <= Advanced
}

// Determine picks the tier for the next attempt on a card. A manually
// configured default always wins over history; in auto mode the recommended
// tier is honored, falling back to the tier last answered at.
func Determine(p *models.CardProgress, defaultLevel Level) Level {
	if p == nil {
		if defaultLevel == Auto {
			return Beginner
		}
		return defaultLevel
	}

	if defaultLevel == Auto {
		if rec := Level(p.RecommendedLevel); rec.Valid() {
			return rec
		}
		if cur := Level(p.SkillLevel); cur.Valid() {
			return cur
		}
		return Beginner
	}

	return defaultLevel
}
