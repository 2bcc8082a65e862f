// Package spaced_repetition implements the review-interval model: a
// continuous mastery level in [0,5] is mapped onto an ascending interval
// ladder with linear interpolation between rungs, so partial progress
// within a level already lengthens the spacing.
package spaced_repetition

import (
	"math"
	"time"
)

// MaxLevel is the upper bound of the mastery level
const MaxLevel = 5.0

// Model computes review spacing and level progression
type Model struct {
	// Intervals is the ascending ladder of base intervals in days
	Intervals []float64
	// Multipliers maps skill tier to the level gain per correct answer.
	// Higher tiers progress faster since correctness is harder there.
	Multipliers map[int]float64
}

// New creates a model with the default settings
func New() *Model {
	return &Model{
		Intervals: []float64{1, 3, 7, 14, 30, 90},
		Multipliers: map[int]float64{
			1: 0.5,
			2: 0.75,
			3: 1.0,
		},
	}
}

// IntervalDays returns the review interval for a mastery level
func (m *Model) IntervalDays(level float64) float64 {
	idx := int(math.Floor(level))
	if idx >= len(m.Intervals)-1 {
		return m.Intervals[len(m.Intervals)-1]
	}
	if idx < 0 {
		idx = 0
	}
	fraction := level - math.Floor(level)

	lower := m.Intervals[idx]
	upper := lower * 2
	if idx+1 < len(m.Intervals) {
		upper = m.Intervals[idx+1]
	}
	return lower + (upper-lower)*fraction
}

// NextReview converts the interval for level into an absolute timestamp
func (m *Model) NextReview(level float64, now time.Time) time.Time {
	days := m.IntervalDays(level)
	return now.Add(time.Duration(days * 24 * float64(time.Hour)))
}

// Raise applies the tier's multiplier to level after a correct answer
func (m *Model) Raise(level float64, tier int) float64 {
	gain, ok := m.Multipliers[tier]
	if !ok {
		gain = m.Multipliers[1]
	}
	return ClampLevel(level + gain)
}

// Lower applies the miss penalty to level after an incorrect answer.
// Failing at the easiest tier is penalized less harshly.
func (m *Model) Lower(level float64, tier int) float64 {
	penalty := 1.0
	if tier == 1 {
		penalty = 0.5
	}
	return ClampLevel(level - penalty)
}

// ClampLevel bounds a level to [0, MaxLevel]
func ClampLevel(level float64) float64 {
	if level < 0 {
		return 0
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
