package spaced_repetition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestIntervalDays_Interpolation(t *testing.T) {
	m := New()
	cases := []struct {
		level float64
		days  float64
	}{
		{0, 1},
		{0.5, 2},    // 1 + (3-1)*0.5
		{1, 3},
		{1.5, 5},    // 3 + (7-3)*0.5
		{2, 7},
		{3.25, 18},  // 14 + (30-14)*0.25
		{4.5, 60},   // 30 + (90-30)*0.5
		{5, 90},     // at the last rung
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.days, m.IntervalDays(tc.level), 1e-9, "level=%v", tc.level)
	}
}

func TestIntervalDays_BeyondLadder(t *testing.T) {
	m := New()
	assert.Equal(t, 90.0, m.IntervalDays(5))
	assert.Equal(t, 90.0, m.IntervalDays(7.3))
}

func TestNextReview_HalfLevelIsTwoDays(t *testing.T) {
	m := New()
	next := m.NextReview(0.5, testNow)
	assert.Equal(t, testNow.Add(48*time.Hour), next)
}

func TestNextReview_MonotonicInLevel(t *testing.T) {
	m := New()
	prev := m.NextReview(0, testNow)
	for level := 0.1; level <= MaxLevel; level += 0.1 {
		next := m.NextReview(level, testNow)
		require.False(t, next.Before(prev), "level=%v", level)
		prev = next
	}
}

func TestRaise_UsesTierMultiplier(t *testing.T) {
	m := New()
	assert.Equal(t, 0.5, m.Raise(0, 1))
	assert.Equal(t, 0.75, m.Raise(0, 2))
	assert.Equal(t, 1.0, m.Raise(0, 3))
}

func TestRaise_CapsAtMaxLevel(t *testing.T) {
	m := New()
	assert.Equal(t, MaxLevel, m.Raise(4.8, 3))
	assert.Equal(t, MaxLevel, m.Raise(MaxLevel, 3))
}

func TestLower_FlooredAtZero(t *testing.T) {
	m := New()
	assert.Equal(t, 0.0, m.Lower(0.3, 1))
	assert.Equal(t, 0.0, m.Lower(0, 3))
}

func TestLower_BeginnerPenaltyIsSofter(t *testing.T) {
	m := New()
	assert.Equal(t, 2.5, m.Lower(3, 1))
	assert.Equal(t, 2.0, m.Lower(3, 2))
	assert.Equal(t, 2.0, m.Lower(3, 3))
}

func TestClampLevel_AnySequenceStaysBounded(t *testing.T) {
	m := New()
	level := 0.0
	answers := []bool{true, true, false, true, false, false, false, true, true, true, true, true, true, true}
	for _, correct := range answers {
		if correct {
			level = m.Raise(level, 3)
		} else {
			level = m.Lower(level, 3)
		}
		require.GreaterOrEqual(t, level, 0.0)
		require.LessOrEqual(t, level, MaxLevel)
	}
}
