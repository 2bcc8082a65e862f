// Package session drives one study session from start to completion or
// pause: cursor management, per-card tier selection, answer submission
// and the completion bookkeeping.
package session

import (
	"errors"
	"log"
	"time"

	"github.com/example/vocabtrainer/internal/progress"
	"github.com/example/vocabtrainer/internal/scheduler"
	"github.com/example/vocabtrainer/internal/skill"
	"github.com/example/vocabtrainer/pkg/models"
)

// ErrNoCards signals that the scheduler found nothing to study. It is a
// terminal scheduling state, not a failure.
var ErrNoCards = errors.New("no cards available for study")

// ErrSessionDone signals an answer submitted past the last card
var ErrSessionDone = errors.New("session has no current card")

// Manager owns the in-memory state of the active study session
type Manager struct {
	store   *progress.Store
	builder *scheduler.Builder
	bounds  scheduler.GoalBounds

	cards        []models.SessionCard
	index        int
	stats        models.SessionStats
	languagePair string
	tierOverride skill.Level // Auto when no manual override is active
}

// NewManager creates a session manager bound to the given progress store
func NewManager(store *progress.Store, builder *scheduler.Builder) *Manager {
	return &Manager{
		store:   store,
		builder: builder,
		bounds:  scheduler.DefaultBounds(),
	}
}

// Start builds and activates a new session. size 0 means "all": complete
// the remaining daily goals. Returns ErrNoCards when nothing is due and
// no new cards remain.
func (m *Manager) Start(words []models.Word, languagePair string, size int, now time.Time) error {
	m.store.Rollover(now)

	cards := m.builder.BuildSession(words, m.store.Data(), m.store.Goal(), languagePair, size, now)
	if len(cards) == 0 {
		return ErrNoCards
	}

	m.cards = cards
	m.index = 0
	m.stats = models.SessionStats{StartTime: now}
	m.languagePair = languagePair
	m.tierOverride = skill.Auto
	return nil
}

// Active reports whether a session is in progress
func (m *Manager) Active() bool {
	return len(m.cards) > 0 && m.index < len(m.cards)
}

// Current returns the card under the cursor
func (m *Manager) Current() (models.SessionCard, bool) {
	if !m.Active() {
		return models.SessionCard{}, false
	}
	return m.cards[m.index], true
}

// Tier returns the tier the current card should be challenged at,
// honoring a manual override for this card
func (m *Manager) Tier() skill.Level {
	if m.tierOverride.Valid() {
		return m.tierOverride
	}
	card, ok := m.Current()
	if !ok {
		return skill.Beginner
	}
	p := m.store.Card(m.languagePair, card.Word.ID)
	return skill.Determine(p, skill.Level(m.store.Data().DefaultSkillLevel))
}

// OverrideTier switches the current card to the given tier. How the
// switch was triggered (click, long-press, keyboard) is the UI's concern.
func (m *Manager) OverrideTier(level skill.Level) {
	if level.Valid() {
		m.tierOverride = level
	}
}

// Submit applies the answer for the current card and returns the updated
// progress record
func (m *Manager) Submit(correct bool, now time.Time) (*models.CardProgress, error) {
	card, ok := m.Current()
	if !ok {
		return nil, ErrSessionDone
	}

	p := m.store.UpdateCard(m.languagePair, card.Word, correct, m.Tier(), card.Kind, now)

	m.stats.Total++
	if correct {
		m.stats.Correct++
	}
	return p, nil
}

// Advance moves the cursor to the next card and clears any tier
// override. Reports whether another card is available.
func (m *Manager) Advance() bool {
	m.index++
	m.tierOverride = skill.Auto
	return m.index < len(m.cards)
}

// Position returns the 0-based cursor and the session length
func (m *Manager) Position() (int, int) {
	return m.index, len(m.cards)
}

// Stats returns the running session counters
func (m *Manager) Stats() models.SessionStats {
	return m.stats
}

// Complete finishes the session: records the summary in today's history,
// lets the adaptive controller adjust tomorrow's goals, persists, and
// destroys the in-memory session.
func (m *Manager) Complete(now time.Time) models.SessionSummary {
	summary := models.SessionSummary{
		Time:     now.Format("15:04"),
		Words:    m.stats.Total,
		Accuracy: m.stats.AccuracyPercent(),
	}
	minutes := now.Sub(m.stats.StartTime).Minutes()

	m.store.RecordSession(summary, minutes)

	adjusted := scheduler.AdjustGoals(m.store.Goal(), m.store.Data().DailyProgress, m.bounds)
	m.store.SetGoal(adjusted)

	if err := m.store.Save(); err != nil {
		log.Printf("failed to persist session completion: %v", err)
	}
	if err := m.store.SaveAppState(); err != nil {
		log.Printf("failed to persist app state: %v", err)
	}

	m.cards = nil
	m.index = 0
	return summary
}

// Pause serializes the session wholesale into a snapshot, accounts the
// elapsed time, and clears the in-memory session. The caller persists
// the snapshot in the app state.
func (m *Manager) Pause(now time.Time) *models.PausedSession {
	if !m.Active() {
		return nil
	}

	snapshot := &models.PausedSession{
		Cards:        m.cards,
		CurrentIndex: m.index,
		Stats:        m.stats,
		LanguagePair: m.languagePair,
	}

	if !m.stats.StartTime.IsZero() {
		m.store.Data().DailyProgress.TimeSpent += now.Sub(m.stats.StartTime).Minutes()
		if err := m.store.Save(); err != nil {
			log.Printf("failed to persist pause: %v", err)
		}
	}

	m.cards = nil
	m.index = 0
	return snapshot
}

// Resume restores a paused session verbatim
func (m *Manager) Resume(snapshot *models.PausedSession, now time.Time) error {
	if snapshot == nil || len(snapshot.Cards) == 0 {
		return ErrNoCards
	}
	m.cards = snapshot.Cards
	m.index = snapshot.CurrentIndex
	m.stats = snapshot.Stats
	m.stats.StartTime = now
	m.languagePair = snapshot.LanguagePair
	m.tierOverride = skill.Auto
	return nil
}
