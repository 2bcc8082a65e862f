// Package progress owns the persisted learning record: per-card progress,
// daily counters, streak and overall accuracy. All state is held in one
// document that is read-modify-written as a whole; there is exactly one
// logical writer at a time, so no locking is needed.
package progress

import (
	"fmt"
	"log"
	"time"

	"github.com/example/vocabtrainer/internal/skill"
	"github.com/example/vocabtrainer/internal/spaced_repetition"
	"github.com/example/vocabtrainer/internal/storage"
	"github.com/example/vocabtrainer/pkg/models"
)

const dateLayout = "2006-01-02"

// sessionHistoryLimit caps the retained session history when storage
// runs out of space
const sessionHistoryLimit = 7

// dailyOverflow caps daily counters at goal target + overflow so runaway
// counting cannot skew the adaptive goal controller
const dailyOverflow = 10

// Store wraps the key-value store with the trainer's progress semantics
type Store struct {
	kv    storage.Store
	model *spaced_repetition.Model
	data  *models.ProgressData
	state *models.AppState
}

// Open loads (or initializes) the progress document and app state,
// applying the day rollover if the calendar date changed
func Open(kv storage.Store, now time.Time) (*Store, error) {
	s := &Store{kv: kv, model: spaced_repetition.New()}

	data := &models.ProgressData{}
	found, err := kv.Get(storage.KeyProgress, data)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %v", err)
	}
	if !found {
		s.data = models.NewProgressData(now.Format(dateLayout))
		if err := s.Save(); err != nil {
			log.Printf("failed to persist initial progress: %v", err)
		}
	} else {
		s.data = data
		s.migrate()
		s.Rollover(now)
	}

	state := &models.AppState{}
	found, err = kv.Get(storage.KeyAppState, state)
	if err != nil {
		return nil, fmt.Errorf("failed to load app state: %v", err)
	}
	if !found {
		state = &models.AppState{CurrentLanguagePair: "cs-vi"}
	}
	s.state = state

	return s, nil
}

// migrate fills in fields older documents may be missing
func (s *Store) migrate() {
	if s.data.Progress == nil {
		s.data.Progress = make(map[string]map[int]*models.CardProgress)
	}
	for _, cards := range s.data.Progress {
		for _, p := range cards {
			p.EnsureTiers()
			if p.SkillLevel == 0 {
				p.SkillLevel = int(skill.Beginner)
			}
			if p.RecommendedLevel == 0 {
				p.RecommendedLevel = int(skill.Beginner)
			}
		}
	}
	if s.data.DailyProgress == nil {
		s.data.DailyProgress = models.NewDailyProgress()
	}
	if s.data.DailyProgress.CardsSeen == nil {
		s.data.DailyProgress.CardsSeen = make(map[int]bool)
	}
}

// Data exposes the loaded progress document
func (s *Store) Data() *models.ProgressData {
	return s.data
}

// AppState exposes the loaded application-state snapshot
func (s *Store) AppState() *models.AppState {
	return s.state
}

// Goal returns the effective daily goal: the adaptive one if present,
// otherwise the defaults
func (s *Store) Goal() models.DailyGoal {
	if s.data.AdaptiveGoal != nil {
		return *s.data.AdaptiveGoal
	}
	return models.DefaultDailyGoal()
}

// SetGoal stores the adaptive daily goal, mirroring it into the
// app-state snapshot
func (s *Store) SetGoal(g models.DailyGoal) {
	s.data.AdaptiveGoal = &g
	s.state.DailyGoal = &g
}

// SetDefaultSkillLevel stores the learner's tier preference (0 = auto)
func (s *Store) SetDefaultSkillLevel(level int) {
	s.data.DefaultSkillLevel = level
	s.state.DefaultSkillLevel = level
}

// Card returns the progress record for a card, nil if never answered
func (s *Store) Card(languagePair string, id int) *models.CardProgress {
	return s.data.Card(languagePair, id)
}

// Rollover resets daily counters and updates the streak when the local
// calendar date has changed since the last study activity. Reports
// whether a rollover happened.
func (s *Store) Rollover(now time.Time) bool {
	today := now.Format(dateLayout)
	if s.data.LastStudied == today {
		return false
	}

	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
	studiedYesterday := s.data.LastStudied == yesterday &&
		s.data.DailyProgress != nil && len(s.data.DailyProgress.Sessions) > 0
	if studiedYesterday {
		s.data.Streak++
	} else {
		s.data.Streak = 0
	}

	s.data.DailyProgress = models.NewDailyProgress()
	s.data.LastStudied = today
	if err := s.Save(); err != nil {
		log.Printf("failed to persist day rollover: %v", err)
	}
	return true
}

// UpdateCard applies one answer to a card: per-tier stats, mastery level,
// next review time, promotion check, daily counters and overall accuracy.
// The full document is persisted afterwards; persistence failures degrade
// to in-memory state and are not fatal.
func (s *Store) UpdateCard(languagePair string, word models.Word, correct bool, tier skill.Level, kind models.CardKind, now time.Time) *models.CardProgress {
	p := s.data.Card(languagePair, word.ID)
	isNew := p == nil
	if isNew {
		p = models.NewCardProgress(word.ID, int(tier), now)
		s.data.SetCard(languagePair, p)
	}

	stats := p.Tier(int(tier))
	stats.Total++
	if correct {
		stats.Correct++
		stats.Streak++
		p.Level = s.model.Raise(p.Level, int(tier))
		p.TimesCorrect++
	} else {
		stats.Streak = 0
		p.Level = s.model.Lower(p.Level, int(tier))
	}

	p.TimesSeen++
	p.LastSeen = now
	p.SkillLevel = int(tier)
	p.NextReview = s.model.NextReview(p.Level, now)

	// Advisory only; an already-earned recommendation is never lowered
	if rec := skill.AttemptPromotion(tier, stats); rec > tier && int(rec) > p.RecommendedLevel {
		p.RecommendedLevel = int(rec)
	}

	s.updateDailyProgress(isNew, word.ID, kind, correct, tier)

	s.data.Accuracy.Total++
	if correct {
		s.data.Accuracy.Correct++
	}

	if err := s.Save(); err != nil {
		log.Printf("failed to persist progress, continuing in memory: %v", err)
	}
	return p
}

// updateDailyProgress counts a card toward today's goals at most once
func (s *Store) updateDailyProgress(isNew bool, cardID int, kind models.CardKind, correct bool, tier skill.Level) {
	dp := s.data.DailyProgress
	if dp.CardsSeen[cardID] {
		return
	}
	dp.CardsSeen[cardID] = true

	goal := s.Goal()
	if isNew || kind == models.CardNew {
		dp.New = min(goal.New+dailyOverflow, dp.New+1)
		if correct && tier == skill.Advanced {
			s.data.TotalLearned++
		}
	} else {
		dp.Review = min(goal.Review+dailyOverflow, dp.Review+1)
	}
}

// RecordSession appends a completed session to today's history
func (s *Store) RecordSession(summary models.SessionSummary, minutes float64) {
	dp := s.data.DailyProgress
	dp.TimeSpent += minutes
	dp.Sessions = append(dp.Sessions, summary)
}

// Save persists the whole progress document. On a quota failure the
// oldest session history is pruned and the write retried once; other
// write failures are reported as-is.
func (s *Store) Save() error {
	err := s.kv.Set(storage.KeyProgress, s.data)
	if err == nil {
		return nil
	}
	if !storage.IsQuotaError(err) {
		return fmt.Errorf("failed to save progress: %v", err)
	}

	s.pruneSessions()
	if retryErr := s.kv.Set(storage.KeyProgress, s.data); retryErr == nil {
		log.Printf("progress saved after pruning session history (first attempt: %v)", err)
		return nil
	}
	return fmt.Errorf("failed to save progress: %v", err)
}

func (s *Store) pruneSessions() {
	dp := s.data.DailyProgress
	if dp == nil || len(dp.Sessions) <= sessionHistoryLimit {
		return
	}
	kept := make([]models.SessionSummary, sessionHistoryLimit)
	copy(kept, dp.Sessions[len(dp.Sessions)-sessionHistoryLimit:])
	dp.Sessions = kept
}

// SaveAppState persists the application-state snapshot
func (s *Store) SaveAppState() error {
	if err := s.kv.Set(storage.KeyAppState, s.state); err != nil {
		return fmt.Errorf("failed to save app state: %v", err)
	}
	return nil
}

// Reset wipes all learning progress and the app-state snapshot.
// Vocabulary documents are untouched.
func (s *Store) Reset(now time.Time) error {
	if err := s.kv.Delete(storage.KeyProgress); err != nil {
		return err
	}
	if err := s.kv.Delete(storage.KeyAppState); err != nil {
		return err
	}
	pair := s.state.CurrentLanguagePair
	s.data = models.NewProgressData(now.Format(dateLayout))
	s.state = &models.AppState{CurrentLanguagePair: pair}
	return s.Save()
}

// DueCount reports how many of the given words have a due review. It
// reads a fresh copy of the progress document, so it is safe to call
// from the reminder goroutine while the trainer is in use.
func DueCount(kv storage.Store, languagePair string, words []models.Word, now time.Time) (int, error) {
	data := &models.ProgressData{}
	found, err := kv.Get(storage.KeyProgress, data)
	if err != nil || !found {
		return 0, err
	}
	count := 0
	for _, w := range words {
		if p := data.Card(languagePair, w.ID); p != nil && !p.NextReview.After(now) {
			count++
		}
	}
	return count, nil
}
