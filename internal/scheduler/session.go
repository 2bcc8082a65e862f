// Package scheduler decides what to study next: it builds study sessions
// from the catalog and progress record, adapts daily goals to recent
// accuracy, and runs the background reminder checks.
package scheduler

import (
	"math/rand"
	"sort"
	"time"

	"github.com/example/vocabtrainer/pkg/models"
)

// SizeAll requests a session that completes the remaining daily goals
const SizeAll = 0

// Builder assembles study sessions
type Builder struct {
	rng *rand.Rand
}

// NewBuilder creates a builder with a time-seeded random source
func NewBuilder() *Builder {
	return &Builder{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewBuilderWithRand creates a builder using the given random source
func NewBuilderWithRand(rng *rand.Rand) *Builder {
	return &Builder{rng: rng}
}

// BuildSession selects the cards for the next session. Review cards are
// allocated first toward the remaining review goal, then new cards toward
// the new-card goal; once both goals are met, leftover slots fill from
// remaining reviews and then remaining new cards. The selection is
// shuffled before presentation so review priority does not dictate
// display order.
func (b *Builder) BuildSession(words []models.Word, data *models.ProgressData, goal models.DailyGoal, languagePair string, size int, now time.Time) []models.SessionCard {
	var newCards, reviewCards []models.SessionCard
	for _, w := range words {
		p := data.Card(languagePair, w.ID)
		switch {
		case p == nil:
			newCards = append(newCards, models.SessionCard{Word: w, Kind: models.CardNew})
		case !p.NextReview.After(now):
			reviewCards = append(reviewCards, models.SessionCard{Word: w, Kind: models.CardReview})
		}
	}

	// Most overdue first
	sort.SliceStable(reviewCards, func(i, j int) bool {
		pi := data.Card(languagePair, reviewCards[i].Word.ID)
		pj := data.Card(languagePair, reviewCards[j].Word.ID)
		return pi.NextReview.Before(pj.NextReview)
	})

	completedNew, completedReview := 0, 0
	if data.DailyProgress != nil {
		completedNew = data.DailyProgress.New
		completedReview = data.DailyProgress.Review
	}

	targetNew, targetReview := 0, 0
	if size == SizeAll {
		targetNew = min(max(0, goal.New-completedNew), len(newCards))
		targetReview = min(max(0, goal.Review-completedReview), len(reviewCards))
	} else {
		remaining := size

		reviewsNeeded := max(0, goal.Review-completedReview)
		targetReview = min(remaining, min(len(reviewCards), reviewsNeeded))
		remaining -= targetReview

		if remaining > 0 {
			newNeeded := max(0, goal.New-completedNew)
			targetNew = min(remaining, min(len(newCards), newNeeded))
		}

		// Goals met: top up from whatever is left
		if targetNew+targetReview < size && completedNew >= goal.New && completedReview >= goal.Review {
			targetReview += min(size-targetNew-targetReview, len(reviewCards)-targetReview)
			if targetNew+targetReview < size {
				targetNew += min(size-targetNew-targetReview, len(newCards)-targetNew)
			}
		}
	}

	session := make([]models.SessionCard, 0, targetReview+targetNew)
	session = append(session, reviewCards[:targetReview]...)
	session = append(session, newCards[:targetNew]...)

	b.rng.Shuffle(len(session), func(i, j int) {
		session[i], session[j] = session[j], session[i]
	})
	return session
}
