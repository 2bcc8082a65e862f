package progress

import (
	"math"
	"time"

	"github.com/example/vocabtrainer/internal/skill"
	"github.com/example/vocabtrainer/pkg/models"
)

// ReviewStatistics summarizes the learner's standing for one language pair
type ReviewStatistics struct {
	Total    int
	New      int
	Due      int
	Future   int
	Mastered int
	ByLevel  [6]int
	ByTier   map[int]int
}

// Statistics computes review statistics across the given catalog words
func (s *Store) Statistics(languagePair string, words []models.Word, now time.Time) ReviewStatistics {
	stats := ReviewStatistics{
		Total:  len(words),
		ByTier: map[int]int{1: 0, 2: 0, 3: 0},
	}

	for _, w := range words {
		p := s.data.Card(languagePair, w.ID)
		if p == nil {
			stats.New++
			continue
		}

		if !p.NextReview.After(now) {
			stats.Due++
		} else {
			stats.Future++
		}

		if level := int(math.Floor(p.Level)); level >= 0 && level < len(stats.ByLevel) {
			stats.ByLevel[level]++
		}
		if lv := skill.Level(p.SkillLevel); lv.Valid() {
			stats.ByTier[p.SkillLevel]++
		}

		advanced := p.Tier(int(skill.Advanced))
		if advanced.Total >= skill.PromotionMinAttempts && advanced.Accuracy() >= skill.PromotionAccuracy {
			stats.Mastered++
		}
	}
	return stats
}
