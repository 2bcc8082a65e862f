package skill

import "github.com/example/vocabtrainer/pkg/models"

// Promotion thresholds
const (
	PromotionStreak      = 3   // consecutive correct answers required
	PromotionMinAttempts = 3   // minimum attempts at the tier
	PromotionAccuracy    = 0.8 // minimum accuracy at the tier
)

// AttemptPromotion returns the tier recommended after an answer at the
// given tier. Promotion is monotonic and advisory: the result is never
// below current, and Advanced is terminal.
func AttemptPromotion(current Level, stats *models.TierStats) Level {
	if current >= Advanced || stats == nil {
		return current
	}
	if stats.Streak >= PromotionStreak &&
		stats.Total >= PromotionMinAttempts &&
		stats.Accuracy() >= PromotionAccuracy {
		return current + 1
	}
	return current
}
