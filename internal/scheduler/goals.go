package scheduler

import "github.com/example/vocabtrainer/pkg/models"

// GoalBounds limits how far the adaptive controller may move the targets
type GoalBounds struct {
	MinNew    int
	MinReview int
	MaxNew    int
	MaxReview int
}

// DefaultBounds returns the standard goal limits
func DefaultBounds() GoalBounds {
	return GoalBounds{MinNew: 2, MinReview: 3, MaxNew: 10, MaxReview: 15}
}

// Adjustment thresholds for the adaptive controller
const (
	raiseAccuracy = 85.0 // mean percent above which goals grow
	lowerAccuracy = 60.0 // mean percent below which goals shrink
	minSessions   = 2    // sessions required before any adjustment
)

// AdjustGoals adapts tomorrow's targets to today's performance. It is a
// slow integral controller: it only acts after at least two sessions
// today, raises both targets by one when mean accuracy is high and all
// goals were met, and lowers both by one when accuracy is poor.
func AdjustGoals(goal models.DailyGoal, today *models.DailyProgress, bounds GoalBounds) models.DailyGoal {
	if today == nil || len(today.Sessions) < minSessions {
		return goal
	}

	var sum float64
	for _, s := range today.Sessions {
		sum += s.Accuracy
	}
	mean := sum / float64(len(today.Sessions))

	switch {
	case mean > raiseAccuracy && today.New >= goal.New && today.Review >= goal.Review:
		goal.New = min(bounds.MaxNew, goal.New+1)
		goal.Review = min(bounds.MaxReview, goal.Review+1)
	case mean < lowerAccuracy:
		goal.New = max(bounds.MinNew, goal.New-1)
		goal.Review = max(bounds.MinReview, goal.Review-1)
	}
	return goal
}
