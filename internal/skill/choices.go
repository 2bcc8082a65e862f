package skill

import (
	"math/rand"
	"sort"

	"github.com/example/vocabtrainer/pkg/models"
)

// ChoiceCount is the number of options shown for a beginner card
const ChoiceCount = 4

// PlaceholderText fills option slots when the catalog is too small to
// provide enough distractors. Placeholders can never be the correct answer.
const PlaceholderText = "---"

// Choice is one multiple-choice option
type Choice struct {
	Text         string
	Romanization string
	Correct      bool
}

// GenerateChoices builds the option list for a beginner card: the correct
// translation plus three distractors picked from the pool, preferring the
// same category and then the closest difficulty. The result is shuffled so
// option order never leaks the answer.
func GenerateChoices(correct models.Word, pool []models.Word, rng *rand.Rand) []Choice {
	distractors := make([]models.Word, 0, len(pool))
	for _, w := range pool {
		if w.ID != correct.ID {
			distractors = append(distractors, w)
		}
	}

	sort.SliceStable(distractors, func(i, j int) bool {
		sameI := distractors[i].Category == correct.Category
		sameJ := distractors[j].Category == correct.Category
		if sameI != sameJ {
			return sameI
		}
		diffI := abs(distractors[i].Difficulty - correct.Difficulty)
		diffJ := abs(distractors[j].Difficulty - correct.Difficulty)
		return diffI < diffJ
	})

	if len(distractors) > ChoiceCount-1 {
		distractors = distractors[:ChoiceCount-1]
	}

	choices := make([]Choice, 0, ChoiceCount)
	choices = append(choices, Choice{
		Text:         correct.Translation,
		Romanization: correct.Romanization,
		Correct:      true,
	})
	for _, d := range distractors {
		choices = append(choices, Choice{
			Text:         d.Translation,
			Romanization: d.Romanization,
		})
	}
	for len(choices) < ChoiceCount {
		choices = append(choices, Choice{Text: PlaceholderText})
	}

	rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
