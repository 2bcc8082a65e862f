package skill

import (
	"strings"
	"unicode"

	"github.com/agext/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Result describes the outcome of validating one typed answer
type Result struct {
	Correct bool
	// Exact is set on a case-insensitive exact match
	Exact bool
	// Close is set when a fuzzy match was accepted. Close answers still
	// count as correct for progression; the leniency is intentional.
	Close bool
}

// ValidateAnswer checks a typed answer against the expected translation
// at the given tier. Beginner answers come from the multiple-choice path
// where the selected option already carries its correctness, so here the
// beginner case is a plain comparison.
func ValidateAnswer(answer, correct string, level Level) Result {
	switch level {
	case Intermediate:
		return validateIntermediate(answer, correct)
	case Advanced:
		return validateAdvanced(answer, correct)
	default:
		matched := answer == correct
		return Result{Correct: matched, Exact: matched}
	}
}

func validateIntermediate(answer, correct string) Result {
	if strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(correct)) {
		return Result{Correct: true, Exact: true}
	}
	na, nc := Normalize(answer), Normalize(correct)
	if na == nc {
		return Result{Correct: true, Close: true}
	}
	// Tolerate one-character typos
	if levenshtein.Distance(na, nc, nil) <= 1 {
		return Result{Correct: true, Close: true}
	}
	return Result{}
}

func validateAdvanced(answer, correct string) Result {
	if strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(correct)) {
		return Result{Correct: true, Exact: true}
	}
	// Tolerate extra spaces only, not diacritic drift
	if strings.EqualFold(stripSpaces(answer), stripSpaces(correct)) {
		return Result{Correct: true}
	}
	return Result{}
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases, strips diacritics via Unicode decomposition and
// drops everything except ASCII alphanumerics and CJK ideographs
func Normalize(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripMarks, s); err == nil {
		s = out
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 0x4E00 && r <= 0x9FFF: // CJK unified ideographs
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
