package domain

import "fmt"

// FitThresholdPercent is the inclusive pass mark: exactly 60% is a pass.
const FitThresholdPercent = 60.0

// EvaluateFit converts a score ratio into the fit verdict and percentage.
// The degenerate case maxScore == 0 (empty submission, or every answer
// unresolvable) yields percent 0 and fit false rather than an error.
func EvaluateFit(score, maxScore int) (fit bool, percent float64) {
	if maxScore <= 0 {
		return false, 0
	}
	percent = float64(score) / float64(maxScore) * 100
	return percent >= FitThresholdPercent, percent
}

// BuildFeedback produces the guidance text shown to the student. It is a
// pure function of its inputs: same inputs, byte-identical text. The percent
// shown is integer-truncated.
func BuildFeedback(category string, score, maxScore int, fit bool) string {
	_, percent := EvaluateFit(score, maxScore)
	if fit {
		return fmt.Sprintf(
			"Based on your responses you score %d/%d (%d%%). "+
				"You show strong alignment with %s. Next: build small projects, practice domain-specific tasks, and follow tutorials.",
			score, maxScore, int(percent), category)
	}
	return fmt.Sprintf(
		"Your score is %d/%d (%d%%). "+
			"You may need more practice for %s. Suggested: strengthen fundamentals, try beginner projects, and re-test after practice.",
		score, maxScore, int(percent), category)
}
