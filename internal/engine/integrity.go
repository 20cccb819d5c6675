package engine

import (
	"math"
	"strings"
	"unicode/utf8"
)

// Breakpoints of the piecewise-linear integrity mapping. The curve is
// continuous: ratio 0.5 scores 60 and ratio 0.8 scores 90.
const (
	highActionRatio = 0.8
	midActionRatio  = 0.5

	// ProofMinLength is the minimum trimmed length of a proof-of-work note
	// when progress units are logged.
	ProofMinLength = 10
)

// CalculateIntegrityScore maps motion and action unit counts to a 0-100
// action-before-simulation score. No activity scores 100. Negative counts are
// clamped to zero.
func CalculateIntegrityScore(motionUnits, actionUnits int) int {
	motion := nonNegative(motionUnits)
	action := nonNegative(actionUnits)

	total := motion + action
	if total == 0 {
		return 100
	}

	ratio := float64(action) / float64(total)

	var score float64
	switch {
	case ratio >= highActionRatio:
		score = 90 + (ratio-highActionRatio)*50
	case ratio >= midActionRatio:
		score = 60 + (ratio-midActionRatio)*100
	default:
		score = ratio * 120
	}

	score = math.Max(0, math.Min(100, score))
	return int(math.Floor(score + 0.5))
}

// ValidateProofOfWork reports whether a day's progress is backed by a proof
// note. Zero progress always validates.
func ValidateProofOfWork(progressUnits int, proof string) bool {
	if progressUnits <= 0 {
		return true
	}
	return utf8.RuneCountInString(strings.TrimSpace(proof)) >= ProofMinLength
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
