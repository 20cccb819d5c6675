package engine

import (
	"strings"
	"unicode"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
)

const (
	// WinMaxLength and DecisionMaxLength bound quoted free text, in runes.
	WinMaxLength      = 100
	DecisionMaxLength = 150

	// NarrativeFocusLimit is how many weak dimensions the closing sentence names.
	NarrativeFocusLimit = 2
)

// GenerateNarrative composes the year-end paragraph from ratings, the first
// win and the key decision. Sentence order is fixed.
func GenerateNarrative(ratings domain.DimensionRatings, wins []string, keyDecision string) string {
	analysis := AnalyzeDimensionsWith(ratings, NarrativeAnalysis)

	sentences := make([]string, 0, 4)

	if len(analysis.Strong) > 0 {
		sentences = append(sentences, "This year you built real strength in "+joinLabels(analysis.Strong)+".")
	} else {
		sentences = append(sentences, "This year you maintained stability across your life dimensions.")
	}

	if len(wins) > 0 {
		if win := truncateText(wins[0], WinMaxLength); win != "" {
			sentences = append(sentences, `Your standout win: "`+win+`".`)
		}
	}

	if decision := truncateText(keyDecision, DecisionMaxLength); decision != "" {
		sentences = append(sentences, `The decision that shaped your year: "`+decision+`".`)
	}

	weak := analysis.Weak
	if len(weak) > NarrativeFocusLimit {
		weak = weak[:NarrativeFocusLimit]
	}
	if len(weak) > 0 {
		sentences = append(sentences, "Going forward, focus on "+joinLabels(weak)+".")
	} else {
		sentences = append(sentences, "You are positioned well across all dimensions for the year ahead.")
	}

	return strings.Join(sentences, " ")
}

// truncateText trims surrounding whitespace and cuts s to max runes. The
// text is otherwise quoted as given.
func truncateText(s string, max int) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > max {
		s = strings.TrimRightFunc(string(r[:max]), unicode.IsSpace)
	}
	return s
}

func joinLabels(scores []DimensionScore) string {
	labels := make([]string, len(scores))
	for i, s := range scores {
		labels[i] = s.Dimension.Label()
	}
	switch len(labels) {
	case 0:
		return ""
	case 1:
		return labels[0]
	case 2:
		return labels[0] + " and " + labels[1]
	}
	return strings.Join(labels[:len(labels)-1], ", ") + ", and " + labels[len(labels)-1]
}
