package formatter

import (
	"fmt"
	"strings"

	"github.com/alextm0/identity-shift-sub002/internal/app"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/engine"
	"github.com/charmbracelet/lipgloss"
)

const narrativeWidth = 64

// FormatRatings renders every dimension in canonical order with its score.
// Missing dimensions show the neutral default.
func FormatRatings(ratings domain.DimensionRatings) string {
	complete := ratings.Complete()
	rows := make([][]string, 0, len(domain.AllDimensions))
	for _, d := range domain.AllDimensions {
		rows = append(rows, []string{d.Label(), RenderRating(complete[d])})
	}
	return RenderTable([]string{"DIMENSION", "RATING"}, rows)
}

// FormatReview renders a stored review without analysis.
func FormatReview(r *domain.YearlyReview) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Review %d", r.Year)))
	b.WriteString("\n")
	b.WriteString(FormatRatings(r.Ratings))
	writeList(&b, "Wins", r.Wins)
	writeList(&b, "Challenges", r.Challenges)
	if r.Lessons != "" {
		b.WriteString("\n")
		writeField(&b, "Lessons", r.Lessons)
	}
	if r.KeyDecision != "" {
		writeField(&b, "Decision", r.KeyDecision)
	}
	return b.String()
}

// FormatReviewAnalysis renders the review, its weak and strong dimensions and
// the generated narrative.
func FormatReviewAnalysis(resp *app.ReviewAnalysisResponse) string {
	var b strings.Builder
	b.WriteString(FormatReview(resp.Review))
	b.WriteString("\n")
	writeField(&b, "Strong", scoreList(resp.Analysis.Strong, StyleGreen))
	writeField(&b, "Weak", scoreList(resp.Analysis.Weak, StyleRed))
	b.WriteString("\n")
	wrapped := lipgloss.NewStyle().Width(narrativeWidth).Render(resp.Narrative)
	b.WriteString(RenderBox("Narrative", wrapped))
	b.WriteString("\n")
	return b.String()
}

func scoreList(scores []engine.DimensionScore, style lipgloss.Style) string {
	if len(scores) == 0 {
		return Dim("none")
	}
	parts := make([]string, 0, len(scores))
	for _, s := range scores {
		parts = append(parts, style.Render(fmt.Sprintf("%s (%d)", s.Dimension.Label(), s.Score)))
	}
	return strings.Join(parts, ", ")
}

func writeList(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(StyleBold.Render(title))
	b.WriteString("\n")
	for _, item := range items {
		fmt.Fprintf(b, "  %s %s\n", StyleDim.Render("•"), item)
	}
}
