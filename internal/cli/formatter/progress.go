package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a ratio bar like [████░░░░]  45%. The bar is clamped
// to [0,1] but the percentage shows the real ratio, so overshooting a target
// reads as e.g. 130%. Green from 1.0, yellow from 0.5, red below.
func RenderProgress(ratio float64, width int) string {
	style := StyleGreen
	switch {
	case ratio < 0.5:
		style = StyleRed
	case ratio < 1:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar(ratio, width)), max(ratio, 0)*100)
}

// RenderScore renders a 0-100 integrity score as a colored bar and number.
func RenderScore(score int, width int) string {
	style := ScoreColor(score)
	return fmt.Sprintf("[%s] %s", style.Render(bar(float64(score)/100, width)),
		style.Render(fmt.Sprintf("%3d", score)))
}

// RenderRating renders a 1-10 rating as ten dots, filled up to score.
func RenderRating(score int) string {
	filled := min(max(score, 0), 10)
	dots := strings.Repeat("●", filled) + strings.Repeat("·", 10-filled)
	return RatingColor(score).Render(dots) + fmt.Sprintf(" %2d", score)
}

func bar(pct float64, width int) string {
	pct = min(max(pct, 0), 1)
	width = max(width, 2)
	filled := min(int(pct*float64(width)), width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}
