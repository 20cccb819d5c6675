package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDayFrom describes day relative to now at calendar-day precision.
func RelativeDayFrom(day, now time.Time) string {
	days := int(math.Round(domain.Day(day).Sub(domain.Day(now)).Hours() / 24))
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0:
		return fmt.Sprintf("In %dd", days)
	default:
		return fmt.Sprintf("%dd ago", -days)
	}
}

// DateRange renders an inclusive day range like "Mar 10 – Mar 16, 2025".
func DateRange(start, end time.Time) string {
	if start.Year() == end.Year() {
		return start.Format("Jan 2") + " – " + end.Format("Jan 2, 2006")
	}
	return start.Format("Jan 2, 2006") + " – " + end.Format("Jan 2, 2006")
}

// SprintStatusPill returns a colored sprint status label.
func SprintStatusPill(status domain.SprintStatus) string {
	switch status {
	case domain.SprintActive:
		return StyleGreen.Render("ACTIVE")
	case domain.SprintCompleted:
		return StyleBlue.Render("COMPLETED")
	case domain.SprintAbandoned:
		return StyleDim.Render("ABANDONED")
	default:
		return StyleDim.Render(strings.ToUpper(string(status)))
	}
}

// TruncID shortens a UUID to its first 8 characters for display.
func TruncID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Truncate shortens s to max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

// FormatUnits prints whole unit counts without a decimal part.
func FormatUnits(u float64) string {
	if u == math.Trunc(u) {
		return fmt.Sprintf("%.0f", u)
	}
	return fmt.Sprintf("%.1f", u)
}
