package formatter

import (
	"fmt"
	"strings"

	"github.com/alextm0/identity-shift-sub002/internal/app"
	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/engine"
)

const (
	reportBarWidth   = 10
	priorityBarWidth = 12
)

// FormatWeeklyReport renders a weekly report: headline numbers, per-priority
// progress and the surfaced alerts.
func FormatWeeklyReport(resp *app.WeeklyReportResponse) string {
	var b strings.Builder
	s := resp.Summary

	b.WriteString(Header("Weekly Report"))
	b.WriteString("\n")

	if resp.Sprint != nil {
		writeField(&b, "Sprint", fmt.Sprintf("%s %s", Bold(resp.Sprint.Name),
			Dim("("+DateRange(resp.Sprint.StartDate, resp.Sprint.EndDate)+")")))
	}
	writeField(&b, "Window", DateRange(resp.WindowStart, resp.WindowEnd))
	writeField(&b, "Logged", fmt.Sprintf("%d day(s), avg energy %s", resp.DaysLogged,
		EnergyColor(s.AvgEnergy).Render(fmt.Sprintf("%.1f", s.AvgEnergy))))
	writeField(&b, "Units", fmt.Sprintf("%s action, %s motion",
		StyleGreen.Render(fmt.Sprint(s.ActionUnits)), StyleYellow.Render(fmt.Sprint(s.MotionUnits))))
	writeField(&b, "Integrity", RenderScore(resp.IntegrityScore, reportBarWidth))
	writeField(&b, "Proof", fmt.Sprintf("%3.0f%% of progress days", resp.ProofCoverage*100))

	if len(s.Priorities) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Priorities"))
		b.WriteString("\n")
		b.WriteString(FormatPriorityProgress(s.Priorities))
		if s.PromisesAtRisk > 0 {
			b.WriteString(StyleYellow.Render(fmt.Sprintf("%d promise(s) at risk", s.PromisesAtRisk)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(Header("Alerts"))
	b.WriteString("\n")
	b.WriteString(FormatAlerts(resp.Alerts))

	return b.String()
}

// FormatPriorityProgress renders one row per priority with logged versus
// target units and a ratio bar.
func FormatPriorityProgress(priorities []domain.PriorityProgress) string {
	headers := []string{"KEY", "LABEL", "LOGGED", "TARGET", "PROGRESS", ""}
	rows := make([][]string, 0, len(priorities))
	for _, p := range priorities {
		risk := ""
		if p.AtRisk {
			risk = StyleRed.Render("AT RISK")
		}
		rows = append(rows, []string{
			Bold(p.Key),
			Truncate(p.Label, 28),
			FormatUnits(p.LoggedUnits),
			FormatUnits(p.TargetUnits),
			RenderProgress(p.Ratio, priorityBarWidth),
			risk,
		})
	}
	return RenderNumericTable(headers, rows, 2, 3)
}

// FormatAlerts renders alerts one per line, or a calm line when there are none.
func FormatAlerts(alerts []engine.Alert) string {
	if len(alerts) == 0 {
		return StyleGreen.Render("No alerts.") + "\n"
	}
	var b strings.Builder
	for _, a := range alerts {
		fmt.Fprintf(&b, "%s  %s\n", AlertIndicator(a.Code), a.Detail)
	}
	return b.String()
}

// FormatHistory renders one row per week, oldest first.
func FormatHistory(resp *app.HistoryResponse) string {
	var b strings.Builder
	b.WriteString(Header("History"))
	b.WriteString("\n")
	if resp.Sprint != nil {
		writeField(&b, "Sprint", Bold(resp.Sprint.Name))
		b.WriteString("\n")
	}

	headers := []string{"WEEK", "DAYS", "ENERGY", "ACTION", "MOTION", "SCORE", "ALERTS"}
	rows := make([][]string, 0, len(resp.Reports))
	for _, r := range resp.Reports {
		codes := make([]string, 0, len(r.Alerts))
		for _, a := range r.Alerts {
			codes = append(codes, string(a.Code))
		}
		alertCell := Dim("-")
		if len(codes) > 0 {
			alertCell = StyleYellow.Render(strings.Join(codes, ", "))
		}
		rows = append(rows, []string{
			r.WindowStart.Format(domain.DateLayout),
			fmt.Sprint(r.DaysLogged),
			EnergyColor(r.Summary.AvgEnergy).Render(fmt.Sprintf("%.1f", r.Summary.AvgEnergy)),
			fmt.Sprint(r.Summary.ActionUnits),
			fmt.Sprint(r.Summary.MotionUnits),
			ScoreColor(r.IntegrityScore).Render(fmt.Sprint(r.IntegrityScore)),
			alertCell,
		})
	}
	b.WriteString(RenderNumericTable(headers, rows, 1, 2, 3, 4, 5))
	return b.String()
}

// FormatScore renders a one-off integrity check.
func FormatScore(motion, action, score int) string {
	var b strings.Builder
	writeField(&b, "Motion", fmt.Sprint(motion))
	writeField(&b, "Action", fmt.Sprint(action))
	writeField(&b, "Integrity", RenderScore(score, reportBarWidth))
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%s %s\n", StyleDim.Render(fmt.Sprintf("%-10s", label)), value)
}
