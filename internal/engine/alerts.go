package engine

import (
	"fmt"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
)

type AlertCode string

const (
	AlertVisibilityGap  AlertCode = "VISIBILITY_GAP"
	AlertCriticalEnergy AlertCode = "CRITICAL_ENERGY_LEVEL"
	AlertSimulationTrap AlertCode = "SIMULATION_TRAP"
	AlertScopeOverload  AlertCode = "SCOPE_OVERLOAD"
	AlertPromiseAtRisk  AlertCode = "PROMISE_AT_RISK"
)

const (
	// MaxAlerts caps how many alerts are surfaced at once. Rules that qualify
	// after the cap is reached are dropped.
	MaxAlerts = 3

	VisibilityMinDays       = 5
	SignalMinDays           = 3
	CriticalEnergyThreshold = 3.0
	OverloadRatio           = 0.5
	OverloadMinPriorities   = 2
)

// Alert is one tagged finding about a log window.
type Alert struct {
	Code   AlertCode
	Detail string
}

// String renders the alert as "TAG: detail".
func (a Alert) String() string {
	return string(a.Code) + ": " + a.Detail
}

type alertInput struct {
	daysLogged int
	summary    domain.WeeklySummary
}

// alertRules run in priority order. Coverage problems outrank accuracy
// problems, so VISIBILITY_GAP is evaluated first.
var alertRules = []func(alertInput) *Alert{
	ruleVisibilityGap,
	ruleCriticalEnergy,
	ruleSimulationTrap,
	ruleScopeOverload,
	rulePromiseAtRisk,
}

// GenerateAlerts evaluates every rule against the window and keeps the first
// MaxAlerts that qualify, in rule order.
func GenerateAlerts(logs []domain.DailyLogEntry, summary domain.WeeklySummary) []Alert {
	in := alertInput{
		daysLogged: countLoggedDays(logs),
		summary:    summary,
	}

	alerts := make([]Alert, 0, MaxAlerts)
	for _, rule := range alertRules {
		a := rule(in)
		if a == nil {
			continue
		}
		if len(alerts) < MaxAlerts {
			alerts = append(alerts, *a)
		}
	}
	return alerts
}

// AlertStrings renders alerts in their tagged text form.
func AlertStrings(alerts []Alert) []string {
	out := make([]string, len(alerts))
	for i, a := range alerts {
		out[i] = a.String()
	}
	return out
}

func ruleVisibilityGap(in alertInput) *Alert {
	if in.daysLogged >= VisibilityMinDays {
		return nil
	}
	return &Alert{
		Code:   AlertVisibilityGap,
		Detail: fmt.Sprintf("only %d day(s) logged; log at least %d to see the real picture", in.daysLogged, VisibilityMinDays),
	}
}

func ruleCriticalEnergy(in alertInput) *Alert {
	if in.daysLogged < SignalMinDays || in.summary.AvgEnergy >= CriticalEnergyThreshold {
		return nil
	}
	return &Alert{
		Code:   AlertCriticalEnergy,
		Detail: fmt.Sprintf("average energy %.1f is below %.1f; protect sleep and recovery before adding work", in.summary.AvgEnergy, CriticalEnergyThreshold),
	}
}

func ruleSimulationTrap(in alertInput) *Alert {
	if in.daysLogged < SignalMinDays || in.summary.MotionUnits <= in.summary.ActionUnits {
		return nil
	}
	return &Alert{
		Code:   AlertSimulationTrap,
		Detail: fmt.Sprintf("%d motion units outweigh %d action units; planning is standing in for doing", in.summary.MotionUnits, in.summary.ActionUnits),
	}
}

func ruleScopeOverload(in alertInput) *Alert {
	behind := 0
	for _, p := range in.summary.Priorities {
		if p.Ratio < OverloadRatio {
			behind++
		}
	}
	if behind < OverloadMinPriorities {
		return nil
	}
	return &Alert{
		Code:   AlertScopeOverload,
		Detail: fmt.Sprintf("%d priorities are under half their weekly target; consider cutting scope", behind),
	}
}

func rulePromiseAtRisk(in alertInput) *Alert {
	if in.summary.PromisesAtRisk == 0 {
		return nil
	}
	return &Alert{
		Code:   AlertPromiseAtRisk,
		Detail: fmt.Sprintf("%d promise(s) are behind linear pace and will miss target at this rate", in.summary.PromisesAtRisk),
	}
}

func countLoggedDays(logs []domain.DailyLogEntry) int {
	days := make(map[time.Time]struct{}, len(logs))
	for _, l := range logs {
		days[l.Day()] = struct{}{}
	}
	return len(days)
}
