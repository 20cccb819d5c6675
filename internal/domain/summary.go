package domain

// PriorityProgress is the logged-versus-target view of one priority.
type PriorityProgress struct {
	Key         string
	Label       string
	LoggedUnits float64
	TargetUnits float64
	Ratio       float64
	AtRisk      bool
}

// WeeklySummary is the aggregate of a log window. It is computed, never stored.
type WeeklySummary struct {
	AvgEnergy      float64
	MotionUnits    int
	ActionUnits    int
	DaysLogged     int
	Priorities     []PriorityProgress
	PromisesAtRisk int
}

// Priority returns the progress for key.
func (s WeeklySummary) Priority(key string) (PriorityProgress, bool) {
	for _, p := range s.Priorities {
		if p.Key == key {
			return p, true
		}
	}
	return PriorityProgress{}, false
}

// PrioritySummary returns the per-priority progress keyed by priority key.
func (s WeeklySummary) PrioritySummary() map[string]PriorityProgress {
	out := make(map[string]PriorityProgress, len(s.Priorities))
	for _, p := range s.Priorities {
		out[p.Key] = p
	}
	return out
}
