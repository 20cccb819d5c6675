package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot is the top-level JSON structure for a data import. Every section is
// optional; priorities and promise logs require a sprint.
type Snapshot struct {
	Sprint      *SprintImport      `json:"sprint,omitempty"`
	Priorities  []PriorityImport   `json:"priorities,omitempty"`
	DailyLogs   []DailyLogImport   `json:"daily_logs,omitempty"`
	PromiseLogs []PromiseLogImport `json:"promise_logs,omitempty"`
	Review      *ReviewImport      `json:"review,omitempty"`
	PlanDraft   *PlanDraftImport   `json:"plan_draft,omitempty"`
}

// SprintImport defines the sprint the priorities and promise logs belong to.
type SprintImport struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status,omitempty"`
}

// PriorityImport defines one weekly commitment of the sprint.
type PriorityImport struct {
	Key               string  `json:"key"`
	Label             string  `json:"label,omitempty"`
	Type              string  `json:"type,omitempty"`
	WeeklyTargetUnits float64 `json:"weekly_target_units"`
	UnitDefinition    string  `json:"unit_definition,omitempty"`
}

// DailyLogImport defines one day's check-in.
type DailyLogImport struct {
	Date               string  `json:"date"`
	EnergyLevel        int     `json:"energy_level"`
	SleepHours         float64 `json:"sleep_hours,omitempty"`
	MainFocusCompleted bool    `json:"main_focus_completed,omitempty"`
	ProgressUnits      int     `json:"progress_units,omitempty"`
	MotionUnits        int     `json:"motion_units,omitempty"`
	Proof              string  `json:"proof,omitempty"`
	Note               string  `json:"note,omitempty"`
}

// PromiseLogImport records units logged against a priority key.
type PromiseLogImport struct {
	Date      string  `json:"date"`
	PromiseID string  `json:"promise_id"`
	Units     float64 `json:"units"`
	Note      string  `json:"note,omitempty"`
}

// ReviewImport defines a yearly review. Ratings may be partial and keyed by
// dimension key or display label.
type ReviewImport struct {
	Year        int           `json:"year"`
	Ratings     RatingsImport `json:"ratings,omitempty"`
	Wins        []string      `json:"wins,omitempty"`
	Challenges  []string      `json:"challenges,omitempty"`
	Lessons     string        `json:"lessons,omitempty"`
	KeyDecision string        `json:"key_decision,omitempty"`
}

// PlanDraftImport defines an in-progress planning wizard draft.
type PlanDraftImport struct {
	CurrentStep    int              `json:"current_step,omitempty"`
	BrainDump      string           `json:"brain_dump,omitempty"`
	Identity       string           `json:"identity,omitempty"`
	Targets        RatingsImport    `json:"targets,omitempty"`
	Goals          []GoalImport     `json:"goals,omitempty"`
	AntiGoals      []AntiGoalImport `json:"anti_goals,omitempty"`
	Letter         string           `json:"letter,omitempty"`
	SignatureImage string           `json:"signature_image,omitempty"`
}

// AntiGoalImport defines one pre-mortem entry.
type AntiGoalImport struct {
	Text       string `json:"text"`
	Mitigation string `json:"mitigation,omitempty"`
}

// RatingsImport maps a dimension key or label to a score.
type RatingsImport map[string]RatingValue

// RatingValue is a score stored either as a bare number or, in older exports,
// as an object {"score": n}.
type RatingValue struct {
	Score int
}

func (v *RatingValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Score int `json:"score"`
		}
		if err := decodeStrict(data, &obj); err != nil {
			return fmt.Errorf("rating object: %w", err)
		}
		v.Score = obj.Score
		return nil
	}
	if err := json.Unmarshal(data, &v.Score); err != nil {
		return fmt.Errorf("rating value: %w", err)
	}
	return nil
}

// GoalShape identifies which export format a goal was read from.
type GoalShape int

const (
	// GoalCurrent carries its statement in "text".
	GoalCurrent GoalShape = iota
	// GoalLegacy carries its statement in "originalText" and its dimension
	// in "category".
	GoalLegacy
)

// GoalImport is a goal in either shape. Decoding records the shape once so
// conversion never inspects raw field presence.
type GoalImport struct {
	Shape            GoalShape
	ID               string
	Text             string
	Dimension        string
	Annual           bool
	DefinitionOfDone string
}

type goalWire struct {
	ID               string  `json:"id,omitempty"`
	Text             *string `json:"text,omitempty"`
	OriginalText     *string `json:"originalText,omitempty"`
	Dimension        string  `json:"dimension,omitempty"`
	Category         string  `json:"category,omitempty"`
	Annual           bool    `json:"annual,omitempty"`
	DefinitionOfDone string  `json:"definitionOfDone,omitempty"`
}

func (g *GoalImport) UnmarshalJSON(data []byte) error {
	var w goalWire
	if err := decodeStrict(data, &w); err != nil {
		return fmt.Errorf("goal: %w", err)
	}
	*g = GoalImport{
		ID:               w.ID,
		Annual:           w.Annual,
		DefinitionOfDone: w.DefinitionOfDone,
		Dimension:        w.Dimension,
	}
	switch {
	case w.Text != nil:
		g.Shape = GoalCurrent
		g.Text = *w.Text
	case w.OriginalText != nil:
		g.Shape = GoalLegacy
		g.Text = *w.OriginalText
		if g.Dimension == "" {
			g.Dimension = w.Category
		}
	}
	return nil
}

func (g GoalImport) MarshalJSON() ([]byte, error) {
	w := goalWire{ID: g.ID, Annual: g.Annual, DefinitionOfDone: g.DefinitionOfDone}
	text := g.Text
	if g.Shape == GoalLegacy {
		w.OriginalText = &text
		w.Category = g.Dimension
	} else {
		w.Text = &text
		w.Dimension = g.Dimension
	}
	return json.Marshal(w)
}

// LoadSnapshot reads and parses a snapshot JSON file.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSnapshot(data)
}

// ParseSnapshot parses snapshot JSON. Unknown fields are rejected.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := decodeStrict(data, &s); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &s, nil
}

// decodeStrict decodes data into v, rejecting unknown fields. Custom
// unmarshalers get a fresh decoder, so each one calls this itself.
func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
