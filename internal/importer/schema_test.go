package importer

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSnapshot_GoalShapes(t *testing.T) {
	data := []byte(`{
		"plan_draft": {
			"goals": [
				{"text": "Run a half marathon", "dimension": "health", "annual": true},
				{"originalText": "Save 10k", "category": "finances"}
			]
		}
	}`)

	snap, err := ParseSnapshot(data)
	require.NoError(t, err)
	require.Len(t, snap.PlanDraft.Goals, 2)

	current := snap.PlanDraft.Goals[0]
	assert.Equal(t, GoalCurrent, current.Shape)
	assert.Equal(t, "Run a half marathon", current.Text)
	assert.Equal(t, "health", current.Dimension)
	assert.True(t, current.Annual)

	legacy := snap.PlanDraft.Goals[1]
	assert.Equal(t, GoalLegacy, legacy.Shape)
	assert.Equal(t, "Save 10k", legacy.Text)
	assert.Equal(t, "finances", legacy.Dimension)
}

func TestParseSnapshot_RatingValueShapes(t *testing.T) {
	data := []byte(`{"review": {"year": 2024, "ratings": {"health": 7, "career": {"score": 4}}}}`)

	snap, err := ParseSnapshot(data)
	require.NoError(t, err)
	assert.Equal(t, 7, snap.Review.Ratings["health"].Score)
	assert.Equal(t, 4, snap.Review.Ratings["career"].Score)
}

func TestParseSnapshot_RejectsUnknownTopLevelFields(t *testing.T) {
	_, err := ParseSnapshot([]byte(`{"projects": []}`))
	assert.Error(t, err)
}

func TestParseSnapshot_RejectsUnknownNestedFields(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"goal", `{"plan_draft": {"goals": [{"text": "Run", "annual": true, "definitonOfDone": "sub 2h"}]}}`},
		{"legacy goal", `{"plan_draft": {"goals": [{"originalText": "Save", "categroy": "finances"}]}}`},
		{"rating object", `{"review": {"year": 2024, "ratings": {"career": {"score": 4, "note": "meh"}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSnapshot([]byte(tt.data))
			assert.ErrorContains(t, err, "unknown field")
		})
	}
}

func TestParseSnapshot_BadRatingValue(t *testing.T) {
	_, err := ParseSnapshot([]byte(`{"review": {"year": 2024, "ratings": {"health": "high"}}}`))
	assert.Error(t, err)
}

func TestGoalImport_MarshalKeepsShape(t *testing.T) {
	legacy := GoalImport{Shape: GoalLegacy, Text: "Save 10k", Dimension: "finances"}

	data, err := json.Marshal(legacy)
	require.NoError(t, err)
	assert.JSONEq(t, `{"originalText": "Save 10k", "category": "finances"}`, string(data))

	var back GoalImport
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, legacy, back)
}
