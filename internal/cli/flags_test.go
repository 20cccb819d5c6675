package cli

import (
	"testing"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFlag(t *testing.T) {
	var f dateFlag
	assert.Equal(t, "date", f.Type())
	assert.Equal(t, "", f.String())
	assert.Nil(t, f.ptr())

	fallback := time.Date(2025, 3, 12, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), f.Or(fallback))

	require.NoError(t, f.Set("2025-03-10"))
	assert.Equal(t, "2025-03-10", f.String())
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), f.Or(fallback))
	require.NotNil(t, f.ptr())

	assert.Error(t, f.Set("March 10"))
	assert.Equal(t, "2025-03-10", f.String(), "a rejected value keeps the previous day")
}

func TestParseRatings(t *testing.T) {
	got, err := parseRatings(map[string]int{"health": 7, "Fun and Recreation": 4})
	require.NoError(t, err)
	assert.Equal(t, domain.DimensionRatings{domain.DimensionHealth: 7, domain.DimensionFun: 4}, got)

	_, err = parseRatings(map[string]int{"luck": 5})
	assert.ErrorContains(t, err, "unknown dimension")

	_, err = parseRatings(map[string]int{"career": 0})
	assert.ErrorIs(t, err, domain.ErrInvalidRating)
}

func TestIndexArg(t *testing.T) {
	i, err := indexArg("2", 3, "goal")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	for _, bad := range []string{"0", "4", "x"} {
		_, err := indexArg(bad, 3, "goal")
		assert.Error(t, err, bad)
	}
}
