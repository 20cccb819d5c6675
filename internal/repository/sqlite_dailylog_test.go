package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alextm0/identity-shift-sub002/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestDailyLogRepo_UpsertAndGetByDate(t *testing.T) {
	repo := NewSQLiteDailyLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	e := testutil.NewTestDailyLog(monday,
		testutil.WithEnergy(4),
		testutil.WithUnits(2, 1),
		testutil.WithProof("shipped the parser"),
		testutil.WithLogNote("good day"))
	e.MainFocusCompleted = true
	require.NoError(t, repo.Upsert(ctx, e))

	fetched, err := repo.GetByDate(ctx, monday.Add(15*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, e.ID, fetched.ID)
	assert.Equal(t, monday, fetched.Date)
	assert.Equal(t, 4, fetched.EnergyLevel)
	assert.Equal(t, 2, fetched.ProgressUnits)
	assert.Equal(t, 1, fetched.MotionUnits)
	assert.True(t, fetched.MainFocusCompleted)
	assert.Equal(t, "shipped the parser", fetched.Proof)
	assert.Equal(t, "good day", fetched.Note)
}

func TestDailyLogRepo_UpsertSameDateKeepsOriginalID(t *testing.T) {
	repo := NewSQLiteDailyLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := testutil.NewTestDailyLog(monday, testutil.WithEnergy(2))
	require.NoError(t, repo.Upsert(ctx, first))

	second := testutil.NewTestDailyLog(monday, testutil.WithEnergy(5))
	require.NoError(t, repo.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID, "upsert returns the stored id")

	entries, err := repo.ListBetween(ctx, monday, monday)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].EnergyLevel)
}

func TestDailyLogRepo_ListBetweenIsInclusiveAndOrdered(t *testing.T) {
	repo := NewSQLiteDailyLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for _, offset := range []int{6, 0, 3, 7, -1} {
		require.NoError(t, repo.Upsert(ctx, testutil.NewTestDailyLog(monday.AddDate(0, 0, offset))))
	}

	entries, err := repo.ListBetween(ctx, monday, monday.AddDate(0, 0, 6))
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, monday, entries[0].Date)
	assert.Equal(t, monday.AddDate(0, 0, 3), entries[1].Date)
	assert.Equal(t, monday.AddDate(0, 0, 6), entries[2].Date)
}

func TestDailyLogRepo_Delete(t *testing.T) {
	repo := NewSQLiteDailyLogRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	e := testutil.NewTestDailyLog(monday)
	require.NoError(t, repo.Upsert(ctx, e))
	require.NoError(t, repo.Delete(ctx, e.ID))

	_, err := repo.GetByID(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, e.ID), ErrNotFound)
}

func TestDailyLogRepo_RejectsEnergyOutOfRange(t *testing.T) {
	repo := NewSQLiteDailyLogRepo(testutil.NewTestDB(t))

	err := repo.Upsert(context.Background(), testutil.NewTestDailyLog(monday, testutil.WithEnergy(9)))
	assert.Error(t, err)
}
