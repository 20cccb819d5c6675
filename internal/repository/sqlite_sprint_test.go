package repository

import (
	"context"
	"testing"

	"github.com/alextm0/identity-shift-sub002/internal/domain"
	"github.com/alextm0/identity-shift-sub002/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSprintRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteSprintRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s := testutil.NewTestSprint("Q1 push", monday)
	require.NoError(t, repo.Create(ctx, s))

	fetched, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Q1 push", fetched.Name)
	assert.Equal(t, monday, fetched.StartDate)
	assert.Equal(t, monday.AddDate(0, 0, 27), fetched.EndDate)
	assert.Equal(t, domain.SprintActive, fetched.Status)
}

func TestSprintRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteSprintRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSprintRepo_OnlyOneActive(t *testing.T) {
	repo := NewSQLiteSprintRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestSprint("first", monday)))
	err := repo.Create(ctx, testutil.NewTestSprint("second", monday.AddDate(0, 1, 0)))
	assert.Error(t, err, "second active sprint violates the partial unique index")

	require.NoError(t, repo.Create(ctx, testutil.NewTestSprint("old", monday.AddDate(0, -2, 0),
		testutil.WithSprintStatus(domain.SprintCompleted))))
}

func TestSprintRepo_GetActiveAndUpdateStatus(t *testing.T) {
	repo := NewSQLiteSprintRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	_, err := repo.GetActive(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	s := testutil.NewTestSprint("current", monday)
	require.NoError(t, repo.Create(ctx, s))

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, s.ID, active.ID)

	require.NoError(t, repo.UpdateStatus(ctx, s.ID, domain.SprintCompleted))
	_, err = repo.GetActive(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "missing", domain.SprintCompleted), ErrNotFound)
}

func TestSprintRepo_ListNewestFirst(t *testing.T) {
	repo := NewSQLiteSprintRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	done := domain.SprintCompleted
	require.NoError(t, repo.Create(ctx, testutil.NewTestSprint("a", monday.AddDate(0, -2, 0), testutil.WithSprintStatus(done))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSprint("c", monday)))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSprint("b", monday.AddDate(0, -1, 0), testutil.WithSprintStatus(done))))

	sprints, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sprints, 3)
	assert.Equal(t, "c", sprints[0].Name)
	assert.Equal(t, "b", sprints[1].Name)
	assert.Equal(t, "a", sprints[2].Name)
}
