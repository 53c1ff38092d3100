package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solaceapp/solace/internal/domain"
	"github.com/solaceapp/solace/internal/repository"
	"github.com/solaceapp/solace/internal/testutil"
)

func newCheckinService(t *testing.T) CheckinService {
	database := testutil.NewTestDB(t)
	return NewCheckinService(repository.NewSQLiteCheckinRepo(database))
}

func TestCheckinService_LogAssignsIDAndTimestamp(t *testing.T) {
	svc := newCheckinService(t)
	ctx := context.Background()

	checkin := &domain.MoodCheckin{Mood: "anxious", Intensity: 6}
	require.NoError(t, svc.Log(ctx, checkin))

	assert.NotEmpty(t, checkin.ID)
	assert.False(t, checkin.CreatedAt.IsZero())

	got, err := svc.GetByID(ctx, checkin.ID)
	require.NoError(t, err)
	assert.Equal(t, "anxious", got.Mood)
	assert.Equal(t, 6, got.Intensity)
}

func TestCheckinService_LogRejectsInvalid(t *testing.T) {
	svc := newCheckinService(t)
	ctx := context.Background()

	assert.Error(t, svc.Log(ctx, &domain.MoodCheckin{Intensity: 5}))
	assert.Error(t, svc.Log(ctx, &domain.MoodCheckin{Mood: "sad", Intensity: 0}))
	assert.Error(t, svc.Log(ctx, &domain.MoodCheckin{Mood: "sad", Intensity: 11}))
}

func TestCheckinService_SummaryGroupsByMood(t *testing.T) {
	svc := newCheckinService(t)
	ctx := context.Background()

	require.NoError(t, svc.Log(ctx, testutil.NewTestCheckin("anxious", 8)))
	require.NoError(t, svc.Log(ctx, testutil.NewTestCheckin("anxious", 6)))
	require.NoError(t, svc.Log(ctx, testutil.NewTestCheckin("calm", 2)))

	summary, err := svc.Summary(ctx, 7)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, "anxious", summary[0].Mood)
	assert.Equal(t, 2, summary[0].Count)
	assert.InDelta(t, 7.0, summary[0].AvgIntensity, 1e-9)
	assert.Equal(t, "calm", summary[1].Mood)
}

func TestCheckinService_DeleteRemovesCheckin(t *testing.T) {
	svc := newCheckinService(t)
	ctx := context.Background()

	checkin := testutil.NewTestCheckin("tired", 4)
	require.NoError(t, svc.Log(ctx, checkin))
	require.NoError(t, svc.Delete(ctx, checkin.ID))

	_, err := svc.GetByID(ctx, checkin.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
