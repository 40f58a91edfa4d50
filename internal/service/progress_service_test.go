package service

import (
	"testing"
	"time"

	"lexilearn_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func newProgress(totalSteps int) *model.Progress {
	return &model.Progress{
		StudentID:  1,
		TotalSteps: totalSteps,
		Status:     model.NotStarted,
	}
}

func TestApplyProgressUpdateStartsProgress(t *testing.T) {
	p := newProgress(10)
	now := time.Now()

	err := ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: 3, TimeSpent: intPtr(120)}, now)
	require.NoError(t, err)

	assert.Equal(t, model.InProgress, p.Status)
	assert.Equal(t, 3, p.CurrentStep)
	assert.Equal(t, 120, p.TimeSpent)
	assert.Equal(t, now, p.LastActivity)
	assert.Nil(t, p.CompletionDate)
}

func TestApplyProgressUpdateAccumulatesTime(t *testing.T) {
	p := newProgress(10)
	now := time.Now()

	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: 1, TimeSpent: intPtr(60)}, now))
	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: 2, TimeSpent: intPtr(30)}, now))

	assert.Equal(t, 90, p.TimeSpent)
}

func TestApplyProgressUpdateCompletion(t *testing.T) {
	p := newProgress(5)
	now := time.Now()

	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: 5}, now))

	assert.Equal(t, model.Completed, p.Status)
	require.NotNil(t, p.CompletionDate)
	assert.Equal(t, now, *p.CompletionDate)
}

func TestApplyProgressUpdateCompletedNeverDowngrades(t *testing.T) {
	p := newProgress(5)
	first := time.Now()
	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: 5}, first))

	later := first.Add(time.Hour)
	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: 2, Paused: true}, later))

	assert.Equal(t, model.Completed, p.Status)
	require.NotNil(t, p.CompletionDate)
	assert.Equal(t, first, *p.CompletionDate, "completion date is stamped once")
	assert.Equal(t, 2, p.CurrentStep, "step still tracks the latest write")
}

func TestApplyProgressUpdateNoCompletionOnEmptyContent(t *testing.T) {
	p := newProgress(0)

	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: 3}, time.Now()))

	assert.NotEqual(t, model.Completed, p.Status)
	assert.Equal(t, 0, p.CurrentStep, "step clamps to totalSteps")
}

func TestApplyProgressUpdateClampsStep(t *testing.T) {
	p := newProgress(4)

	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: 99}, time.Now()))

	assert.Equal(t, 4, p.CurrentStep)
	assert.Equal(t, model.Completed, p.Status)
}

func TestApplyProgressUpdatePause(t *testing.T) {
	p := newProgress(10)
	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: 2}, time.Now()))

	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: 2, Paused: true}, time.Now()))

	assert.Equal(t, model.Paused, p.Status)
}

func TestApplyProgressUpdateReset(t *testing.T) {
	p := newProgress(10)
	now := time.Now()
	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{
		CurrentStep: 6,
		TimeSpent:   intPtr(300),
		ExerciseResult: &model.ExerciseResult{
			ExerciseIndex: 0,
			IsCorrect:     true,
			Points:        5,
		},
	}, now))
	require.Equal(t, 1, len(p.ExerciseResults))

	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{
		CurrentStep: 0,
		TimeSpent:   intPtr(10),
		Reset:       true,
	}, now))

	assert.Equal(t, 10, p.TimeSpent, "reset overwrites rather than accumulates")
	assert.Empty(t, p.ExerciseResults)
	assert.Equal(t, 1, p.Attempts)
	assert.Equal(t, 0, p.CurrentStep)
}

func TestApplyProgressUpdateExerciseResultUpsert(t *testing.T) {
	p := newProgress(10)
	now := time.Now()

	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{
		CurrentStep:    1,
		ExerciseResult: &model.ExerciseResult{ExerciseIndex: 2, IsCorrect: false, Points: 0},
	}, now))
	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{
		CurrentStep:    2,
		ExerciseResult: &model.ExerciseResult{ExerciseIndex: 2, IsCorrect: true, Points: 5},
	}, now))
	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{
		CurrentStep:    3,
		ExerciseResult: &model.ExerciseResult{ExerciseIndex: 4, IsCorrect: true, Points: 5},
	}, now))

	require.Len(t, p.ExerciseResults, 2)
	assert.True(t, p.ExerciseResults[0].IsCorrect, "same index replaces the earlier entry")
	assert.Equal(t, 4, p.ExerciseResults[1].ExerciseIndex)
}

func TestApplyProgressUpdateValidation(t *testing.T) {
	p := newProgress(10)

	assert.Error(t, ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: -1}, time.Now()))
	assert.Error(t, ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: 0, Score: intPtr(101)}, time.Now()))
	assert.Error(t, ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: 0, Score: intPtr(-1)}, time.Now()))
}

func TestApplyProgressUpdateScore(t *testing.T) {
	p := newProgress(10)

	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: 1, Score: intPtr(80)}, time.Now()))
	assert.Equal(t, 80, p.Score)

	// Score without an explicit value stays put.
	require.NoError(t, ApplyProgressUpdate(p, ProgressUpdate{CurrentStep: 2}, time.Now()))
	assert.Equal(t, 80, p.Score)
}

func TestProgressViewDerivedFields(t *testing.T) {
	p := &model.Progress{
		StudentID:   1,
		TotalSteps:  8,
		CurrentStep: 4,
		Score:       75,
		ExerciseResults: []model.ExerciseResult{
			{ExerciseIndex: 0, IsCorrect: true, Points: 10},
			{ExerciseIndex: 1, IsCorrect: false, Points: 10},
		},
	}

	view := p.View()

	assert.Equal(t, 50, view.CompletionPercentage)
	assert.Equal(t, 75, view.AverageScore, "averageScore mirrors the stored score")
	assert.Equal(t, 50, view.ExerciseAccuracy)
}

func TestProgressViewEmptyContent(t *testing.T) {
	p := &model.Progress{StudentID: 1}

	view := p.View()

	assert.Zero(t, view.CompletionPercentage)
	assert.Zero(t, view.ExerciseAccuracy)
}
