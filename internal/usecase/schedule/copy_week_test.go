package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioflow/studio-scheduler/internal/httperr"
	"github.com/studioflow/studio-scheduler/internal/models"
)

func TestCopyWeek(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()

	source := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	other := time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC)

	a := repo.addBlock(models.TimeBlock{StaffID: 5, DayOfWeek: 1, StartTime: "09:00", EndTime: "12:00", Active: true, WeekStart: &source})
	b := repo.addBlock(models.TimeBlock{StaffID: 5, DayOfWeek: 3, StartTime: "14:00", EndTime: "18:00", Active: true, WeekStart: &source})
	repo.addBlock(models.TimeBlock{StaffID: 5, DayOfWeek: 4, StartTime: "09:00", EndTime: "12:00", Active: true, WeekStart: &other})
	repo.addBlock(models.TimeBlock{StaffID: 5, DayOfWeek: 5, StartTime: "09:00", EndTime: "12:00", Active: true, IsRecurring: true})

	uc := NewCopyWeek(repo, nil, cache)

	clones, err := uc.Execute(context.Background(), CopyWeekInput{
		StudioID:        1,
		ActorID:         9,
		SourceWeekStart: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), // quarta da semana de origem
		TargetWeekStart: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Só os dois blocos ancorados na semana de origem são clonados;
	// o de outra semana e o template recorrente ficam de fora
	require.Len(t, clones, 2)

	target := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	for _, c := range clones {
		assert.NotZero(t, c.ID)
		assert.NotEqual(t, a.ID, c.ID)
		assert.NotEqual(t, b.ID, c.ID)
		require.NotNil(t, c.WeekStart)
		assert.Equal(t, target, *c.WeekStart)
	}

	require.Len(t, repo.batchCreated, 1)
	assert.Equal(t, []uint{1}, cache.invalidated)

	// Originais preservados na semana de origem
	assert.Equal(t, source, *repo.blocks[a.ID].WeekStart)
}

func TestCopyWeekSameWeek(t *testing.T) {
	repo := newFakeRepo()

	uc := NewCopyWeek(repo, nil, nil)

	// Datas diferentes dentro da mesma semana
	_, err := uc.Execute(context.Background(), CopyWeekInput{
		StudioID:        1,
		SourceWeekStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		TargetWeekStart: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC),
	})
	assert.True(t, httperr.IsBusiness(err, "source_and_target_week_equal"))
}

func TestCopyWeekEmptySource(t *testing.T) {
	repo := newFakeRepo()
	cache := newFakeCache()

	uc := NewCopyWeek(repo, nil, cache)

	clones, err := uc.Execute(context.Background(), CopyWeekInput{
		StudioID:        1,
		SourceWeekStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		TargetWeekStart: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Empty(t, clones)
	assert.Empty(t, repo.batchCreated)
	assert.Empty(t, cache.invalidated)
}
