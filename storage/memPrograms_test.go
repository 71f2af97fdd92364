package storage

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CongregationConsole/models"
)

func TestCreateProgramFillsDefaults(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()

	program, err := s.CreateProgram(ctx, models.ProgramCreate{Slug: "ayuno-21", Name: "Ayuno 21"})
	require.NoError(t, err)

	assert.Equal(t, 1, program.Program_ID)
	assert.Equal(t, models.DefaultProgramIcon, program.Icon)
	assert.Equal(t, models.DefaultProgramColor, program.Color)
	assert.Equal(t, models.DefaultProgramCategory, program.Category)
	assert.Equal(t, models.DefaultProgramVersion, program.Version)
	assert.Equal(t, models.DefaultProgramLevel, program.Level)
	assert.Equal(t, 0, program.Total_Days)
	assert.False(t, program.Published)
	assert.False(t, program.Datetime_Create.IsZero())
}

func TestIdentitySequencesArePerTable(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()

	program, err := s.CreateProgram(ctx, models.ProgramCreate{Slug: "a", Name: "A"})
	require.NoError(t, err)
	request, err := s.CreatePrayerRequest(ctx, models.PrayerRequestCreate{Request: "r", Author: "x"})
	require.NoError(t, err)
	day, err := s.CreateProgramDay(ctx, models.ProgramDayCreate{Program_ID: program.Program_ID, Day_Number: 1, Title: "d"})
	require.NoError(t, err)

	assert.Equal(t, 1, program.Program_ID)
	assert.Equal(t, 1, request.Prayer_Request_ID)
	assert.Equal(t, 1, day.Program_Day_ID)
}

func TestTotalDaysFollowsDayMutations(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()

	program, err := s.CreateProgram(ctx, models.ProgramCreate{Slug: "p", Name: "P"})
	require.NoError(t, err)

	var dayIDs []int
	for n := 1; n <= 3; n++ {
		day, err := s.CreateProgramDay(ctx, models.ProgramDayCreate{Program_ID: program.Program_ID, Day_Number: n, Title: "day"})
		require.NoError(t, err)
		dayIDs = append(dayIDs, day.Program_Day_ID)
	}

	got, found, err := s.GetProgram(ctx, program.Program_ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 3, got.Total_Days)
	assert.True(t, got.Datetime_Update.After(program.Datetime_Update))

	require.NoError(t, s.DeleteProgramDay(ctx, dayIDs[1]))
	got, _, _ = s.GetProgram(ctx, program.Program_ID)
	assert.Equal(t, 2, got.Total_Days)

	days, err := s.ListProgramDays(ctx, program.Program_ID)
	require.NoError(t, err)
	assert.Len(t, days, got.Total_Days)

	// Deleting a missing day changes nothing.
	require.NoError(t, s.DeleteProgramDay(ctx, 999))
	got, _, _ = s.GetProgram(ctx, program.Program_ID)
	assert.Equal(t, 2, got.Total_Days)
}

func TestCreateProgramDayWithoutProgram(t *testing.T) {
	s := newTestMemStore()

	_, err := s.CreateProgramDay(context.Background(), models.ProgramDayCreate{Program_ID: 42, Day_Number: 1, Title: "orphan"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBackend))
	var backendErr *BackendError
	assert.True(t, errors.As(err, &backendErr))
	assert.Equal(t, 0, s.programDays.count(nil))
}

func TestDeleteProgramRemovesDays(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()

	keep, _ := s.CreateProgram(ctx, models.ProgramCreate{Slug: "keep", Name: "Keep"})
	drop, _ := s.CreateProgram(ctx, models.ProgramCreate{Slug: "drop", Name: "Drop"})
	for n := 1; n <= 2; n++ {
		_, err := s.CreateProgramDay(ctx, models.ProgramDayCreate{Program_ID: drop.Program_ID, Day_Number: n, Title: "x"})
		require.NoError(t, err)
	}
	_, err := s.CreateProgramDay(ctx, models.ProgramDayCreate{Program_ID: keep.Program_ID, Day_Number: 1, Title: "y"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteProgram(ctx, drop.Program_ID))

	_, found, _ := s.GetProgram(ctx, drop.Program_ID)
	assert.False(t, found)
	days, _ := s.ListProgramDays(ctx, drop.Program_ID)
	assert.Empty(t, days)
	days, _ = s.ListProgramDays(ctx, keep.Program_ID)
	assert.Len(t, days, 1)

	// Second delete is a no-op.
	assert.NoError(t, s.DeleteProgram(ctx, drop.Program_ID))
}

func TestToggleProgramPublished(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()
	program, _ := s.CreateProgram(ctx, models.ProgramCreate{Slug: "t", Name: "T"})

	once, err := s.ToggleProgramPublished(ctx, program.Program_ID)
	require.NoError(t, err)
	assert.True(t, once.Published)

	twice, err := s.ToggleProgramPublished(ctx, program.Program_ID)
	require.NoError(t, err)
	assert.False(t, twice.Published)

	_, err = s.ToggleProgramPublished(ctx, 404)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateProgram(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		body      models.ProgramUpdate
		expectErr error
		check     func(t *testing.T, before, after models.Program)
	}{
		{
			name: "partial update changes only named field",
			id:   1,
			body: models.ProgramUpdate{Name: strp("Nuevo nombre")},
			check: func(t *testing.T, before, after models.Program) {
				assert.Equal(t, "Nuevo nombre", after.Name)
				assert.Equal(t, before.Slug, after.Slug)
				assert.Equal(t, before.Color, after.Color)
				assert.Equal(t, before.Total_Days, after.Total_Days)
				assert.Equal(t, before.Datetime_Create, after.Datetime_Create)
				assert.True(t, after.Datetime_Update.After(before.Datetime_Update))
			},
		},
		{
			name:      "missing program",
			id:        7,
			body:      models.ProgramUpdate{Name: strp("x")},
			expectErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestMemStore()
			ctx := context.Background()
			before, _ := s.CreateProgram(ctx, models.ProgramCreate{Slug: "u", Name: "U", Color: strp("#000000")})

			after, err := s.UpdateProgram(ctx, tt.id, tt.body)

			if tt.expectErr != nil {
				assert.True(t, errors.Is(err, tt.expectErr))
				unchanged, _, _ := s.GetProgram(ctx, before.Program_ID)
				assert.Equal(t, before, unchanged)
				return
			}
			require.NoError(t, err)
			tt.check(t, before, after)
		})
	}
}

func TestListProgramsFiltersAndOrders(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()
	first, _ := s.CreateProgram(ctx, models.ProgramCreate{Slug: "a", Name: "A", Published: boolp(true)})
	_, _ = s.CreateProgram(ctx, models.ProgramCreate{Slug: "b", Name: "B", Category: strp("jovenes")})
	third, _ := s.CreateProgram(ctx, models.ProgramCreate{Slug: "c", Name: "C", Published: boolp(true)})

	tests := []struct {
		name    string
		filter  models.ProgramFilter
		wantIDs []int
	}{
		{name: "no filter", filter: models.ProgramFilter{}, wantIDs: []int{1, 2, 3}},
		{name: "published only", filter: models.ProgramFilter{Published: boolp(true)}, wantIDs: []int{first.Program_ID, third.Program_ID}},
		{name: "by category", filter: models.ProgramFilter{Category: "jovenes"}, wantIDs: []int{2}},
		{name: "nothing matches", filter: models.ProgramFilter{Category: "none"}, wantIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			programs, err := s.ListPrograms(ctx, tt.filter)
			require.NoError(t, err)
			require.NotNil(t, programs)
			ids := []int{}
			for _, p := range programs {
				ids = append(ids, p.Program_ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestListProgramsWithDays(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()
	withDays, _ := s.CreateProgram(ctx, models.ProgramCreate{Slug: "a", Name: "A"})
	_, _ = s.CreateProgram(ctx, models.ProgramCreate{Slug: "b", Name: "B"})
	for _, n := range []int{3, 1, 2} {
		_, err := s.CreateProgramDay(ctx, models.ProgramDayCreate{Program_ID: withDays.Program_ID, Day_Number: n, Title: "d"})
		require.NoError(t, err)
	}

	programs, err := s.ListProgramsWithDays(ctx, models.ProgramFilter{})
	require.NoError(t, err)
	require.Len(t, programs, 2)

	numbers := []int{}
	for _, d := range programs[0].Days {
		numbers = append(numbers, d.Day_Number)
	}
	assert.Equal(t, []int{1, 2, 3}, numbers)
	assert.Equal(t, 3, programs[0].Total_Days)
	assert.NotNil(t, programs[1].Days)
	assert.Empty(t, programs[1].Days)
}

func TestGetProgramBySlug(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()
	created, _ := s.CreateProgram(ctx, models.ProgramCreate{Slug: "ayuno", Name: "Ayuno"})

	got, found, err := s.GetProgramBySlug(ctx, "ayuno")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, created, got)

	_, found, err = s.GetProgramBySlug(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestUpdateProgramDay(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()
	program, _ := s.CreateProgram(ctx, models.ProgramCreate{Slug: "a", Name: "A"})
	day, _ := s.CreateProgramDay(ctx, models.ProgramDayCreate{
		Program_ID: program.Program_ID, Day_Number: 1, Title: "Inicio", Readings: []string{"Juan 1"},
	})

	readings := []string{"Juan 1", "Juan 2"}
	updated, err := s.UpdateProgramDay(ctx, day.Program_Day_ID, models.ProgramDayUpdate{Reflection: strp("Reflexión"), Readings: &readings})
	require.NoError(t, err)
	assert.Equal(t, "Inicio", updated.Title)
	assert.Equal(t, "Reflexión", *updated.Reflection)
	assert.Equal(t, []string{"Juan 1", "Juan 2"}, []string(updated.Readings))
	assert.Equal(t, program.Program_ID, updated.Program_ID)

	_, err = s.UpdateProgramDay(ctx, 99, models.ProgramDayUpdate{Title: strp("x")})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDeleteProgramDuringDayCreateLeavesNoOrphans(t *testing.T) {
	clock := &tickingClock{t: epoch}
	var s *MemStore
	var once sync.Once
	deleted := make(chan error, 1)
	var programID int

	// The first clock reading inside CreateProgramDay starts a competing
	// delete of the parent program.
	armed := false
	s = newMemStore(func() time.Time {
		if armed {
			once.Do(func() {
				go func() { deleted <- s.DeleteProgram(context.Background(), programID) }()
				time.Sleep(20 * time.Millisecond)
			})
		}
		return clock.now()
	})
	ctx := context.Background()

	program, err := s.CreateProgram(ctx, models.ProgramCreate{Slug: "ayuno-21", Name: "Ayuno 21"})
	require.NoError(t, err)
	programID = program.Program_ID

	armed = true
	_, err = s.CreateProgramDay(ctx, models.ProgramDayCreate{Program_ID: programID, Day_Number: 1, Title: "Inicio"})
	require.NoError(t, err)
	require.NoError(t, <-deleted)

	_, found, _ := s.GetProgram(ctx, programID)
	assert.False(t, found)
	orphans := s.programDays.count(func(d models.ProgramDay) bool {
		_, ok := s.programs.get(d.Program_ID)
		return !ok
	})
	assert.Equal(t, 0, orphans)
}

func TestProgramSlugIsUnique(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *MemStore, other models.Program) error
	}{
		{
			name: "create with taken slug",
			mutate: func(s *MemStore, other models.Program) error {
				_, err := s.CreateProgram(context.Background(), models.ProgramCreate{Slug: "ayuno-21", Name: "Copia"})
				return err
			},
		},
		{
			name: "rename to taken slug",
			mutate: func(s *MemStore, other models.Program) error {
				_, err := s.UpdateProgram(context.Background(), other.Program_ID, models.ProgramUpdate{Slug: strp("ayuno-21")})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestMemStore()
			ctx := context.Background()
			_, err := s.CreateProgram(ctx, models.ProgramCreate{Slug: "ayuno-21", Name: "Ayuno 21"})
			require.NoError(t, err)
			other, err := s.CreateProgram(ctx, models.ProgramCreate{Slug: "otro", Name: "Otro"})
			require.NoError(t, err)

			err = tt.mutate(s, other)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBackend))
			assert.Equal(t, 1, s.programs.count(func(p models.Program) bool { return p.Slug == "ayuno-21" }))
			current, _, _ := s.GetProgram(ctx, other.Program_ID)
			assert.Equal(t, "otro", current.Slug)
		})
	}
}

func TestUpdateProgramKeepsOwnSlug(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()
	program, _ := s.CreateProgram(ctx, models.ProgramCreate{Slug: "ayuno-21", Name: "Ayuno 21"})

	updated, err := s.UpdateProgram(ctx, program.Program_ID, models.ProgramUpdate{Slug: strp("ayuno-21"), Name: strp("Ayuno")})

	require.NoError(t, err)
	assert.Equal(t, "Ayuno", updated.Name)
}

func TestConcurrentCreatesClaimSlugOnce(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.CreateProgram(ctx, models.ProgramCreate{Slug: "semana-santa", Name: "Semana Santa"})
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, s.programs.count(nil))
}

func TestProgramDayReadsAreIndependentCopies(t *testing.T) {
	s := newTestMemStore()
	ctx := context.Background()
	program, _ := s.CreateProgram(ctx, models.ProgramCreate{Slug: "a", Name: "A"})
	day, _ := s.CreateProgramDay(ctx, models.ProgramDayCreate{
		Program_ID: program.Program_ID, Day_Number: 1, Title: "Inicio",
		Reflection: strp("original"), Readings: []string{"Juan 1"},
	})

	day.Readings[0] = "cambiado"
	*day.Reflection = "cambiado"
	listed, _ := s.ListProgramDays(ctx, program.Program_ID)
	listed[0].Readings[0] = "cambiado"

	stored, found, err := s.GetProgramDay(ctx, day.Program_Day_ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"Juan 1"}, []string(stored.Readings))
	assert.Equal(t, "original", *stored.Reflection)
}
