package storage

import (
	"context"
	"errors"

	"github.com/CongregationConsole/models"
)

// errDayWithoutProgram mirrors the foreign key the relational schema puts on
// program_days.program_id.
var errDayWithoutProgram = errors.New("program_days.program_id references a missing program")

// errDuplicateSlug mirrors the UNIQUE constraint on programs.slug.
var errDuplicateSlug = errors.New("duplicate key value violates unique constraint on programs.slug")

func programOrder(a, b models.Program) bool {
	return olderFirst(a.Datetime_Create, b.Datetime_Create, a.Program_ID, b.Program_ID)
}

func dayOrder(a, b models.ProgramDay) bool {
	if a.Day_Number != b.Day_Number {
		return a.Day_Number < b.Day_Number
	}
	return a.Program_Day_ID < b.Program_Day_ID
}

func programMatcher(filter models.ProgramFilter) func(models.Program) bool {
	return func(p models.Program) bool {
		if filter.Published != nil && p.Published != *filter.Published {
			return false
		}
		if filter.Category != "" && p.Category != filter.Category {
			return false
		}
		return true
	}
}

func (s *MemStore) ListPrograms(ctx context.Context, filter models.ProgramFilter) ([]models.Program, error) {
	return s.programs.list(programMatcher(filter), programOrder), nil
}

func (s *MemStore) ListProgramsWithDays(ctx context.Context, filter models.ProgramFilter) ([]models.ProgramWithDays, error) {
	programs := s.programs.list(programMatcher(filter), programOrder)
	wanted := make(map[int]bool, len(programs))
	for _, p := range programs {
		wanted[p.Program_ID] = true
	}
	days := s.programDays.list(func(d models.ProgramDay) bool { return wanted[d.Program_ID] }, dayOrder)
	return groupDays(programs, days), nil
}

// groupDays attaches each day to its program, preserving the order of both
// slices. Programs without days get an empty, non-nil slice.
func groupDays(programs []models.Program, days []models.ProgramDay) []models.ProgramWithDays {
	byProgram := make(map[int][]models.ProgramDay, len(programs))
	for _, d := range days {
		byProgram[d.Program_ID] = append(byProgram[d.Program_ID], d)
	}
	out := make([]models.ProgramWithDays, 0, len(programs))
	for _, p := range programs {
		programDays := byProgram[p.Program_ID]
		if programDays == nil {
			programDays = []models.ProgramDay{}
		}
		out = append(out, models.ProgramWithDays{Program: p, Days: programDays})
	}
	return out
}

func (s *MemStore) GetProgram(ctx context.Context, id int) (models.Program, bool, error) {
	program, ok := s.programs.get(id)
	return program, ok, nil
}

func (s *MemStore) GetProgramBySlug(ctx context.Context, slug string) (models.Program, bool, error) {
	matches := s.programs.list(func(p models.Program) bool { return p.Slug == slug }, programOrder)
	if len(matches) == 0 {
		return models.Program{}, false, nil
	}
	return matches[0], true, nil
}

// slugTaken reports whether a program other than id already uses slug.
// Callers hold programsMu.
func (s *MemStore) slugTaken(slug string, id int) bool {
	return s.programs.count(func(p models.Program) bool {
		return p.Slug == slug && p.Program_ID != id
	}) > 0
}

func (s *MemStore) CreateProgram(ctx context.Context, body models.ProgramCreate) (models.Program, error) {
	s.programsMu.Lock()
	defer s.programsMu.Unlock()

	if s.slugTaken(body.Slug, 0) {
		return models.Program{}, backendFailure("create program", errDuplicateSlug)
	}
	now := s.now()
	return s.programs.insert(func(id int) models.Program {
		program := models.NewProgram(body)
		program.Program_ID = id
		program.Datetime_Create = now
		program.Datetime_Update = now
		return program
	}), nil
}

func (s *MemStore) UpdateProgram(ctx context.Context, id int, body models.ProgramUpdate) (models.Program, error) {
	s.programsMu.Lock()
	defer s.programsMu.Unlock()

	if body.Slug != nil && s.slugTaken(*body.Slug, id) {
		if _, ok := s.programs.get(id); !ok {
			return models.Program{}, notFound("program", id)
		}
		return models.Program{}, backendFailure("update program", errDuplicateSlug)
	}
	now := s.now()
	program, ok := s.programs.update(id, func(p *models.Program) {
		body.Apply(p)
		p.Datetime_Update = now
	})
	if !ok {
		return models.Program{}, notFound("program", id)
	}
	return program, nil
}

func (s *MemStore) DeleteProgram(ctx context.Context, id int) error {
	s.programsMu.Lock()
	defer s.programsMu.Unlock()

	s.programDays.removeWhere(func(d models.ProgramDay) bool { return d.Program_ID == id })
	s.programs.remove(id)
	return nil
}

func (s *MemStore) ToggleProgramPublished(ctx context.Context, id int) (models.Program, error) {
	current, ok := s.programs.get(id)
	if !ok {
		return models.Program{}, notFound("program", id)
	}
	published := !current.Published
	return s.UpdateProgram(ctx, id, models.ProgramUpdate{Published: &published})
}

func (s *MemStore) ListProgramDays(ctx context.Context, programID int) ([]models.ProgramDay, error) {
	return s.programDays.list(func(d models.ProgramDay) bool { return d.Program_ID == programID }, dayOrder), nil
}

func (s *MemStore) GetProgramDay(ctx context.Context, id int) (models.ProgramDay, bool, error) {
	day, ok := s.programDays.get(id)
	return day, ok, nil
}

// CreateProgramDay holds programsMu from the parent check through the
// recount, so a concurrent DeleteProgram cannot orphan the new day.
func (s *MemStore) CreateProgramDay(ctx context.Context, body models.ProgramDayCreate) (models.ProgramDay, error) {
	s.programsMu.Lock()
	defer s.programsMu.Unlock()

	if _, ok := s.programs.get(body.Program_ID); !ok {
		return models.ProgramDay{}, backendFailure("create program day", errDayWithoutProgram)
	}
	now := s.now()
	day := s.programDays.insert(func(id int) models.ProgramDay {
		day := models.NewProgramDay(body)
		day.Program_Day_ID = id
		day.Datetime_Create = now
		return day
	})
	s.recountDays(day.Program_ID)
	return day, nil
}

func (s *MemStore) UpdateProgramDay(ctx context.Context, id int, body models.ProgramDayUpdate) (models.ProgramDay, error) {
	day, ok := s.programDays.update(id, body.Apply)
	if !ok {
		return models.ProgramDay{}, notFound("program day", id)
	}
	return day, nil
}

func (s *MemStore) DeleteProgramDay(ctx context.Context, id int) error {
	s.programsMu.Lock()
	defer s.programsMu.Unlock()

	day, ok := s.programDays.get(id)
	if !ok {
		return nil
	}
	s.programDays.remove(id)
	s.recountDays(day.Program_ID)
	return nil
}

// recountDays writes the current number of days back onto the program.
// Callers hold programsMu; readers may still see the day before the count.
func (s *MemStore) recountDays(programID int) {
	total := s.programDays.count(func(d models.ProgramDay) bool { return d.Program_ID == programID })
	now := s.now()
	s.programs.update(programID, func(p *models.Program) {
		p.Total_Days = total
		p.Datetime_Update = now
	})
}
