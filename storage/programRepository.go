package storage

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/CongregationConsole/models"
)

const (
	programsTable    = "programs"
	programDaysTable = "program_days"
)

// ProgramRepository serves programs from PostgreSQL.
type ProgramRepository struct {
	db *goqu.Database
}

var _ ProgramStore = (*ProgramRepository)(nil)

func NewProgramRepository(db *goqu.Database) *ProgramRepository {
	return &ProgramRepository{db: db}
}

func (r *ProgramRepository) filtered(filter models.ProgramFilter) *goqu.SelectDataset {
	ds := r.db.From(programsTable)
	if filter.Published != nil {
		ds = ds.Where(goqu.C("published").Eq(*filter.Published))
	}
	if filter.Category != "" {
		ds = ds.Where(goqu.C("category").Eq(filter.Category))
	}
	return ds.Order(goqu.C("datetime_create").Asc(), goqu.C("program_id").Asc())
}

func (r *ProgramRepository) ListPrograms(ctx context.Context, filter models.ProgramFilter) ([]models.Program, error) {
	programs := []models.Program{}
	if err := r.filtered(filter).ScanStructsContext(ctx, &programs); err != nil {
		return nil, backendFailure("list programs", err)
	}
	return programs, nil
}

// ListProgramsWithDays issues one query for the programs and one for all of
// their days.
func (r *ProgramRepository) ListProgramsWithDays(ctx context.Context, filter models.ProgramFilter) ([]models.ProgramWithDays, error) {
	programs, err := r.ListPrograms(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(programs) == 0 {
		return []models.ProgramWithDays{}, nil
	}

	ids := make([]int, 0, len(programs))
	for _, p := range programs {
		ids = append(ids, p.Program_ID)
	}

	days := []models.ProgramDay{}
	err = r.db.From(programDaysTable).
		Where(goqu.C("program_id").In(ids)).
		Order(goqu.C("day_number").Asc(), goqu.C("program_day_id").Asc()).
		ScanStructsContext(ctx, &days)
	if err != nil {
		return nil, backendFailure("list program days", err)
	}
	return groupDays(programs, days), nil
}

func (r *ProgramRepository) GetProgram(ctx context.Context, id int) (models.Program, bool, error) {
	var program models.Program
	found, err := r.db.From(programsTable).
		Where(goqu.C("program_id").Eq(id)).
		ScanStructContext(ctx, &program)
	if err != nil {
		return models.Program{}, false, backendFailure("get program", err)
	}
	return program, found, nil
}

func (r *ProgramRepository) GetProgramBySlug(ctx context.Context, slug string) (models.Program, bool, error) {
	var program models.Program
	found, err := r.db.From(programsTable).
		Where(goqu.C("slug").Eq(slug)).
		ScanStructContext(ctx, &program)
	if err != nil {
		return models.Program{}, false, backendFailure("get program by slug", err)
	}
	return program, found, nil
}

func (r *ProgramRepository) CreateProgram(ctx context.Context, body models.ProgramCreate) (models.Program, error) {
	var program models.Program
	_, err := r.db.Insert(programsTable).
		Rows(models.NewProgram(body)).
		Returning(goqu.Star()).
		Executor().
		ScanStructContext(ctx, &program)
	if err != nil {
		return models.Program{}, backendFailure("create program", err)
	}
	return program, nil
}

func (r *ProgramRepository) UpdateProgram(ctx context.Context, id int, body models.ProgramUpdate) (models.Program, error) {
	record := goqu.Record(body.Record())
	record["datetime_update"] = goqu.L("NOW()")

	var program models.Program
	found, err := r.db.Update(programsTable).
		Set(record).
		Where(goqu.C("program_id").Eq(id)).
		Returning(goqu.Star()).
		Executor().
		ScanStructContext(ctx, &program)
	if err != nil {
		return models.Program{}, backendFailure("update program", err)
	}
	if !found {
		return models.Program{}, notFound("program", id)
	}
	return program, nil
}

// DeleteProgram relies on the ON DELETE CASCADE of program_days.
func (r *ProgramRepository) DeleteProgram(ctx context.Context, id int) error {
	_, err := r.db.Delete(programsTable).
		Where(goqu.C("program_id").Eq(id)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return backendFailure("delete program", err)
	}
	return nil
}

func (r *ProgramRepository) ToggleProgramPublished(ctx context.Context, id int) (models.Program, error) {
	current, found, err := r.GetProgram(ctx, id)
	if err != nil {
		return models.Program{}, err
	}
	if !found {
		return models.Program{}, notFound("program", id)
	}
	published := !current.Published
	return r.UpdateProgram(ctx, id, models.ProgramUpdate{Published: &published})
}
