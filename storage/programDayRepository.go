package storage

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/CongregationConsole/models"
)

// ProgramDayRepository serves program days from PostgreSQL and keeps the
// owning program's total_days in step with them.
type ProgramDayRepository struct {
	db *goqu.Database
}

var _ ProgramDayStore = (*ProgramDayRepository)(nil)

func NewProgramDayRepository(db *goqu.Database) *ProgramDayRepository {
	return &ProgramDayRepository{db: db}
}

func (r *ProgramDayRepository) ListProgramDays(ctx context.Context, programID int) ([]models.ProgramDay, error) {
	days := []models.ProgramDay{}
	err := r.db.From(programDaysTable).
		Where(goqu.C("program_id").Eq(programID)).
		Order(goqu.C("day_number").Asc(), goqu.C("program_day_id").Asc()).
		ScanStructsContext(ctx, &days)
	if err != nil {
		return nil, backendFailure("list program days", err)
	}
	return days, nil
}

func (r *ProgramDayRepository) GetProgramDay(ctx context.Context, id int) (models.ProgramDay, bool, error) {
	var day models.ProgramDay
	found, err := r.db.From(programDaysTable).
		Where(goqu.C("program_day_id").Eq(id)).
		ScanStructContext(ctx, &day)
	if err != nil {
		return models.ProgramDay{}, false, backendFailure("get program day", err)
	}
	return day, found, nil
}

// CreateProgramDay inserts the day, then recounts the parent. A missing
// parent surfaces as the foreign key violation reported by the database.
// If the recount fails the day is already stored: it is returned together
// with the error, and retrying the create would add a second day.
func (r *ProgramDayRepository) CreateProgramDay(ctx context.Context, body models.ProgramDayCreate) (models.ProgramDay, error) {
	var day models.ProgramDay
	_, err := r.db.Insert(programDaysTable).
		Rows(models.NewProgramDay(body)).
		Returning(goqu.Star()).
		Executor().
		ScanStructContext(ctx, &day)
	if err != nil {
		return models.ProgramDay{}, backendFailure("create program day", err)
	}
	if err := r.recountDays(ctx, day.Program_ID); err != nil {
		return day, err
	}
	return day, nil
}

func (r *ProgramDayRepository) UpdateProgramDay(ctx context.Context, id int, body models.ProgramDayUpdate) (models.ProgramDay, error) {
	record := body.Record()
	if len(record) == 0 {
		day, found, err := r.GetProgramDay(ctx, id)
		if err != nil {
			return models.ProgramDay{}, err
		}
		if !found {
			return models.ProgramDay{}, notFound("program day", id)
		}
		return day, nil
	}

	var day models.ProgramDay
	found, err := r.db.Update(programDaysTable).
		Set(goqu.Record(record)).
		Where(goqu.C("program_day_id").Eq(id)).
		Returning(goqu.Star()).
		Executor().
		ScanStructContext(ctx, &day)
	if err != nil {
		return models.ProgramDay{}, backendFailure("update program day", err)
	}
	if !found {
		return models.ProgramDay{}, notFound("program day", id)
	}
	return day, nil
}

// DeleteProgramDay looks the day up first to learn its program. Deleting a
// day that does not exist is a no-op.
func (r *ProgramDayRepository) DeleteProgramDay(ctx context.Context, id int) error {
	day, found, err := r.GetProgramDay(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	_, err = r.db.Delete(programDaysTable).
		Where(goqu.C("program_day_id").Eq(id)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return backendFailure("delete program day", err)
	}
	return r.recountDays(ctx, day.Program_ID)
}

// recountDays sets total_days from a live count rather than adjusting it, so
// any drift is corrected by the next day mutation.
func (r *ProgramDayRepository) recountDays(ctx context.Context, programID int) error {
	_, err := r.db.Update(programsTable).
		Set(goqu.Record{
			"total_days":      goqu.L("(SELECT COUNT(*) FROM program_days WHERE program_id = ?)", programID),
			"datetime_update": goqu.L("NOW()"),
		}).
		Where(goqu.C("program_id").Eq(programID)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return backendFailure("recount program days", err)
	}
	return nil
}
