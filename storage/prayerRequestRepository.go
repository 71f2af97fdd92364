package storage

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/CongregationConsole/models"
)

const prayerRequestsTable = "prayer_requests"

// PrayerRequestRepository serves prayer requests from PostgreSQL.
type PrayerRequestRepository struct {
	db *goqu.Database
}

var _ PrayerRequestStore = (*PrayerRequestRepository)(nil)

func NewPrayerRequestRepository(db *goqu.Database) *PrayerRequestRepository {
	return &PrayerRequestRepository{db: db}
}

func (r *PrayerRequestRepository) ListPrayerRequests(ctx context.Context, filter models.PrayerRequestFilter) ([]models.PrayerRequest, error) {
	ds := r.db.From(prayerRequestsTable)
	if filter.Status != "" {
		ds = ds.Where(goqu.C("status").Eq(filter.Status))
	}
	if filter.Category != "" {
		ds = ds.Where(goqu.C("category").Eq(filter.Category))
	}

	requests := []models.PrayerRequest{}
	err := ds.Order(goqu.C("datetime_create").Desc(), goqu.C("prayer_request_id").Desc()).
		ScanStructsContext(ctx, &requests)
	if err != nil {
		return nil, backendFailure("list prayer requests", err)
	}
	return requests, nil
}

func (r *PrayerRequestRepository) GetPrayerRequest(ctx context.Context, id int) (models.PrayerRequest, bool, error) {
	var request models.PrayerRequest
	found, err := r.db.From(prayerRequestsTable).
		Where(goqu.C("prayer_request_id").Eq(id)).
		ScanStructContext(ctx, &request)
	if err != nil {
		return models.PrayerRequest{}, false, backendFailure("get prayer request", err)
	}
	return request, found, nil
}

func (r *PrayerRequestRepository) CreatePrayerRequest(ctx context.Context, body models.PrayerRequestCreate) (models.PrayerRequest, error) {
	var request models.PrayerRequest
	_, err := r.db.Insert(prayerRequestsTable).
		Rows(models.NewPrayerRequest(body)).
		Returning(goqu.Star()).
		Executor().
		ScanStructContext(ctx, &request)
	if err != nil {
		return models.PrayerRequest{}, backendFailure("create prayer request", err)
	}
	return request, nil
}

func (r *PrayerRequestRepository) UpdatePrayerRequest(ctx context.Context, id int, body models.PrayerRequestUpdate) (models.PrayerRequest, error) {
	record := goqu.Record(body.Record())
	record["datetime_update"] = goqu.L("NOW()")
	return r.updateReturning(ctx, "update prayer request", id, record)
}

func (r *PrayerRequestRepository) DeletePrayerRequest(ctx context.Context, id int) error {
	_, err := r.db.Delete(prayerRequestsTable).
		Where(goqu.C("prayer_request_id").Eq(id)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return backendFailure("delete prayer request", err)
	}
	return nil
}

// IncrementPrayerCount lets the database add one in a single statement.
func (r *PrayerRequestRepository) IncrementPrayerCount(ctx context.Context, id int) (models.PrayerRequest, error) {
	return r.updateReturning(ctx, "increment prayer count", id, goqu.Record{
		"prayer_count":    goqu.L("prayer_count + 1"),
		"datetime_update": goqu.L("NOW()"),
	})
}

func (r *PrayerRequestRepository) updateReturning(ctx context.Context, op string, id int, record goqu.Record) (models.PrayerRequest, error) {
	var request models.PrayerRequest
	found, err := r.db.Update(prayerRequestsTable).
		Set(record).
		Where(goqu.C("prayer_request_id").Eq(id)).
		Returning(goqu.Star()).
		Executor().
		ScanStructContext(ctx, &request)
	if err != nil {
		return models.PrayerRequest{}, backendFailure(op, err)
	}
	if !found {
		return models.PrayerRequest{}, notFound("prayer request", id)
	}
	return request, nil
}
