package storage

import (
	"context"

	"github.com/CongregationConsole/models"
)

func (s *MemStore) ListPrayerRequests(ctx context.Context, filter models.PrayerRequestFilter) ([]models.PrayerRequest, error) {
	match := func(p models.PrayerRequest) bool {
		if filter.Status != "" && p.Status != filter.Status {
			return false
		}
		if filter.Category != "" && p.Category != filter.Category {
			return false
		}
		return true
	}
	return s.prayerRequests.list(match, func(a, b models.PrayerRequest) bool {
		return newerFirst(a.Datetime_Create, b.Datetime_Create, a.Prayer_Request_ID, b.Prayer_Request_ID)
	}), nil
}

func (s *MemStore) GetPrayerRequest(ctx context.Context, id int) (models.PrayerRequest, bool, error) {
	request, ok := s.prayerRequests.get(id)
	return request, ok, nil
}

func (s *MemStore) CreatePrayerRequest(ctx context.Context, body models.PrayerRequestCreate) (models.PrayerRequest, error) {
	now := s.now()
	return s.prayerRequests.insert(func(id int) models.PrayerRequest {
		request := models.NewPrayerRequest(body)
		request.Prayer_Request_ID = id
		request.Datetime_Create = now
		request.Datetime_Update = now
		return request
	}), nil
}

func (s *MemStore) UpdatePrayerRequest(ctx context.Context, id int, body models.PrayerRequestUpdate) (models.PrayerRequest, error) {
	now := s.now()
	request, ok := s.prayerRequests.update(id, func(p *models.PrayerRequest) {
		body.Apply(p)
		p.Datetime_Update = now
	})
	if !ok {
		return models.PrayerRequest{}, notFound("prayer request", id)
	}
	return request, nil
}

func (s *MemStore) DeletePrayerRequest(ctx context.Context, id int) error {
	s.prayerRequests.remove(id)
	return nil
}

// IncrementPrayerCount holds the table lock across the read-modify-write.
func (s *MemStore) IncrementPrayerCount(ctx context.Context, id int) (models.PrayerRequest, error) {
	now := s.now()
	request, ok := s.prayerRequests.update(id, func(p *models.PrayerRequest) {
		p.Prayer_Count++
		p.Datetime_Update = now
	})
	if !ok {
		return models.PrayerRequest{}, notFound("prayer request", id)
	}
	return request, nil
}
