package storage

import (
	"time"

	"github.com/doug-martin/goqu/v9"
)

// Router satisfies Storage by delegating each entity family to the
// implementation chosen for it at construction.
type Router struct {
	UserStore
	DashboardStore
	JobBoardStore
	ForumStore
	ProgramStore
	ProgramDayStore
	PrayerRequestStore
}

var _ Storage = (*Router)(nil)

func newRouter(mem *MemStore) *Router {
	return &Router{
		UserStore:          mem,
		DashboardStore:     mem,
		JobBoardStore:      mem,
		ForumStore:         mem,
		ProgramStore:       mem,
		ProgramDayStore:    mem,
		PrayerRequestStore: mem,
	}
}

// NewMemStorage keeps every family in memory.
func NewMemStorage(samples bool) *Router {
	return newRouter(NewMemStore(samples))
}

// NewDatabaseStorage serves programs, program days and prayer requests from
// PostgreSQL and every other family from memory. Sample data is only loaded
// into the in-memory families.
func NewDatabaseStorage(db *goqu.Database, samples bool) *Router {
	mem := newMemStore(time.Now)
	if samples {
		mem.seedInMemoryOnly()
	}
	r := newRouter(mem)
	r.ProgramStore = NewProgramRepository(db)
	r.ProgramDayStore = NewProgramDayRepository(db)
	r.PrayerRequestStore = NewPrayerRequestRepository(db)
	return r
}
