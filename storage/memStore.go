package storage

import (
	"sync"
	"time"

	"github.com/CongregationConsole/models"
)

// MemStore keeps every entity family in process memory. Each family lives in
// its own table with its own identity sequence, so identities are dense per
// family and never shared across families.
type MemStore struct {
	now func() time.Time

	users      *table[models.User]
	products   *table[models.Product]
	orders     *table[models.Order]
	activities *table[models.Activity]

	areas        *table[models.ProfessionalArea]
	jobs         *table[models.Job]
	profiles     *table[models.UserProfile]
	applications *table[models.JobApplication]

	categories    *table[models.ForumCategory]
	subforums     *table[models.Subforum]
	threads       *table[models.Thread]
	posts         *table[models.Post]
	reactions     *table[models.Reaction]
	bookmarks     *table[models.Bookmark]
	subscriptions *table[models.Subscription]
	messages      *table[models.PrivateMessage]
	notifications *table[models.ForumNotification]

	// programsMu serializes the structural changes that span the programs
	// and program_days tables: slug claims, day inserts and cascades.
	programsMu     sync.Mutex
	programs       *table[models.Program]
	programDays    *table[models.ProgramDay]
	prayerRequests *table[models.PrayerRequest]
}

var (
	_ UserStore          = (*MemStore)(nil)
	_ DashboardStore     = (*MemStore)(nil)
	_ JobBoardStore      = (*MemStore)(nil)
	_ ForumStore         = (*MemStore)(nil)
	_ ProgramStore       = (*MemStore)(nil)
	_ ProgramDayStore    = (*MemStore)(nil)
	_ PrayerRequestStore = (*MemStore)(nil)
)

// NewMemStore builds an empty store. When samples is set, the store is
// bootstrapped with the console's demonstration data.
func NewMemStore(samples bool) *MemStore {
	s := newMemStore(time.Now)
	if samples {
		s.seed()
	}
	return s
}

func newMemStore(now func() time.Time) *MemStore {
	return &MemStore{
		now: now,

		users:      newTable[models.User](),
		products:   newTable[models.Product](),
		orders:     newTable[models.Order](),
		activities: newTable[models.Activity](),

		areas:        newTable[models.ProfessionalArea](),
		jobs:         newClonedTable(cloneJob),
		profiles:     newClonedTable(cloneUserProfile),
		applications: newTable[models.JobApplication](),

		categories:    newTable[models.ForumCategory](),
		subforums:     newTable[models.Subforum](),
		threads:       newTable[models.Thread](),
		posts:         newTable[models.Post](),
		reactions:     newTable[models.Reaction](),
		bookmarks:     newTable[models.Bookmark](),
		subscriptions: newTable[models.Subscription](),
		messages:      newTable[models.PrivateMessage](),
		notifications: newTable[models.ForumNotification](),

		programs:       newTable[models.Program](),
		programDays:    newClonedTable(cloneProgramDay),
		prayerRequests: newTable[models.PrayerRequest](),
	}
}
