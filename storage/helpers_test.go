package storage

import (
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
)

var epoch = time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)

// tickingClock advances one second per reading so creation order is
// reflected in timestamps.
type tickingClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *tickingClock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestMemStore() *MemStore {
	clock := &tickingClock{t: epoch}
	return newMemStore(clock.now)
}

func setupMockDB(t *testing.T) (*goqu.Database, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return goqu.New("postgres", db), mock
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }
