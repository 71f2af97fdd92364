package storage

import (
	"sort"
	"sync"
	"time"
)

// table is a keyed in-memory collection with its own identity sequence.
// Records are stored by value. Rows leaving the table pass through clone
// when one is set; without it, slice and pointer fields stay shared with
// the stored row.
type table[T any] struct {
	mu    sync.RWMutex
	seq   int
	rows  map[int]T
	clone func(T) T
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int]T)}
}

// newClonedTable builds a table whose reads hand out deep copies.
func newClonedTable[T any](clone func(T) T) *table[T] {
	return &table[T]{rows: make(map[int]T), clone: clone}
}

func (t *table[T]) out(row T) T {
	if t.clone == nil {
		return row
	}
	return t.clone(row)
}

// insert assigns the next identity, lets build materialize the row with it
// and stores the result.
func (t *table[T]) insert(build func(id int) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	row := build(t.seq)
	t.rows[t.seq] = row
	return t.out(row)
}

func (t *table[T]) get(id int) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return t.out(row), ok
}

func (t *table[T]) put(id int, row T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[id] = row
}

// update applies fn to the stored row under the write lock.
func (t *table[T]) update(id int, fn func(row *T)) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return row, false
	}
	fn(&row)
	t.rows[id] = row
	return t.out(row), true
}

func (t *table[T]) remove(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// removeWhere deletes every row matching match and returns how many went.
func (t *table[T]) removeWhere(match func(T) bool) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for id, row := range t.rows {
		if match(row) {
			delete(t.rows, id)
			n++
		}
	}
	return n
}

// updateWhere applies fn to every matching row.
func (t *table[T]) updateWhere(match func(T) bool, fn func(row *T)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, row := range t.rows {
		if match(row) {
			fn(&row)
			t.rows[id] = row
		}
	}
}

func (t *table[T]) count(match func(T) bool) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, row := range t.rows {
		if match == nil || match(row) {
			n++
		}
	}
	return n
}

// list returns the matching rows ordered by less. A nil match selects every
// row. The result is never nil.
func (t *table[T]) list(match func(T) bool, less func(a, b T) bool) []T {
	t.mu.RLock()
	out := make([]T, 0, len(t.rows))
	for _, row := range t.rows {
		if match == nil || match(row) {
			out = append(out, t.out(row))
		}
	}
	t.mu.RUnlock()
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

// newerFirst orders by timestamp descending, breaking ties by identity so
// the order is stable across map iterations.
func newerFirst(a, b time.Time, aID, bID int) bool {
	if !a.Equal(b) {
		return a.After(b)
	}
	return aID > bID
}

func olderFirst(a, b time.Time, aID, bID int) bool {
	if !a.Equal(b) {
		return a.Before(b)
	}
	return aID < bID
}
