// Package scores keeps the high-score ledger and persists it.
package scores

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// DefaultCapacity is the number of records a ledger keeps.
const DefaultCapacity = 10

// Record is a single ledger entry.
type Record struct {
	Name  string
	Score int
}

// Store loads and saves the full list of records.
type Store interface {
	Load() ([]Record, error)
	// Save replaces everything previously stored with records.
	Save(records []Record) error
}

// Ledger is the in-memory top-N list: sorted by descending score, ties kept
// in insertion order, never longer than its capacity. Safe for concurrent use.
type Ledger struct {
	mu       sync.Mutex
	store    Store
	capacity int
	records  []Record
}

// NewLedger creates an empty ledger backed by store. A nil store keeps
// records in memory only. A non-positive capacity selects DefaultCapacity.
func NewLedger(store Store, capacity int) *Ledger {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ledger{store: store, capacity: capacity}
}

// Load replaces the in-memory list with the store's contents, sorted and
// capped. On error the in-memory list is left unchanged.
func (l *Ledger) Load() error {
	if l.store == nil {
		return nil
	}
	records, err := l.store.Load()
	if err != nil {
		return fmt.Errorf("scores: cannot load ledger: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = l.normalize(records)
	return nil
}

// Add inserts a record, its name passed through CleanName, and saves the
// resulting list. The record stays in memory even when saving fails.
func (l *Ledger) Add(name string, score int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = l.normalize(append(l.records, Record{Name: CleanName(name), Score: score}))

	// Saves are serialized by mu.
	if l.store == nil {
		return nil
	}
	if err := l.store.Save(slices.Clone(l.records)); err != nil {
		return fmt.Errorf("scores: cannot save ledger: %w", err)
	}
	return nil
}

// Records returns a copy of the full list, best first.
func (l *Ledger) Records() []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.records)
}

// Top returns a copy of the n best records.
func (l *Ledger) Top(n int) []Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	n = min(max(n, 0), len(l.records))
	return slices.Clone(l.records[:n])
}

// Capacity returns the maximum number of records kept.
func (l *Ledger) Capacity() int {
	return l.capacity
}

func (l *Ledger) normalize(records []Record) []Record {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(records) > l.capacity {
		records = records[:l.capacity]
	}
	return records
}

// nameReplacer blanks the characters a "name,score" line cannot carry.
var nameReplacer = strings.NewReplacer(",", " ", "\r", " ", "\n", " ")

// CleanName returns name with commas and line breaks replaced by spaces.
func CleanName(name string) string {
	return nameReplacer.Replace(name)
}
