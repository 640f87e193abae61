package scores

import (
	"errors"
	"math/rand"
	"slices"
	"sort"
	"testing"
)

type memoryStore struct {
	records []Record
	saves   int
	loadErr error
	saveErr error
}

func (m *memoryStore) Load() ([]Record, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return slices.Clone(m.records), nil
}

func (m *memoryStore) Save(records []Record) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.records = slices.Clone(records)
	return nil
}

func TestLedgerAddKeepsOrderAndCap(t *testing.T) {
	store := &memoryStore{}
	l := NewLedger(store, 0)

	rng := rand.New(rand.NewSource(7))
	var all []int
	for i := 0; i < 40; i++ {
		score := rng.Intn(500)
		all = append(all, score)
		if err := l.Add("p", score); err != nil {
			t.Fatalf("Add #%d failed: %v", i, err)
		}

		got := l.Records()
		if len(got) > DefaultCapacity {
			t.Fatalf("ledger grew to %d records", len(got))
		}
		if !slices.IsSortedFunc(got, func(a, b Record) int { return b.Score - a.Score }) {
			t.Fatalf("ledger not sorted descending: %v", got)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(all)))
	got := l.Records()
	for i, r := range got {
		if r.Score != all[i] {
			t.Errorf("record %d = %d, expected %d (the %d-th highest ever inserted)", i, r.Score, all[i], i+1)
		}
	}
	if store.saves != 40 {
		t.Errorf("store saved %d times, expected once per Add", store.saves)
	}
	if !slices.Equal(store.records, got) {
		t.Errorf("store holds %v, ledger holds %v", store.records, got)
	}
}

func TestLedgerTiesKeepInsertionOrder(t *testing.T) {
	l := NewLedger(nil, 3)
	l.Add("first", 100)
	l.Add("second", 100)
	l.Add("low", 50)
	l.Add("third", 100)

	want := []Record{{"first", 100}, {"second", 100}, {"third", 100}}
	if got := l.Records(); !slices.Equal(got, want) {
		t.Errorf("Records = %v, expected %v", got, want)
	}
}

func TestLedgerLoadSortsAndCaps(t *testing.T) {
	store := &memoryStore{records: []Record{{"a", 5}, {"b", 30}, {"c", 10}, {"d", 30}}}
	l := NewLedger(store, 3)

	if err := l.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []Record{{"b", 30}, {"d", 30}, {"c", 10}}
	if got := l.Records(); !slices.Equal(got, want) {
		t.Errorf("Records = %v, expected %v", got, want)
	}
	if got := l.Top(2); !slices.Equal(got, want[:2]) {
		t.Errorf("Top(2) = %v, expected %v", got, want[:2])
	}
	if got := l.Top(50); len(got) != 3 {
		t.Errorf("Top(50) returned %d records", len(got))
	}
}

func TestLedgerStoreFailures(t *testing.T) {
	boom := errors.New("disk full")

	store := &memoryStore{loadErr: boom}
	l := NewLedger(store, 0)
	if err := l.Load(); !errors.Is(err, boom) {
		t.Errorf("Load error = %v, expected wrapped %v", err, boom)
	}

	store.saveErr = boom
	if err := l.Add("p", 10); !errors.Is(err, boom) {
		t.Errorf("Add error = %v, expected wrapped %v", err, boom)
	}
	if got := l.Records(); len(got) != 1 || got[0].Score != 10 {
		t.Errorf("record lost after failed save: %v", got)
	}
}
