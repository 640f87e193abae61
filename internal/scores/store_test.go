package scores

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestTextStoreLoadSkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score_records.txt")
	content := "alice,300\n" +
		"no comma\n" +
		"bob,abc\n" +
		"too,many,fields\n" +
		"\n" +
		"carol, 150\n" +
		"dave,-20\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	store, err := NewTextStore(path, nil)
	if err != nil {
		t.Fatalf("NewTextStore failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := []Record{{"alice", 300}, {"carol", 150}, {"dave", -20}}
	if !slices.Equal(got, want) {
		t.Errorf("Load = %v, expected %v", got, want)
	}
}

func TestTextStoreMissingFile(t *testing.T) {
	store, err := NewTextStore(filepath.Join(t.TempDir(), "absent.txt"), nil)
	if err != nil {
		t.Fatalf("NewTextStore failed: %v", err)
	}
	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load of missing file failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load = %v, expected empty", got)
	}
}

func TestTextStoreSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "score_records.txt")
	store, err := NewTextStore(path, nil)
	if err != nil {
		t.Fatalf("NewTextStore failed: %v", err)
	}

	if err := store.Save([]Record{{"a", 1}, {"b", 2}, {"c", 3}}); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := store.Save([]Record{{"z", 9}}); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "z,9\n" {
		t.Errorf("file content = %q, expected %q", data, "z,9\n")
	}
}

func TestLedgerRoundTripThroughTextStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score_records.txt")
	store, _ := NewTextStore(path, nil)

	l := NewLedger(store, 0)
	l.Add("ana", 25)
	l.Add("ben", 125)

	reloaded := NewLedger(store, 0)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []Record{{"ben", 125}, {"ana", 25}}
	if got := reloaded.Records(); !slices.Equal(got, want) {
		t.Errorf("Records = %v, expected %v", got, want)
	}
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "scores.db")

	store, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("database file was not created")
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load of empty table failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Load = %v, expected empty", got)
	}

	first := []Record{{"x", 300}, {"y", 200}, {"z", 100}}
	if err := store.Save(first); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	second := []Record{{"w", 400}, {"x", 300}}
	if err := store.Save(second); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err = store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !slices.Equal(got, second) {
		t.Errorf("Load = %v, expected %v", got, second)
	}
}

func TestLedgerOverSQLite(t *testing.T) {
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer store.Close()

	l := NewLedger(store, 2)
	l.Add("a", 10)
	l.Add("b", 30)
	l.Add("c", 20)

	reloaded := NewLedger(store, 2)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []Record{{"b", 30}, {"c", 20}}
	if got := reloaded.Records(); !slices.Equal(got, want) {
		t.Errorf("Records = %v, expected %v", got, want)
	}
}

func TestTextStoreKeepsNamesWithSeparators(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score_records.txt")
	store, _ := NewTextStore(path, nil)

	l := NewLedger(store, 0)
	if err := l.Add("smith,john", 500); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := l.Add("eve\r\nmallory,1", 100); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	reloaded := NewLedger(store, 0)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []Record{{"smith john", 500}, {"eve  mallory 1", 100}}
	if got := reloaded.Records(); !slices.Equal(got, want) {
		t.Errorf("Records = %v, expected %v", got, want)
	}
	if got := l.Records(); !slices.Equal(got, want) {
		t.Errorf("in-memory Records = %v, expected %v", got, want)
	}
}
