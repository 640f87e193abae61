package scores

import (
	"path/filepath"
	"testing"
)

func TestOpenBackends(t *testing.T) {
	for _, backend := range []string{BackendText, BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "scores")

			ledger, closeFn, err := Open(backend, path, 3, nil)
			if err != nil {
				t.Fatalf("Open failed: %v", err)
			}
			if err := ledger.Add("ann", 10); err != nil {
				t.Fatal(err)
			}
			if err := closeFn(); err != nil {
				t.Fatal(err)
			}

			reopened, closeFn, err := Open(backend, path, 3, nil)
			if err != nil {
				t.Fatalf("reopen failed: %v", err)
			}
			defer closeFn()
			if recs := reopened.Records(); len(recs) != 1 || recs[0] != (Record{"ann", 10}) {
				t.Errorf("reopened ledger = %v", recs)
			}
			if reopened.Capacity() != 3 {
				t.Errorf("capacity = %d, expected 3", reopened.Capacity())
			}
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	if _, _, err := Open("csv", filepath.Join(t.TempDir(), "x"), 0, nil); err == nil {
		t.Error("expected an error for an unknown backend")
	}
}
