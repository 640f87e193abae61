package scores

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Backend names accepted by Open.
const (
	BackendText   = "text"
	BackendSQLite = "sqlite"
)

// Open creates a ledger over the named backend at path. The returned close
// function releases the store. A ledger that fails to load is still
// returned, empty and usable, together with the load error.
func Open(backend, path string, capacity int, logger *log.Logger) (*Ledger, func() error, error) {
	var (
		store   Store
		closeFn = func() error { return nil }
	)
	switch backend {
	case BackendText:
		ts, err := NewTextStore(path, logger)
		if err != nil {
			return nil, nil, err
		}
		store = ts
	case BackendSQLite:
		ss, err := OpenSQLite(path)
		if err != nil {
			return nil, nil, err
		}
		store, closeFn = ss, ss.Close
	default:
		return nil, nil, fmt.Errorf("scores: unknown backend %q", backend)
	}

	ledger := NewLedger(store, capacity)
	return ledger, closeFn, ledger.Load()
}
