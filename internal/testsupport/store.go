package testsupport

import (
	"testing"

	"coresheet/internal/config"
	"coresheet/internal/logging"
	"coresheet/internal/sheetstore"
)

// MustOpenStore opens the SQLite backend for cfg and closes it when the test
// finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *sheetstore.SQLite {
	t.Helper()
	store, err := sheetstore.OpenSQLite(cfg)
	if err != nil {
		t.Fatalf("open sheet store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close sheet store: %v", err)
		}
	})
	return store
}

// NewMemoryAdapter returns an adapter over a fresh in-memory backend with a
// no-op logger.
func NewMemoryAdapter(t testing.TB) *sheetstore.Adapter {
	t.Helper()
	return sheetstore.NewAdapter(sheetstore.NewMemory(), logging.NewNop())
}
