package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lms/config"
	"lms/flagstore"
	"lms/seed"
	"lms/store"
)

var testLog = zap.NewNop().Sugar()

// newSeededStore opens a fresh store in a temp dir and loads the default
// dataset, so tests can lean on the well-known seed ids.
func newSeededStore(t *testing.T) (*store.Store, *flagstore.Store) {
	t.Helper()
	dir := t.TempDir()
	st, err := store.Open(&config.Config{DataDir: dir, DBFile: "lms.db"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	flags, err := flagstore.Open(dir)
	require.NoError(t, err)
	require.NoError(t, seed.NewSeeder(st, flags, testLog).EnsureSeeded())
	return st, flags
}
