package flagstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFileReadsAsUnset(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	assert.False(t, s.Get("anything"))
}

func TestSetGetDelete(t *testing.T) {
	s, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Set("seeded", true))
	assert.True(t, s.Get("seeded"))

	require.NoError(t, s.Set("seeded", false))
	assert.False(t, s.Get("seeded"))

	require.NoError(t, s.Delete("seeded"))
	require.NoError(t, s.Delete("seeded")) // deleting an absent key is fine
	assert.False(t, s.Get("seeded"))
}

func TestFlagsSurviveReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("lms_logged_in", true))
	require.NoError(t, s.Set("lms_data_seeded_v3", true))

	reopened, err := Open(dir)
	require.NoError(t, err)
	assert.True(t, reopened.Get("lms_logged_in"))
	assert.True(t, reopened.Get("lms_data_seeded_v3"))
	assert.False(t, reopened.Get("lms_data_seeded_v2"))
}
