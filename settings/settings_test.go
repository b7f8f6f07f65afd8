package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	var s MemoryStore

	v, err := s.Bool(DarkMode)
	require.NoError(t, err)
	assert.False(t, v)

	require.NoError(t, s.SetBool(DarkMode, true))
	v, err = s.Bool(DarkMode)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestFileStoreSeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	s, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "isDarkMode: false")
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.SetBool(DarkMode, true))

	reopened, err := Open(path)
	require.NoError(t, err)
	v, err := reopened.Bool(DarkMode)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = reopened.Bool(NumbersHidden)
	require.NoError(t, err)
	assert.False(t, v, "unset keys fall back to defaults")
}

func TestFileStoreInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("isDarkMode: [oops"), 0o644))

	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Bool(DarkMode)
	assert.ErrorContains(t, err, "invalid settings file")
}

func TestToggle(t *testing.T) {
	var s MemoryStore
	v, err := Toggle(&s, NumbersHidden)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = Toggle(&s, NumbersHidden)
	require.NoError(t, err)
	assert.False(t, v)
}
