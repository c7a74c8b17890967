package presets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ensigniasec/countdown/internal/config"
	"github.com/ensigniasec/countdown/internal/countdown"
)

func TestNewManager_DefaultsWithoutWriting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")

	m, err := NewManager(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPresets(), m.File.Data.Presets)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestView_ListsPresetsInOrder(t *testing.T) {
	t.Parallel()

	m, err := NewManager(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	var buf bytes.Buffer
	m.View(&buf)
	out := buf.String()

	assert.Contains(t, out, "1. Five seconds (0:05)")
	assert.Contains(t, out, "4. Minute and a half (1:30)")
	assert.Contains(t, out, "5. Two minutes (2:00)")
}

func TestView_Empty(t *testing.T) {
	t.Parallel()

	m := &Manager{File: &config.File{}}
	var buf bytes.Buffer
	m.View(&buf)
	assert.Contains(t, buf.String(), "No presets configured.")
}

func TestAdd_Persists(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	m, err := NewManager(path)
	require.NoError(t, err)

	require.NoError(t, m.Add("Tea", "3:00"))

	// Re-open to ensure persistence on disk.
	m2, err := NewManager(path)
	require.NoError(t, err)
	got := m2.File.Data.Presets
	require.Len(t, got, len(config.DefaultPresets())+1)
	assert.Equal(t, config.Preset{Label: "Tea", Duration: "3:00"}, got[len(got)-1])

	var buf bytes.Buffer
	m2.View(&buf)
	assert.Contains(t, buf.String(), "6. Tea (3:00)")
}

func TestAdd_RejectsBadInput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	m, err := NewManager(path)
	require.NoError(t, err)

	require.ErrorIs(t, m.Add("Nothing", "0:00"), countdown.ErrZeroDuration)
	require.ErrorIs(t, m.Add("Typo", "1:2:3"), countdown.ErrSyntax)
	require.ErrorIs(t, m.Add("", "5"), countdown.ErrBadPreset)

	assert.Equal(t, config.DefaultPresets(), m.File.Data.Presets)
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestReset_RestoresDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	m, err := NewManager(path)
	require.NoError(t, err)

	require.NoError(t, m.Add("Tea", "3:00"))
	require.NoError(t, m.Add("Eggs", "6:30"))
	require.NoError(t, m.Reset())

	m2, err := NewManager(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPresets(), m2.File.Data.Presets)
}
