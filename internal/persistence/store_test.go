package persistence

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justinpbarnett/studio/internal/footer"
	"github.com/justinpbarnett/studio/internal/grid"
)

func tempStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStoreAt(filepath.Join(t.TempDir(), "studio", FileName))
}

func TestDefaultPathIsAppScoped(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	p := DefaultPath("my-app")
	assert.Equal(t, FileName, filepath.Base(p))
	assert.Equal(t, "my-app", filepath.Base(filepath.Dir(p)))
	assert.Equal(t, p, NewFileStore("my-app").Path())
}

func TestSaveAndLoad(t *testing.T) {
	s := tempStore(t)
	prefs := Snapshot(grid.WithPanelCount(5), footer.DefaultState(2), true, DefaultSplitters())

	require.NoError(t, s.Save(prefs))
	_, err := os.Stat(s.Path() + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must be renamed away")

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"))

	got := s.Load()
	assert.Equal(t, prefs, got)
}

func TestLoadMissingFile(t *testing.T) {
	s := tempStore(t)
	assert.Equal(t, Preferences{}, s.Load())
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), []byte("{not json"), 0o644))
	assert.Equal(t, Preferences{}, s.Load())
}

func TestLoadNumericModeKeepsLayout(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.Path()), 0o755))
	require.NoError(t, os.WriteFile(s.Path(), []byte(`{
		"dark_mode": true,
		"layout": {"rows": [["panel_1", "panel_0"], [], []], "visible": ["panel_0", "panel_1"], "mode": 2}
	}`), 0o644))

	prefs := s.Load()
	assert.True(t, prefs.DarkMode)
	g := prefs.GridState(grid.DefaultLayoutState())
	assert.Equal(t, []string{"panel_1", "panel_0"}, g.Rows[0])
	assert.Equal(t, grid.VStack, g.Mode)
}

func TestSaveOverwrites(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Save(Preferences{DarkMode: true}))
	require.NoError(t, s.Save(Preferences{DarkMode: false}))
	assert.False(t, s.Load().DarkMode)
}

func TestSaveFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	s := NewFileStoreAt(filepath.Join(blocker, FileName))
	assert.Error(t, s.Save(Preferences{}))
}

func TestRemove(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Remove(), "removing a missing file is fine")
	require.NoError(t, s.Save(Preferences{DarkMode: true}))
	require.NoError(t, s.Remove())
	_, err := os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestWatcherReportsExternalWrites(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Save(Preferences{}))

	w, err := Watch(s.Path())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, s.Save(Preferences{DarkMode: true}))

	select {
	case <-w.Changes():
	case <-time.After(3 * time.Second):
		t.Fatal("no change reported")
	}
	assert.True(t, s.Load().DarkMode)
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Save(Preferences{}))

	w, err := Watch(s.Path())
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(filepath.Dir(s.Path()), "other.json"), []byte("{}"), 0o644))

	select {
	case <-w.Changes():
		t.Fatal("unexpected change for unrelated file")
	case <-time.After(4 * watchDebounce):
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Save(Preferences{}))
	w, err := Watch(s.Path())
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestWatcherCloseReleasesReceivers(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Save(Preferences{}))
	w, err := Watch(s.Path())
	require.NoError(t, err)

	done := make(chan bool)
	go func() {
		select {
		case _, ok := <-w.Changes():
			done <- ok
		case _, ok := <-w.Errors():
			done <- ok
		}
	}()
	require.NoError(t, w.Close())

	select {
	case ok := <-done:
		assert.False(t, ok, "channels should be closed, not fed")
	case <-time.After(3 * time.Second):
		t.Fatal("receiver still blocked after Close")
	}
}

func TestWatchMissingDir(t *testing.T) {
	_, err := Watch(filepath.Join(t.TempDir(), "nope", FileName))
	assert.Error(t, err)
}
