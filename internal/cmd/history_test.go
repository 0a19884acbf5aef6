package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/haybale/internal/history"
)

func seedHistory(t *testing.T, dbPath string) {
	t.Helper()
	store, err := history.NewStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Record(history.HistoryEntry{
		Root:        "/tmp/project",
		NamePattern: "*.go",
		ResultCount: 5,
	}))
}

func execHistory(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewHistoryCommand()

	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestHistoryCommandShowsEntries(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")
	seedHistory(t, dbPath)

	t.Chdir(dir)
	writeMinimalConfig(t, dir, dbPath)

	out, err := execHistory(t)
	require.NoError(t, err)
	assert.Contains(t, out, "/tmp/project")
	assert.Contains(t, out, "*.go")
}

func TestHistoryCommandEmptyStore(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")

	store, err := history.NewStore(dbPath)
	require.NoError(t, err)
	store.Close()

	t.Chdir(dir)
	writeMinimalConfig(t, dir, dbPath)

	out, err := execHistory(t)
	require.NoError(t, err)
	assert.Contains(t, out, "no search history")
}

func TestHistoryClearCommand(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "history.db")
	seedHistory(t, dbPath)

	t.Chdir(dir)
	writeMinimalConfig(t, dir, dbPath)

	out, err := execHistory(t, "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")

	out, err = execHistory(t)
	require.NoError(t, err)
	assert.Contains(t, out, "no search history")
}

// writeMinimalConfig writes a .haybale/config.yaml pointing history at
// dbPath, so the command under test reads the same store the fixture
// seeded.
func writeMinimalConfig(t *testing.T, dir, dbPath string) {
	t.Helper()
	cfgDir := filepath.Join(dir, ".haybale")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	content := "history:\n  enabled: true\n  db_path: " + dbPath + "\n  max_entries: 500\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0644))
}
