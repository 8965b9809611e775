package pipeline

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"academic_nausea/internal/lexicon"
	"academic_nausea/internal/nausea"
)

func newRunner(t *testing.T) (*Runner, *logtest.Hook, *bytes.Buffer) {
	t.Helper()
	lex, err := lexicon.NewRussian()
	require.NoError(t, err)
	logger, hook := logtest.NewNullLogger()
	var trace bytes.Buffer
	return &Runner{
		Analyzer: nausea.NewAnalyzer(lex),
		Workers:  2,
		Log:      logger.WithField("component", "test"),
		Trace:    &trace,
	}, hook, &trace
}

func writeFile(t *testing.T, dir, name string, raw []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, raw, 0o644))
	return path
}

func TestRunSkipsFailedDocuments(t *testing.T) {
	dir := t.TempDir()
	five := writeFile(t, dir, "five.txt", []byte("машина автомобиль автобус самолет паровоз"))
	empty := writeFile(t, dir, "empty.txt", nil)
	broken := writeFile(t, dir, "broken.txt", []byte{'a', ' ', 0xff})
	missing := filepath.Join(dir, "missing.txt")

	r, hook, trace := newRunner(t)
	var mu sync.Mutex
	seen := map[string]error{}
	r.OnDocument = func(path string, err error) {
		mu.Lock()
		defer mu.Unlock()
		seen[path] = err
	}

	results := r.Run(five, broken, missing, empty)
	require.Len(t, results, 2)
	assert.Equal(t, "five.txt", results[0].DocumentName)
	assert.InDelta(t, 100, results[0].Rate, 1e-9)
	assert.Equal(t, "empty.txt", results[1].DocumentName)
	assert.True(t, results[1].Empty())

	assert.Len(t, seen, 4)
	assert.NoError(t, seen[five])
	assert.ErrorIs(t, seen[broken], nausea.ErrInvalidEncoding)
	assert.Error(t, seen[missing])

	skipped := 0
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel && e.Message == "skipping document" {
			skipped++
		}
	}
	assert.Equal(t, 2, skipped)
	assert.Contains(t, trace.String(), "skipped "+broken)
	assert.Contains(t, trace.String(), "skipped "+missing)
}

func TestProcessDocumentUsesBaseName(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := writeFile(t, dir, "0001.txt", []byte("тexникa bоsсh лучшaя"))

	r, _, _ := newRunner(t)
	res, err := r.ProcessDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "0001.txt", res.DocumentName)
	assert.Len(t, res.FraudWords, 3)
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", []byte("b"))
	writeFile(t, dir, "a.TXT", []byte("a"))
	writeFile(t, dir, "notes.md", []byte("c"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755))
	single := filepath.Join(t.TempDir(), "single.txt")

	r, _, _ := newRunner(t)
	got := r.ExpandPaths([]string{dir, single})
	assert.Equal(t, []string{
		filepath.Join(dir, "a.TXT"),
		filepath.Join(dir, "b.txt"),
		single,
	}, got)
	for _, p := range got {
		assert.False(t, strings.HasSuffix(p, "sub.txt"))
	}
}

func TestExpandPathsSkipsUnreadableDirectory(t *testing.T) {
	good := t.TempDir()
	bad := t.TempDir()
	writeFile(t, good, "a.txt", []byte("a"))
	writeFile(t, bad, "b.txt", []byte("b"))

	orig := readDir
	t.Cleanup(func() { readDir = orig })
	readDir = func(name string) ([]fs.DirEntry, error) {
		if name == bad {
			return nil, fs.ErrPermission
		}
		return orig(name)
	}

	r, hook, trace := newRunner(t)
	got := r.ExpandPaths([]string{bad, good})
	assert.Equal(t, []string{filepath.Join(good, "a.txt")}, got)

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "skipping directory", entry.Message)
	assert.Equal(t, bad, entry.Data["directory"])
	assert.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), fs.ErrPermission)
	assert.Contains(t, trace.String(), "skipped "+bad)
}
