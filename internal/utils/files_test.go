package utils_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/tabkit-cli/internal/utils"
)

func TestWriteAndReadLines(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.csv")
	lines := []string{`"a","b"`, "1,2", "3,?"}

	require.NoError(t, utils.WriteLines(p, lines))
	b, err := os.ReadFile(p)
	require.NoError(t, err)
	require.Equal(t, "\"a\",\"b\"\n1,2\n3,?\n", string(b))

	got, err := utils.ReadLines(p)
	require.NoError(t, err)
	require.Equal(t, lines, got)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must not be left behind")
}

func TestReadLinesStripsCR(t *testing.T) {
	p := filepath.Join(t.TempDir(), "win.csv")
	require.NoError(t, os.WriteFile(p, []byte("a,b\r\n1,2\r\n"), 0o644))
	got, err := utils.ReadLines(p)
	require.NoError(t, err)
	require.Equal(t, []string{"a,b", "1,2"}, got)
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := utils.ReadLines(filepath.Join(t.TempDir(), "nope.arff"))
	require.Error(t, err)
}

func TestWriteLinesTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, utils.WriteLinesTo(&buf, []string{"x", "y"}))
	require.Equal(t, "x\ny\n", buf.String())
}
