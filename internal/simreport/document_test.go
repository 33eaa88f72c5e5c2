package simreport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDocument(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "Building Baseline.SIM")

	// Latin-1 content: 0xB0 is the degree sign, 0xE9 is e-acute. Lines are
	// CRLF-terminated the way DOE-2 writes them on Windows.
	content := []byte("REPORT- BEPS Building Energy Performance\r\n" +
		"TEMP 72\xb0F caf\xe9\r\n" +
		"last line no newline")
	require.NoError(t, os.WriteFile(path, content, 0644))

	doc, err := ReadDocument(path)
	require.NoError(t, err)

	assert.Equal(t, "Building Baseline", doc.Source())
	require.Equal(t, 3, doc.Len())
	assert.Equal(t, "REPORT- BEPS Building Energy Performance", doc.Lines()[0])
	assert.Equal(t, "TEMP 72°F café", doc.Lines()[1])
	assert.Equal(t, "last line no newline", doc.Lines()[2])
}

func TestReadDocumentMissingFile(t *testing.T) {
	_, err := ReadDocument(filepath.Join(t.TempDir(), "nope.sim"))
	assert.Error(t, err)
}

func TestLineAt(t *testing.T) {
	doc := NewDocument("x", []string{"a", "b"})

	line, ok := doc.LineAt(0)
	require.True(t, ok)
	assert.Equal(t, "a", line)

	line, ok = doc.LineAt(1)
	require.True(t, ok)
	assert.Equal(t, "b", line)

	_, ok = doc.LineAt(2)
	assert.False(t, ok)
	_, ok = doc.LineAt(-1)
	assert.False(t, ok)
}
