package toml

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoLevelGettersOnMissingTableReturnZero(t *testing.T) {
	p := NewParser("test.toml", "[Build]\nName = \"celes\"\n")
	root, err := p.Parse()
	require.NoError(t, err)
	defer root.Release()

	// No [Missing] table exists: every two-level getter must report the
	// type's zero value rather than dereferencing a nil table.
	assert.Equal(t, "", GetString(root, "Missing", "Name"))
	assert.Equal(t, int64(0), GetInt(root, "Missing", "Name"))
	assert.Equal(t, float64(0), GetReal(root, "Missing", "Name"))
	assert.False(t, GetBool(root, "Missing", "Name"))
	assert.Nil(t, GetTable(root, "Missing", "Name"))
	assert.Nil(t, GetArray(root, "Missing", "Name"))
	assert.False(t, HasUserValue(root, "Missing", "Name"))
}

func TestTwoLevelGettersOnExistingTable(t *testing.T) {
	p := NewParser("test.toml", "[Build]\nName = \"celes\"\nCount = 3\n")
	root, err := p.Parse()
	require.NoError(t, err)
	defer root.Release()

	assert.Equal(t, "celes", GetString(root, "Build", "Name"))
	assert.Equal(t, int64(3), GetInt(root, "Build", "Count"))
	assert.True(t, HasUserValue(root, "Build", "Name"))
	assert.False(t, HasUserValue(root, "Build", "Missing"))
}

func TestOpenMissingFileReportsFileNotFound(t *testing.T) {
	_, errText, status := Open("/nonexistent/path/to/Project.toml")
	assert.Equal(t, StatusFileNotFound, status)
	assert.Empty(t, errText)
}

func TestOpenMalformedFileReportsError(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/Project.toml"
	require.NoError(t, os.WriteFile(path, []byte("k = \"a"), 0o644))

	_, errText, status := Open(path)
	assert.Equal(t, StatusError, status)
	assert.NotEmpty(t, errText)
}

func TestOpenWellFormedFile(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/Project.toml"
	require.NoError(t, os.WriteFile(path, []byte("[Build]\nName = \"celes\"\n"), 0o644))

	root, errText, status := Open(path)
	require.Equal(t, StatusSuccess, status)
	assert.Empty(t, errText)
	require.NotNil(t, root)
	assert.Equal(t, "celes", GetString(root, "Build", "Name"))
	root.Release()
}
