package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuneCount(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(7, RuneCount("thứ sáu"))
	assert.Equal(0, RuneCount(""))
	assert.Equal(4, RuneCount("dựán"))
}

func TestMkPtr(t *testing.T) {
	assert := assert.New(t)
	p := MkPtr(42)
	assert.Equal(42, *p)
	q := MkPtr("x")
	assert.Equal("x", *q)
}

func TestFileExists(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "quickcap.yaml")

	assert.False(FileExists(path))
	require.Nil(t, os.WriteFile(path, []byte("x: 1\n"), 0o644))
	assert.True(FileExists(path))
	assert.False(FileExists(dir), "directories are not files")
}

func TestNormalizePath(t *testing.T) {
	assert := assert.New(t)
	home, err := os.UserHomeDir()
	require.Nil(t, err)

	path, err := NormalizePath("~/x")
	require.Nil(t, err)
	assert.Equal(filepath.Join(home, "x"), path)

	path, err = NormalizePath("relative")
	require.Nil(t, err)
	assert.True(filepath.IsAbs(path))
}
