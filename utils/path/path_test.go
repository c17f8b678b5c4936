package path

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootPath_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(RootEnv, dir)
	assert.Equal(t, filepath.Clean(dir), RootPath())
}

func TestRootPath_SourceTree(t *testing.T) {
	t.Setenv(RootEnv, "")
	root := RootPath()
	ok, err := Exists(filepath.Join(root, "utils", "path", "path.go"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("/srv", "conf", "app.yaml"), Resolve("/srv", "conf", "app.yaml"))
	assert.Equal(t, "/etc/app.yaml", Resolve("/srv", "/etc/app.yaml"))
}

func TestExists(t *testing.T) {
	file := filepath.Join(t.TempDir(), "x")
	ok, err := Exists(file)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	ok, err = Exists(file)
	require.NoError(t, err)
	assert.True(t, ok)
}
