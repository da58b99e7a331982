package blogroot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_MarkerInParent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "hugo.toml"), []byte("baseURL = 'https://example.com'\n"), 0644))

	nested := filepath.Join(root, "content", "posts")
	require.NoError(t, os.MkdirAll(nested, 0755))

	found, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFind_BlogctlConfigMarker(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".blogctl.yaml"), []byte("content_dir: posts\n"), 0644))

	found, err := Find(root)
	require.NoError(t, err)
	assert.Equal(t, root, found)
}

func TestFind_NotFound(t *testing.T) {
	found, err := Find(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "", found)
}

func TestIsRoot(t *testing.T) {
	dir := t.TempDir()
	ok, err := IsRoot(dir)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), nil, 0644))
	ok, err = IsRoot(dir)
	require.NoError(t, err)
	assert.True(t, ok)
}
