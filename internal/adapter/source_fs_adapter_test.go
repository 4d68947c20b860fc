package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	m "covlens.dev/pkg/covlens/internal/model"
)

func TestLocalSourceFSAdapter(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Engine.java")
	require.NoError(t, os.WriteFile(path, []byte("public class Engine {}"), 0o644))

	fs := NewLocalSourceFSAdapter()

	exists, err := fs.Exists(m.Path(path))
	require.NoError(t, err)
	require.True(t, exists)

	data, err := fs.ReadFile(m.Path(path))
	require.NoError(t, err)
	require.Equal(t, "public class Engine {}", string(data))

	info, err := fs.FileInfo(m.Path(path))
	require.NoError(t, err)
	require.False(t, info.IsDir())
}

func TestLocalSourceFSAdapter_Missing(t *testing.T) {
	fs := NewLocalSourceFSAdapter()

	exists, err := fs.Exists(m.Path(filepath.Join(t.TempDir(), "nope.java")))
	require.NoError(t, err)
	require.False(t, exists)
}
