package fsstore_test

import (
	"context"
	"path/filepath"
	"sort"
	"spritegen/pkg/storage"
	"spritegen/pkg/storage/fsstore"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, fs afero.Fs, files ...string) {
	t.Helper()

	for _, f := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(f), 0o755))
		require.NoError(t, afero.WriteFile(fs, f, []byte("<svg/>"), 0o644))
	}
}

func TestSources(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs,
		"icons/home.svg",
		"icons/nav/arrow-left.svg",
		"icons/nav/deep/close.svg",
		"icons/README.md",
		"icons/upper.SVG",
		"icons/.hidden.svg",
		"icons/.cache/skipped.svg",
		"other/outside.svg",
	)

	got, err := fsstore.New(fs).Sources(context.Background(), "icons", ".svg")
	require.NoError(t, err)

	sort.Strings(got)
	require.Equal(t, []string{
		"home.svg",
		filepath.Join("nav", "arrow-left.svg"),
		filepath.Join("nav", "deep", "close.svg"),
	}, got)
}

func TestSources_EmptyDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("icons", 0o755))

	got, err := fsstore.New(fs).Sources(context.Background(), "icons", ".svg")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSources_MissingDir(t *testing.T) {
	_, err := fsstore.New(afero.NewMemMapFs()).Sources(context.Background(), "icons", ".svg")
	require.Error(t, err)
}

func TestSources_NotADirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "icons")

	_, err := fsstore.New(fs).Sources(context.Background(), "icons", ".svg")
	require.ErrorIs(t, err, storage.ErrNotDir)
}

func TestSources_CanceledContext(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFiles(t, fs, "icons/a.svg")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fsstore.New(fs).Sources(ctx, "icons", ".svg")
	require.ErrorIs(t, err, context.Canceled)
}

func TestReadWriteEnsureDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := fsstore.New(fs)
	ctx := context.Background()

	require.NoError(t, s.EnsureDir(ctx, "src/types"))
	require.NoError(t, s.EnsureDir(ctx, "src/types"), "existing directory is not an error")

	require.NoError(t, s.WriteFile(ctx, "src/types/icon.d.ts", []byte("first")))
	require.NoError(t, s.WriteFile(ctx, "src/types/icon.d.ts", []byte("2nd")))

	got, err := s.ReadFile(ctx, "src/types/icon.d.ts")
	require.NoError(t, err)
	require.Equal(t, "2nd", string(got))

	_, err = s.ReadFile(ctx, "src/types/missing.d.ts")
	require.Error(t, err)
}
