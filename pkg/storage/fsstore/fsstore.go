// Package fsstore implements storage.Storage on top of an afero filesystem.
// Production code uses the OS filesystem; tests use afero.NewMemMapFs.
package fsstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"spritegen/pkg/storage"
	"strings"

	"github.com/spf13/afero"
)

const (
	dirPerm  os.FileMode = 0o755
	filePerm os.FileMode = 0o644
)

// Store implements storage.Storage for an afero.Fs.
type Store struct {
	fs afero.Fs
}

var _ storage.Storage = (*Store)(nil)

// New returns a Store backed by fs.
func New(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOS returns a Store backed by the operating system filesystem. Relative
// paths resolve against the process working directory.
func NewOS() *Store {
	return New(afero.NewOsFs())
}

// Sources walks dir and returns the relative paths of regular files ending
// with ext. Names starting with a dot are skipped, as are their subtrees.
func (s *Store) Sources(ctx context.Context, dir, ext string) ([]string, error) {
	info, err := s.fs.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("could not stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, storage.ErrNotDir)
	}

	var sources []string
	err = afero.Walk(s.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == dir {
			return nil
		}

		if strings.HasPrefix(info.Name(), ".") {
			if info.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}
		if !info.Mode().IsRegular() || !strings.HasSuffix(info.Name(), ext) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		sources = append(sources, rel)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not walk %s: %w", dir, err)
	}

	return sources, nil
}

// ReadFile returns the contents of path.
func (s *Store) ReadFile(_ context.Context, path string) ([]byte, error) {
	content, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	return content, nil
}

// WriteFile truncates or creates path and writes content to it.
func (s *Store) WriteFile(_ context.Context, path string, content []byte) error {
	if err := afero.WriteFile(s.fs, path, content, filePerm); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	return nil
}

// EnsureDir creates dir with all missing parents.
func (s *Store) EnsureDir(_ context.Context, dir string) error {
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("could not create %s: %w", dir, err)
	}

	return nil
}
