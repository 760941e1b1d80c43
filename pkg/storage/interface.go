// Package storage defines the filesystem operations the sprite pipeline relies
// on. Keeping them behind interfaces lets the pipeline run against the real
// disk, an in-memory filesystem in tests, or a mock.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import "context"

// SourceStorage discovers icon sources.
type SourceStorage interface {
	// Sources returns the paths of all regular files under dir whose name ends
	// with ext, relative to dir. Hidden files and directories are skipped. The
	// order is unspecified.
	Sources(ctx context.Context, dir, ext string) ([]string, error)
}

// FileStorage reads and writes whole files.
type FileStorage interface {
	// ReadFile returns the full contents of the file at path.
	ReadFile(ctx context.Context, path string) ([]byte, error)
	// WriteFile replaces the contents of the file at path, creating it if needed.
	WriteFile(ctx context.Context, path string, content []byte) error
	// EnsureDir creates dir and any missing parents. Existing directories are
	// not an error.
	EnsureDir(ctx context.Context, dir string) error
}

// Storage is a composite interface that includes everything the pipeline needs.
type Storage interface {
	SourceStorage
	FileStorage
}
