package storage

import (
	"bytes"
	"context"
)

// ReadOrEmpty returns the contents of path, or nil if it cannot be read for
// any reason. Callers converge to a desired state, so a missing or unreadable
// previous version is equivalent to an empty one.
func ReadOrEmpty(ctx context.Context, s FileStorage, path string) []byte {
	content, err := s.ReadFile(ctx, path)
	if err != nil {
		return nil
	}

	return content
}

// WriteIfChanged writes content to path only if it differs byte-for-byte from
// what is currently stored there, and reports whether a write happened. A
// missing file counts as empty content, so it is always written unless content
// is empty too.
func WriteIfChanged(ctx context.Context, s FileStorage, path string, content []byte) (bool, error) {
	if bytes.Equal(ReadOrEmpty(ctx, s, path), content) {
		return false, nil
	}

	if err := s.WriteFile(ctx, path, content); err != nil {
		return false, err //nolint: wrapcheck
	}

	return true, nil
}
