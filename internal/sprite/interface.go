package sprite

import "context"

//go:generate mockgen -package mocksprite -source=interface.go -destination=mock/mocksprite.go *
type Generator interface {
	// Sync regenerates the sprite, manifest and fingerprint when they do not
	// match the current icon sources.
	Sync(ctx context.Context) (Result, error)
	// Check reports whether the outputs match the current icon sources without
	// writing anything.
	Check(ctx context.Context) (bool, error)
}
