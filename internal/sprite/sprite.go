package sprite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"spritegen/internal/config"
	"spritegen/internal/worker"
	"spritegen/pkg/logger"
	"spritegen/pkg/metrics"
	"spritegen/pkg/serrors"
	"spritegen/pkg/storage"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Recorder receives run metrics. *metrics.Recorder implements it.
type Recorder interface {
	RecordRun(ctx context.Context, outcome string, icons int, processed bool, took time.Duration)
	RecordWrite(ctx context.Context, file string)
}

// Options configure where icons are read from and where outputs go.
type Options struct {
	// InputDir is scanned recursively for *.svg files.
	InputDir string
	// SpritePath receives the sprite document.
	SpritePath string
	// ManifestPath receives the IconName type declaration.
	ManifestPath string
	// FingerprintPath receives a digest of all sources. When empty, only the
	// icon names are compared to decide whether outputs are up to date, so an
	// edit inside an existing icon is not picked up.
	FingerprintPath string
	// Concurrency limits simultaneous reads and transforms.
	Concurrency int
	// Verbose logs every processed icon and the output paths.
	Verbose bool
	// Recorder receives run metrics; nil disables them.
	Recorder Recorder
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		InputDir:        cfg.Icons.InputDir,
		SpritePath:      cfg.Icons.SpritePath,
		ManifestPath:    cfg.Icons.ManifestPath,
		FingerprintPath: cfg.Icons.FingerprintPath,
		Concurrency:     cfg.Icons.Concurrency,
		Verbose:         cfg.Log.Verbose,
	}
}

// Result describes what a Sync did.
type Result struct {
	// Icons is the number of icons discovered.
	Icons int
	// UpToDate is set when the outputs already matched and nothing was regenerated.
	UpToDate bool
	// SpriteChanged, ManifestChanged and FingerprintChanged report which files were written.
	SpriteChanged      bool
	ManifestChanged    bool
	FingerprintChanged bool
}

type noopRecorder struct{}

func (noopRecorder) RecordRun(context.Context, string, int, bool, time.Duration) {}
func (noopRecorder) RecordWrite(context.Context, string)                         {}

// synchronizer is the concrete implementation of the Generator interface.
type synchronizer struct {
	options Options
	storage storage.Storage
}

// New creates a Generator backed by the provided storage and options.
func New(storage storage.Storage, options Options) Generator {
	if options.Recorder == nil {
		options.Recorder = noopRecorder{}
	}

	return &synchronizer{
		options: options,
		storage: storage,
	}
}

// run carries the state of one pass over the icon sources.
type run struct {
	sources  []string
	names    []string
	contents [][]byte
	existing outputs
	// fingerprint of the current sources, nil when fingerprinting is disabled
	fingerprint []byte
}

// Sync regenerates the outputs unless they already match the sources. No
// output is touched when discovery finds nothing or any icon is malformed.
func (s *synchronizer) Sync(ctx context.Context) (Result, error) {
	start := time.Now()

	res, err := s.sync(ctx)

	outcome := metrics.OutcomeGenerated
	switch {
	case err != nil:
		outcome = metrics.OutcomeFailed
	case res.UpToDate:
		outcome = metrics.OutcomeUpToDate
	}
	s.options.Recorder.RecordRun(ctx, outcome, res.Icons, err == nil && !res.UpToDate, time.Since(start))

	return res, err
}

// Check reports whether the outputs match the sources, without writing.
func (s *synchronizer) Check(ctx context.Context) (bool, error) {
	r, err := s.prepare(ctx)
	if err != nil {
		return false, err
	}

	return r.existing.upToDate(r.names, r.fingerprint), nil
}

func (s *synchronizer) sync(ctx context.Context) (Result, error) {
	r, err := s.prepare(ctx)
	if err != nil {
		return Result{}, err
	}

	res := Result{Icons: len(r.names)}
	if r.existing.upToDate(r.names, r.fingerprint) {
		if s.options.Verbose {
			logger.Info(ctx, "icons are up to date", zap.Int("icons", res.Icons))
		}
		res.UpToDate = true

		return res, nil
	}

	if s.options.Verbose {
		logger.Info(ctx, "generating sprite", zap.String("inputDir", s.options.InputDir))
	}

	if err := s.load(ctx, r); err != nil {
		return Result{}, err
	}

	symbols, err := worker.Map(ctx, s.options.Concurrency, indices(len(r.names)), func(_ context.Context, i int) (string, error) {
		return Symbol(r.contents[i], r.names[i])
	})
	if err != nil {
		return Result{}, fmt.Errorf("could not transform icons: %w", err)
	}

	s.ensureDirs(ctx)

	res.SpriteChanged, err = s.write(ctx, "sprite", s.options.SpritePath, Assemble(symbols))
	if err != nil {
		return res, err
	}
	if s.options.Verbose {
		for _, source := range r.sources {
			logger.Info(ctx, "processed icon", zap.String("source", source))
		}
		logger.Info(ctx, "sprite saved", zap.String("path", s.options.SpritePath))
	}

	res.ManifestChanged, err = s.write(ctx, "manifest", s.options.ManifestPath, Manifest(r.names))
	if err != nil {
		return res, err
	}
	if s.options.Verbose {
		logger.Info(ctx, "manifest saved", zap.String("path", s.options.ManifestPath))
	}

	if r.fingerprint != nil {
		res.FingerprintChanged, err = s.write(ctx, "fingerprint", s.options.FingerprintPath, r.fingerprint)
		if err != nil {
			return res, err
		}
	}

	if res.SpriteChanged {
		logger.Info(ctx, "generated icons", zap.Int("icons", res.Icons))
	}
	if res.ManifestChanged {
		logger.Info(ctx, "generated new type declarations")
	}

	return res, nil
}

// prepare discovers the sources, reads the existing outputs and, when
// enabled, fingerprints the sources.
func (s *synchronizer) prepare(ctx context.Context) (*run, error) {
	r, err := s.discover(ctx)
	if err != nil {
		return nil, err
	}

	r.existing = s.readOutputs(ctx)

	if s.options.FingerprintPath != "" {
		if err := s.load(ctx, r); err != nil {
			return nil, err
		}
		r.fingerprint = Fingerprint(r.names, r.contents)
	}

	return r, nil
}

// discover lists the sources in byte-wise order of their relative path and
// derives their names. It fails with ErrNoInput when there is nothing to do
// and with ErrMalformedInput when two sources map to the same name.
func (s *synchronizer) discover(ctx context.Context) (*run, error) {
	sources, err := s.storage.Sources(ctx, s.options.InputDir, Extension)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, serrors.Wrap(serrors.ErrNoInput, err, "no svg files found in %s", s.options.InputDir)
		}

		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not discover icons in %s", s.options.InputDir)
	}
	if len(sources) == 0 {
		return nil, serrors.With(serrors.ErrNoInput, "no svg files found in %s", s.options.InputDir)
	}

	slices.Sort(sources)

	names := make([]string, len(sources))
	seen := make(map[string]string, len(sources))
	for i, source := range sources {
		name := IconName(source)
		if prev, ok := seen[name]; ok {
			return nil, serrors.With(serrors.ErrMalformedInput,
				"icon name %q is derived from both %s and %s", name, prev, source)
		}
		seen[name] = source
		names[i] = name
	}

	return &run{sources: sources, names: names}, nil
}

// readOutputs reads the previous outputs concurrently. Unreadable files are
// treated as empty.
func (s *synchronizer) readOutputs(ctx context.Context) outputs {
	var o outputs

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		o.sprite = storage.ReadOrEmpty(gctx, s.storage, s.options.SpritePath)

		return nil
	})
	g.Go(func() error {
		o.manifest = storage.ReadOrEmpty(gctx, s.storage, s.options.ManifestPath)

		return nil
	})
	if s.options.FingerprintPath != "" {
		g.Go(func() error {
			o.fingerprint = storage.ReadOrEmpty(gctx, s.storage, s.options.FingerprintPath)

			return nil
		})
	}
	_ = g.Wait()

	return o
}

// load reads every source once; later calls are no-ops.
func (s *synchronizer) load(ctx context.Context, r *run) error {
	if r.contents != nil {
		return nil
	}

	contents, err := worker.Map(ctx, s.options.Concurrency, r.sources, func(ctx context.Context, source string) ([]byte, error) {
		content, err := s.storage.ReadFile(ctx, filepath.Join(s.options.InputDir, source))
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrMalformedInput, err, "could not read icon %s", source)
		}

		return content, nil
	})
	if err != nil {
		return fmt.Errorf("could not read icons: %w", err)
	}
	r.contents = contents

	return nil
}

// ensureDirs creates the output directories. Failures are only logged: the
// directories usually exist already and a real problem surfaces on write.
func (s *synchronizer) ensureDirs(ctx context.Context) {
	dirs := []string{filepath.Dir(s.options.SpritePath), filepath.Dir(s.options.ManifestPath)}
	if s.options.FingerprintPath != "" {
		dirs = append(dirs, filepath.Dir(s.options.FingerprintPath))
	}
	slices.Sort(dirs)

	for _, dir := range slices.Compact(dirs) {
		if err := s.storage.EnsureDir(ctx, dir); err != nil {
			logger.Warn(ctx, "could not create output directory", zap.String("dir", dir), zap.Error(err))
		}
	}
}

func (s *synchronizer) write(ctx context.Context, file, path string, content []byte) (bool, error) {
	changed, err := storage.WriteIfChanged(ctx, s.storage, path, content)
	if err != nil {
		return false, fmt.Errorf("could not write %s: %w", file, err)
	}
	if changed {
		s.options.Recorder.RecordWrite(ctx, file)
	}

	return changed, nil
}

func indices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
