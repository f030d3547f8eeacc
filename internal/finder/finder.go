// Package finder runs the walk-and-filter loop behind every search.
package finder

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/taigrr/extfind/internal/filesystem"
	"github.com/taigrr/extfind/internal/pathfilter"
	"github.com/taigrr/extfind/internal/types"
)

// NoExtensionsMessage is the message shown when the extension list normalizes to nothing.
const NoExtensionsMessage = "error: please specify at least one file extension"

// Service finds files by extension below a root directory.
type Service struct {
	logger zerolog.Logger
}

// New creates a new Service. Walk errors are reported to logger at warn level.
func New(logger zerolog.Logger) *Service {
	return &Service{logger: logger}
}

// Find walks cfg.Root and calls emit with the path of every matching regular
// file as soon as it is found. It returns the number of matches.
//
// Per-entry walk errors never abort the search. The only error returned is
// the context's, when it is cancelled mid-walk.
func (s *Service) Find(ctx context.Context, cfg types.FindConfig, emit func(path string) error) (int, error) {
	pf := pathfilter.New(&types.PathFilterConfig{
		Extensions: cfg.Extensions,
		IgnoreDirs: cfg.IgnoreDirs,
	})
	if !pf.HasExtensions() {
		return 0, nil
	}

	maxDepth := cfg.MaxDepth
	if maxDepth < 0 {
		maxDepth = types.Unlimited
	}

	found := 0
	for entry, err := range filesystem.Walk(cfg.Root, maxDepth, pf.SkipDir) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return found, ctxErr
		}

		if err != nil {
			s.logger.Warn().Err(err).Str("path", entry.Path).Msg("skipping entry")
			continue
		}

		if !entry.IsRegular() || !pf.MatchFile(entry.Path) {
			continue
		}

		if err := emit(entry.Path); err != nil {
			return found, err
		}
		found++
	}

	return found, nil
}

// Collect runs Find and gathers up to limit matching paths. A limit of zero
// or less collects everything. Count always reports every match.
func (s *Service) Collect(ctx context.Context, cfg types.FindConfig, limit int) (types.FindResult, error) {
	var result types.FindResult
	count, err := s.Find(ctx, cfg, func(path string) error {
		if limit <= 0 || len(result.Paths) < limit {
			result.Paths = append(result.Paths, path)
		}
		return nil
	})
	result.Count = count
	return result, err
}
