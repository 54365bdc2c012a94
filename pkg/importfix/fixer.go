package importfix

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// SymbolCollector produces the unqualified names a source file needs
// imports for.
type SymbolCollector interface {
	Collect(ctx context.Context, filename string) (Queue, error)
}

// FixerOptions configures a Fixer.
type FixerOptions struct {
	Collector SymbolCollector
	Resolver  *Resolver
	Logger    zerolog.Logger
}

// Fixer resolves and rewrites the imports of source files, one at a time.
type Fixer struct {
	collector SymbolCollector
	resolver  *Resolver
	logger    zerolog.Logger
}

// NewFixer constructs a new Fixer.
func NewFixer(options *FixerOptions) *Fixer {
	return &Fixer{
		collector: options.Collector,
		resolver:  options.Resolver,
		logger:    options.Logger,
	}
}

// Fix collects the missing symbols of the named file, resolves them along
// with the file's existing import lines, and replaces the file if its
// content changed.
func (x *Fixer) Fix(ctx context.Context, filename string) (*Result, error) {
	pending := NewQueue()
	if x.collector != nil {
		q, err := x.collector.Collect(ctx, filename)
		if err != nil {
			return nil, err
		}
		pending = q
	}
	x.logger.Debug().Str("file", filename).Strs("symbols", pending.Names()).Msg("collected symbols")

	src, err := ReadSourceFile(filename)
	if err != nil {
		return nil, err
	}

	result := src.Rewrite(x.resolver, pending)
	if !result.Changed {
		x.logger.Debug().Str("file", filename).Msg("unchanged")
		return result, nil
	}
	if err := src.Write(); err != nil {
		return nil, fmt.Errorf("writing %s: %w", filename, err)
	}

	x.logger.Info().
		Str("file", filename).
		Int("inserted", len(result.Inserted)).
		Int("rewritten", result.Rewritten).
		Int("not_found", len(result.NotFound)).
		Msg("fixed")

	return result, nil
}
