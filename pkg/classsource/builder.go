// Package classsource builds the class list from external sources.
package classsource

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"

	"github.com/stackb/javimp/pkg/config"
)

// ErrUnavailable is returned by builders whose capability is missing.
var ErrUnavailable = errors.New("class sources unavailable")

// Builder produces a list of fully-qualified class names.
type Builder interface {
	// Name identifies the builder in diagnostics.
	Name() string
	// Available returns nil if Build can be expected to work, or an error
	// wrapping ErrUnavailable describing the missing capability.
	Available() error
	// Build returns the distinct class names, sorted.
	Build(ctx context.Context) ([]string, error)
}

// Select returns the stub builder when the configuration is offline and the
// network-backed builder otherwise.
func Select(cfg *config.Config, progress mobyprogress.Output, logger zerolog.Logger) Builder {
	if cfg.Offline {
		return NewUnavailable(fmt.Sprintf("network class sources disabled (%s)", config.OfflineEnv))
	}
	return NewNetworkBuilder(&NetworkBuilderOptions{
		Sources:  cfg.Sources,
		Jars:     cfg.Jars,
		Fetcher:  NewFetcher(cfg.Timeout),
		Progress: progress,
		Logger:   logger,
	})
}

// Unavailable is a Builder that reports a missing capability instead of
// building anything.
type Unavailable struct {
	reason string
}

// NewUnavailable constructs a stub builder with the given reason.
func NewUnavailable(reason string) *Unavailable {
	return &Unavailable{reason: reason}
}

// Name implements part of the Builder interface.
func (u *Unavailable) Name() string {
	return "unavailable"
}

// Available implements part of the Builder interface.
func (u *Unavailable) Available() error {
	return fmt.Errorf("%w: %s", ErrUnavailable, u.reason)
}

// Build implements part of the Builder interface.
func (u *Unavailable) Build(ctx context.Context) ([]string, error) {
	return nil, u.Available()
}

func dedupe(names []string) []string {
	sort.Strings(names)
	out := names[:0]
	for i, name := range names {
		if name == "" || (i > 0 && name == names[i-1]) {
			continue
		}
		out = append(out, name)
	}
	return out
}
