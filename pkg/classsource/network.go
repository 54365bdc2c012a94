package classsource

import (
	"context"
	"fmt"

	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"

	"github.com/stackb/javimp/pkg/config"
)

// PageFetcher retrieves the body of a URL.  *Fetcher implements it.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// NetworkBuilderOptions configures a NetworkBuilder.
type NetworkBuilderOptions struct {
	Sources []*config.Source
	// Jars are glob patterns of local jar files.
	Jars    []string
	Fetcher PageFetcher
	// Progress is optional.
	Progress mobyprogress.Output
	Logger   zerolog.Logger
}

// NetworkBuilder scrapes class names from HTML class indexes and local
// jars.
type NetworkBuilder struct {
	sources  []*config.Source
	jars     []string
	fetcher  PageFetcher
	progress mobyprogress.Output
	logger   zerolog.Logger
}

// NewNetworkBuilder constructs a new NetworkBuilder.
func NewNetworkBuilder(options *NetworkBuilderOptions) *NetworkBuilder {
	return &NetworkBuilder{
		sources:  options.Sources,
		jars:     options.Jars,
		fetcher:  options.Fetcher,
		progress: options.Progress,
		logger:   options.Logger,
	}
}

// Name implements part of the Builder interface.
func (b *NetworkBuilder) Name() string {
	return "network"
}

// Available implements part of the Builder interface.
func (b *NetworkBuilder) Available() error {
	if len(b.sources) == 0 && len(b.jars) == 0 {
		return fmt.Errorf("%w: no class sources configured", ErrUnavailable)
	}
	if len(b.sources) > 0 && b.fetcher == nil {
		return fmt.Errorf("%w: no page fetcher", ErrUnavailable)
	}
	return nil
}

// Build implements part of the Builder interface.  Sources are visited in
// order; the first failure aborts the build.
func (b *NetworkBuilder) Build(ctx context.Context) ([]string, error) {
	if err := b.Available(); err != nil {
		return nil, err
	}

	var all []string
	for i, src := range b.sources {
		b.writeProgress(src.Name, fmt.Sprintf("Fetching %s classes from %s", src.Name, src.URL), int64(i), int64(len(b.sources)))

		page, err := b.fetcher.Fetch(ctx, src.URL)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", src.Name, err)
		}
		names, err := ExtractClasses(page, src)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", src.Name, err)
		}
		b.logger.Debug().Str("source", src.Name).Int("classes", len(names)).Msg("fetched")
		all = append(all, names...)
	}

	jars, err := ExpandJars(b.jars)
	if err != nil {
		return nil, err
	}
	for i, jar := range jars {
		b.writeProgress("jars", fmt.Sprintf("Indexing %s", jar), int64(i), int64(len(jars)))

		names, err := NewJarClassPathEntry(jar).ClassNames()
		if err != nil {
			return nil, err
		}
		b.logger.Debug().Str("jar", jar).Int("classes", len(names)).Msg("indexed")
		all = append(all, names...)
	}

	return dedupe(all), nil
}

func (b *NetworkBuilder) writeProgress(id, message string, current, total int64) {
	if b.progress == nil {
		return
	}
	b.progress.WriteProgress(mobyprogress.Progress{
		ID:      id,
		Action:  message,
		Current: current + 1,
		Total:   total,
		Units:   "sources",
	})
}
