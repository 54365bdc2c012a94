package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/pcj/mobyprogress"
	"github.com/rs/zerolog"
	"github.com/viant/afs"

	"github.com/stackb/javimp/pkg/classdir"
	"github.com/stackb/javimp/pkg/classsource"
	"github.com/stackb/javimp/pkg/config"
	"github.com/stackb/javimp/pkg/importfix"
	"github.com/stackb/javimp/pkg/javac"
	"github.com/stackb/javimp/pkg/logger"
)

type app struct {
	env     *environment
	cfg     *config.Config
	logger  zerolog.Logger
	store   *classdir.Store
	builder classsource.Builder
}

func newApp(env *environment) (*app, error) {
	cfg, err := config.Load(env.baseDir)
	if err != nil {
		return nil, err
	}
	log := logger.New(env.stderr, cfg.Debug)

	progress := mobyprogress.NewProgressOutput(mobyprogress.NewOut(env.stderr))
	builder := classsource.Select(cfg, progress, logger.Component(log, "classsource"))

	log.Debug().Str("builder", builder.Name()).Msg("selected class source builder")
	if err := builder.Available(); err != nil {
		fmt.Fprintf(env.stderr, "Warning - %v\n", err)
		fmt.Fprintf(env.stderr, "Updating the class list will not be available.\n\n")
	}

	return &app{
		env:     env,
		cfg:     cfg,
		logger:  log,
		store:   classdir.NewStore(afs.New(), cfg.ClassList),
		builder: builder,
	}, nil
}

func (a *app) run(ctx context.Context, inv *invocation) error {
	for _, opt := range inv.ignored {
		a.logger.Debug().Str("arg", opt).Msg("ignoring unrecognized option")
	}
	if len(inv.files) == 0 {
		return a.update(ctx)
	}
	return a.resolve(ctx, inv.files)
}

// update rebuilds the class list from the configured sources.
func (a *app) update(ctx context.Context) error {
	if err := a.builder.Available(); err != nil {
		fmt.Fprintf(a.env.stderr, "Error - missing capability: %v\n", err)
		return errReported
	}

	fmt.Fprintln(a.env.stdout, "Updating list of classes. This may take a little while...")
	names, err := a.builder.Build(ctx)
	if err != nil {
		return fmt.Errorf("building class list (%s): %w", a.builder.Name(), err)
	}
	a.logger.Info().Str("builder", a.builder.Name()).Int("classes", len(names)).Msg("built class list")
	if err := a.store.Save(ctx, names); err != nil {
		return err
	}
	fmt.Fprintf(a.env.stdout, "List of classes to search for updated (%d classes in %s).\n", len(names), a.store.URL())
	return nil
}

// resolve rewrites the imports of each file in turn.  A failure to run the
// compiler stops the run; other per-file failures are reported and the
// remaining files are still processed.
func (a *app) resolve(ctx context.Context, args []string) error {
	files, err := expandFiles(args)
	if err != nil {
		return err
	}

	ok, err := a.store.Exists(ctx)
	if err != nil {
		return fmt.Errorf("checking class list %s: %w", a.store.URL(), err)
	}
	if !ok {
		return fmt.Errorf("class list %s not found; run %s without files to create it", a.store.URL(), executableName)
	}
	dir, err := a.store.Load(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug().Int("classes", dir.Len()).Str("url", a.store.URL()).Msg("loaded class list")

	fixer := importfix.NewFixer(&importfix.FixerOptions{
		Collector: javac.NewCollector(&javac.CollectorOptions{
			Executable: a.cfg.Javac,
			Args:       a.cfg.JavacArgs,
			Logger:     logger.Component(a.logger, "javac"),
		}),
		Resolver: importfix.NewResolver(dir, &importfix.ResolverOptions{
			Diagnostics:  a.env.stderr,
			AfterPackage: a.cfg.AfterPackage,
			Logger:       logger.Component(a.logger, "resolver"),
		}),
		Logger: a.logger,
	})

	var failed, notFound int
	for _, filename := range files {
		result, err := fixer.Fix(ctx, filename)
		if err != nil {
			var invocationErr *javac.InvocationError
			if errors.As(err, &invocationErr) {
				return err
			}
			a.logger.Error().Err(err).Str("file", filename).Msg("fix failed")
			failed++
			continue
		}
		notFound += len(result.NotFound)
	}

	if notFound > 0 {
		fmt.Fprintf(a.env.stderr, "run %s without files to update the class list\n", executableName)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be fixed", failed, len(files))
	}
	return nil
}
