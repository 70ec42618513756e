package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-antennae"
	"github.com/goliatone/go-antennae/internal/config"
	"github.com/goliatone/go-antennae/internal/prompt"
	"github.com/goliatone/go-antennae/pkg/render"
)

// app carries the collaborators commands need so tests can swap them.
type app struct {
	driver      prompt.Driver
	interactive func() bool
}

type rootFlags struct {
	config   string
	engine   string
	sanitize string
	verbose  bool
}

func newRootCmd(a app) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Discover and render templates embedded in HTML script tags",
		Long: appName + " scans an HTML page for <script> elements typed text/html or\n" +
			"x-tmpl-mustache, registers them by data-name or id, and renders them.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVarP(&flags.engine, "engine", "e", "", "template engine (mustache, pongo2, fasttemplate)")
	cmd.PersistentFlags().StringVar(&flags.sanitize, "sanitize", "", "output policy (none, strict, ugc)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log template discovery to stderr")

	cmd.AddCommand(newListCmd(flags), newRenderCmd(a, flags))
	return cmd
}

// setup resolves configuration and builds the template set for a command.
func setup(cmd *cobra.Command, flags *rootFlags) (*antennae.Templates, error) {
	cfg, err := config.Load(flags.config)
	if err != nil {
		return nil, err
	}
	if flags.engine != "" {
		cfg.Engine = flags.engine
	}
	if flags.sanitize != "" {
		cfg.OutputPolicy = flags.sanitize
	}

	engines, err := antennae.Engines()
	if err != nil {
		return nil, err
	}
	engine, err := engines.Get(cfg.Engine)
	if err != nil {
		return nil, err
	}
	policy, err := render.PolicyByName(cfg.OutputPolicy)
	if err != nil {
		return nil, err
	}

	return antennae.New(
		antennae.WithEngine(engine),
		antennae.WithOutputPolicy(policy),
		antennae.WithLogger(newLogger(cmd.ErrOrStderr(), flags.verbose)),
		antennae.WithLoaderOptions(cfg.LoaderOptions()...),
	), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
