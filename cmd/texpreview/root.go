package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/eolymp/go-latex-preview/internal/config"
	"github.com/eolymp/go-latex-preview/internal/logging"
)

// app holds state shared by commands.
type app struct {
	configFile string
	verbose    bool

	cfg config.Config
	log *zap.Logger
}

func newApp() *app {
	return &app{cfg: config.Default()}
}

func (a *app) command() (root *cobra.Command) {
	root = &cobra.Command{
		Use:   "texpreview",
		Short: "Preview generated resume LaTeX as HTML",
		Long: `texpreview renders the subset of LaTeX produced by the resume generator
(sections, emphasis, centered headers, itemized lists) as safe HTML fragments
and suggests names for downloading the untouched source.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.prepare,
		PersistentPostRun: a.finish,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file in YAML format")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(a.renderCommand(), a.checkCommand(), a.nameCommand())

	return root
}

// prepare loads configuration and creates logger before any command runs.
func (a *app) prepare(_ *cobra.Command, _ []string) (err error) {
	a.cfg, err = config.Load(a.configFile)
	if err != nil {
		return err
	}

	if a.log != nil {
		return err
	}

	a.log, err = logging.New(a.cfg.Logging, a.verbose)
	if err != nil {
		err = errors.Wrap(err, "unable to prepare logs")
		return err
	}

	return err
}

func (a *app) finish(_ *cobra.Command, _ []string) {
	if a.log != nil {
		_ = a.log.Sync()
	}
}
