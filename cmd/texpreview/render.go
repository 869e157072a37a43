package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	latex "github.com/eolymp/go-latex-preview"
)

func (a *app) renderCommand() (cmd *cobra.Command) {
	var outputDir string
	var sanitize bool

	cmd = &cobra.Command{
		Use:   "render [file...]",
		Short: "Render LaTeX sources to HTML",
		Long: `Render converts LaTeX sources into HTML fragments.

With no files, the source is read from standard input and HTML is written to
standard output. Files are converted concurrently, each FILE.tex is written as
FILE.html into the output directory (next to the source by default).`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			opts := a.cfg.Options(a.log)
			if sanitize {
				opts.Sanitize = true
			}

			if len(args) == 0 {
				err = a.renderStream(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
				return err
			}

			err = a.renderFiles(cmd.Context(), args, outputDir, opts)
			return err
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for HTML files")
	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "pass HTML through sanitizer")

	return cmd
}

func (a *app) renderStream(r io.Reader, w io.Writer, opts latex.Options) (err error) {
	var data []byte
	data, err = io.ReadAll(r)
	if err != nil {
		err = errors.Wrap(err, "failed to read input")
		return err
	}

	var preview *latex.Preview
	preview, err = latex.Convert(string(data), opts)
	if err != nil {
		err = errors.Wrap(err, "failed to convert input")
		return err
	}

	_, err = io.WriteString(w, preview.HTML+"\n")
	if err != nil {
		err = errors.Wrap(err, "failed to write output")
		return err
	}

	return err
}

func (a *app) renderFiles(ctx context.Context, files []string, outputDir string, opts latex.Options) (err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, file := range files {
		file := file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return a.renderFile(file, outputDir, opts)
		})
	}

	err = g.Wait()
	return err
}

func (a *app) renderFile(file, outputDir string, opts latex.Options) (err error) {
	var data []byte
	data, err = os.ReadFile(file)
	if err != nil {
		err = errors.Wrapf(err, "failed to read source: %s", file)
		return err
	}

	var preview *latex.Preview
	preview, err = latex.Convert(string(data), opts)
	if err != nil {
		err = errors.Wrapf(err, "failed to convert: %s", file)
		return err
	}

	output := htmlPath(file, outputDir)

	err = os.MkdirAll(filepath.Dir(output), 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", filepath.Dir(output))
		return err
	}

	err = os.WriteFile(output, []byte(preview.HTML+"\n"), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write HTML file: %s", output)
		return err
	}

	a.log.Info("Rendered", zap.String("source", file), zap.String("output", output), zap.Int("diagnostics", len(preview.Diagnostics)))

	return err
}

// htmlPath replaces source extension with .html, the file is placed into dir when it's given
func htmlPath(file, dir string) string {
	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file)) + ".html"
	if dir == "" {
		dir = filepath.Dir(file)
	}

	return filepath.Join(dir, base)
}
