package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	latex "github.com/eolymp/go-latex-preview"
)

func (a *app) checkCommand() (cmd *cobra.Command) {
	var all bool

	cmd = &cobra.Command{
		Use:   "check [file...]",
		Short: "Report malformed markup",
		Long: `Check converts sources and lists recovered problems: unterminated groups and
environments, mismatched environment names, excessive nesting. The command
fails if any source has such problems. Ignored commands are listed with --all.`,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			w := cmd.OutOrStdout()
			opts := a.cfg.Options(a.log)

			if len(args) == 0 {
				var data []byte
				data, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					err = errors.Wrap(err, "failed to read input")
					return err
				}

				return check(w, "<stdin>", string(data), opts, all)
			}

			failed := 0
			for _, file := range args {
				var data []byte
				data, err = os.ReadFile(file)
				if err != nil {
					err = errors.Wrapf(err, "failed to read source: %s", file)
					return err
				}

				if check(w, file, string(data), opts, all) != nil {
					failed++
				}
			}

			if failed > 0 {
				err = errors.Errorf("%d of %d sources have malformed markup", failed, len(args))
				return err
			}

			return err
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list ignored commands too")

	return cmd
}

// check prints diagnostics for one source, error is returned if markup is malformed
func check(w io.Writer, name, source string, opts latex.Options, all bool) (err error) {
	var preview *latex.Preview
	preview, err = latex.Convert(source, opts)
	if err != nil {
		_, _ = fmt.Fprintf(w, "%s: %v\n", name, err)
		return err
	}

	for _, d := range preview.Diagnostics {
		if d.Informational() && !all {
			continue
		}

		_, _ = fmt.Fprintf(w, "%s: %v\n", name, d)
	}

	err = preview.Err()
	return err
}
