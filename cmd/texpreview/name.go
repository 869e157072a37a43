package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	latex "github.com/eolymp/go-latex-preview"
)

func (a *app) nameCommand() (cmd *cobra.Command) {
	cmd = &cobra.Command{
		Use:   "name [subject...]",
		Short: "Print file name for downloading the source",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), latex.DownloadName(strings.Join(args, " ")))
			return err
		},
	}

	return cmd
}
