/*
 * cli.go, part of govasp.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * Govasp is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//Package cli implements the govasp command-line interface: one subcommand per
//POSCAR transformation, plus the c-profile analysis. Each subcommand takes
//positional arguments, reads the whole input file, applies exactly one
//transformation and writes the whole output file. Wrong argument counts print
//the usage text and exit non-zero before any file is touched.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

//newLogger creates the CLI logger, writing to w and filtering at level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Level:           level,
	})
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

//loggerFromContext returns the logger attached by the root command, or a
//default one if the command is run outside Execute (as in tests).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return newLogger(os.Stderr, log.InfoLevel)
}

//Execute runs the govasp CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:           "govasp",
		Short:         "govasp edits POSCAR crystal-structure files",
		Long:          `govasp reads a POSCAR file, applies one transformation to its lattice or atom positions, and writes the result to a new file. Inputs and outputs ending in .gz, .zst or .flate are (de)compressed transparently.`,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLatticeCShiftCmd())
	root.AddCommand(newAxisRestoreCmd())
	root.AddCommand(newDirectCShiftCmd())
	root.AddCommand(newPeriodicTranslateCmd())
	root.AddCommand(newCProfileCmd())

	return root.ExecuteContext(context.Background())
}
