/*
 * commands.go, part of govasp.
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

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	vasp "github.com/rmera/govasp"
)

//parseIndexList parses a comma-separated list of 1-indexed atom numbers, as
//given on the command line (e.g. "1,3,5").
func parseIndexList(s string) ([]int, error) {
	var ret []int
	for _, tok := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("can't parse atom index %q: %v", tok, err)
		}
		if n < 1 {
			return nil, fmt.Errorf("atom indices are 1-indexed, got %d", n)
		}
		ret = append(ret, n)
	}
	return ret, nil
}

func newLatticeCShiftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lattice-c-shift <input> <output> <delta_z>",
		Short: "Zero the in-plane components of the c lattice vector and shift its z component",
		Long:  `lattice-c-shift sets the x and y components of the c lattice vector to 0.0, adds <delta_z> to its z component, and reformats the whole file. Atom positions are re-rendered but not changed numerically.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			c.SilenceUsage = true
			delta, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("<delta_z> must be a valid number: %v", err)
			}
			doc, err := vasp.PoscarRead(args[0])
			if err != nil {
				return err
			}
			if err := vasp.LatticeCShift(doc, delta); err != nil {
				return err
			}
			return vasp.PoscarWrite(args[1], doc, vasp.ProfileA)
		},
	}
}

func newAxisRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "axis-restore <input> <output>",
		Short: "Reorder (z,x,y) lattice and atom components into (x,y,z)",
		Long:  `axis-restore assumes the components of each lattice vector and atom position are stored in the (z,x,y) order produced by some conversion scripts and rewrites them as (x,y,z). Lines that do not hold exactly 3 numbers are copied unchanged.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			c.SilenceUsage = true
			doc, err := vasp.PoscarRead(args[0])
			if err != nil {
				return err
			}
			if err := vasp.AxisRestore(doc); err != nil {
				return err
			}
			return vasp.PoscarWrite(args[1], doc, vasp.ProfileA)
		},
	}
}

func newDirectCShiftCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "direct-c-shift <input> <output> <atom_index> <target_fraction>",
		Short: "Shift every atom's fractional c coordinate so one atom lands on a target",
		Long:  `direct-c-shift computes the shift that moves atom <atom_index> (1-indexed) to the fractional c coordinate <target_fraction> and applies it to every atom, wrapping the results into [0,1). The file must use direct coordinates.`,
		Args:  cobra.ExactArgs(4),
		RunE: func(c *cobra.Command, args []string) error {
			c.SilenceUsage = true
			index, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("<atom_index> must be an integer: %v", err)
			}
			if index < 1 {
				return fmt.Errorf("<atom_index> is 1-indexed, got %d", index)
			}
			target, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("<target_fraction> must be a valid number: %v", err)
			}
			doc, err := vasp.PoscarRead(args[0])
			if err != nil {
				return err
			}
			delta, err := vasp.DirectCShift(doc, index, target)
			if err != nil {
				return err
			}
			if err := vasp.PoscarWrite(args[1], doc, vasp.ProfileB); err != nil {
				return err
			}
			loggerFromContext(c.Context()).Info("shift applied", "delta", fmt.Sprintf("%.16f", delta), "output", args[1])
			return nil
		},
	}
}

func newPeriodicTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "periodic-translate <input> <output> <atom_indices>",
		Short: "Move selected atoms across the periodic boundary by a whole c vector",
		Long:  `periodic-translate adds or subtracts the full c lattice vector from each atom in the comma-separated, 1-indexed list <atom_indices>, choosing the sign from the atom's projection onto the c direction. Positions are taken as cartesian.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(c *cobra.Command, args []string) error {
			c.SilenceUsage = true
			indices, err := parseIndexList(args[2])
			if err != nil {
				return err
			}
			doc, err := vasp.PoscarRead(args[0])
			if err != nil {
				return err
			}
			if doc.Direct() {
				//the translation assumes cartesian positions but the original
				//tooling never checked, so we warn instead of refusing.
				loggerFromContext(c.Context()).Warn("input uses direct coordinates; periodic-translate treats positions as cartesian")
			}
			if err := vasp.PeriodicTranslate(doc, indices); err != nil {
				return err
			}
			return vasp.PoscarWrite(args[1], doc, vasp.ProfileA)
		},
	}
}

func newCProfileCmd() *cobra.Command {
	var bins int
	cmd := &cobra.Command{
		Use:   "c-profile <input> <output-image>",
		Short: "Plot the distribution of atoms along the c direction",
		Long:  `c-profile projects every atom onto the c direction (the raw fraction for direct coordinates) and writes a histogram of the distribution to <output-image>. The image format follows the file extension; .png is the usual choice.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			c.SilenceUsage = true
			doc, err := vasp.PoscarRead(args[0])
			if err != nil {
				return err
			}
			prof, err := vasp.CProfile(doc, bins, args[1])
			if err != nil {
				return err
			}
			loggerFromContext(c.Context()).Info("profile written", "atoms", len(prof.Projections),
				"mean", fmt.Sprintf("%.4f", prof.Mean), "min", fmt.Sprintf("%.4f", prof.Min),
				"max", fmt.Sprintf("%.4f", prof.Max), "output", args[1])
			return nil
		},
	}
	cmd.Flags().IntVar(&bins, "bins", 20, "number of histogram bins")
	return cmd
}
