/*
 * profile_test.go, part of govasp.
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

package vasp

import (
	"math"
	"path/filepath"
	"testing"
)

func TestCAxisProjectionsDirect(Te *testing.T) {
	D := parseString(Te, siDirect)
	projs, err := CAxisProjections(D)
	if err != nil {
		Te.Fatal(err)
	}
	if len(projs) != 2 || projs[0] != 0.0 || projs[1] != 0.25 {
		Te.Errorf("projections: got %v, want [0 0.25]", projs)
	}
}

func TestCAxisProjectionsCartesian(Te *testing.T) {
	in := "slab\n1.0\n 10.0 0.0 0.0\n 0.0 10.0 0.0\n 0.0 0.0 5.0\nC\n2\nCartesian\n 1.0 1.0 1.0\n 2.0 2.0 4.0\n"
	D := parseString(Te, in)
	projs, err := CAxisProjections(D)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(projs[0]-1.0) > 1e-12 || math.Abs(projs[1]-4.0) > 1e-12 {
		Te.Errorf("projections: got %v, want [1 4]", projs)
	}
}

func TestCProfile(Te *testing.T) {
	D := parseString(Te, siDirect)
	name := filepath.Join(Te.TempDir(), "profile.png")
	prof, err := CProfile(D, 4, name)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(prof.Mean-0.125) > 1e-12 {
		Te.Errorf("mean: got %v, want 0.125", prof.Mean)
	}
	if prof.Min != 0.0 || prof.Max != 0.25 {
		Te.Errorf("min/max: got %v/%v, want 0/0.25", prof.Min, prof.Max)
	}
	if _, err := CProfile(D, 0, name); err == nil {
		Te.Error("expected an error for 0 bins")
	}
}
