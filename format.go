/*
 * format.go, part of govasp.
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
	"fmt"

	v3 "github.com/rmera/govasp/v3"
)

//Profile selects one of the two fixed-width layouts used when rendering
//vectors. Only one profile may be used within a single output file.
type Profile int

const (
	//ProfileA renders each component in a 15-character field with 10 decimals.
	ProfileA Profile = iota
	//ProfileB renders each component in a 23-character field with 16 decimals.
	ProfileB
)

//width and precision of the fixed-width fields of the profile.
func (P Profile) layout() (width, prec int) {
	switch P {
	case ProfileA:
		return 15, 10
	case ProfileB:
		return 23, 16
	default:
		panic(ErrProfileMismatch)
	}
}

//FormatFields renders the components x, y and z as a single line: a leading
//space followed by the space-joined, right-justified fixed-width fields of
//the profile.
func (P Profile) FormatFields(x, y, z float64) string {
	w, p := P.layout()
	return fmt.Sprintf(" %*.*f %*.*f %*.*f", w, p, x, w, p, y, w, p, z)
}

//FormatVec renders the ith vector of F under the profile.
func (P Profile) FormatVec(F *v3.Matrix, i int) string {
	return P.FormatFields(F.At(i, 0), F.At(i, 1), F.At(i, 2))
}
