/*
 * ops.go, part of govasp.
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
	"math"
	"strings"

	v3 "github.com/rmera/govasp/v3"
)

//The four transformations below mutate the given Document in place. Each
//Document is meant to go through at most one of them before being written
//out. All validation happens before the first mutation, so a Document a
//transformation returned an error for is left as parsed.

//LatticeCShift sets the x and y components of the c lattice vector to exactly
//0.0 and adds deltaZ to its z component. The a and b vectors and the atom
//positions are not touched numerically; serializing the document afterwards
//re-renders them anyway, so the net effect of the operation is a whole-file
//reformat plus the c-vector edit. Serialize with ProfileA.
func LatticeCShift(D *Document, deltaZ float64) error {
	if D == nil {
		panic(ErrNilDocument)
	}
	D.Lattice.Set(2, 0, 0.0)
	D.Lattice.Set(2, 1, 0.0)
	D.Lattice.Set(2, 2, D.Lattice.At(2, 2)+deltaZ)
	return nil
}

//AxisRestore undoes the (z,x,y) component mis-ordering found in files written
//by some conversion scripts: each lattice vector and each atom line holding
//exactly 3 numeric tokens is relabeled from (z,x,y) to (x,y,z). No arithmetic
//is performed. Atom lines with any other token count, including lines that
//carry selective-dynamics flags, are left to be written back verbatim.
//Serialize with ProfileA.
func AxisRestore(D *Document) error {
	if D == nil {
		panic(ErrNilDocument)
	}
	for i := 0; i < 3; i++ {
		z, x, y := D.Lattice.At(i, 0), D.Lattice.At(i, 1), D.Lattice.At(i, 2)
		D.Lattice.Set(i, 0, x)
		D.Lattice.Set(i, 1, y)
		D.Lattice.Set(i, 2, z)
	}
	for i := 0; i < D.Len(); i++ {
		if !D.Numeric[i] || len(strings.Fields(D.Raw[i])) != 3 {
			D.Numeric[i] = false //written back verbatim
			continue
		}
		z, x, y := D.Coords.At(i, 0), D.Coords.At(i, 1), D.Coords.At(i, 2)
		D.Coords.Set(i, 0, x)
		D.Coords.Set(i, 1, y)
		D.Coords.Set(i, 2, z)
	}
	return nil
}

//wrapFrac wraps x into [0,1). Unlike math.Mod alone, negative values wrap up,
//so wrapFrac(-0.25) is 0.75.
func wrapFrac(x float64) float64 {
	m := math.Mod(x, 1.0)
	if m < 0 {
		m += 1.0
	}
	return m
}

//DirectCShift rigidly shifts the fractional c coordinate of every atom so
//that the atom with the given 1-indexed number lands on the target fraction.
//Every atom's new z is wrapped into [0,1); x, y and any trailing tokens are
//untouched. The document must hold direct coordinates and every atom line
//must be numeric. The applied shift is returned for reporting. Serialize with
//ProfileB: fractional occupancies warrant the higher precision.
func DirectCShift(D *Document, atomIndex int, targetFraction float64) (float64, error) {
	if D == nil {
		panic(ErrNilDocument)
	}
	if !D.Direct() {
		return 0, Error{fmt.Sprintf("coordinate-system indicator %q does not announce direct coordinates", D.CoordSys), "", []string{"DirectCShift"}, true}
	}
	if atomIndex < 1 || atomIndex > D.Len() {
		return 0, Error{fmt.Sprintf("atom index %d out of range: there are %d atoms", atomIndex, D.Len()), "", []string{"DirectCShift"}, true}
	}
	if err := D.checkNumeric(); err != nil {
		return 0, errDecorate(err, "DirectCShift")
	}
	delta := targetFraction - D.Coords.At(atomIndex-1, 2)
	for i := 0; i < D.Len(); i++ {
		D.Coords.Set(i, 2, wrapFrac(D.Coords.At(i, 2)+delta))
	}
	return delta, nil
}

//PeriodicTranslate moves each of the atoms with the given 1-indexed numbers
//across the periodic boundary by a whole c lattice vector. The sign is chosen
//from the scalar projection of the atom's position onto the c direction: an
//atom below half the c length is moved up by c, any other atom down by c.
//Positions are taken as cartesian; the coordinate-system indicator is not
//consulted, which mirrors the historical behavior of the scripts this
//replaces (the CLI warns on direct-coordinate files). Every atom line must be
//numeric and every index in range; a zero-length c vector is an error.
//Serialize with ProfileA.
func PeriodicTranslate(D *Document, atomIndices []int) error {
	if D == nil {
		panic(ErrNilDocument)
	}
	c := D.Lattice.VecView(2)
	unit := v3.Zeros(1)
	norm, err := unit.Unit(c)
	if err != nil {
		return Error{"zero-length c lattice vector", "", []string{"PeriodicTranslate"}, true}
	}
	threshold := norm / 2.0
	for _, idx := range atomIndices {
		if idx < 1 || idx > D.Len() {
			return Error{fmt.Sprintf("atom index %d out of range: there are %d atoms", idx, D.Len()), "", []string{"PeriodicTranslate"}, true}
		}
	}
	if err := D.checkNumeric(); err != nil {
		return errDecorate(err, "PeriodicTranslate")
	}
	for _, idx := range atomIndices {
		pos := D.Coords.VecView(idx - 1)
		if v3.Dot(pos, unit) < threshold {
			pos.Add(pos, c)
		} else {
			pos.Sub(pos, c)
		}
	}
	return nil
}

//checkNumeric returns an error naming the first atom line whose position did
//not parse as 3 floats, or nil if all positions are numeric.
func (D *Document) checkNumeric() error {
	for i, ok := range D.Numeric {
		if !ok {
			return Error{fmt.Sprintf("can't parse coordinates for atom %d from %q", i+1, D.Raw[i]), "", nil, true}
		}
	}
	return nil
}
