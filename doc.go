/*
 * doc.go, part of govasp.
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

/*Package vasp reads, edits and writes POSCAR-style crystal structure files.

A POSCAR file is line-positional: a free-text header, a scaling factor, the
three lattice vectors of the periodic cell, an optional line with the chemical
symbols of the species present, the per-species atom counts, a line indicating
whether the coordinates that follow are cartesian or direct (fractional), and
then one line per atom. When the chemical-symbols line is missing, the header
itself is taken to carry the symbols, a convention some codes still rely on.

	**govasp capabilities**

    Reads/writes POSCAR files, including transparently gzip, zstd or
	flate-compressed ones.

    Zeroes the in-plane components of the c lattice vector and shifts its
	z component (vacuum-slab adjustments).

    Restores the axis order of files written with the (z,x,y) component
	mis-ordering produced by some conversion scripts.

    Rigidly shifts the fractional c coordinate of every atom so that a
	chosen atom lands on a target fraction, wrapping into [0,1).

    Translates selected atoms across the periodic boundary by a whole
	c lattice vector, choosing the sign from the projection of each atom
	onto the c direction.

    Computes and plots the distribution of atoms along the c direction.

Selective-dynamics flags and any other trailing tokens on an atom line are
carried through untouched. Atom order is never changed by any operation.

Coordinates are kept in the v3.Matrix type of the govasp/v3 subpackage, which
is backed by gonum's mat.Dense. Each row of the matrix is one point in space.*/
package vasp
