/*
 * gonum.go, part of govasp.
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

//Package v3 implements a container for sets of 3D vectors, backed by gonum's
//mat.Dense. Within the package it is understood that a "vector" is a row of
//the matrix, i.e. the cartesian or fractional coordinates of one point in
//space.
package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space, one per row.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the underlying mat.Dense of A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a mat.Dense in a Matrix. The Dense must have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(ErrNotXx3Matrix)
	}
	return &Matrix{A}
}

//NewVecs creates and returns a Matrix with 3 columns from data, or an error
//if the length of data is not divisible by 3.
func NewVecs(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewVecs"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes in the view
//are reflected in F and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Copy copies the content of A into the receiver. Both matrices must have the
//same number of vectors.
func (F *Matrix) Copy(A *Matrix) {
	if F.NVecs() != A.NVecs() {
		panic(ErrShape)
	}
	F.Dense.Copy(A.Dense)
}

//Add puts in the receiver the element-wise sum A+B. Panics on dimension
//mismatch.
func (F *Matrix) Add(A, B *Matrix) {
	if A.NVecs() != B.NVecs() || F.NVecs() != A.NVecs() {
		panic(ErrShape)
	}
	F.Dense.Add(A.Dense, B.Dense)
}

//Sub puts in the receiver the element-wise difference A-B. Panics on
//dimension mismatch.
func (F *Matrix) Sub(A, B *Matrix) {
	if A.NVecs() != B.NVecs() || F.NVecs() != A.NVecs() {
		panic(ErrShape)
	}
	F.Dense.Sub(A.Dense, B.Dense)
}

//Scale puts in the receiver the matrix A scaled by the factor f.
func (F *Matrix) Scale(f float64, A *Matrix) {
	F.Dense.Scale(f, A.Dense)
}

//Dot returns the dot product between the first vectors of A and B.
func Dot(A, B *Matrix) float64 {
	var d float64
	for k := 0; k < 3; k++ {
		d += A.At(0, k) * B.At(0, k)
	}
	return d
}

//Norm returns the Euclidean norm of the first vector of the matrix.
func (F *Matrix) Norm() float64 {
	return math.Sqrt(Dot(F, F))
}

//Unit puts in the receiver the first vector of A scaled to unit length, and
//returns the original norm. It returns an error on a zero-norm vector, in
//which case the receiver is left untouched.
func (F *Matrix) Unit(A *Matrix) (float64, error) {
	n := A.Norm()
	if n == 0 {
		return 0, Error{"Can't normalize a zero-length vector", []string{"Unit"}, true}
	}
	F.Scale(1/n, A)
	return n, nil
}

//Errors

//the same as vasp.Error but avoids a circular import.
type errorInt interface {
	Error() string
	Critical() bool
	Decorate(string) []string
}

//Error is the error type for the v3 package.
type Error struct {
	message  string
	deco     []string
	critical bool
}

//Error returns a string with an error message.
func (err Error) Error() string {
	return fmt.Sprintf("govasp/v3: %s", err.message)
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical returns whether the error is critical or can be ignored.
func (err Error) Critical() bool { return err.critical }

//PanicMsg is a message used for panics. It satisfies the error interface, but
//for errors use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNotXx3Matrix      = PanicMsg("govasp/v3: A Matrix should have 3 columns")
	ErrNotEnoughElements = PanicMsg("govasp/v3: not enough elements in Matrix")
	ErrShape             = PanicMsg("govasp/v3: Dimension mismatch")
)
