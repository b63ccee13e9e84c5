/*
 * v3_test.go, part of govasp.
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

package v3

import (
	"math"
	"testing"
)

func TestNewVecs(Te *testing.T) {
	A, err := NewVecs([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("NVecs: got %d, want 2", A.NVecs())
	}
	if A.At(1, 0) != 4 {
		Te.Errorf("At(1,0): got %v, want 4", A.At(1, 0))
	}
	if _, err := NewVecs([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("expected an error for a slice not divisible by 3")
	}
}

func TestVecViewMutates(Te *testing.T) {
	A, _ := NewVecs([]float64{1, 2, 3, 4, 5, 6})
	v := A.VecView(1)
	w, _ := NewVecs([]float64{1, 1, 1})
	v.Add(v, w)
	if A.At(1, 2) != 7 {
		Te.Errorf("view mutation not reflected: got %v, want 7", A.At(1, 2))
	}
}

func TestDotNorm(Te *testing.T) {
	a, _ := NewVecs([]float64{3, 4, 0})
	b, _ := NewVecs([]float64{1, 0, 0})
	if got := Dot(a, b); got != 3 {
		Te.Errorf("Dot: got %v, want 3", got)
	}
	if got := a.Norm(); math.Abs(got-5) > 1e-12 {
		Te.Errorf("Norm: got %v, want 5", got)
	}
}

func TestUnit(Te *testing.T) {
	a, _ := NewVecs([]float64{0, 0, 4})
	u := Zeros(1)
	n, err := u.Unit(a)
	if err != nil {
		Te.Fatal(err)
	}
	if n != 4 {
		Te.Errorf("norm: got %v, want 4", n)
	}
	if u.At(0, 2) != 1 || u.At(0, 0) != 0 {
		Te.Errorf("unit vector: got (%v,%v,%v)", u.At(0, 0), u.At(0, 1), u.At(0, 2))
	}
	z := Zeros(1)
	if _, err := u.Unit(z); err == nil {
		Te.Error("expected an error for a zero-length vector")
	}
}

func TestSub(Te *testing.T) {
	a, _ := NewVecs([]float64{1, 2, 3})
	b, _ := NewVecs([]float64{1, 1, 1})
	a.Sub(a, b)
	if a.At(0, 0) != 0 || a.At(0, 2) != 2 {
		Te.Errorf("Sub: got (%v,%v,%v)", a.At(0, 0), a.At(0, 1), a.At(0, 2))
	}
}
