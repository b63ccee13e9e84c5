/*
 * profile.go, part of govasp.
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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//AxisProfile summarizes the distribution of the atoms of a document along
//the c direction.
type AxisProfile struct {
	Projections []float64 //one per atom, in file order
	Mean        float64
	Min         float64
	Max         float64
}

//CAxisProjections returns the per-atom scalar position along the c direction:
//the raw z fraction for a direct-coordinate document, the projection onto the
//c unit vector for a cartesian one. Every atom line must be numeric, and a
//cartesian document needs a non-zero c vector.
func CAxisProjections(D *Document) ([]float64, error) {
	if D == nil {
		panic(ErrNilDocument)
	}
	if D.Len() == 0 {
		return nil, Error{"document has no atoms", "", []string{"CAxisProjections"}, true}
	}
	if err := D.checkNumeric(); err != nil {
		return nil, errDecorate(err, "CAxisProjections")
	}
	projs := make([]float64, D.Len())
	if D.Direct() {
		for i := range projs {
			projs[i] = D.Coords.At(i, 2)
		}
		return projs, nil
	}
	c := D.Lattice.VecView(2)
	unit := v3.Zeros(1)
	if _, err := unit.Unit(c); err != nil {
		return nil, Error{"zero-length c lattice vector", "", []string{"CAxisProjections"}, true}
	}
	for i := range projs {
		projs[i] = v3.Dot(D.Coords.VecView(i), unit)
	}
	return projs, nil
}

//CProfile computes the distribution of the atoms of D along the c direction
//and renders it as a histogram with the given number of bins to the image
//file name (the format is taken from the extension, .png being the usual
//choice).
func CProfile(D *Document, bins int, name string) (*AxisProfile, error) {
	if bins < 1 {
		return nil, Error{fmt.Sprintf("need at least 1 histogram bin, got %d", bins), "", []string{"CProfile"}, true}
	}
	projs, err := CAxisProjections(D)
	if err != nil {
		return nil, errDecorate(err, "CProfile")
	}
	ret := &AxisProfile{
		Projections: projs,
		Mean:        stat.Mean(projs, nil),
		Min:         floats.Min(projs),
		Max:         floats.Max(projs),
	}
	p := plot.New()
	p.Title.Text = "Occupation along c"
	if D.Direct() {
		p.X.Label.Text = "c fraction"
	} else {
		p.X.Label.Text = "projection on c"
	}
	p.Y.Label.Text = "atoms"
	h, err := plotter.NewHist(plotter.Values(projs), bins)
	if err != nil {
		return nil, Error{"can't build histogram: " + err.Error(), "", []string{"CProfile"}, true}
	}
	p.Add(h)
	if err := p.Save(5*vg.Inch, 3*vg.Inch, name); err != nil {
		return nil, Error{"can't save plot: " + err.Error(), name, []string{"CProfile"}, true}
	}
	return ret, nil
}
