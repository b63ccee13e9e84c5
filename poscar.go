/*
 * poscar.go, part of govasp.
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
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/govasp/v3"
)

//Document is the in-memory representation of a POSCAR file. It is built once
//by PoscarParse or PoscarRead, mutated in place by at most one of the
//transformation functions, and serialized once.
//
//Atom data lives in parallel slices/matrices indexed by atom: the ith row of
//Coords holds the position parsed from the ith coordinate line, Extras[i] the
//tokens trailing the position (selective-dynamics flags and the like, never
//interpreted), Raw[i] the original line, and Numeric[i] whether the first 3
//tokens of the line parsed as floats. Lines with Numeric[i] false are carried
//through verbatim by the writer; whether they are tolerated at all is up to
//each transformation.
type Document struct {
	Header   string
	Scaling  string     //opaque, passed through unchanged
	Lattice  *v3.Matrix //3 vectors: the rows are a, b and c
	Symbols  string
	Counts   []int
	CoordSys string
	Coords   *v3.Matrix //one vector per atom; nil when sum(Counts) is 0
	Extras   [][]string
	Raw      []string
	Numeric  []bool
	Trailing []string //lines beyond sum(Counts), preserved verbatim
}

//Len returns the number of atoms in the document, i.e. the sum of the
//per-species counts.
func (D *Document) Len() int {
	return len(D.Raw)
}

//Direct returns whether the coordinate-system indicator announces direct
//(fractional) coordinates.
func (D *Document) Direct() bool {
	return strings.HasPrefix(strings.ToLower(D.CoordSys), "d")
}

//Cartesian returns whether the coordinate-system indicator announces
//cartesian coordinates.
func (D *Document) Cartesian() bool {
	l := strings.ToLower(D.CoordSys)
	return strings.HasPrefix(l, "c") || strings.HasPrefix(l, "k")
}

//isCountLine returns whether every whitespace-separated token in the line is
//composed solely of digits. This is the single rule that disambiguates the
//optional chemical-symbols line: species symbols always carry letters.
func isCountLine(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		for _, r := range tok {
			if !unicode.IsDigit(r) {
				return false
			}
		}
	}
	return true
}

//PoscarParse reads a whole POSCAR document from in. Lines 1-2 are the header
//and the scaling factor, lines 3-5 the lattice vectors. Line 6 either lists
//the chemical symbols or, when all its tokens are numeric, already holds the
//per-species atom counts, in which case the symbols are taken from the header
//tokens. Exactly sum(counts) coordinate lines are consumed; coordinate lines
//whose first 3 tokens do not parse as floats are recorded verbatim rather
//than rejected, and any lines beyond the atom count are kept as trailing
//text.
func PoscarParse(in io.Reader) (*Document, error) {
	scanner := bufio.NewScanner(in)
	lines := make([]string, 0, 100)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, Error{"can't read input: " + err.Error(), "", []string{"PoscarParse"}, true}
	}
	if len(lines) < 7 {
		return nil, Error{"file appears too short to be a valid POSCAR file", "", []string{"PoscarParse"}, true}
	}
	D := new(Document)
	D.Header = lines[0]
	D.Scaling = lines[1]
	D.Lattice = v3.Zeros(3)
	for i := 2; i <= 4; i++ {
		fields := strings.Fields(lines[i])
		if len(fields) != 3 {
			return nil, Error{fmt.Sprintf("lattice vector on line %d does not have 3 components", i+1), "", []string{"PoscarParse"}, true}
		}
		for j, f := range fields {
			val, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, Error{fmt.Sprintf("can't parse lattice vector on line %d: %s", i+1, err.Error()), "", []string{"PoscarParse"}, true}
			}
			D.Lattice.Set(i-2, j, val)
		}
	}
	var countsLine string
	var coordsStart int
	const idx = 5 //first line after the lattice vectors
	if isCountLine(lines[idx]) {
		//No chemical-symbols line: the header doubles as the symbol list.
		D.Symbols = strings.Join(strings.Fields(D.Header), " ")
		countsLine = strings.TrimSpace(lines[idx])
		D.CoordSys = strings.TrimSpace(lines[idx+1])
		coordsStart = idx + 2
	} else {
		if len(lines) < 8 {
			return nil, Error{"file appears too short to be a valid POSCAR file", "", []string{"PoscarParse"}, true}
		}
		D.Symbols = strings.TrimSpace(lines[idx])
		countsLine = strings.TrimSpace(lines[idx+1])
		D.CoordSys = strings.TrimSpace(lines[idx+2])
		coordsStart = idx + 3
	}
	for _, tok := range strings.Fields(countsLine) {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return nil, Error{fmt.Sprintf("can't parse atom counts %q", countsLine), "", []string{"PoscarParse"}, true}
		}
		D.Counts = append(D.Counts, n)
	}
	if len(D.Counts) == 0 {
		return nil, Error{"empty atom-counts line", "", []string{"PoscarParse"}, true}
	}
	low := strings.ToLower(D.CoordSys)
	if low == "" || !strings.ContainsRune("ckd", rune(low[0])) {
		return nil, Error{fmt.Sprintf("coordinate-system indicator %q does not start with 'c', 'k' or 'd'", D.CoordSys), "", []string{"PoscarParse"}, true}
	}
	natoms := 0
	for _, n := range D.Counts {
		natoms += n
	}
	if len(lines) < coordsStart+natoms {
		return nil, Error{fmt.Sprintf("not enough coordinate lines: expected %d, found %d", natoms, len(lines)-coordsStart), "", []string{"PoscarParse"}, true}
	}
	if natoms > 0 {
		D.Coords = v3.Zeros(natoms)
	}
	D.Extras = make([][]string, natoms)
	D.Raw = make([]string, natoms)
	D.Numeric = make([]bool, natoms)
	for i := 0; i < natoms; i++ {
		raw := lines[coordsStart+i]
		D.Raw[i] = raw
		fields := strings.Fields(raw)
		if len(fields) < 3 {
			continue
		}
		var xyz [3]float64
		parsed := true
		for j := 0; j < 3; j++ {
			val, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				parsed = false
				break
			}
			xyz[j] = val
		}
		if !parsed {
			continue
		}
		D.Coords.Set(i, 0, xyz[0])
		D.Coords.Set(i, 1, xyz[1])
		D.Coords.Set(i, 2, xyz[2])
		D.Numeric[i] = true
		if len(fields) > 3 {
			D.Extras[i] = fields[3:]
		}
	}
	D.Trailing = append(D.Trailing, lines[coordsStart+natoms:]...)
	return D, nil
}

//PoscarSerialize writes D to out, rendering the lattice vectors and every
//numeric atom line through the given formatting profile. Non-numeric atom
//lines and trailing lines are written back verbatim. The symbols line is
//always emitted, even when the input derived it from the header. Every line
//ends with a single newline.
func PoscarSerialize(out io.Writer, D *Document, prof Profile) error {
	if D == nil {
		panic(ErrNilDocument)
	}
	w := bufio.NewWriter(out)
	w.WriteString(D.Header + "\n")
	w.WriteString(D.Scaling + "\n")
	for i := 0; i < 3; i++ {
		w.WriteString(prof.FormatVec(D.Lattice, i) + "\n")
	}
	w.WriteString(D.Symbols + "\n")
	counts := make([]string, len(D.Counts))
	for i, n := range D.Counts {
		counts[i] = strconv.Itoa(n)
	}
	w.WriteString(strings.Join(counts, " ") + "\n")
	w.WriteString(D.CoordSys + "\n")
	for i := 0; i < D.Len(); i++ {
		if !D.Numeric[i] {
			w.WriteString(D.Raw[i] + "\n")
			continue
		}
		line := prof.FormatVec(D.Coords, i)
		if len(D.Extras[i]) > 0 {
			line += " " + strings.Join(D.Extras[i], " ")
		}
		w.WriteString(line + "\n")
	}
	for _, l := range D.Trailing {
		w.WriteString(l + "\n")
	}
	if err := w.Flush(); err != nil {
		return Error{"can't write output: " + err.Error(), "", []string{"PoscarSerialize"}, true}
	}
	return nil
}

//newDecompressor wraps in according to the suffix of name: gzip for .gz,
//zstd for .zst, DEFLATE for .flate, and a plain pass-through otherwise.
func newDecompressor(name string, in io.Reader) (io.ReadCloser, error) {
	low := strings.ToLower(name)
	switch {
	case strings.HasSuffix(low, ".gz"):
		return gzip.NewReader(in)
	case strings.HasSuffix(low, ".zst"):
		d, err := zstd.NewReader(in)
		if err != nil {
			return nil, err
		}
		return d.IOReadCloser(), nil
	case strings.HasSuffix(low, ".flate"):
		return flate.NewReader(in), nil
	}
	return io.NopCloser(in), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

//newCompressor is the writing counterpart of newDecompressor.
func newCompressor(name string, out io.Writer) (io.WriteCloser, error) {
	low := strings.ToLower(name)
	switch {
	case strings.HasSuffix(low, ".gz"):
		return gzip.NewWriter(out), nil
	case strings.HasSuffix(low, ".zst"):
		return zstd.NewWriter(out)
	case strings.HasSuffix(low, ".flate"):
		return flate.NewWriter(out, flate.DefaultCompression)
	}
	return nopWriteCloser{out}, nil
}

//PoscarRead reads the POSCAR file name, transparently decompressing it when
//the name ends in .gz, .zst or .flate.
func PoscarRead(name string) (*Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"PoscarRead"}, true}
	}
	defer f.Close()
	r, err := newDecompressor(name, bufio.NewReader(f))
	if err != nil {
		return nil, Error{"can't read compressed file: " + err.Error(), name, []string{"PoscarRead"}, true}
	}
	defer r.Close()
	D, err := PoscarParse(r)
	if err != nil {
		if e, ok := err.(Error); ok {
			e.filename = name
			return nil, errDecorate(e, "PoscarRead")
		}
		return nil, err
	}
	return D, nil
}

//PoscarWrite writes D to the file name under the given profile, transparently
//compressing the output when the name ends in .gz, .zst or .flate. The file
//is created only when this function is called, so running a transformation
//first and PoscarWrite after it guarantees no partial output on failed
//transformations.
func PoscarWrite(name string, D *Document, prof Profile) error {
	f, err := os.Create(name)
	if err != nil {
		return Error{err.Error(), name, []string{"PoscarWrite"}, true}
	}
	defer f.Close()
	w, err := newCompressor(name, f)
	if err != nil {
		return Error{"can't write compressed file: " + err.Error(), name, []string{"PoscarWrite"}, true}
	}
	err = PoscarSerialize(w, D, prof)
	cerr := w.Close()
	if err != nil {
		if e, ok := err.(Error); ok {
			e.filename = name
			return errDecorate(e, "PoscarWrite")
		}
		return err
	}
	if cerr != nil {
		return Error{"can't finish compressed file: " + cerr.Error(), name, []string{"PoscarWrite"}, true}
	}
	return nil
}
