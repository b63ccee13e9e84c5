/*
 * errors.go, part of govasp.
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

import "fmt"

//Error is the error type returned by every function in this package. The Decorate
//method allows callers to add information to the error as it is passed up, and to
//retrieve the information added so far.
type Error struct {
	message  string
	filename string //the file that has problems, or empty if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.filename == "" {
		return fmt.Sprintf("govasp: %s", err.message)
	}
	return fmt.Sprintf("govasp: file %s: %s", err.filename, err.message)
}

//Decorate adds the string deco to the decoration slice of the error and returns
//the resulting slice. If deco is empty, it just returns the current slice.
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file associated to the error, or an empty string if none.
func (err Error) FileName() string { return err.filename }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//the interface decorable errors satisfy. Kept unexported, callers only
//need the concrete Error type.
type errorInt interface {
	Error() string
	Decorate(string) []string
}

//errDecorate asserts that err is decorable and adds the caller's name to it
//before returning it. It panics on a non-decorable error, which would be a
//bug in this package.
func errDecorate(err error, caller string) error {
	err2 := err.(errorInt)
	err2.Decorate(caller)
	return err2
}

//PanicMsg is the type used for the messages of panics raised by this package,
//even though it does satisfy the error interface. For errors, use Error.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrNilDocument     = PanicMsg("govasp: nil Document")
	ErrProfileMismatch = PanicMsg("govasp: unknown formatting profile")
)
