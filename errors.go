/*
 * errors.go, part of goslab
 *
 * Copyright 2021 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package slab

import "fmt"

//CError is the concrete error type of the slab package.
//It implements the slab.Error interface.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

//Decorate adds the dec string to the decoration slice of strings of the
//error and returns the resulting slice. An empty dec is not added.
func (err CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//newError builds a CError with a formatted message and the caller
//already in the decoration.
func newError(caller, format string, a ...interface{}) CError {
	return CError{msg: fmt.Sprintf(format, a...), deco: []string{caller}}
}

//errDecorate asserts that err implements slab.Error, decorates it with
//the caller's name, and returns it. If err is some other error type it
//is wrapped into a CError first.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		err2 = CError{msg: err.Error(), deco: []string{}}
	}
	err2.Decorate(caller)
	return err2
}

//PanicMsg is a message used for panics in the "fundamental" functions.
//It satisfies the error interface, but for recoverable conditions use
//CError.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

const (
	ErrAtomOutOfRange = PanicMsg("goslab: Requested atom out of range")
	ErrNilAtoms       = PanicMsg("goslab: nil atoms or coordinates")
	ErrNilCell        = PanicMsg("goslab: operation requires a periodic cell")
	ErrCellShape      = PanicMsg("goslab: a cell needs 3x3 lattice vectors")
	ErrDelLastAtom    = PanicMsg("goslab: cannot delete the only atom of a structure")
)
