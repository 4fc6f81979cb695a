/*
 * interfaces.go, part of goslab
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

//Atomer is the basic interface for a set of atoms.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i.
	//Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

//Masser can return a slice with the masses of each atom in the reference.
type Masser interface {

	//Masses returns a slice with the masses of all atoms, or an error
	//if any of them is not known.
	Masses() ([]float64, error)
}

//Error is the interface for errors that the packages in this library
//implement. The Decorate method allows adding and retrieving info from the
//error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string

	//Decorate adds the given string to the "decoration" slice of the
	//error and returns the resulting slice. Each element of the slice
	//should name a function in the calling stack, optionally followed by
	//extra information, as in "FunctionName: Extra info". If passed an
	//empty string, Decorate just returns the current slice.
	Decorate(string) []string
}
