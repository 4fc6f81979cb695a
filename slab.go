/*
 * slab.go, part of goslab
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

import (
	v3 "github.com/rmera/goslab/v3"
)

//Atom contains the per-atom information except for the coordinates,
//which live in a v3.Matrix in the Structure.
type Atom struct {
	Symbol string
	ID     int //1-based, as in the POSCAR order
	Mass   float64
	Charge float64 //partial charge, typically from a Bader analysis
	Fixed  [3]bool //VASP selective-dynamics flags, true means frozen along that lattice vector
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("goslab: attempted to copy a nil Atom")
	}
	newat := new(Atom)
	*newat = *A
	return newat
}

//Free returns whether the atom is fully free to move (no
//selective-dynamics constraint on any axis).
func (A *Atom) Free() bool {
	return !A.Fixed[0] && !A.Fixed[1] && !A.Fixed[2]
}

//Structure is an atomic configuration: an ordered set of atoms, their
//Cartesian coordinates in Å, and the periodic cell. A nil Cell means a
//non-periodic structure (as when reading XYZ files). The Comment line
//is carried along so CONTCAR comments survive a round trip.
type Structure struct {
	Atoms   []*Atom
	Coords  *v3.Matrix
	Cell    *Cell
	Comment string
}

//NewStructure builds a Structure from its parts. It returns an error
//if atoms or coordinates are nil, or if their lengths don't match.
//cell can be nil for a non-periodic structure.
func NewStructure(ats []*Atom, coords *v3.Matrix, cell *Cell) (*Structure, error) {
	if ats == nil || coords == nil {
		return nil, newError("NewStructure", "nil atoms or coordinates given")
	}
	if len(ats) != coords.NVecs() {
		return nil, newError("NewStructure", "%d atoms but %d coordinates", len(ats), coords.NVecs())
	}
	return &Structure{Atoms: ats, Coords: coords, Cell: cell}, nil
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.Atoms)
}

//Atom returns the Atom corresponding to the index i.
//Panics if out of range.
func (S *Structure) Atom(i int) *Atom {
	if i >= S.Len() || i < 0 {
		panic(ErrAtomOutOfRange)
	}
	return S.Atoms[i]
}

//SetAtom sets the ith Atom of the structure to at.
//Panics if out of range.
func (S *Structure) SetAtom(i int, at *Atom) {
	if i >= S.Len() || i < 0 {
		panic(ErrAtomOutOfRange)
	}
	S.Atoms[i] = at
}

//Copy returns a deep copy of the structure, including coordinates and cell.
func (S *Structure) Copy() *Structure {
	ret := new(Structure)
	ret.Atoms = make([]*Atom, S.Len())
	for key, val := range S.Atoms {
		ret.Atoms[key] = val.Copy()
	}
	ret.Coords = S.Coords.Copy()
	if S.Cell != nil {
		ret.Cell = S.Cell.Copy()
	}
	ret.Comment = S.Comment
	return ret
}

//Del deletes the atom i and its coordinates from the structure, in place.
//Panics if out of range, or if the deletion would leave the structure
//empty (a coordinate matrix can't have zero rows).
func (S *Structure) Del(i int) {
	if i >= S.Len() || i < 0 {
		panic(ErrAtomOutOfRange)
	}
	if S.Len() == 1 {
		panic(ErrDelLastAtom)
	}
	S.Atoms = append(S.Atoms[:i], S.Atoms[i+1:]...)
	kept := make([]int, 0, S.Coords.NVecs()-1)
	for j := 0; j < S.Coords.NVecs(); j++ {
		if j != i {
			kept = append(kept, j)
		}
	}
	newcoords := v3.Zeros(len(kept))
	newcoords.SomeVecs(S.Coords, kept)
	S.Coords = newcoords
	S.resetIDs()
}

//SomeAtoms returns a new Structure containing the atoms with the
//indexes in list, in that order. The cell and comment are shared
//verbatim; atoms and coordinates are copied.
func (S *Structure) SomeAtoms(list []int) (*Structure, error) {
	for k, j := range list {
		if j >= S.Len() || j < 0 {
			return nil, newError("SomeAtoms", "atom requested (number %d, value %d) out of range", k, j)
		}
	}
	ats := make([]*Atom, 0, len(list))
	for _, j := range list {
		ats = append(ats, S.Atoms[j].Copy())
	}
	coords := v3.Zeros(len(list))
	coords.SomeVecs(S.Coords, list)
	var cell *Cell
	if S.Cell != nil {
		cell = S.Cell.Copy()
	}
	ret, err := NewStructure(ats, coords, cell)
	if err != nil {
		return nil, errDecorate(err, "SomeAtoms")
	}
	ret.Comment = S.Comment
	ret.resetIDs()
	return ret, nil
}

//AppendAtoms appends the atoms and coordinates of B at the end of S, in
//place. The cell of S is kept. It returns an error if the structures
//are incompatible (nil coordinate sets).
func (S *Structure) AppendAtoms(B *Structure) error {
	if B == nil || B.Coords == nil {
		return newError("AppendAtoms", "nil structure or coordinates given")
	}
	newcoords := v3.Zeros(S.Len() + B.Len())
	for i := 0; i < S.Len(); i++ {
		newcoords.SetVecs(S.Coords.VecView(i), []int{i})
	}
	for i := 0; i < B.Len(); i++ {
		newcoords.SetVecs(B.Coords.VecView(i), []int{S.Len() + i})
	}
	for _, at := range B.Atoms {
		S.Atoms = append(S.Atoms, at.Copy())
	}
	S.Coords = newcoords
	S.resetIDs()
	return nil
}

//resetIDs renumbers the atoms following the current order, 1-based.
func (S *Structure) resetIDs() {
	for key := range S.Atoms {
		S.Atoms[key].ID = key + 1
	}
}

//Masses returns a slice with the masses of all atoms. Atoms with no
//mass assigned get it from the symbol table; if the symbol is unknown
//an error is returned.
func (S *Structure) Masses() ([]float64, error) {
	mass := make([]float64, S.Len())
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		m := at.Mass
		if m == 0 {
			var ok bool
			m, ok = Mass(at.Symbol)
			if !ok {
				return nil, newError("Masses", "no mass known for atom %d (%s)", i, at.Symbol)
			}
		}
		mass[i] = m
	}
	return mass, nil
}

//Species returns the chemical symbols present in the structure, in
//first-seen order, which is the order the POSCAR format groups them in.
func (S *Structure) Species() []string {
	seen := make(map[string]bool)
	ret := make([]string, 0, 4)
	for _, at := range S.Atoms {
		if !seen[at.Symbol] {
			seen[at.Symbol] = true
			ret = append(ret, at.Symbol)
		}
	}
	return ret
}

//SpeciesCounts returns the symbols in first-seen order and how many
//atoms of each the structure contains.
func (S *Structure) SpeciesCounts() ([]string, []int) {
	syms := S.Species()
	counts := make([]int, len(syms))
	for _, at := range S.Atoms {
		for i, s := range syms {
			if at.Symbol == s {
				counts[i]++
				break
			}
		}
	}
	return syms, counts
}

//Indexes returns the indexes of all atoms with the given chemical symbol.
func (S *Structure) Indexes(symbol string) []int {
	ret := make([]int, 0, S.Len())
	for i, at := range S.Atoms {
		if at.Symbol == symbol {
			ret = append(ret, i)
		}
	}
	return ret
}

//Grouped returns whether the atoms are already grouped by species, as
//the POSCAR format requires for writing.
func (S *Structure) Grouped() bool {
	seen := make(map[string]bool)
	last := ""
	for _, at := range S.Atoms {
		if at.Symbol != last {
			if seen[at.Symbol] {
				return false
			}
			seen[at.Symbol] = true
			last = at.Symbol
		}
	}
	return true
}

//GroupBySpecies reorders the atoms (and coordinates) so atoms of the
//same species are contiguous, keeping the first-seen species order and
//the relative order within each species. Returns a new Structure.
func (S *Structure) GroupBySpecies() *Structure {
	order := make([]int, 0, S.Len())
	for _, sym := range S.Species() {
		order = append(order, S.Indexes(sym)...)
	}
	ret, err := S.SomeAtoms(order)
	if err != nil {
		panic("goslab: cant happen: " + err.Error()) //order is built from valid indexes
	}
	return ret
}
