/*
 * geometric.go, part of goslab
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
	"sort"

	v3 "github.com/rmera/goslab/v3"
)

//Displacement returns the displacement vector from atom i to atom j as
//a new 1x3 matrix. If the structure has a cell, the minimum-image
//convention is applied.
func Displacement(S *Structure, i, j int) *v3.Matrix {
	d := v3.Zeros(1)
	d.SubVec(S.Coords.VecView(j), S.Coords.VecView(i))
	if S.Cell != nil {
		S.Cell.MinImage(d)
	}
	return d
}

//Distance returns the distance, in Å, between atoms i and j, under the
//minimum-image convention when the structure is periodic.
func Distance(S *Structure, i, j int) float64 {
	return Displacement(S, i, j).Norm()
}

//Neighbors returns the indexes of the atoms within cutoff Å of atom i
//(excluding i itself) and the corresponding distances, sorted by
//distance.
func Neighbors(S *Structure, i int, cutoff float64) ([]int, []float64) {
	type nb struct {
		idx int
		d   float64
	}
	found := make([]nb, 0, 8)
	for j := 0; j < S.Len(); j++ {
		if j == i {
			continue
		}
		if d := Distance(S, i, j); d <= cutoff {
			found = append(found, nb{j, d})
		}
	}
	sort.Slice(found, func(a, b int) bool { return found[a].d < found[b].d })
	idx := make([]int, len(found))
	dist := make([]float64, len(found))
	for k, f := range found {
		idx[k] = f.idx
		dist[k] = f.d
	}
	return idx, dist
}

//Translate moves every atom of the structure by the 1x3 vector vec, in
//place. It does not wrap the result back into the cell.
func Translate(S *Structure, vec *v3.Matrix) {
	S.Coords.AddVec(S.Coords, vec)
}

//Centroid returns the geometric center of the structure as a 1x3 matrix.
func Centroid(S *Structure) *v3.Matrix {
	ret := v3.Zeros(1)
	for i := 0; i < S.Len(); i++ {
		ret.Add(ret, S.Coords.VecView(i))
	}
	ret.Scale(1/float64(S.Len()), ret)
	return ret
}

//CenterOfMass returns the center of mass of the structure as a 1x3
//matrix. It returns an error if any atomic mass is unknown.
func CenterOfMass(S *Structure) (*v3.Matrix, error) {
	masses, err := S.Masses()
	if err != nil {
		return nil, errDecorate(err, "CenterOfMass")
	}
	ret := v3.Zeros(1)
	tmp := v3.Zeros(1)
	var total float64
	for i := 0; i < S.Len(); i++ {
		tmp.Scale(masses[i], S.Coords.VecView(i))
		ret.Add(ret, tmp)
		total += masses[i]
	}
	ret.Scale(1/total, ret)
	return ret, nil
}

//CenterAtoms translates the structure so its geometric center (or, with
//useMass, its center of mass) sits at the center of the cell, and wraps
//the atoms back into the cell. In place.
func CenterAtoms(S *Structure, useMass bool) error {
	if S.Cell == nil {
		return newError("CenterAtoms", "centering needs a periodic cell")
	}
	var center *v3.Matrix
	var err error
	if useMass {
		center, err = CenterOfMass(S)
		if err != nil {
			return errDecorate(err, "CenterAtoms")
		}
	} else {
		center = Centroid(S)
	}
	//the cell center is (1/2,1/2,1/2) in fractional coordinates
	target, err := v3.NewMatrix([]float64{0.5, 0.5, 0.5})
	if err != nil {
		panic("goslab: cant happen")
	}
	S.Cell.Frac2Cart(target, target)
	shift := v3.Zeros(1)
	shift.SubVec(target, center)
	Translate(S, shift)
	S.Cell.Wrap(S.Coords)
	return nil
}

//Supercell returns a new structure with the cell multiplied nx, ny and
//nz times along the respective lattice vectors and the atoms
//replicated accordingly. Species grouping, constraints and charges are
//preserved; the images of each atom come out consecutively.
func Supercell(S *Structure, nx, ny, nz int) (*Structure, error) {
	if S.Cell == nil {
		return nil, newError("Supercell", "supercell multiplication needs a periodic cell")
	}
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, newError("Supercell", "multipliers must be positive, got %d %d %d", nx, ny, nz)
	}
	nrep := nx * ny * nz
	atoms := make([]*Atom, 0, S.Len()*nrep)
	coords := v3.Zeros(S.Len() * nrep)
	a := S.Cell.Vector(0)
	b := S.Cell.Vector(1)
	c := S.Cell.Vector(2)
	shift := v3.Zeros(1)
	n := 0
	for i := 0; i < S.Len(); i++ {
		for ia := 0; ia < nx; ia++ {
			for ib := 0; ib < ny; ib++ {
				for ic := 0; ic < nz; ic++ {
					for k := 0; k < 3; k++ {
						shift.Set(0, k, float64(ia)*a.At(0, k)+float64(ib)*b.At(0, k)+float64(ic)*c.At(0, k))
					}
					row := coords.VecView(n)
					row.AddVec(S.Coords.VecView(i), shift)
					atoms = append(atoms, S.Atom(i).Copy())
					n++
				}
			}
		}
	}
	vecs := S.Cell.Vectors()
	mult := []float64{float64(nx), float64(ny), float64(nz)}
	data := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			data = append(data, vecs.At(i, j)*mult[i])
		}
	}
	cell, err := NewCell(data)
	if err != nil {
		return nil, errDecorate(err, "Supercell")
	}
	ret, err := NewStructure(atoms, coords, cell)
	if err != nil {
		return nil, errDecorate(err, "Supercell")
	}
	ret.Comment = S.Comment
	ret.resetIDs()
	return ret, nil
}

//RescaleCell scales the lattice vectors of the structure by factor, in
//place. By default the Cartesian coordinates are dragged along so the
//fractional coordinates stay put (the usual lattice-constant scan).
//With fixCart the Cartesian positions are kept instead.
func RescaleCell(S *Structure, factor float64, fixCart bool) error {
	if S.Cell == nil {
		return newError("RescaleCell", "rescaling needs a periodic cell")
	}
	if factor <= 0 {
		return newError("RescaleCell", "scale factor must be positive, got %g", factor)
	}
	S.Cell.Scale(factor)
	if !fixCart {
		S.Coords.Dense.Scale(factor, S.Coords.Dense)
	}
	return nil
}
