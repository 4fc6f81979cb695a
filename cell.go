/*
 * cell.go, part of goslab
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
	"math"

	v3 "github.com/rmera/goslab/v3"
	"gonum.org/v1/gonum/mat"
)

//Cell is a periodic simulation cell. The rows of the 3x3 matrix are the
//lattice vectors a, b and c, in Å, as in the POSCAR format.
type Cell struct {
	vecs *mat.Dense
	inv  *mat.Dense //cached inverse, rebuilt on modification
}

//NewCell builds a Cell from a row-major slice of 9 elements
//(ax ay az bx by bz cx cy cz).
func NewCell(data []float64) (*Cell, error) {
	if len(data) != 9 {
		return nil, newError("NewCell", "need 9 elements for a 3x3 cell, got %d", len(data))
	}
	C := &Cell{vecs: mat.NewDense(3, 3, data)}
	if err := C.reinverse(); err != nil {
		return nil, errDecorate(err, "NewCell")
	}
	return C, nil
}

func (C *Cell) reinverse() error {
	inv := mat.NewDense(3, 3, nil)
	if err := inv.Inverse(C.vecs); err != nil {
		return newError("reinverse", "singular cell matrix: %v", err)
	}
	C.inv = inv
	return nil
}

//Copy returns a deep copy of the cell.
func (C *Cell) Copy() *Cell {
	return &Cell{vecs: mat.DenseCopyOf(C.vecs), inv: mat.DenseCopyOf(C.inv)}
}

//Vector returns a copy of the ith lattice vector as a 1x3 v3.Matrix.
//Panics if i is not 0, 1 or 2.
func (C *Cell) Vector(i int) *v3.Matrix {
	if i < 0 || i > 2 {
		panic(ErrCellShape)
	}
	ret := v3.Zeros(1)
	for j := 0; j < 3; j++ {
		ret.Set(0, j, C.vecs.At(i, j))
	}
	return ret
}

//Vectors returns a copy of the lattice-vector matrix.
func (C *Cell) Vectors() *mat.Dense {
	return mat.DenseCopyOf(C.vecs)
}

//Volume returns the cell volume in Å^3.
func (C *Cell) Volume() float64 {
	return math.Abs(mat.Det(C.vecs))
}

//Scale multiplies all lattice vectors by f, in place.
func (C *Cell) Scale(f float64) {
	C.vecs.Scale(f, C.vecs)
	if err := C.reinverse(); err != nil {
		panic("goslab: cant happen: scaling can't make a cell singular unless f==0")
	}
}

//Cart2Frac converts the Cartesian coordinates in src to fractional
//coordinates of the cell, putting the result in dst. dst and src may be
//the same matrix. frac = cart * inv(A), with the lattice vectors as the
//rows of A and the coordinates as row vectors.
func (C *Cell) Cart2Frac(dst, src *v3.Matrix) {
	dst.Mul(src, C.inv)
}

//Frac2Cart converts the fractional coordinates in src to Cartesian,
//putting the result in dst. dst and src may be the same matrix.
func (C *Cell) Frac2Cart(dst, src *v3.Matrix) {
	dst.Mul(src, C.vecs)
}

//Wrap wraps the Cartesian coordinates in coords back into the unit
//cell, in place (fractional coordinates into [0,1)).
func (C *Cell) Wrap(coords *v3.Matrix) {
	C.Cart2Frac(coords, coords)
	r, _ := coords.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < 3; j++ {
			f := coords.At(i, j)
			coords.Set(i, j, f-math.Floor(f))
		}
	}
	C.Frac2Cart(coords, coords)
}

//MinImage replaces the Cartesian displacement vector d (1x3) by its
//minimum image under the cell periodicity, in place. It uses the
//nearest-integer convention in fractional space, which is exact for
//orthorhombic cells and for the mildly skewed cells used in slab
//calculations.
func (C *Cell) MinImage(d *v3.Matrix) {
	C.Cart2Frac(d, d)
	for j := 0; j < 3; j++ {
		f := d.At(0, j)
		d.Set(0, j, f-math.Round(f))
	}
	C.Frac2Cart(d, d)
}

//Lengths returns the lengths of the 3 lattice vectors, in Å.
func (C *Cell) Lengths() [3]float64 {
	var ret [3]float64
	for i := 0; i < 3; i++ {
		ret[i] = C.Vector(i).Norm()
	}
	return ret
}
