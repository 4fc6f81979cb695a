/*
 * v3_test.go, part of goslab
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

package v3

import (
	"math"
	"testing"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 0, 0, 0, 1, 0})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("want 2 vectors, got %d", A.NVecs())
	}
	if _, err := NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("a slice not divisible by 3 should be an error")
	}
}

func TestViewsAndSetters(Te *testing.T) {
	A := Zeros(3)
	v, _ := NewMatrix([]float64{1, 2, 3})
	A.SetVecs(v, []int{1})
	if A.At(1, 2) != 3 {
		Te.Errorf("SetVecs didn't set: %v", A)
	}
	//views are views
	view := A.VecView(1)
	view.Set(0, 0, 42)
	if A.At(1, 0) != 42 {
		Te.Error("changing a view must change the viewed matrix")
	}
	B := Zeros(2)
	B.SomeVecs(A, []int{1, 0})
	if B.At(0, 0) != 42 || B.At(1, 0) != 0 {
		Te.Errorf("bad SomeVecs result")
	}
	A.SwapVecs(0, 1)
	if A.At(0, 0) != 42 || A.At(1, 0) != 0 {
		Te.Error("bad SwapVecs result")
	}
}

func TestVecArithmetic(Te *testing.T) {
	A, _ := NewMatrix([]float64{1, 1, 1, 2, 2, 2})
	shift, _ := NewMatrix([]float64{0, 0, 10})
	A.AddVec(A, shift)
	if A.At(0, 2) != 11 || A.At(1, 2) != 12 || A.At(0, 0) != 1 {
		Te.Errorf("bad AddVec result")
	}
	A.SubVec(A, shift)
	if A.At(0, 2) != 1 || A.At(1, 2) != 2 {
		Te.Errorf("bad SubVec result")
	}
}

func TestCrossDotNorm(Te *testing.T) {
	x, _ := NewMatrix([]float64{1, 0, 0})
	y, _ := NewMatrix([]float64{0, 1, 0})
	z := Zeros(1)
	z.Cross(x, y)
	if z.At(0, 2) != 1 || z.At(0, 0) != 0 {
		Te.Errorf("x cross y should be z, got %v", z)
	}
	if x.Dot(y) != 0 || x.Dot(x) != 1 {
		Te.Error("bad dot products")
	}
	v, _ := NewMatrix([]float64{3, 4, 0})
	if math.Abs(v.Norm()-5) > 1e-12 {
		Te.Errorf("want norm 5, got %g", v.Norm())
	}
	if a := Angle(x, y); math.Abs(a-math.Pi/2) > 1e-12 {
		Te.Errorf("want pi/2, got %g", a)
	}
	//antiparallel vectors are the floating-point nasty case
	minusx, _ := NewMatrix([]float64{-1, 0, 0})
	if a := Angle(x, minusx); math.Abs(a-math.Pi) > 1e-12 {
		Te.Errorf("want pi, got %g", a)
	}
}
