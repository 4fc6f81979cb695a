/*
 * geometric_test.go, part of goslab
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
	"fmt"
	"math"
	"testing"

	v3 "github.com/rmera/goslab/v3"
)

func readFixture(Te *testing.T) *Structure {
	S, err := PoscarRead("test/POSCAR")
	if err != nil {
		Te.Fatal(err)
	}
	return S
}

//TestDistance checks plain and minimum-image distances on the fixture.
func TestDistance(Te *testing.T) {
	S := readFixture(Te)
	if d := Distance(S, 0, 1); math.Abs(d-2.772) > 1e-8 {
		Te.Errorf("Pt-Pt nearest neighbor: want 2.772, got %g", d)
	}
	//C-O bond of the adsorbate
	if d := Distance(S, 8, 9); math.Abs(d-1.15) > 1e-8 {
		Te.Errorf("C-O: want 1.15, got %g", d)
	}
	//atom 7 sits at a far corner of the cell; its minimum image is much
	//closer to atom 0 than the stored coordinates
	plain := v3.Zeros(1)
	plain.SubVec(S.Coords.VecView(7), S.Coords.VecView(0))
	if d := Distance(S, 0, 7); d >= plain.Norm() || d > 4.0 {
		Te.Errorf("minimum image not applied: %g (plain %g)", d, plain.Norm())
	}
	if Distance(S, 0, 7) != Distance(S, 7, 0) {
		Te.Error("distance not symmetric")
	}
}

//TestNeighbors checks the neighbor search around the adsorbate carbon.
func TestNeighbors(Te *testing.T) {
	S := readFixture(Te)
	idx, _ := Neighbors(S, 8, 1.5)
	if len(idx) != 1 || idx[0] != 9 {
		Te.Fatalf("want only the O neighbor, got %v", idx)
	}
	idx, dists := Neighbors(S, 8, 2.0)
	if len(idx) != 2 || idx[0] != 9 || idx[1] != 4 {
		Te.Fatalf("want O then top-site Pt, got %v", idx)
	}
	fmt.Println("C neighbors:", idx, dists)
	if math.Abs(dists[1]-1.85) > 1e-8 {
		Te.Errorf("C-Pt: want 1.85, got %g", dists[1])
	}
}

//TestCenterAtoms centers the slab and checks the unwrapped direction.
func TestCenterAtoms(Te *testing.T) {
	S := readFixture(Te)
	if err := CenterAtoms(S, false); err != nil {
		Te.Fatal(err)
	}
	//along z nothing wraps for this fixture, so the centroid must land
	//exactly at c/2
	var zsum float64
	for i := 0; i < S.Len(); i++ {
		zsum += S.Coords.At(i, 2)
	}
	if math.Abs(zsum/float64(S.Len())-10.0) > 1e-8 {
		Te.Errorf("centroid z after centering: want 10, got %g", zsum/float64(S.Len()))
	}
	//and everything must be inside the cell
	frac := v3.Zeros(S.Len())
	S.Cell.Cart2Frac(frac, S.Coords)
	for i := 0; i < S.Len(); i++ {
		for k := 0; k < 3; k++ {
			if f := frac.At(i, k); f < -1e-9 || f >= 1+1e-9 {
				Te.Errorf("atom %d not wrapped: fractional %v", i, f)
			}
		}
	}
}

//TestCenterOfMass makes sure the mass weighting actually weights.
func TestCenterOfMass(Te *testing.T) {
	S := readFixture(Te)
	com, err := CenterOfMass(S)
	if err != nil {
		Te.Fatal(err)
	}
	cen := Centroid(S)
	//8 Pt at low z vs CO on top: the COM must sit below the centroid
	if com.At(0, 2) >= cen.At(0, 2) {
		Te.Errorf("COM z %g not below centroid z %g", com.At(0, 2), cen.At(0, 2))
	}
}

//TestSupercell multiplies the fixture 2x1x1.
func TestSupercell(Te *testing.T) {
	S := readFixture(Te)
	super, err := Supercell(S, 2, 1, 1)
	if err != nil {
		Te.Fatal(err)
	}
	if super.Len() != 2*S.Len() {
		Te.Fatalf("want %d atoms, got %d", 2*S.Len(), super.Len())
	}
	if math.Abs(super.Cell.Volume()-2*S.Cell.Volume()) > 1e-8 {
		Te.Errorf("supercell volume: want %g, got %g", 2*S.Cell.Volume(), super.Cell.Volume())
	}
	//the images of atom 0 come out consecutively, shifted by a
	if math.Abs(super.Coords.At(1, 0)-super.Coords.At(0, 0)-5.544) > 1e-8 {
		Te.Errorf("image of atom 0 not shifted by the a vector")
	}
	if !super.Grouped() {
		Te.Error("supercell lost the species grouping")
	}
	if super.Atom(0).Fixed != S.Atom(0).Fixed {
		Te.Error("supercell lost the constraints")
	}
	if _, err := Supercell(S, 0, 1, 1); err == nil {
		Te.Error("a zero multiplier should be an error")
	}
}

//TestRescaleCell checks both rescaling conventions.
func TestRescaleCell(Te *testing.T) {
	S := readFixture(Te)
	frac := v3.Zeros(S.Len())
	S.Cell.Cart2Frac(frac, S.Coords)
	if err := RescaleCell(S, 1.1, false); err != nil {
		Te.Fatal(err)
	}
	frac2 := v3.Zeros(S.Len())
	S.Cell.Cart2Frac(frac2, S.Coords)
	for i := 0; i < S.Len(); i++ {
		for k := 0; k < 3; k++ {
			if math.Abs(frac.At(i, k)-frac2.At(i, k)) > 1e-8 {
				Te.Fatalf("fractional coordinates not preserved by default rescale")
			}
		}
	}
	S2 := readFixture(Te)
	if err := RescaleCell(S2, 1.1, true); err != nil {
		Te.Fatal(err)
	}
	if math.Abs(S2.Coords.At(9, 2)-10.26) > 1e-10 {
		Te.Error("--fix-cart rescale moved the atoms")
	}
	if err := RescaleCell(S2, -1, false); err == nil {
		Te.Error("a negative factor should be an error")
	}
}

//TestDelAndSome exercises atom deletion and sub-structure extraction.
func TestDelAndSome(Te *testing.T) {
	S := readFixture(Te)
	ads, err := S.SomeAtoms([]int{8, 9})
	if err != nil {
		Te.Fatal(err)
	}
	if ads.Len() != 2 || ads.Atom(0).Symbol != "C" || ads.Atom(1).Symbol != "O" {
		Te.Fatalf("bad adsorbate extraction: %v", ads.Atoms)
	}
	if ads.Atom(0).ID != 1 {
		Te.Error("extraction did not renumber the atoms")
	}
	S.Del(9)
	S.Del(8)
	if S.Len() != 8 || len(S.Indexes("C")) != 0 || len(S.Indexes("Pt")) != 8 {
		Te.Errorf("bad deletion: %d atoms left", S.Len())
	}
	if _, err := S.SomeAtoms([]int{99}); err == nil {
		Te.Error("out-of-range extraction should be an error")
	}
	//a structure can't be emptied, the coordinate matrix needs at least
	//one row
	single, err := S.SomeAtoms([]int{0})
	if err != nil {
		Te.Fatal(err)
	}
	func() {
		defer func() {
			if r := recover(); r != ErrDelLastAtom {
				Te.Errorf("deleting the only atom: want panic %v, got %v", ErrDelLastAtom, r)
			}
		}()
		single.Del(0)
	}()
}
