/*
 * poscar_test.go, part of goslab
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
	"os"
	"testing"
)

//TestPoscarIO reads the CO/Pt(111) fixture, checks what was read, and
//round-trips it through a Direct-mode write.
func TestPoscarIO(Te *testing.T) {
	S, err := PoscarRead("test/POSCAR")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("POSCAR read:", S.Comment, S.Len(), "atoms")
	if S.Len() != 10 {
		Te.Errorf("want 10 atoms, got %d", S.Len())
	}
	syms, counts := S.SpeciesCounts()
	if len(syms) != 3 || syms[0] != "Pt" || counts[0] != 8 || syms[1] != "C" || syms[2] != "O" {
		Te.Errorf("bad species/counts: %v %v", syms, counts)
	}
	if z := S.Coords.At(8, 2); math.Abs(z-9.11) > 1e-10 {
		Te.Errorf("C atom z: want 9.11, got %g", z)
	}
	//bottom-layer Pt are frozen, everything else is free
	if S.Atom(0).Free() || !S.Atom(8).Free() {
		Te.Errorf("selective dynamics misread: %v %v", S.Atom(0).Fixed, S.Atom(8).Fixed)
	}
	if err := PoscarWrite("test/POSCARIO.vasp", S); err != nil {
		Te.Fatal(err)
	}
	S2, err := PoscarRead("test/POSCARIO.vasp")
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < S.Len(); i++ {
		for k := 0; k < 3; k++ {
			if math.Abs(S.Coords.At(i, k)-S2.Coords.At(i, k)) > 1e-8 {
				Te.Fatalf("coordinate %d,%d changed in round trip: %g vs %g",
					i, k, S.Coords.At(i, k), S2.Coords.At(i, k))
			}
		}
		if S.Atom(i).Fixed != S2.Atom(i).Fixed {
			Te.Errorf("constraints of atom %d changed in round trip", i)
		}
	}
}

//TestPoscarCartesian round-trips through a Cartesian-mode write.
func TestPoscarCartesian(Te *testing.T) {
	S, err := PoscarRead("test/POSCAR")
	if err != nil {
		Te.Fatal(err)
	}
	o := DefaultPoscarOptions()
	o.Cartesian(true)
	if err := PoscarWrite("test/POSCARcart.vasp", S, o); err != nil {
		Te.Fatal(err)
	}
	S2, err := PoscarRead("test/POSCARcart.vasp")
	if err != nil {
		Te.Fatal(err)
	}
	for i := 0; i < S.Len(); i++ {
		for k := 0; k < 3; k++ {
			if math.Abs(S.Coords.At(i, k)-S2.Coords.At(i, k)) > 1e-8 {
				Te.Fatalf("Cartesian round trip changed coordinate %d,%d", i, k)
			}
		}
	}
}

//TestPoscarGz checks the transparent gzip path, both ways.
func TestPoscarGz(Te *testing.T) {
	S, err := PoscarRead("test/POSCAR")
	if err != nil {
		Te.Fatal(err)
	}
	if err := PoscarWrite("test/POSCAR.vasp.gz", S); err != nil {
		Te.Fatal(err)
	}
	S2, err := PoscarRead("test/POSCAR.vasp.gz")
	if err != nil {
		Te.Fatal(err)
	}
	if S2.Len() != S.Len() {
		Te.Fatalf("gzip round trip lost atoms: %d vs %d", S2.Len(), S.Len())
	}
	if math.Abs(S2.Coords.At(9, 2)-10.26) > 1e-8 {
		Te.Errorf("gzip round trip changed O z: %g", S2.Coords.At(9, 2))
	}
}

//TestPoscarNegativeScale checks the VASP convention of a negative scale
//factor giving the target cell volume.
func TestPoscarNegativeScale(Te *testing.T) {
	content := `cube
-1000.0
 1.0 0.0 0.0
 0.0 1.0 0.0
 0.0 0.0 1.0
Cu
1
Direct
 0.5 0.5 0.5
`
	if err := os.WriteFile("test/negscale.vasp", []byte(content), 0644); err != nil {
		Te.Fatal(err)
	}
	S, err := PoscarRead("test/negscale.vasp")
	if err != nil {
		Te.Fatal(err)
	}
	if v := S.Cell.Volume(); math.Abs(v-1000) > 1e-6 {
		Te.Errorf("want volume 1000, got %g", v)
	}
	if x := S.Coords.At(0, 0); math.Abs(x-5) > 1e-6 {
		Te.Errorf("fractional coordinate not scaled with the cell: %g", x)
	}
}

//TestXYZIO writes the fixture as XYZ and reads it back. The cell is
//lost on the way, as the format dictates.
func TestXYZIO(Te *testing.T) {
	S, err := PoscarRead("test/POSCAR")
	if err != nil {
		Te.Fatal(err)
	}
	if err := XYZWrite("test/sample.xyz", S); err != nil {
		Te.Fatal(err)
	}
	S2, err := XYZRead("test/sample.xyz")
	if err != nil {
		Te.Fatal(err)
	}
	fmt.Println("XYZ read:", S2.Comment)
	if S2.Len() != S.Len() || S2.Cell != nil {
		Te.Errorf("bad XYZ round trip: %d atoms, cell %v", S2.Len(), S2.Cell)
	}
	if S2.Atom(9).Symbol != "O" || math.Abs(S2.Coords.At(9, 2)-10.26) > 1e-6 {
		Te.Errorf("XYZ round trip altered the O atom")
	}
}
