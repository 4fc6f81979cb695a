/*
 * bader_test.go, part of goslab
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
)

var coZval = map[string]float64{"Pt": 10, "C": 4, "O": 6}

//TestReadACF parses the Bader output for the CO/Pt fixture.
func TestReadACF(Te *testing.T) {
	pops, err := ReadACF("test/ACF.dat")
	if err != nil {
		Te.Fatal(err)
	}
	if len(pops) != 10 {
		Te.Fatalf("want 10 populations, got %d", len(pops))
	}
	if math.Abs(pops[8]-4.52) > 1e-10 || math.Abs(pops[9]-7.12) > 1e-10 {
		Te.Errorf("bad CO populations: %g %g", pops[8], pops[9])
	}
	fmt.Println("ACF.dat read,", len(pops), "atoms")
}

//TestAssignCharges combines the structure and the populations.
func TestAssignCharges(Te *testing.T) {
	S, err := PoscarRead("test/POSCAR")
	if err != nil {
		Te.Fatal(err)
	}
	pops, err := ReadACF("test/ACF.dat")
	if err != nil {
		Te.Fatal(err)
	}
	if err := AssignCharges(S, pops, coZval); err != nil {
		Te.Fatal(err)
	}
	if q := S.Atom(8).Charge; math.Abs(q+0.52) > 1e-10 {
		Te.Errorf("C charge: want -0.52, got %g", q)
	}
	if q := S.Atom(9).Charge; math.Abs(q+1.12) > 1e-10 {
		Te.Errorf("O charge: want -1.12, got %g", q)
	}
	if q := NetCharge(S, nil); math.Abs(q+1.64) > 1e-9 {
		Te.Errorf("net charge: want -1.64, got %g", q)
	}
	if q := NetCharge(S, S.Indexes("Pt")); math.Abs(q) > 1e-9 {
		Te.Errorf("the Pt slab should be neutral here, got %g", q)
	}
	//error paths
	if err := AssignCharges(S, pops[:5], coZval); err == nil {
		Te.Error("a population/atom mismatch should be an error")
	}
	if err := AssignCharges(S, pops, map[string]float64{"Pt": 10}); err == nil {
		Te.Error("a missing ZVAL should be an error")
	}
}
