/*
 * bader.go, part of goslab
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
	"bufio"
	"os"
	"strconv"
	"strings"
)

//ReadACF reads the per-atom electron populations from an ACF.dat file,
//as produced by the Henkelman group's Bader analysis program. The
//returned slice follows the atom order of the structure the analysis
//was run on (i.e. the POSCAR order).
func ReadACF(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errDecorate(err, "ReadACF: "+path)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	pops := make([]float64, 0, 32)
	inTable := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "----") {
			if inTable {
				break //the dashed line below the table ends it
			}
			inTable = true
			continue
		}
		if !inTable || line == "" {
			continue
		}
		fields := strings.Fields(line)
		//index, x, y, z, charge, min dist, atomic vol
		if len(fields) < 5 {
			return nil, newError("ReadACF", "malformed table line %q", line)
		}
		pop, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, newError("ReadACF", "malformed charge %q", fields[4])
		}
		pops = append(pops, pop)
	}
	if err := scanner.Err(); err != nil {
		return nil, errDecorate(err, "ReadACF: "+path)
	}
	if len(pops) == 0 {
		return nil, newError("ReadACF", "no charge table found in %s", path)
	}
	return pops, nil
}

//AssignCharges sets the partial charge of each atom of the structure to
//ZVAL(species)-population, with the populations as read by ReadACF and
//zval mapping each chemical symbol to the number of valence electrons
//of the pseudopotential used (the POTCAR ZVAL). It returns an error on
//length mismatch or on a species missing from zval.
func AssignCharges(S *Structure, pops []float64, zval map[string]float64) error {
	if len(pops) != S.Len() {
		return newError("AssignCharges", "%d populations for %d atoms", len(pops), S.Len())
	}
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		z, ok := zval[at.Symbol]
		if !ok {
			return newError("AssignCharges", "no ZVAL given for species %s", at.Symbol)
		}
		at.Charge = z - pops[i]
	}
	return nil
}

//NetCharge returns the sum of the partial charges of the atoms with the
//given indexes (all atoms if list is nil).
func NetCharge(S *Structure, list []int) float64 {
	if list == nil {
		list = make([]int, S.Len())
		for i := range list {
			list[i] = i
		}
	}
	var ret float64
	for _, i := range list {
		ret += S.Atom(i).Charge
	}
	return ret
}
