/*
 * xyz.go, part of goslab
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
	"fmt"
	"os"
	"strconv"
	"strings"

	v3 "github.com/rmera/goslab/v3"
)

//XYZRead reads the first frame of an XYZ file. The returned structure
//has a nil Cell, since the format carries no periodicity information.
func XYZRead(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errDecorate(err, "XYZRead: "+path)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	line, err := nextLine(scanner, "the atom count")
	if err != nil {
		return nil, errDecorate(err, "XYZRead: "+path)
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, newError("XYZRead", "malformed atom count %q in %s", line, path)
	}
	comment, err := nextLine(scanner, "the comment line")
	if err != nil {
		return nil, errDecorate(err, "XYZRead: "+path)
	}
	coords := v3.Zeros(natoms)
	atoms := make([]*Atom, 0, natoms)
	for i := 0; i < natoms; i++ {
		line, err = nextLine(scanner, "the coordinates")
		if err != nil {
			return nil, errDecorate(err, "XYZRead: "+path)
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, newError("XYZRead", "malformed coordinate line %q in %s", line, path)
		}
		at := &Atom{Symbol: fields[0], ID: i + 1}
		at.Mass, _ = Mass(at.Symbol)
		for k := 0; k < 3; k++ {
			v, err := strconv.ParseFloat(fields[k+1], 64)
			if err != nil {
				return nil, newError("XYZRead", "malformed coordinate %q in %s", fields[k+1], path)
			}
			coords.Set(i, k, v)
		}
		atoms = append(atoms, at)
	}
	S, err := NewStructure(atoms, coords, nil)
	if err != nil {
		return nil, errDecorate(err, "XYZRead: "+path)
	}
	S.Comment = strings.TrimSpace(comment)
	return S, nil
}

//XYZWrite writes the structure to an XYZ file. The cell, if any, is not
//written, the format doesn't have a place for it.
func XYZWrite(path string, S *Structure) error {
	if S == nil || S.Coords == nil {
		return newError("XYZWrite", "nil structure or coordinates given")
	}
	f, err := os.Create(path)
	if err != nil {
		return errDecorate(err, "XYZWrite: "+path)
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "%d\n%s\n", S.Len(), S.Comment)
	for i := 0; i < S.Len(); i++ {
		fmt.Fprintf(bw, "%-3s %12.6f %12.6f %12.6f\n", S.Atom(i).Symbol,
			S.Coords.At(i, 0), S.Coords.At(i, 1), S.Coords.At(i, 2))
	}
	return bw.Flush()
}
