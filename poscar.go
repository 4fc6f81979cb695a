/*
 * poscar.go, part of goslab
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
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	v3 "github.com/rmera/goslab/v3"
)

//PoscarOptions contains the options for writing a POSCAR file.
//Use DefaultPoscarOptions to get sensible defaults.
type PoscarOptions struct {
	cartesian bool
}

//DefaultPoscarOptions returns a PoscarOptions with the default options:
//fractional ("Direct") coordinates.
func DefaultPoscarOptions() *PoscarOptions {
	return new(PoscarOptions)
}

//Cartesian returns whether coordinates are to be written in Cartesian
//instead of Direct form, and sets the value to the one given, if any.
func (P *PoscarOptions) Cartesian(c ...bool) bool {
	ret := P.cartesian
	if len(c) > 0 {
		P.cartesian = c[0]
	}
	return ret
}

//PoscarRead reads a VASP 5 POSCAR/CONTCAR file and returns the
//structure with the coordinates in Cartesian Å. Files ending in ".gz"
//are decompressed on the fly. Both Direct and Cartesian coordinate
//blocks are accepted, as is the optional Selective dynamics section.
func PoscarRead(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errDecorate(err, "PoscarRead: "+path)
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errDecorate(err, "PoscarRead: "+path)
		}
		defer gz.Close()
		r = gz
	}
	S, err := poscarParse(r)
	if err != nil {
		return nil, errDecorate(err, "PoscarRead: "+path)
	}
	return S, nil
}

//nextLine returns the next line from the scanner, or an error when the
//file ends before the format says it should.
func nextLine(scanner *bufio.Scanner, what string) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", newError("poscarParse", "file ended while reading %s", what)
	}
	return scanner.Text(), nil
}

func parseFloats(line string, n int, what string) ([]float64, error) {
	fields := strings.Fields(line)
	if len(fields) < n {
		return nil, newError("poscarParse", "need %d numbers for %s, got %q", n, what, line)
	}
	ret := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, newError("poscarParse", "malformed %s: %q", what, fields[i])
		}
		ret[i] = v
	}
	return ret, nil
}

func poscarParse(r io.Reader) (*Structure, error) {
	scanner := bufio.NewScanner(r)
	comment, err := nextLine(scanner, "the comment line")
	if err != nil {
		return nil, err
	}
	line, err := nextLine(scanner, "the scale factor")
	if err != nil {
		return nil, err
	}
	sc, err := parseFloats(line, 1, "scale factor")
	if err != nil {
		return nil, err
	}
	scale := sc[0]
	celldata := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		line, err = nextLine(scanner, "the lattice vectors")
		if err != nil {
			return nil, err
		}
		v, err := parseFloats(line, 3, "lattice vector")
		if err != nil {
			return nil, err
		}
		celldata = append(celldata, v...)
	}
	//A negative "scale" is the VASP convention for giving the
	//target cell volume instead of a multiplicative factor.
	cell, err := NewCell(celldata)
	if err != nil {
		return nil, err
	}
	if scale < 0 {
		scale = math.Cbrt(-scale / cell.Volume())
	}
	if scale != 1 {
		cell.Scale(scale)
	}
	line, err = nextLine(scanner, "the species symbols")
	if err != nil {
		return nil, err
	}
	symbols := strings.Fields(line)
	if len(symbols) == 0 {
		return nil, newError("poscarParse", "empty species line")
	}
	if _, err := strconv.Atoi(symbols[0]); err == nil {
		//VASP 4 style, no symbols line. We'd have to guess the species
		//from the POTCAR, which we don't read.
		return nil, newError("poscarParse", "symbol-less (VASP 4) POSCAR not supported, add a species line")
	}
	line, err = nextLine(scanner, "the species counts")
	if err != nil {
		return nil, err
	}
	cfields := strings.Fields(line)
	if len(cfields) != len(symbols) {
		return nil, newError("poscarParse", "%d species but %d counts", len(symbols), len(cfields))
	}
	counts := make([]int, len(cfields))
	natoms := 0
	for i, f := range cfields {
		counts[i], err = strconv.Atoi(f)
		if err != nil || counts[i] <= 0 {
			return nil, newError("poscarParse", "malformed species count: %q", f)
		}
		natoms += counts[i]
	}
	line, err = nextLine(scanner, "the coordinate mode")
	if err != nil {
		return nil, err
	}
	selective := false
	trimmed := strings.TrimSpace(line)
	if len(trimmed) > 0 && (trimmed[0] == 'S' || trimmed[0] == 's') {
		selective = true
		line, err = nextLine(scanner, "the coordinate mode")
		if err != nil {
			return nil, err
		}
	}
	if len(strings.TrimSpace(line)) == 0 {
		return nil, newError("poscarParse", "empty coordinate-mode line")
	}
	var cartesian bool
	switch strings.TrimSpace(line)[0] {
	case 'C', 'c', 'K', 'k':
		cartesian = true
	case 'D', 'd':
		cartesian = false
	default:
		return nil, newError("poscarParse", "unknown coordinate mode %q", line)
	}
	coords := v3.Zeros(natoms)
	atoms := make([]*Atom, 0, natoms)
	n := 0
	for si, sym := range symbols {
		for j := 0; j < counts[si]; j++ {
			line, err = nextLine(scanner, "the coordinates")
			if err != nil {
				return nil, err
			}
			fields := strings.Fields(line)
			v, err := parseFloats(line, 3, "coordinate")
			if err != nil {
				return nil, err
			}
			for k := 0; k < 3; k++ {
				coords.Set(n, k, v[k])
			}
			at := &Atom{Symbol: sym, ID: n + 1}
			at.Mass, _ = Mass(sym) //a zero mass just means "unknown symbol" here
			if selective {
				if len(fields) < 6 {
					return nil, newError("poscarParse", "missing selective-dynamics flags in line %q", line)
				}
				for k := 0; k < 3; k++ {
					switch fields[3+k] {
					case "T", "t", ".TRUE.":
						at.Fixed[k] = false
					case "F", "f", ".FALSE.":
						at.Fixed[k] = true
					default:
						return nil, newError("poscarParse", "bad selective-dynamics flag %q", fields[3+k])
					}
				}
			}
			atoms = append(atoms, at)
			n++
		}
	}
	if cartesian {
		if scale != 1 {
			coords.Dense.Scale(scale, coords.Dense)
		}
	} else {
		cell.Frac2Cart(coords, coords)
	}
	S, err := NewStructure(atoms, coords, cell)
	if err != nil {
		return nil, err
	}
	S.Comment = strings.TrimSpace(comment)
	return S, nil
}

//PoscarWrite writes a structure in VASP 5 POSCAR format. Paths ending
//in ".gz" are compressed on the fly. If any atom carries a
//selective-dynamics constraint, the Selective dynamics section is
//emitted. Atoms are grouped by species if they are not already (the
//format requires it); the on-file order can thus differ from the
//in-memory one.
func PoscarWrite(path string, S *Structure, options ...*PoscarOptions) error {
	var o *PoscarOptions
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultPoscarOptions()
	}
	f, err := os.Create(path)
	if err != nil {
		return errDecorate(err, "PoscarWrite: "+path)
	}
	defer f.Close()
	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}
	if err := poscarWrite(w, S, o); err != nil {
		return errDecorate(err, "PoscarWrite: "+path)
	}
	//the compressed stream is only flushed on Close, so a failure there
	//(disk full) is a failed write
	if gz != nil {
		if err := gz.Close(); err != nil {
			return errDecorate(err, "PoscarWrite: "+path)
		}
	}
	return nil
}

func poscarWrite(w io.Writer, S *Structure, o *PoscarOptions) error {
	if S == nil || S.Coords == nil {
		return newError("poscarWrite", "nil structure or coordinates given")
	}
	if S.Cell == nil {
		return newError("poscarWrite", "the POSCAR format needs a periodic cell")
	}
	if !S.Grouped() {
		S = S.GroupBySpecies()
	}
	bw := bufio.NewWriter(w)
	comment := S.Comment
	if comment == "" {
		comment = "goslab"
	}
	fmt.Fprintf(bw, "%s\n", comment)
	fmt.Fprintf(bw, "%19.14f\n", 1.0)
	vecs := S.Cell.Vectors()
	for i := 0; i < 3; i++ {
		fmt.Fprintf(bw, " %21.16f %21.16f %21.16f\n", vecs.At(i, 0), vecs.At(i, 1), vecs.At(i, 2))
	}
	syms, counts := S.SpeciesCounts()
	for _, s := range syms {
		fmt.Fprintf(bw, " %4s", s)
	}
	fmt.Fprint(bw, "\n")
	for _, c := range counts {
		fmt.Fprintf(bw, " %4d", c)
	}
	fmt.Fprint(bw, "\n")
	selective := false
	for _, at := range S.Atoms {
		if !at.Free() {
			selective = true
			break
		}
	}
	if selective {
		fmt.Fprint(bw, "Selective dynamics\n")
	}
	out := S.Coords
	if o.cartesian {
		fmt.Fprint(bw, "Cartesian\n")
	} else {
		fmt.Fprint(bw, "Direct\n")
		out = v3.Zeros(S.Len())
		S.Cell.Cart2Frac(out, S.Coords)
	}
	tf := map[bool]string{true: "F", false: "T"}
	for i := 0; i < S.Len(); i++ {
		fmt.Fprintf(bw, " %19.16f %19.16f %19.16f", out.At(i, 0), out.At(i, 1), out.At(i, 2))
		if selective {
			fx := S.Atom(i).Fixed
			fmt.Fprintf(bw, "  %s %s %s", tf[fx[0]], tf[fx[1]], tf[fx[2]])
		}
		fmt.Fprint(bw, "\n")
	}
	return bw.Flush()
}
