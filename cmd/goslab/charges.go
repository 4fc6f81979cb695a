/*
 * charges.go, part of goslab
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

package main

import (
	"fmt"
	"strconv"
	"strings"

	slab "github.com/rmera/goslab"
	"github.com/spf13/cobra"
)

var chargesZval []string

var chargesCmd = &cobra.Command{
	Use:   "charges POSCAR ACF.dat",
	Short: "Per-atom Bader partial charges",
	Long: `Reads the electron populations from a Bader-analysis ACF.dat file
and reports the partial charge of every atom (ZVAL minus population),
plus per-species and total sums. The valence electron count of each
species (the POTCAR ZVAL) must be given with --zval.`,
	Args: cobra.ExactArgs(2),
	RunE: runCharges,
}

func init() {
	chargesCmd.Flags().StringSliceVar(&chargesZval, "zval", nil, "valence electrons per species, e.g. --zval Pt=10,C=4,O=6")
	rootCmd.AddCommand(chargesCmd)
}

func parseZval(specs []string) (map[string]float64, error) {
	ret := make(map[string]float64)
	for _, spec := range specs {
		parts := strings.SplitN(spec, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("bad --zval entry %q, want El=Z", spec)
		}
		z, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad --zval value %q", parts[1])
		}
		ret[parts[0]] = z
	}
	return ret, nil
}

func runCharges(cmd *cobra.Command, args []string) error {
	zval, err := parseZval(chargesZval)
	if err != nil {
		return err
	}
	if len(zval) == 0 {
		return fmt.Errorf("give the valence electron counts with --zval")
	}
	S, err := slab.PoscarRead(args[0])
	if err != nil {
		return err
	}
	pops, err := slab.ReadACF(args[1])
	if err != nil {
		return err
	}
	if err := slab.AssignCharges(S, pops, zval); err != nil {
		return err
	}
	fmt.Printf("%5s %-3s %10s %10s\n", "#", "el", "electrons", "charge")
	for i := 0; i < S.Len(); i++ {
		at := S.Atom(i)
		fmt.Printf("%5d %-3s %10.4f %+10.4f\n", i+1, at.Symbol, pops[i], at.Charge)
	}
	for _, sym := range S.Species() {
		fmt.Printf("total %-3s %+10.4f\n", sym, slab.NetCharge(S, S.Indexes(sym)))
	}
	fmt.Printf("net       %+10.4f\n", slab.NetCharge(S, nil))
	return nil
}
