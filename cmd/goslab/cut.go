/*
 * cut.go, part of goslab
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
	"math"
	"sort"

	slab "github.com/rmera/goslab"
	"github.com/spf13/cobra"
)

var (
	cutAbove   float64
	cutAuto    bool
	cutOut     string
	cutSlabOut string
	cutLatTol  float64
	cutZgap    float64
)

var cutCmd = &cobra.Command{
	Use:   "cut POSCAR",
	Short: "Cut an adsorbate out of a slab",
	Long: `Separates the adsorbate atoms from a slab structure, either
everything at or above a given height (--above) or by walking down from
the topmost atom with the greedy gap heuristic (--auto). The adsorbate
is written to its own POSCAR; optionally the remaining slab is written
too.`,
	Args: cobra.ExactArgs(1),
	RunE: runCut,
}

func init() {
	cutCmd.Flags().Float64Var(&cutAbove, "above", math.NaN(), "cut all atoms with z at or above this height, in Å")
	cutCmd.Flags().BoolVar(&cutAuto, "auto", false, "auto-detect the adsorbate from the topmost atoms")
	cutCmd.Flags().StringVarP(&cutOut, "out", "o", "adsorbate.vasp", "output file for the adsorbate")
	cutCmd.Flags().StringVar(&cutSlabOut, "slab", "", "also write the remaining slab to this file")
	cutCmd.Flags().Float64Var(&cutLatTol, "lateral", 2.0, "lateral tolerance for --auto, in Å")
	cutCmd.Flags().Float64Var(&cutZgap, "zgap", 1.6, "maximum z gap between adsorbate atoms for --auto, in Å")
	rootCmd.AddCommand(cutCmd)
}

func runCut(cmd *cobra.Command, args []string) error {
	if cutAuto == !math.IsNaN(cutAbove) { //exactly one selection mode
		return fmt.Errorf("give either --above or --auto")
	}
	S, err := slab.PoscarRead(args[0])
	if err != nil {
		return err
	}
	var idx []int
	if cutAuto {
		idx = slab.DetectAdsorbate(S, cutLatTol, cutZgap, 3)
	} else {
		for i := 0; i < S.Len(); i++ {
			if S.Coords.At(i, 2) >= cutAbove {
				idx = append(idx, i)
			}
		}
	}
	if len(idx) == 0 {
		return fmt.Errorf("no adsorbate atoms found in %s", args[0])
	}
	if cutSlabOut != "" && len(idx) == S.Len() {
		return fmt.Errorf("the cut takes all %d atoms, nothing would remain for --slab", S.Len())
	}
	ads, err := S.SomeAtoms(idx)
	if err != nil {
		return err
	}
	ads.Comment = fmt.Sprintf("adsorbate cut from %s", args[0])
	if err := slab.PoscarWrite(cutOut, ads); err != nil {
		return err
	}
	for _, i := range idx {
		fmt.Printf("cut atom %4d %-3s z=%8.3f\n", i+1, S.Atom(i).Symbol, S.Coords.At(i, 2))
	}
	fmt.Printf("%d adsorbate atoms written to %s\n", ads.Len(), cutOut)
	if cutSlabOut != "" {
		rest := S.Copy()
		//delete from the top so the earlier indexes stay valid
		desc := append([]int{}, idx...)
		sort.Sort(sort.Reverse(sort.IntSlice(desc)))
		for _, i := range desc {
			rest.Del(i)
		}
		rest.Comment = fmt.Sprintf("slab from %s", args[0])
		if err := slab.PoscarWrite(cutSlabOut, rest); err != nil {
			return err
		}
		fmt.Printf("%d slab atoms written to %s\n", rest.Len(), cutSlabOut)
	}
	return nil
}
