/*
 * height.go, part of goslab
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

	slab "github.com/rmera/goslab"
	"github.com/spf13/cobra"
)

var (
	heightCeiling float64
	heightZtol    float64
	heightLatTol  float64
)

var heightCmd = &cobra.Command{
	Use:   "height POSCAR SPECIES",
	Short: "Height of an adsorbate above the top substrate layer",
	Long: `Finds the topmost layer of SPECIES atoms below a reference height
(by default the z of the topmost atom in the structure, i.e. the
adsorbate tip) and reports the mean z of that layer and the signed
height of the reference above it.`,
	Args: cobra.ExactArgs(2),
	RunE: runHeight,
}

func init() {
	heightCmd.Flags().Float64Var(&heightCeiling, "ceiling", math.NaN(), "reference height, in Å (default: topmost atom)")
	heightCmd.Flags().Float64Var(&heightZtol, "ztol", 2.0, "vertical layer tolerance, in Å")
	heightCmd.Flags().Float64Var(&heightLatTol, "lateral", 4.0, "lateral layer tolerance, in Å")
	rootCmd.AddCommand(heightCmd)
}

func runHeight(cmd *cobra.Command, args []string) error {
	S, err := slab.PoscarRead(args[0])
	if err != nil {
		return err
	}
	species := args[1]
	ceiling := heightCeiling
	if math.IsNaN(ceiling) {
		ceiling = math.Inf(-1)
		for i := 0; i < S.Len(); i++ {
			if z := S.Coords.At(i, 2); z > ceiling {
				ceiling = z
			}
		}
	}
	href, ok := slab.TopLayerHeight(S, species, ceiling, heightZtol, heightLatTol)
	if !ok {
		fmt.Printf("no %s layer found below %.3f Å\n", species, ceiling)
		return nil
	}
	fmt.Printf("top %s layer at %8.4f Å, reference %8.4f Å, height %+8.4f Å\n",
		species, href, ceiling, ceiling-href)
	return nil
}
