/*
 * rescale.go, part of goslab
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

	slab "github.com/rmera/goslab"
	"github.com/spf13/cobra"
)

var (
	rescaleOut     string
	rescaleFixCart bool
)

var rescaleCmd = &cobra.Command{
	Use:   "rescale POSCAR FACTOR",
	Short: "Rescale the simulation cell",
	Long: `Multiplies all lattice vectors by FACTOR. By default the atoms
follow (fractional coordinates are preserved); with --fix-cart the
Cartesian positions are kept instead.`,
	Args: cobra.ExactArgs(2),
	RunE: runRescale,
}

func init() {
	rescaleCmd.Flags().StringVarP(&rescaleOut, "out", "o", "rescaled.vasp", "output file")
	rescaleCmd.Flags().BoolVar(&rescaleFixCart, "fix-cart", false, "keep Cartesian coordinates fixed while scaling the cell")
	rootCmd.AddCommand(rescaleCmd)
}

func runRescale(cmd *cobra.Command, args []string) error {
	factor, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("bad scale factor %q", args[1])
	}
	S, err := slab.PoscarRead(args[0])
	if err != nil {
		return err
	}
	vold := S.Cell.Volume()
	if err := slab.RescaleCell(S, factor, rescaleFixCart); err != nil {
		return err
	}
	if err := slab.PoscarWrite(rescaleOut, S); err != nil {
		return err
	}
	fmt.Printf("cell volume %.3f -> %.3f Å³, written to %s\n", vold, S.Cell.Volume(), rescaleOut)
	return nil
}
