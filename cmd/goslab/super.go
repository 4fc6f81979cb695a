/*
 * super.go, part of goslab
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

var superOut string

var superCmd = &cobra.Command{
	Use:   "super POSCAR NX NY NZ",
	Short: "Multiply the cell into a supercell",
	Args:  cobra.ExactArgs(4),
	RunE:  runSuper,
}

func init() {
	superCmd.Flags().StringVarP(&superOut, "out", "o", "supercell.vasp", "output file")
	rootCmd.AddCommand(superCmd)
}

func runSuper(cmd *cobra.Command, args []string) error {
	n := make([]int, 3)
	for k := 0; k < 3; k++ {
		v, err := strconv.Atoi(args[k+1])
		if err != nil || v < 1 {
			return fmt.Errorf("bad multiplier %q", args[k+1])
		}
		n[k] = v
	}
	S, err := slab.PoscarRead(args[0])
	if err != nil {
		return err
	}
	super, err := slab.Supercell(S, n[0], n[1], n[2])
	if err != nil {
		return err
	}
	if err := slab.PoscarWrite(superOut, super); err != nil {
		return err
	}
	fmt.Printf("%dx%dx%d supercell (%d atoms) written to %s\n", n[0], n[1], n[2], super.Len(), superOut)
	return nil
}
