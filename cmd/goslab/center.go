/*
 * center.go, part of goslab
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

	slab "github.com/rmera/goslab"
	"github.com/spf13/cobra"
)

var (
	centerOut  string
	centerMass bool
)

var centerCmd = &cobra.Command{
	Use:   "center POSCAR",
	Short: "Center the atoms in the cell",
	Long: `Translates the structure so its geometric center (or center of
mass, with --mass) sits at the middle of the cell, wrapping the atoms
back into the cell afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runCenter,
}

func init() {
	centerCmd.Flags().StringVarP(&centerOut, "out", "o", "centered.vasp", "output file")
	centerCmd.Flags().BoolVar(&centerMass, "mass", false, "center the center of mass instead of the centroid")
	rootCmd.AddCommand(centerCmd)
}

func runCenter(cmd *cobra.Command, args []string) error {
	S, err := slab.PoscarRead(args[0])
	if err != nil {
		return err
	}
	if err := slab.CenterAtoms(S, centerMass); err != nil {
		return err
	}
	if err := slab.PoscarWrite(centerOut, S); err != nil {
		return err
	}
	fmt.Printf("centered structure written to %s\n", centerOut)
	return nil
}
