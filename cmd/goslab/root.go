/*
 * root.go, part of goslab
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
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goslab",
	Short: "Utilities for VASP slab/adsorbate structure files",
	Long: `goslab manipulates atomic-structure files in the VASP POSCAR/CONTCAR
format: cut adsorbates out of slabs, center atoms in the cell, measure
inter-atomic distances, read Bader partial charges, rescale cells,
build supercells, and render quick 2D images. Atom indexes given on the
command line are 1-based, following the POSCAR order.`,
	SilenceUsage: true,
}

//Execute runs the root command, exiting non-zero on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
