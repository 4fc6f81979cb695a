/*
 * dist.go, part of goslab
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

var distCutoff float64

var distCmd = &cobra.Command{
	Use:   "dist POSCAR I [J]",
	Short: "Minimum-image inter-atomic distances",
	Long: `With two atom indexes, prints the minimum-image distance between
them. With one index and --cutoff, prints all neighbors of that atom
within the cutoff. Indexes are 1-based.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runDist,
}

func init() {
	distCmd.Flags().Float64Var(&distCutoff, "cutoff", 0, "neighbor search cutoff, in Å")
	rootCmd.AddCommand(distCmd)
}

func atomIndex(S *slab.Structure, arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil || i < 1 || i > S.Len() {
		return 0, fmt.Errorf("bad atom index %q (structure has %d atoms)", arg, S.Len())
	}
	return i - 1, nil
}

func runDist(cmd *cobra.Command, args []string) error {
	S, err := slab.PoscarRead(args[0])
	if err != nil {
		return err
	}
	i, err := atomIndex(S, args[1])
	if err != nil {
		return err
	}
	if len(args) == 3 {
		j, err := atomIndex(S, args[2])
		if err != nil {
			return err
		}
		fmt.Printf("%-3s %4d -- %-3s %4d  %8.4f Å\n", S.Atom(i).Symbol, i+1,
			S.Atom(j).Symbol, j+1, slab.Distance(S, i, j))
		return nil
	}
	if distCutoff <= 0 {
		return fmt.Errorf("give a second index or a positive --cutoff")
	}
	idx, dists := slab.Neighbors(S, i, distCutoff)
	if len(idx) == 0 {
		fmt.Printf("no neighbors of atom %d within %.2f Å\n", i+1, distCutoff)
		return nil
	}
	fmt.Printf("neighbors of %-3s %d within %.2f Å:\n", S.Atom(i).Symbol, i+1, distCutoff)
	for k, j := range idx {
		fmt.Printf("  %-3s %4d  %8.4f\n", S.Atom(j).Symbol, j+1, dists[k])
	}
	return nil
}
