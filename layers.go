/*
 * layers.go, part of goslab
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
	"math"
	"sort"
)

//lateral returns the in-plane (xy) distance between atoms i and j,
//ignoring periodicity. The layer heuristics predate the minimum-image
//machinery and keep the plain-Cartesian convention of the original
//analysis scripts.
func lateral(S *Structure, i, j int) float64 {
	dx := S.Coords.At(i, 0) - S.Coords.At(j, 0)
	dy := S.Coords.At(i, 1) - S.Coords.At(j, 1)
	return math.Hypot(dx, dy)
}

//TopLayerHeight finds the topmost layer of atoms of the given species
//that lies strictly below ceiling (in Å along z) and returns the mean
//z of that layer. The topmost qualifying atom anchors the layer; other
//atoms belong to it if their z is within ztol of the anchor's and they
//sit within latTol of it laterally. Following the original convention,
//a "layer" needs at least two atoms: with fewer qualifying atoms the
//function reports not-found (0, false).
func TopLayerHeight(S *Structure, species string, ceiling, ztol, latTol float64) (float64, bool) {
	candidates := make([]int, 0, S.Len())
	for _, i := range S.Indexes(species) {
		if S.Coords.At(i, 2) < ceiling {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	anchor := candidates[0]
	for _, i := range candidates[1:] {
		if S.Coords.At(i, 2) > S.Coords.At(anchor, 2) {
			anchor = i
		}
	}
	ztop := S.Coords.At(anchor, 2)
	var sum float64
	n := 0
	for _, i := range candidates {
		if ztop-S.Coords.At(i, 2) <= ztol && lateral(S, anchor, i) <= latTol {
			sum += S.Coords.At(i, 2)
			n++
		}
	}
	if n < 2 {
		return 0, false
	}
	return sum / float64(n), true
}

//DetectAdsorbate guesses which atoms form an adsorbed molecule by
//walking down from the topmost atom: indexes are visited in order of
//decreasing z, hydrogens are skipped, and an atom joins the adsorbate
//while it stays within latTol laterally and within zgap below the
//previously accepted atom. The walk stops at the first violation or
//after max atoms. The returned indexes are in decreasing-z order; an
//empty slice means no candidate was found (e.g. an all-hydrogen
//structure).
func DetectAdsorbate(S *Structure, latTol, zgap float64, max int) []int {
	order := make([]int, 0, S.Len())
	for i := 0; i < S.Len(); i++ {
		if S.Atom(i).Symbol == "H" {
			continue
		}
		order = append(order, i)
	}
	//a stable sort keeps the POSCAR order among atoms at the same height
	sort.SliceStable(order, func(a, b int) bool {
		return S.Coords.At(order[a], 2) > S.Coords.At(order[b], 2)
	})
	ret := make([]int, 0, max)
	for _, i := range order {
		if len(ret) >= max {
			break
		}
		if len(ret) > 0 {
			prev := ret[len(ret)-1]
			if lateral(S, prev, i) > latTol || S.Coords.At(prev, 2)-S.Coords.At(i, 2) > zgap {
				break
			}
		}
		ret = append(ret, i)
	}
	return ret
}
