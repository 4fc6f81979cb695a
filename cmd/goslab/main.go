/*
 * main.go, part of goslab
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

//goslab is a set of small command-line utilities for manipulating VASP
//POSCAR/CONTCAR slab models: cutting adsorbates out, centering,
//distances, Bader charges, cell rescaling, supercells and quick 2D
//renders. Each subcommand mirrors one of the one-shot analysis scripts
//it replaces.
package main

func main() {
	Execute()
}
