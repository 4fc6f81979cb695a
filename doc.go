/*
 * doc.go, part of goslab
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

/*Package slab provides structures and functions for the manipulation of
periodic atomistic models of surfaces, as used in computational surface
science: slabs, adsorbates and their combinations. It reads and writes
the VASP POSCAR/CONTCAR format, performs geometric manipulations
(centering, wrapping, supercell multiplication, cell rescaling,
minimum-image distances) and implements the z-clustering heuristics used
to locate surface layers and adsorbed molecules. The goslab/render
subpackage draws 2D projections of structures, and cmd/goslab exposes
the whole thing as a set of small command-line utilities.

Many "fundamental" functions here panic instead of returning errors:
if an atom index is out of range, the calling program is wrong and
should crash. Fallible operations (file
I/O, parsing) return errors implementing the slab.Error interface.
*/
package slab
