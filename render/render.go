/*
 * render.go, part of goslab
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

//Package render draws 2D projections of slab structures to image files,
//using gonum/plot. It is a "quick look" renderer for checking slab
//geometries, not a molecular graphics program.
package render

import (
	"fmt"
	"sort"

	slab "github.com/rmera/goslab"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//View selects the projection plane.
type View int

const (
	Top   View = iota //project on the xy plane, looking down z
	SideX             //project on the xz plane
	SideY             //project on the yz plane
)

//ParseView turns the command-line spelling of a view into a View.
func ParseView(s string) (View, error) {
	switch s {
	case "top", "xy":
		return Top, nil
	case "side-x", "xz":
		return SideX, nil
	case "side-y", "yz":
		return SideY, nil
	}
	return Top, fmt.Errorf("ParseView: unknown view %q (want top, side-x or side-y)", s)
}

//axes returns the indexes of the 2 displayed Cartesian components and
//of the hidden one (used for painter ordering).
func (v View) axes() (h, ver, hidden int) {
	switch v {
	case SideX:
		return 0, 2, 1
	case SideY:
		return 1, 2, 0
	default:
		return 0, 1, 2
	}
}

func (v View) labels() (string, string) {
	switch v {
	case SideX:
		return "x (Å)", "z (Å)"
	case SideY:
		return "y (Å)", "z (Å)"
	default:
		return "x (Å)", "y (Å)"
	}
}

//Save renders the structure to an image file (format given by the
//extension: .png, .pdf, .svg...). A nil style means DefaultStyle. Atoms
//are drawn back to front as filled circles with radii proportional to
//the covalent radius of the species.
func Save(S *slab.Structure, path string, view View, style *Style) error {
	if S == nil || S.Len() == 0 {
		return fmt.Errorf("render.Save: empty structure")
	}
	if style == nil {
		style = DefaultStyle()
	}
	h, ver, hidden := view.axes()
	p := plot.New()
	p.Title.Text = S.Comment
	p.X.Label.Text, p.Y.Label.Text = view.labels()

	if style.CellOutline && S.Cell != nil {
		if err := addCellOutline(p, S, view); err != nil {
			return err
		}
	}
	//back to front along the hidden axis, so closer atoms paint over
	//farther ones
	order := make([]int, S.Len())
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return S.Coords.At(order[a], hidden) < S.Coords.At(order[b], hidden)
	})
	legended := make(map[string]bool)
	for _, i := range order {
		at := S.Atom(i)
		pt := plotter.XYs{{X: S.Coords.At(i, h), Y: S.Coords.At(i, ver)}}
		sc, err := plotter.NewScatter(pt)
		if err != nil {
			return fmt.Errorf("render.Save: %w", err)
		}
		rad, ok := slab.CovalentRadius(at.Symbol)
		if !ok {
			rad = 1.0
		}
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Color = style.Color(at.Symbol)
		sc.GlyphStyle.Radius = vg.Points(rad * style.RadiusScale)
		p.Add(sc)
		if style.Legend && !legended[at.Symbol] {
			p.Legend.Add(at.Symbol, sc)
			legended[at.Symbol] = true
		}
	}
	width := vg.Length(style.Width) * vg.Centimeter
	//keep a roughly equal-aspect canvas
	xspan := p.X.Max - p.X.Min
	yspan := p.Y.Max - p.Y.Min
	if xspan <= 0 || yspan <= 0 {
		return fmt.Errorf("render.Save: degenerate projection span")
	}
	height := width * vg.Length(yspan/xspan)
	if err := p.Save(width, height, path); err != nil {
		return fmt.Errorf("render.Save: %w", err)
	}
	return nil
}

//addCellOutline draws the projection of the relevant cell face as a
//closed polygon behind the atoms.
func addCellOutline(p *plot.Plot, S *slab.Structure, view View) error {
	h, ver, hidden := view.axes()
	//the face spanned by the 2 in-plane lattice vectors
	var va, vb []float64
	vecs := S.Cell.Vectors()
	row := func(i int) []float64 { return []float64{vecs.At(i, 0), vecs.At(i, 1), vecs.At(i, 2)} }
	switch hidden {
	case 2:
		va, vb = row(0), row(1)
	case 1:
		va, vb = row(0), row(2)
	default:
		va, vb = row(1), row(2)
	}
	outline := plotter.XYs{
		{X: 0, Y: 0},
		{X: va[h], Y: va[ver]},
		{X: va[h] + vb[h], Y: va[ver] + vb[ver]},
		{X: vb[h], Y: vb[ver]},
		{X: 0, Y: 0},
	}
	line, err := plotter.NewLine(outline)
	if err != nil {
		return fmt.Errorf("render.addCellOutline: %w", err)
	}
	p.Add(line)
	return nil
}
