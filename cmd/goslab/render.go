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

package main

import (
	"fmt"

	slab "github.com/rmera/goslab"
	"github.com/rmera/goslab/render"
	"github.com/spf13/cobra"
)

var (
	renderOut   string
	renderView  string
	renderStyle string
)

var renderCmd = &cobra.Command{
	Use:   "render POSCAR",
	Short: "Render a quick 2D image of the structure",
	Long: `Draws a projection of the structure to an image file. The view can
be top (down the z axis), side-x (the xz plane) or side-y (the yz
plane). Appearance (colors, sizes, legend) can be tweaked with a YAML
style file.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output image (default INPUT.png)")
	renderCmd.Flags().StringVar(&renderView, "view", "top", "projection: top, side-x or side-y")
	renderCmd.Flags().StringVar(&renderStyle, "style", "", "YAML style file")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	view, err := render.ParseView(renderView)
	if err != nil {
		return err
	}
	style := render.DefaultStyle()
	if renderStyle != "" {
		style, err = render.LoadStyle(renderStyle)
		if err != nil {
			return err
		}
	}
	S, err := slab.PoscarRead(args[0])
	if err != nil {
		return err
	}
	out := renderOut
	if out == "" {
		out = args[0] + ".png"
	}
	if err := render.Save(S, out, view, style); err != nil {
		return err
	}
	fmt.Printf("image written to %s\n", out)
	return nil
}
