/*
 * style.go, part of goslab
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

package render

import (
	"fmt"
	"image/color"
	"os"

	"gopkg.in/yaml.v3"
)

//Style controls the appearance of a rendered structure. The zero value
//is not useful, start from DefaultStyle or LoadStyle.
type Style struct {
	Width       float64           `yaml:"width"`        //canvas width in cm
	RadiusScale float64           `yaml:"radius_scale"` //glyph points per Å of covalent radius
	Legend      bool              `yaml:"legend"`
	CellOutline bool              `yaml:"cell_outline"`
	Colors      map[string]string `yaml:"colors"` //per-species overrides, "#rrggbb"
}

//DefaultStyle returns the style used when no style file is given.
func DefaultStyle() *Style {
	return &Style{
		Width:       12,
		RadiusScale: 9,
		Legend:      true,
		CellOutline: true,
		Colors:      map[string]string{},
	}
}

//LoadStyle reads a YAML style file. Fields not present in the file keep
//their default values.
func LoadStyle(path string) (*Style, error) {
	s := DefaultStyle()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadStyle: %w", err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("LoadStyle: %s: %w", path, err)
	}
	return s, nil
}

//CPK-flavored default palette for the elements goslab knows about.
//Unlisted species render gray.
var defaultColors = map[string]color.RGBA{
	"H":  {230, 230, 230, 255},
	"C":  {85, 85, 85, 255},
	"N":  {48, 80, 248, 255},
	"O":  {255, 13, 13, 255},
	"F":  {144, 224, 80, 255},
	"Na": {171, 92, 242, 255},
	"Mg": {138, 255, 0, 255},
	"Al": {191, 166, 166, 255},
	"Si": {240, 200, 160, 255},
	"P":  {255, 128, 0, 255},
	"S":  {255, 255, 48, 255},
	"Cl": {31, 240, 31, 255},
	"K":  {143, 64, 212, 255},
	"Ca": {61, 255, 0, 255},
	"Ti": {191, 194, 199, 255},
	"Cr": {138, 153, 199, 255},
	"Mn": {156, 122, 199, 255},
	"Fe": {224, 102, 51, 255},
	"Co": {240, 144, 160, 255},
	"Ni": {80, 208, 80, 255},
	"Cu": {200, 128, 51, 255},
	"Zn": {125, 128, 176, 255},
	"Zr": {148, 224, 224, 255},
	"Mo": {84, 181, 181, 255},
	"Ru": {36, 143, 143, 255},
	"Rh": {10, 125, 140, 255},
	"Pd": {0, 105, 133, 255},
	"Ag": {192, 192, 192, 255},
	"Ir": {23, 84, 135, 255},
	"Pt": {208, 208, 224, 255},
	"Au": {255, 209, 35, 255},
}

//Color returns the display color for a chemical symbol, honoring the
//per-style overrides. Unknown species come out gray.
func (s *Style) Color(symbol string) color.RGBA {
	if hex, ok := s.Colors[symbol]; ok {
		if c, err := parseHexColor(hex); err == nil {
			return c
		}
	}
	if c, ok := defaultColors[symbol]; ok {
		return c
	}
	return color.RGBA{128, 128, 128, 255}
}

func parseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("parseHexColor: bad color %q", s)
	}
	return color.RGBA{r, g, b, 255}, nil
}
