/*
 * render_test.go, part of goslab
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
	"image/color"
	"os"
	"path/filepath"
	"testing"

	slab "github.com/rmera/goslab"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	S, err := slab.PoscarRead("../test/POSCAR")
	require.NoError(t, err)
	for view, name := range map[View]string{Top: "top.png", SideX: "sidex.png", SideY: "sidey.png"} {
		out := filepath.Join(t.TempDir(), name)
		require.NoError(t, Save(S, out, view, nil))
		fi, err := os.Stat(out)
		require.NoError(t, err)
		require.NotZero(t, fi.Size())
	}
}

func TestParseView(t *testing.T) {
	v, err := ParseView("side-x")
	require.NoError(t, err)
	require.Equal(t, SideX, v)
	_, err = ParseView("isometric")
	require.Error(t, err)
}

func TestLoadStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	content := "radius_scale: 4\nlegend: false\ncolors:\n  Pt: \"#ff0000\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	s, err := LoadStyle(path)
	require.NoError(t, err)
	require.Equal(t, 4.0, s.RadiusScale)
	require.False(t, s.Legend)
	//an unset field keeps its default
	require.Equal(t, DefaultStyle().Width, s.Width)
	require.Equal(t, color.RGBA{255, 0, 0, 255}, s.Color("Pt"))
	//unknown species fall back to gray
	require.Equal(t, color.RGBA{128, 128, 128, 255}, s.Color("Xx"))
	_, err = LoadStyle(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
