// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2023  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package font

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfgen"
)

func TestDescriptorDict(t *testing.T) {
	fd := &Descriptor{
		FontName:     "Test-Regular",
		IsFixedPitch: true,
		IsSerif:      true,
		IsItalic:     true,
		FontBBox:     rect.Rect{LLx: -10.5, LLy: -200.2, URx: 1000.1, URy: 900},
		ItalicAngle:  -12.3456,
		Ascent:       800,
		Descent:      -200,
		CapHeight:    700.5,
		StemV:        80,
	}

	want := pdfgen.Dict{
		"Type":        pdfgen.Name("FontDescriptor"),
		"FontName":    pdfgen.Name("Test-Regular"),
		"Flags":       pdfgen.Integer(FlagFixedPitch | FlagSerif | FlagNonsymbolic | FlagItalic),
		"FontBBox":    pdfgen.Array{pdfgen.Integer(-11), pdfgen.Integer(-201), pdfgen.Integer(1001), pdfgen.Integer(900)},
		"ItalicAngle": pdfgen.Real(-12.35),
		"Ascent":      pdfgen.Integer(800),
		"Descent":     pdfgen.Integer(-200),
		"CapHeight":   pdfgen.Real(700.5),
		"StemV":       pdfgen.Integer(80),
	}
	if d := cmp.Diff(want, fd.AsDict()); d != "" {
		t.Error(d)
	}
}

func TestFlags(t *testing.T) {
	cases := []struct {
		fd   Descriptor
		want Flags
	}{
		{Descriptor{}, FlagNonsymbolic},
		{Descriptor{IsSymbolic: true}, FlagSymbolic},
		{Descriptor{IsScript: true, IsSymbolic: true}, FlagScript | FlagSymbolic},
		{Descriptor{IsItalic: true}, FlagItalic | FlagNonsymbolic},
	}
	for i, c := range cases {
		if got := c.fd.Flags(); got != c.want {
			t.Errorf("%d: got %d, want %d", i, got, c.want)
		}
	}
}
