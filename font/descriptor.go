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
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/internal/float"
)

// Descriptor represents a PDF font descriptor.
//
// See section 9.8.1 of ISO 32000-2:2020.
type Descriptor struct {
	FontName string

	IsFixedPitch bool // flag
	IsSerif      bool // flag
	IsSymbolic   bool // flag
	IsScript     bool // flag
	IsItalic     bool // flag

	FontBBox    rect.Rect
	ItalicAngle float64
	Ascent      float64
	Descent     float64
	CapHeight   float64
	StemV       float64 // 0 = unknown
}

// Flags returns the /Flags value of the descriptor.
func (d *Descriptor) Flags() Flags {
	var flags Flags
	if d.IsFixedPitch {
		flags |= FlagFixedPitch
	}
	if d.IsSerif {
		flags |= FlagSerif
	}
	if d.IsSymbolic {
		flags |= FlagSymbolic
	} else {
		flags |= FlagNonsymbolic
	}
	if d.IsScript {
		flags |= FlagScript
	}
	if d.IsItalic {
		flags |= FlagItalic
	}
	return flags
}

// AsDict converts the font descriptor into a PDF dictionary.
func (d *Descriptor) AsDict() pdfgen.Dict {
	bbox := d.FontBBox
	return pdfgen.Dict{
		"Type":     pdfgen.Name("FontDescriptor"),
		"FontName": pdfgen.Name(d.FontName),
		"Flags":    pdfgen.Integer(d.Flags()),
		"FontBBox": pdfgen.Array{
			pdfgen.Integer(math.Floor(bbox.LLx)),
			pdfgen.Integer(math.Floor(bbox.LLy)),
			pdfgen.Integer(math.Ceil(bbox.URx)),
			pdfgen.Integer(math.Ceil(bbox.URy)),
		},
		"ItalicAngle": number(d.ItalicAngle),
		"Ascent":      number(d.Ascent),
		"Descent":     number(d.Descent),
		"CapHeight":   number(d.CapHeight),
		"StemV":       number(d.StemV),
	}
}

// Flags represents PDF Font Descriptor Flags.
// See section 9.8.2 of ISO 32000-2:2020.
type Flags uint32

// Possible values for PDF Font Descriptor Flags.
const (
	FlagFixedPitch  Flags = 1 << 0
	FlagSerif       Flags = 1 << 1
	FlagSymbolic    Flags = 1 << 2
	FlagScript      Flags = 1 << 3
	FlagNonsymbolic Flags = 1 << 5
	FlagItalic      Flags = 1 << 6
)

// number returns x as an Integer if possible, and as a Real rounded to
// two decimal places otherwise.
func number(x float64) pdfgen.Object {
	x = float.Round(x, 2)
	if x == math.Trunc(x) && math.Abs(x) < 1<<53 {
		return pdfgen.Integer(x)
	}
	return pdfgen.Real(x)
}
