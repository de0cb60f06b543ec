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
	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfgen"
)

// Simple is a TrueType font, embedded as a simple font with
// WinAnsiEncoding.
//
// Characters outside the Windows-1252 character set are replaced by
// question marks.
type Simple struct {
	ttf     *sfnt.Font
	metrics *Metrics
	widths  [256]float64
}

const (
	simpleFirstChar = 32
	simpleLastChar  = 255
)

// NewSimple creates a new simple font from a TrueType font.
func NewSimple(ttf *sfnt.Font) (*Simple, error) {
	if !ttf.IsGlyf() {
		return nil, errNotTrueType
	}
	cmap, err := ttf.CMapTable.GetBest()
	if err != nil {
		return nil, pdfgen.Errorf(pdfgen.InvalidParameter, "NewSimple", err)
	}

	f := &Simple{
		ttf:     ttf,
		metrics: getMetrics(ttf),
	}
	for c := simpleFirstChar; c <= simpleLastChar; c++ {
		r := charmap.Windows1252.DecodeByte(byte(c))
		var gid glyph.ID
		if r != '\ufffd' {
			gid = cmap.Lookup(r)
		}
		f.widths[c] = ttf.GlyphWidthPDF(gid)
	}
	return f, nil
}

// Metrics implements the [Font] interface.
func (f *Simple) Metrics() *Metrics {
	return f.metrics
}

// EncodeText implements the [Font] interface.
func (f *Simple) EncodeText(s string) pdfgen.String {
	res := make(pdfgen.String, 0, len(s))
	for _, r := range s {
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok || c < simpleFirstChar {
			c = '?'
		}
		res = append(res, c)
	}
	return res
}

// MeasureText implements the [Font] interface.
func (f *Simple) MeasureText(s string, size float64) float64 {
	var w float64
	for _, c := range f.EncodeText(s) {
		w += f.widths[c]
	}
	return w * size / 1000
}

// Embed implements the [Font] interface.
//
// The objects are allocated in the order font program, font descriptor,
// font dictionary.
func (f *Simple) Embed(w Writer) (pdfgen.Reference, error) {
	fdRef, err := embedFontFile(w, f.ttf, f.metrics, false)
	if err != nil {
		return 0, err
	}

	widths := make(pdfgen.Array, 0, simpleLastChar-simpleFirstChar+1)
	for c := simpleFirstChar; c <= simpleLastChar; c++ {
		widths = append(widths, number(f.widths[c]))
	}

	dict := pdfgen.Dict{
		"Type":           pdfgen.Name("Font"),
		"Subtype":        pdfgen.Name("TrueType"),
		"BaseFont":       pdfgen.Name(f.ttf.PostScriptName()),
		"FirstChar":      pdfgen.Integer(simpleFirstChar),
		"LastChar":       pdfgen.Integer(simpleLastChar),
		"Widths":         widths,
		"Encoding":       pdfgen.Name("WinAnsiEncoding"),
		"FontDescriptor": fdRef,
	}
	return w.Out().Add(dict)
}
