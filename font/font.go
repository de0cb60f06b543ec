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
	"bytes"
	"errors"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/pdfgen"
)

// Font is a font which can be used to show text on the pages of a
// document.
//
// A Font keeps track of the characters used, so a Font value must not
// be used by several goroutines at the same time.  To share fonts between
// goroutines, share the underlying [sfnt.Font] instead.
type Font interface {
	// Embed adds the font to the PDF file and returns the reference to
	// the font dictionary.
	Embed(w Writer) (pdfgen.Reference, error)

	// Metrics returns the font-wide metrics, in PDF glyph space units
	// (1/1000 of the font size).
	Metrics() *Metrics

	// MeasureText returns the width of s, when set at the given font size.
	MeasureText(s string, size float64) float64

	// EncodeText converts s into a PDF string for use with the Tj operator.
	EncodeText(s string) pdfgen.String
}

// Finisher is implemented by fonts which must update their PDF objects
// after all text has been encoded.  Finish is called every time the
// document is saved.
type Finisher interface {
	Finish() error
}

// Writer represents a PDF document which fonts can be embedded into.
type Writer interface {
	// Out returns the table of indirect objects of the document.
	Out() *pdfgen.Xref

	// NewStream returns a new stream, with the filter chosen according
	// to the compression settings of the document.
	NewStream(cat pdfgen.StreamCategory, dict pdfgen.Dict) *pdfgen.Stream

	// Version returns the PDF version of the document.
	Version() pdfgen.Version
}

// Metrics contains font-wide metrics, in PDF glyph space units.
type Metrics struct {
	Ascent      float64
	Descent     float64 // negative
	CapHeight   float64
	LineGap     float64
	ItalicAngle float64
	BBox        rect.Rect
}

// Leading returns the recommended distance between baselines,
// for the given font size.
func (m *Metrics) Leading(size float64) float64 {
	return (m.Ascent - m.Descent + m.LineGap) * size / 1000
}

func getMetrics(ttf *sfnt.Font) *Metrics {
	q := 1000 / float64(ttf.UnitsPerEm)
	return &Metrics{
		Ascent:      ttf.Ascent.AsFloat(q),
		Descent:     ttf.Descent.AsFloat(q),
		CapHeight:   ttf.CapHeight.AsFloat(q),
		LineGap:     ttf.LineGap.AsFloat(q),
		ItalicAngle: ttf.ItalicAngle,
		BBox:        ttf.FontBBoxPDF(),
	}
}

// embedFontFile adds the font program and the font descriptor to the
// file.  The font program is allocated first.
func embedFontFile(w Writer, ttf *sfnt.Font, m *Metrics, symbolic bool) (pdfgen.Reference, error) {
	if !ttf.IsGlyf() {
		return 0, errNotTrueType
	}
	buf := &bytes.Buffer{}
	n, err := ttf.WriteTrueTypePDF(buf)
	if err != nil {
		return 0, err
	}

	xref := w.Out()
	fontFile := w.NewStream(pdfgen.CategoryMetadata, pdfgen.Dict{
		"Length1": pdfgen.Integer(n),
	})
	fontFile.Content = buf.Bytes()
	fontFileRef, err := xref.Add(fontFile)
	if err != nil {
		return 0, err
	}

	fd := &Descriptor{
		FontName:     ttf.PostScriptName(),
		IsFixedPitch: ttf.IsFixedPitch(),
		IsSerif:      ttf.IsSerif,
		IsSymbolic:   symbolic,
		IsScript:     ttf.IsScript,
		IsItalic:     ttf.IsItalic,
		FontBBox:     m.BBox,
		ItalicAngle:  m.ItalicAngle,
		Ascent:       m.Ascent,
		Descent:      m.Descent,
		CapHeight:    m.CapHeight,
	}
	dict := fd.AsDict()
	dict["FontFile2"] = fontFileRef
	return xref.Add(dict)
}

var errNotTrueType = pdfgen.Errorf(pdfgen.InvalidParameter, "font", errors.New("not a TrueType font"))
