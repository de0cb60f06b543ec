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
	"golang.org/x/exp/slices"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/pdfgen"
)

// Composite is a TrueType font, embedded as a composite font
// (Type0 with a CIDFontType2 descendant) using the Identity-H encoding.
// Character identifiers coincide with glyph IDs.
//
// The glyph widths and the ToUnicode CMap are updated by [Composite.Finish],
// so that they cover all text encoded before the document is saved.
type Composite struct {
	ttf     *sfnt.Font
	cmap    cmap.Subtable
	metrics *Metrics

	used map[glyph.ID][]rune

	embedded []compositeObjects
}

// compositeObjects holds the objects of one embedded copy of the font,
// which need updating in Finish.
type compositeObjects struct {
	cidFont   pdfgen.Dict
	toUnicode *pdfgen.Stream
}

// NewComposite creates a new composite font from a TrueType font.
func NewComposite(ttf *sfnt.Font) (*Composite, error) {
	if !ttf.IsGlyf() {
		return nil, errNotTrueType
	}
	subtable, err := ttf.CMapTable.GetBest()
	if err != nil {
		return nil, pdfgen.Errorf(pdfgen.InvalidParameter, "NewComposite", err)
	}
	return &Composite{
		ttf:     ttf,
		cmap:    subtable,
		metrics: getMetrics(ttf),
		used:    make(map[glyph.ID][]rune),
	}, nil
}

// Metrics implements the [Font] interface.
func (f *Composite) Metrics() *Metrics {
	return f.metrics
}

// EncodeText implements the [Font] interface.
// Characters not present in the font are mapped to glyph 0.
func (f *Composite) EncodeText(s string) pdfgen.String {
	res := make(pdfgen.String, 0, 2*len(s))
	for _, r := range s {
		gid := f.cmap.Lookup(r)
		if gid != 0 {
			if _, seen := f.used[gid]; !seen {
				f.used[gid] = []rune{r}
			}
		}
		res = append(res, byte(gid>>8), byte(gid))
	}
	return res
}

// MeasureText implements the [Font] interface.
func (f *Composite) MeasureText(s string, size float64) float64 {
	var w float64
	for _, r := range s {
		w += f.ttf.GlyphWidthPDF(f.cmap.Lookup(r))
	}
	return w * size / 1000
}

// Embed implements the [Font] interface.
//
// The objects are allocated in the order font program, font descriptor,
// CIDFont dictionary, ToUnicode CMap, Type0 font dictionary.
func (f *Composite) Embed(w Writer) (pdfgen.Reference, error) {
	err := pdfgen.CheckVersion(w.Version(), "composite TrueType fonts", pdfgen.V1_3)
	if err != nil {
		return 0, err
	}

	fdRef, err := embedFontFile(w, f.ttf, f.metrics, true)
	if err != nil {
		return 0, err
	}

	fontName := pdfgen.Name(f.ttf.PostScriptName())
	xref := w.Out()

	cidFont := pdfgen.Dict{
		"Type":     pdfgen.Name("Font"),
		"Subtype":  pdfgen.Name("CIDFontType2"),
		"BaseFont": fontName,
		"CIDSystemInfo": pdfgen.Dict{
			"Registry":   pdfgen.String("Adobe"),
			"Ordering":   pdfgen.String("Identity"),
			"Supplement": pdfgen.Integer(0),
		},
		"FontDescriptor": fdRef,
		"CIDToGIDMap":    pdfgen.Name("Identity"),
	}
	cidFontRef, err := xref.Add(cidFont)
	if err != nil {
		return 0, err
	}

	toUnicode := w.NewStream(pdfgen.CategoryMetadata, nil)
	toUnicodeRef, err := xref.Add(toUnicode)
	if err != nil {
		return 0, err
	}

	fontDict := pdfgen.Dict{
		"Type":            pdfgen.Name("Font"),
		"Subtype":         pdfgen.Name("Type0"),
		"BaseFont":        fontName,
		"Encoding":        pdfgen.Name("Identity-H"),
		"DescendantFonts": pdfgen.Array{cidFontRef},
		"ToUnicode":       toUnicodeRef,
	}
	ref, err := xref.Add(fontDict)
	if err != nil {
		return 0, err
	}

	objs := compositeObjects{cidFont: cidFont, toUnicode: toUnicode}
	f.embedded = append(f.embedded, objs)
	f.update(objs)
	return ref, nil
}

// Finish updates the glyph widths and the ToUnicode CMap of all embedded
// copies of the font.  This implements the [Finisher] interface.
func (f *Composite) Finish() error {
	for _, objs := range f.embedded {
		f.update(objs)
	}
	return nil
}

func (f *Composite) update(objs compositeObjects) {
	gids := make([]glyph.ID, 0, len(f.used))
	for gid := range f.used {
		gids = append(gids, gid)
	}
	slices.Sort(gids)

	objs.cidFont["DW"] = number(f.ttf.GlyphWidthPDF(0))
	objs.cidFont["W"] = f.widthArray(gids)
	objs.toUnicode.Content = toUnicodeCMap(gids, f.used)
}

// widthArray returns the /W array for the given (sorted) glyphs.
// Consecutive glyphs are combined into one entry.
func (f *Composite) widthArray(gids []glyph.ID) pdfgen.Array {
	var W pdfgen.Array
	for i := 0; i < len(gids); {
		j := i + 1
		for j < len(gids) && gids[j] == gids[j-1]+1 {
			j++
		}
		ww := make(pdfgen.Array, 0, j-i)
		for _, gid := range gids[i:j] {
			ww = append(ww, number(f.ttf.GlyphWidthPDF(gid)))
		}
		W = append(W, pdfgen.Integer(gids[i]), ww)
		i = j
	}
	return W
}
