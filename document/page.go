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

package document

import (
	"bytes"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/internal/float"
)

// Page represents a page in a PDF document.
//
// The page contents are written as PDF content stream operators, using
// the [Page.Write] method or the text helpers.
type Page struct {
	// Ref is the reference of the page object.
	Ref pdfgen.Reference

	doc      *Document
	dict     pdfgen.Dict
	fonts    pdfgen.Dict
	fontRefs map[font.Font]pdfgen.Name
	content  *pdfgen.Stream
}

// AddPage appends a new page with the given media box to the document.
//
// The content stream of the page is compressed if text compression is
// enabled at the time AddPage is called.
func (d *Document) AddPage(mediaBox rect.Rect) (*Page, error) {
	if !(mediaBox.URx > mediaBox.LLx && mediaBox.URy > mediaBox.LLy) {
		return nil, pdfgen.Errorf(pdfgen.InvalidParameter, "AddPage",
			fmt.Errorf("invalid media box %v", mediaBox))
	}

	content := d.NewStream(pdfgen.CategoryText, nil)
	contentRef, err := d.xref.Add(content)
	if err != nil {
		return nil, err
	}

	fonts := pdfgen.Dict{}
	dict := pdfgen.Dict{
		"Type":     pdfgen.Name("Page"),
		"Parent":   d.pageTreeRef,
		"MediaBox": rectArray(mediaBox),
		"Resources": pdfgen.Dict{
			"Font":    fonts,
			"ProcSet": pdfgen.Array{pdfgen.Name("PDF"), pdfgen.Name("Text")},
		},
		"Contents": contentRef,
	}
	ref, err := d.xref.Add(dict)
	if err != nil {
		return nil, err
	}

	p := &Page{
		Ref:      ref,
		doc:      d,
		dict:     dict,
		fonts:    fonts,
		fontRefs: make(map[font.Font]pdfgen.Name),
		content:  content,
	}
	d.pages = append(d.pages, p)

	kids := d.pageTree["Kids"].(pdfgen.Array)
	d.pageTree["Kids"] = append(kids, ref)
	d.pageTree["Count"] = pdfgen.Integer(len(d.pages))

	return p, nil
}

// NumPages returns the number of pages in the document.
func (d *Document) NumPages() int {
	return len(d.pages)
}

// Write appends raw content stream operators to the page.
// This implements the [io.Writer] interface.
func (p *Page) Write(buf []byte) (int, error) {
	p.content.Content = append(p.content.Content, buf...)
	return len(buf), nil
}

// Content returns the content stream of the page.
func (p *Page) Content() []byte {
	return p.content.Content
}

// SetRotate sets the number of degrees by which the page is rotated
// clockwise when displayed.  The value must be a multiple of 90.
func (p *Page) SetRotate(degrees int) error {
	if degrees%90 != 0 {
		return pdfgen.Errorf(pdfgen.InvalidParameter, "SetRotate",
			fmt.Errorf("rotation %d is not a multiple of 90", degrees))
	}
	degrees %= 360
	if degrees < 0 {
		degrees += 360
	}
	if degrees == 0 {
		delete(p.dict, "Rotate")
	} else {
		p.dict["Rotate"] = pdfgen.Integer(degrees)
	}
	return nil
}

// AddFont makes a font available on the page and returns the resource
// name of the font.  The font is embedded into the document when it is
// first used.
func (p *Page) AddFont(F font.Font) (pdfgen.Name, error) {
	if name, ok := p.fontRefs[F]; ok {
		return name, nil
	}
	ref, err := p.doc.EmbedFont(F)
	if err != nil {
		return "", err
	}
	name := pdfgen.Name(fmt.Sprintf("F%d", len(p.fontRefs)+1))
	p.fontRefs[F] = name
	p.fonts[name] = ref
	return name, nil
}

// TextAt shows a single line of text, with the start of the baseline at
// (x, y).
func (p *Page) TextAt(F font.Font, size, x, y float64, text string) error {
	if size <= 0 || math.IsInf(size, 0) || math.IsNaN(size) {
		return pdfgen.Errorf(pdfgen.InvalidParameter, "TextAt",
			fmt.Errorf("invalid font size %g", size))
	}
	name, err := p.AddFont(F)
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	buf.WriteString("BT\n")
	err = name.PDF(buf)
	if err != nil {
		return err
	}
	fmt.Fprintf(buf, " %s Tf\n%s %s Td\n",
		float.Format(size, 2), float.Format(x, 2), float.Format(y, 2))
	err = F.EncodeText(text).PDF(buf)
	if err != nil {
		return err
	}
	buf.WriteString(" Tj\nET\n")

	_, err = p.Write(buf.Bytes())
	return err
}

func rectArray(r rect.Rect) pdfgen.Array {
	return pdfgen.Array{
		number(r.LLx), number(r.LLy), number(r.URx), number(r.URy),
	}
}

func number(x float64) pdfgen.Object {
	x = float.Round(x, 3)
	if x == math.Trunc(x) && math.Abs(x) < 1<<31 {
		return pdfgen.Integer(x)
	}
	return pdfgen.Real(x)
}
