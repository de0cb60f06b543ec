// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2024  Jochen Voss <voss@seehuhn.de>
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

// Package pdfa provides the metadata required for PDF/A documents.
//
// A PDF/A document embeds an XMP metadata packet which declares the
// conformance level, and an output intent which describes the intended
// output device by an ICC profile.
package pdfa

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/icc"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/pdfgen"
)

// Conformance identifies a part and conformance level of the PDF/A
// standard.
type Conformance struct {
	Part  int
	Level string
}

// These are the supported conformance levels.
var (
	PDFA1B = Conformance{Part: 1, Level: "B"}
	PDFA1A = Conformance{Part: 1, Level: "A"}
	PDFA2B = Conformance{Part: 2, Level: "B"}
	PDFA3B = Conformance{Part: 3, Level: "B"}
)

func (c Conformance) String() string {
	return fmt.Sprintf("PDF/A-%d%s", c.Part, c.Level)
}

// Validate checks whether c is one of the supported conformance levels.
func (c Conformance) Validate() error {
	switch c {
	case PDFA1B, PDFA1A, PDFA2B, PDFA3B:
		return nil
	}
	return pdfgen.Errorf(pdfgen.InvalidParameter, "PDF/A",
		fmt.Errorf("unsupported conformance level %q", c.String()))
}

// MinVersion returns the PDF version PDF/A documents of this part are
// based on.
func (c Conformance) MinVersion() pdfgen.Version {
	if c.Part == 1 {
		return pdfgen.V1_4
	}
	return pdfgen.V1_7
}

// identification is the XMP namespace for PDF/A identification.
type identification struct {
	_           xmp.Namespace `xmp:"http://www.aiim.org/pdfa/ns/id/"`
	_           xmp.Prefix    `xmp:"pdfaid"`
	Part        xmp.Text      `xmp:"part"`
	Conformance xmp.Text      `xmp:"conformance"`
}

// pdfProperties is the XMP namespace for PDF-specific properties.
type pdfProperties struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// Metadata returns the XMP packet for a document with the given
// conformance level and document information.
//
// The document information dictionary and the XMP metadata of a PDF/A
// document must agree.  If info has no modification date, now is used
// for both dates.
func Metadata(c Conformance, info *pdfgen.Info, now time.Time) (*xmp.Packet, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if info == nil {
		info = &pdfgen.Info{}
	}

	id := &identification{
		Part:        xmp.NewText(fmt.Sprint(c.Part)),
		Conformance: xmp.NewText(c.Level),
	}

	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(language.MustParse("x-default"), info.Title)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	if info.Subject != "" {
		dc.Description.Set(language.MustParse("x-default"), info.Subject)
	}

	created := info.CreationDate
	if created.IsZero() {
		created = now
	}
	modified := info.ModDate
	if modified.IsZero() {
		modified = now
	}
	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(created)
	basic.ModifyDate = xmp.NewDate(modified)

	props := &pdfProperties{}
	if info.Keywords != "" {
		props.Keywords = xmp.NewText(info.Keywords)
	}
	if info.Producer != "" {
		props.Producer = xmp.NewAgentName(info.Producer)
	}

	packet := xmp.NewPacket()
	err := packet.Set(id, dc, basic, props)
	if err != nil {
		return nil, err
	}
	return packet, nil
}

// sRGBProfile is an ICC version 2 display profile for the sRGB colour
// space (IEC 61966-2.1), with D50-adapted primaries and the sRGB transfer
// curve sampled at 1024 points.
//
//go:embed srgb.icc
var sRGBProfile []byte

// OutputIntent describes the intended output device of a PDF/A document.
type OutputIntent struct {
	// Profile is the ICC profile of the output device.
	Profile []byte

	// Condition identifies the output condition, e.g. "sRGB".
	Condition string

	numComponents int
}

// NewOutputIntent checks the ICC profile and returns a new output intent.
// If profile is nil, the sRGB profile is used.
func NewOutputIntent(profile []byte, condition string) (*OutputIntent, error) {
	if profile == nil {
		profile = sRGBProfile
		if condition == "" {
			condition = "sRGB"
		}
	}
	if condition == "" {
		return nil, pdfgen.Errorf(pdfgen.InvalidParameter, "OutputIntent",
			errors.New("missing output condition"))
	}

	// icc.Decode may overwrite the profile ID field
	p, err := icc.Decode(bytes.Clone(profile))
	if err != nil {
		return nil, pdfgen.Errorf(pdfgen.InvalidParameter, "OutputIntent", err)
	}
	n := p.ColorSpace.NumComponents()
	if n != 1 && n != 3 && n != 4 {
		return nil, pdfgen.Errorf(pdfgen.InvalidParameter, "OutputIntent",
			fmt.Errorf("invalid number of components %d", n))
	}

	return &OutputIntent{
		Profile:       profile,
		Condition:     condition,
		numComponents: n,
	}, nil
}

// NumComponents returns the number of colour components of the profile.
func (oi *OutputIntent) NumComponents() int {
	return oi.numComponents
}

// Dict returns the output intent dictionary.  The ICC profile stream must
// be stored separately, and profileRef must refer to it.
func (oi *OutputIntent) Dict(profileRef pdfgen.Reference) pdfgen.Dict {
	return pdfgen.Dict{
		"Type":                      pdfgen.Name("OutputIntent"),
		"S":                         pdfgen.Name("GTS_PDFA1"),
		"OutputConditionIdentifier": pdfgen.TextString(oi.Condition),
		"DestOutputProfile":         profileRef,
	}
}

// ProfileDict returns the dictionary of the ICC profile stream.
func (oi *OutputIntent) ProfileDict() pdfgen.Dict {
	return pdfgen.Dict{
		"N": pdfgen.Integer(oi.numComponents),
	}
}
