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

package pdfgen

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// TextString creates a String object using the "text string" encoding,
// i.e. using either PDFDocEncoding or UTF-16BE encoding (with a BOM).
func TextString(s string) String {
	if buf, ok := PDFDocEncode(s); ok {
		return String(buf)
	}

	enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
	buf, err := enc.Bytes([]byte(s))
	if err != nil {
		// only happens for invalid UTF-8, which we replace
		buf, _ = enc.Bytes([]byte(string([]rune(s))))
	}
	return String(buf)
}

// PDFDocEncode encodes s using PDFDocEncoding.  The second return value
// is false if s contains characters which cannot be represented.
func PDFDocEncode(s string) ([]byte, bool) {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		c, ok := pdfDocEncodeRune(r)
		if !ok {
			return nil, false
		}
		buf = append(buf, c)
	}
	return buf, true
}

func pdfDocEncodeRune(r rune) (byte, bool) {
	switch {
	case r == '\t' || r == '\n' || r == '\r':
		return byte(r), true
	case r >= 0x20 && r <= 0x7e:
		return byte(r), true
	case r >= 0xa1 && r <= 0xff && r != 0xad:
		return charmap.ISO8859_1.EncodeRune(r)
	}
	c, ok := pdfDocSpecial[r]
	return c, ok
}

// pdfDocSpecial lists the PDFDocEncoding code points which differ from
// ISO 8859-1.
var pdfDocSpecial = map[rune]byte{
	'˘': 0x18, 'ˇ': 0x19, 'ˆ': 0x1a, '˙': 0x1b,
	'˝': 0x1c, '˛': 0x1d, '˚': 0x1e, '˜': 0x1f,
	'•': 0x80, '†': 0x81, '‡': 0x82, '…': 0x83,
	'—': 0x84, '–': 0x85, 'ƒ': 0x86, '⁄': 0x87,
	'‹': 0x88, '›': 0x89, '−': 0x8a, '‰': 0x8b,
	'„': 0x8c, '“': 0x8d, '”': 0x8e, '‘': 0x8f,
	'’': 0x90, '‚': 0x91, '™': 0x92, 'ﬁ': 0x93,
	'ﬂ': 0x94, 'Ł': 0x95, 'Œ': 0x96, 'Š': 0x97,
	'Ÿ': 0x98, 'Ž': 0x99, 'ı': 0x9a, 'ł': 0x9b,
	'œ': 0x9c, 'š': 0x9d, 'ž': 0x9e, '€': 0xa0,
}
