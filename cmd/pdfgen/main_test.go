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

package main

import (
	"testing"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/pdfa"
)

func TestParseCompression(t *testing.T) {
	cases := []struct {
		in   string
		want pdfgen.CompressionMode
	}{
		{"none", pdfgen.CompressNone},
		{"text", pdfgen.CompressText},
		{"text,image", pdfgen.CompressText | pdfgen.CompressImage},
		{"Metadata", pdfgen.CompressMetadata},
		{"all", pdfgen.CompressAll},
	}
	for _, c := range cases {
		got, err := parseCompression(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
		} else if got != c.want {
			t.Errorf("%q: got %d, want %d", c.in, got, c.want)
		}
	}
	if _, err := parseCompression("zip"); err == nil {
		t.Error("unknown flag accepted")
	}
}

func TestParseEncryptMode(t *testing.T) {
	m, err := parseEncryptMode("R4")
	if err != nil || m != pdfgen.EncryptR4 {
		t.Errorf("got %v, %v", m, err)
	}
	if _, err := parseEncryptMode("r5"); err == nil {
		t.Error("r5 accepted")
	}
}

func TestParseConformance(t *testing.T) {
	c, err := parseConformance("2b")
	if err != nil || c != pdfa.PDFA2B {
		t.Errorf("got %v, %v", c, err)
	}
	if _, err := parseConformance("4"); err == nil {
		t.Error("invalid level accepted")
	}
}
