// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2022  Jochen Voss <voss@seehuhn.de>
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
	"bytes"
	"errors"
	"testing"
)

func TestFlate(t *testing.T) {
	in := bytes.Repeat([]byte("0 0 m 100 100 l S\n"), 50)

	enc, name, err := Encode(in, FilterFlate)
	if err != nil {
		t.Fatal(err)
	}
	if name != "FlateDecode" {
		t.Errorf("wrong filter name %q", name)
	}
	if len(enc) >= len(in) {
		t.Errorf("no compression: %d >= %d", len(enc), len(in))
	}

	out, err := Decode(enc, name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(in, out) {
		t.Error("round trip failed")
	}
}

func TestFilterNone(t *testing.T) {
	in := []byte("BT ET")
	out, name, err := Encode(in, FilterNone)
	if err != nil {
		t.Fatal(err)
	}
	if name != "" || !bytes.Equal(in, out) {
		t.Errorf("unexpected result %q %q", name, out)
	}
}

func TestFilterUnsupported(t *testing.T) {
	_, _, err := Encode([]byte("x"), FilterLZW)
	if !errors.Is(err, ErrUnsupportedFunction) {
		t.Errorf("expected UnsupportedFunction, got %v", err)
	}
}

func TestCompressionMode(t *testing.T) {
	cases := []struct {
		mode CompressionMode
		cat  StreamCategory
		out  FilterType
	}{
		{CompressNone, CategoryText, FilterNone},
		{CompressText, CategoryText, FilterFlate},
		{CompressText, CategoryImage, FilterNone},
		{CompressImage, CategoryImage, FilterFlate},
		{CompressMetadata, CategoryMetadata, FilterFlate},
		{CompressText | CompressImage, CategoryMetadata, FilterNone},
		{CompressAll, CategoryMetadata, FilterFlate},
	}
	for _, test := range cases {
		if got := test.mode.Filter(test.cat); got != test.out {
			t.Errorf("%d/%d: got %s, expected %s", test.mode, test.cat, got, test.out)
		}
	}

	if !CompressAll.IsValid() {
		t.Error("CompressAll is invalid")
	}
	if CompressionMode(16).IsValid() {
		t.Error("unknown flag accepted")
	}
}
