// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2021  Jochen Voss <voss@seehuhn.de>
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
	"math"
	"testing"
	"time"
)

func format(obj Object) string {
	buf := &bytes.Buffer{}
	err := writeObject(buf, obj)
	if err != nil {
		return "error: " + err.Error()
	}
	return buf.String()
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  Object
		out string
	}{
		{nil, "null"},
		{Bool(true), "true"},
		{Integer(-12), "-12"},
		{Real(1), "1."},
		{Real(0.25), "0.25"},
		{String("a"), "(a)"},
		{String("a (test version)"), "(a (test version))"},
		{String("a (test version"), "(a \\(test version)"},
		{String("back\\slash"), "(back\\\\slash)"},
		{String("a\rb"), "(a\\rb)"},
		{String(""), "()"},
		{String("\000"), "<00>"},
		{String{0xff, 0xfe, 0x80}, "<fffe80>"},
		{Name("Type"), "/Type"},
		{Name("A B"), "/A#20B"},
		{Name("x#y"), "/x#23y"},
		{Name("(paren)"), "/#28paren#29"},
		{Array{Integer(1), nil, Integer(3)}, "[1 null 3]"},
		{Array{}, "[]"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{NewReference(12, 0), "12 0 R"},
	}
	for _, test := range cases {
		out := format(test.in)
		if out != test.out {
			t.Errorf("string wrongly formatted, expected %q but got %q",
				test.out, out)
		}
	}
}

func TestRealNonFinite(t *testing.T) {
	for _, x := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		buf := &bytes.Buffer{}
		err := Real(x).PDF(buf)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%g: got %v", x, err)
		}
		if buf.Len() != 0 {
			t.Errorf("%g: wrote %q", x, buf.String())
		}

		err = writeObject(buf, Array{Integer(1), Real(x)})
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%g in array: got %v", x, err)
		}
	}
}

func TestReference(t *testing.T) {
	ref := NewReference(0xfffffffe, 7)
	if ref.Number() != 0xfffffffe {
		t.Errorf("wrong number %d", ref.Number())
	}
	if ref.Generation() != 7 {
		t.Errorf("wrong generation %d", ref.Generation())
	}
}

func TestDateString(t *testing.T) {
	PST := time.FixedZone("PST", -8*60*60)
	t1 := time.Date(1998, 12, 23, 19, 52, 0, 0, PST)
	if got := string(Date(t1)); got != "D:19981223195200-08'00" {
		t.Errorf("wrong date string %q", got)
	}
}

func TestStreamNotDirect(t *testing.T) {
	stm := &Stream{Dict: Dict{}, Content: []byte("x")}

	for _, obj := range []Object{Array{stm}, Dict{"S": stm}} {
		buf := &bytes.Buffer{}
		err := obj.PDF(buf)
		if !errors.Is(err, errStreamNotIndirect) {
			t.Errorf("%T: expected error, got %v", obj, err)
		}
	}
}

func TestStream(t *testing.T) {
	stm := &Stream{
		Dict:    Dict{"Type": Name("Test")},
		Content: []byte("hello"),
	}
	buf := &bytes.Buffer{}
	err := stm.PDF(buf)
	if err != nil {
		t.Fatal(err)
	}
	expected := "<<\n/Length 5\n/Type /Test\n>>\nstream\nhello\nendstream"
	if buf.String() != expected {
		t.Errorf("wrong stream encoding %q", buf.String())
	}

	// writing must not modify the stream
	if _, hasLength := stm.Dict["Length"]; hasLength {
		t.Error("Length added to the original dictionary")
	}
}

func TestStreamPreEncoded(t *testing.T) {
	data := []byte{0xff, 0xd8, 0xff}
	stm := &Stream{
		Dict:    Dict{"Filter": Name("DCTDecode")},
		Content: data,
		Filter:  FilterFlate, // ignored, since /Filter is present
	}
	buf := &bytes.Buffer{}
	err := stm.PDF(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), append([]byte("stream\n"), data...)) {
		t.Errorf("data was modified: %q", buf.Bytes())
	}
	if !bytes.Contains(buf.Bytes(), []byte("/Length 3")) {
		t.Errorf("wrong length: %q", buf.Bytes())
	}
}

func TestTextString(t *testing.T) {
	cases := []struct {
		in  string
		out String
	}{
		{"hello", String("hello")},
		{"Grüße", String("Gr\xfc\xdfe")},
		{"a•b", String("a\x80b")},
		{"€", String("\xa0")},
		{"日本", String("\xfe\xff\x65\xe5\x67\x2c")},
	}
	for _, test := range cases {
		out := TextString(test.in)
		if !bytes.Equal(out, test.out) {
			t.Errorf("TextString(%q) = %x, expected %x", test.in, out, test.out)
		}
	}
}
