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

package memfile

import (
	"bytes"
	"io"
	"testing"
)

func TestAppend(t *testing.T) {
	f := New()
	f.Write([]byte("%PDF-1.7\n"))
	f.Write([]byte("%%EOF\n"))
	if got := string(f.Bytes()); got != "%PDF-1.7\n%%EOF\n" {
		t.Errorf("got %q", got)
	}
	if f.Len() != 15 {
		t.Errorf("wrong length %d", f.Len())
	}

	f.Reset()
	if f.Len() != 0 {
		t.Errorf("length %d after Reset", f.Len())
	}
}

func TestWriteTo(t *testing.T) {
	f := New()
	f.Write([]byte("%PDF-1.7\n"))
	buf := &bytes.Buffer{}
	n, err := f.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 9 || buf.String() != "%PDF-1.7\n" {
		t.Errorf("got %d %q", n, buf.String())
	}
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}

func TestShortWrite(t *testing.T) {
	f := New()
	f.Write([]byte("0123456789"))
	_, err := f.WriteTo(shortWriter{})
	if err != io.ErrShortWrite {
		t.Errorf("expected short write, got %v", err)
	}
}
