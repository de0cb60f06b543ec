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

package float

import "testing"

func TestFormat(t *testing.T) {
	cases := []struct {
		x      float64
		digits int
		out    string
	}{
		{0, 2, "0"},
		{1, 2, "1"},
		{0.5, 2, ".5"},
		{-0.5, 2, "-.5"},
		{-0.001, 2, "0"},
		{12.3456, 2, "12.35"},
		{100, 0, "100"},
		{595.276, 3, "595.276"},
	}
	for _, test := range cases {
		if got := Format(test.x, test.digits); got != test.out {
			t.Errorf("Format(%g, %d) = %q, expected %q", test.x, test.digits, got, test.out)
		}
	}
}

func TestRound(t *testing.T) {
	if got := Round(1.23456, 2); got != 1.23 {
		t.Errorf("got %g", got)
	}
	if got := Round(-0.5, 0); got != -1 {
		t.Errorf("got %g", got)
	}
}
