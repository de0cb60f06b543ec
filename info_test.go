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
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestInfoAsDict(t *testing.T) {
	date := time.Date(2023, 7, 1, 10, 30, 0, 0, time.UTC)
	info := &Info{
		Title:        "Title",
		Author:       "Jörg",
		CreationDate: date,
		Trapped:      TrappedFalse,
		Custom:       map[string]string{"Project": "x"},
	}
	dict, err := info.AsDict(V1_7)
	if err != nil {
		t.Fatal(err)
	}
	want := Dict{
		"Title":        TextString("Title"),
		"Author":       TextString("Jörg"),
		"CreationDate": Date(date),
		"Trapped":      Name("False"),
		"Project":      TextString("x"),
	}
	if d := cmp.Diff(want, dict); d != "" {
		t.Error(d)
	}

	_, err = info.AsDict(V1_2)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Trapped in PDF 1.2: got %v", err)
	}
}

func TestInfoEmpty(t *testing.T) {
	for _, info := range []*Info{nil, {}} {
		dict, err := info.AsDict(V1_7)
		if err != nil || dict != nil {
			t.Errorf("got %v, %v", dict, err)
		}
	}
}
