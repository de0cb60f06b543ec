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
)

func TestParseVersion(t *testing.T) {
	for _, v := range []Version{V1_0, V1_1, V1_2, V1_3, V1_4, V1_5, V1_6, V1_7, V2_0} {
		s, err := v.ToString()
		if err != nil {
			t.Errorf("%d: %v", int(v), err)
			continue
		}
		v2, err := ParseVersion(s)
		if err != nil {
			t.Errorf("%s: %v", s, err)
		} else if v2 != v {
			t.Errorf("%s parsed as %d, want %d", s, int(v2), int(v))
		}
		if v.String() != s {
			t.Errorf("String %q != ToString %q", v.String(), s)
		}
	}

	for _, s := range []string{"", "0.9", "1.8", "1.x", "PDF-1.4"} {
		_, err := ParseVersion(s)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%q: expected InvalidParameter, got %v", s, err)
		}
	}
}

func TestVersionToStringInvalid(t *testing.T) {
	_, err := Version(0).ToString()
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected InvalidParameter, got %v", err)
	}
}

func TestVersionMax(t *testing.T) {
	if V1_4.Max(V1_2) != V1_4 {
		t.Error("Max lowered the version")
	}
	if V1_2.Max(V1_6) != V1_6 {
		t.Error("Max did not raise the version")
	}
}

func TestCheckVersion(t *testing.T) {
	err := CheckVersion(V1_3, "AES encryption", V1_6)
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected InvalidParameter, got %v", err)
	}
	var verErr *VersionError
	if !errors.As(err, &verErr) || verErr.Earliest != V1_6 {
		t.Errorf("expected VersionError for 1.6, got %v", err)
	}
	if err := CheckVersion(V1_7, "AES encryption", V1_6); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}
