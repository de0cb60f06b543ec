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

import "time"

// Trapped describes whether a document has been modified to include
// trapping information.
type Trapped int

// These are the possible values of Trapped.
const (
	TrappedUnknown Trapped = iota
	TrappedTrue
	TrappedFalse
)

// Info represents a PDF Document Information Dictionary.
//
// All fields in this structure are optional.  The zero value represents
// an empty information dictionary.
//
// The Document Information Dictionary is documented in section
// 14.3.3 of ISO 32000-2:2020.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string

	// Creator gives the name of the application that created the original
	// document, if the document was converted to PDF from another format.
	Creator string

	// Producer gives the name of the application that converted the document
	// to PDF.
	Producer string

	// CreationDate gives the date and time the document was created.
	CreationDate time.Time

	// ModDate gives the date and time the document was most recently modified.
	ModDate time.Time

	// Trapped indicates whether the document has been modified to include
	// trapping information.
	Trapped Trapped

	// Custom contains non-standard fields.
	Custom map[string]string
}

// AsDict converts the Info structure into a PDF dictionary.
// If all fields are empty, the function returns nil.
func (info *Info) AsDict(v Version) (Dict, error) {
	if info == nil {
		return nil, nil
	}

	dict := Dict{}
	for key, val := range info.Custom {
		dict[Name(key)] = TextString(val)
	}
	text := []struct {
		key Name
		val string
	}{
		{"Title", info.Title},
		{"Author", info.Author},
		{"Subject", info.Subject},
		{"Keywords", info.Keywords},
		{"Creator", info.Creator},
		{"Producer", info.Producer},
	}
	for _, t := range text {
		if t.val != "" {
			dict[t.key] = TextString(t.val)
		}
	}
	if !info.CreationDate.IsZero() {
		dict["CreationDate"] = Date(info.CreationDate)
	}
	if !info.ModDate.IsZero() {
		dict["ModDate"] = Date(info.ModDate)
	}
	if info.Trapped != TrappedUnknown {
		if err := CheckVersion(v, "Info Trapped entry", V1_3); err != nil {
			return nil, err
		}
		if info.Trapped == TrappedTrue {
			dict["Trapped"] = Name("True")
		} else {
			dict["Trapped"] = Name("False")
		}
	}

	if len(dict) == 0 {
		return nil, nil
	}
	return dict, nil
}
