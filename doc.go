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

// Package pdfgen implements the core of a PDF generator.
//
// A document is built in memory as a graph of PDF objects.  Indirect objects
// are registered with an [Xref], which assigns object numbers in the order
// the objects are added.  [Write] then serializes the object graph, using a
// classic cross-reference table and trailer:
//
//	xref := pdfgen.NewXref()
//	pages := xref.Alloc()
//	...
//	catalog, err := xref.Add(pdfgen.Dict{
//	    "Type":  pdfgen.Name("Catalog"),
//	    "Pages": pages,
//	})
//	...
//	err = pdfgen.Write(w, xref, &pdfgen.WriterOptions{
//	    Version: pdfgen.V1_4,
//	    Root:    catalog,
//	})
//
// During serialization, stream data is first compressed, then encrypted
// (see [NewEncryption]), and only afterwards is the /Length entry of the
// stream dictionary determined.
//
// The following types implement the native PDF object types.
// All of these implement the [Object] interface:
//
//	Array
//	Bool
//	Dict
//	Integer
//	Name
//	Real
//	Reference
//	*Stream
//	String
//
// The Go value nil represents the PDF null object.
//
// The subpackage document provides a higher-level interface for creating
// complete PDF documents.
package pdfgen
