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

// Package memfile provides an in-memory output file.
//
// A complete PDF file is assembled in a MemFile before any of it is handed
// to the final destination, so that a failed write leaves no partial
// output behind.
package memfile

import "io"

// MemFile is an append-only in-memory file.
//
// This type implements the [io.Writer] and [io.WriterTo] interfaces.
type MemFile struct {
	// Data are the file contents.
	Data []byte
}

// New creates a new, empty MemFile.
func New() *MemFile {
	return &MemFile{}
}

// Write appends p to the file.  It never fails.
func (f *MemFile) Write(p []byte) (int, error) {
	f.Data = append(f.Data, p...)
	return len(p), nil
}

// Len returns the current size of the file.
func (f *MemFile) Len() int64 {
	return int64(len(f.Data))
}

// Reset discards the file contents, keeping the allocated storage.
func (f *MemFile) Reset() {
	f.Data = f.Data[:0]
}

// WriteTo copies the complete file contents to w.
// This implements the [io.WriterTo] interface.
func (f *MemFile) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Data)
	if err == nil && n < len(f.Data) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Bytes returns the file contents.
func (f *MemFile) Bytes() []byte {
	return f.Data
}
