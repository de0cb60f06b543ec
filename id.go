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
	"crypto/md5"
	"crypto/rand"
	"encoding/binary"
	"io"
	"time"
)

// NewID returns a new 16 byte file identifier.  The identifier is the MD5
// hash of the current time, some random bytes and the given seed values.
func NewID(seed ...[]byte) []byte {
	h := md5.New()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	h.Write(buf[:])

	var noise [16]byte
	_, _ = io.ReadFull(rand.Reader, noise[:])
	h.Write(noise[:])

	for _, s := range seed {
		h.Write(s)
	}
	return h.Sum(nil)
}
