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
	"compress/zlib"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// FilterType selects the filter applied to the data of a stream.
type FilterType int

// These are the supported filter types.
const (
	// FilterNone writes the stream data unchanged.
	FilterNone FilterType = iota

	// FilterFlate compresses the stream data using zlib/deflate.
	FilterFlate

	// FilterDCT marks data which is already JPEG compressed.  The data is
	// written unchanged and the stream is labelled /DCTDecode.
	FilterDCT

	// FilterLZW is recognized but not implemented.
	FilterLZW
)

func (f FilterType) String() string {
	switch f {
	case FilterNone:
		return "none"
	case FilterFlate:
		return "FlateDecode"
	case FilterDCT:
		return "DCTDecode"
	case FilterLZW:
		return "LZWDecode"
	default:
		return "pdfgen.FilterType(" + strconv.Itoa(int(f)) + ")"
	}
}

// Encode applies the filter f to content.  It returns the encoded data
// together with the name to use for the /Filter entry of the stream
// dictionary.  For FilterNone, the name is empty.
//
// The input slice is never modified.
func Encode(content []byte, f FilterType) ([]byte, Name, error) {
	switch f {
	case FilterNone:
		return content, "", nil
	case FilterFlate:
		buf := &bytes.Buffer{}
		zw, err := zlib.NewWriterLevel(buf, zlib.BestCompression)
		if err != nil {
			return nil, "", err
		}
		_, err = zw.Write(content)
		if err != nil {
			return nil, "", err
		}
		err = zw.Close()
		if err != nil {
			return nil, "", err
		}
		return buf.Bytes(), "FlateDecode", nil
	case FilterDCT:
		return content, "DCTDecode", nil
	default:
		return nil, "", Errorf(UnsupportedFunction, "Encode", fmt.Errorf("filter %s", f))
	}
}

// Decode reverses [Encode] for the filter with the given name.
// Only /FlateDecode is decoded, /DCTDecode data is returned unchanged.
func Decode(data []byte, name Name) ([]byte, error) {
	switch name {
	case "":
		return data, nil
	case "FlateDecode":
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		return io.ReadAll(zr)
	case "DCTDecode":
		return data, nil
	default:
		return nil, Errorf(UnsupportedFunction, "Decode", errors.New("filter /"+string(name)))
	}
}

// CompressionMode is a set of flags which specify which categories of
// streams are compressed.
type CompressionMode int

// These are the available compression flags.
const (
	CompressNone CompressionMode = 0

	// CompressText compresses page content streams.
	CompressText CompressionMode = 1 << (iota - 1)

	// CompressImage compresses image data which is not already compressed.
	CompressImage

	// CompressMetadata compresses font programs, CMaps and similar
	// auxiliary data.  XMP metadata of PDF/A documents is never compressed.
	CompressMetadata

	compressNext

	// CompressAll enables all compression flags.
	CompressAll = compressNext - 1
)

// IsValid reports whether mode consists of known flags only.
func (mode CompressionMode) IsValid() bool {
	return mode&^CompressAll == 0
}

// StreamCategory classifies streams for the purpose of compression.
type StreamCategory int

// These are the stream categories.
const (
	CategoryText StreamCategory = iota
	CategoryImage
	CategoryMetadata
)

// Filter returns the filter to use for a new stream of the given category.
func (mode CompressionMode) Filter(cat StreamCategory) FilterType {
	var flag CompressionMode
	switch cat {
	case CategoryText:
		flag = CompressText
	case CategoryImage:
		flag = CompressImage
	case CategoryMetadata:
		flag = CompressMetadata
	}
	if mode&flag != 0 {
		return FilterFlate
	}
	return FilterNone
}
