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
	"fmt"
	"io"
	"log/slog"

	"seehuhn.de/go/pdfgen/internal/memfile"
)

// WriterOptions control how a document is serialized by [Write].
type WriterOptions struct {
	// Version is the PDF version given in the file header.
	// If this is zero, PDF 1.7 is used.
	Version Version

	// Root is the reference to the document catalog.  This is required.
	Root Reference

	// Info, if non-zero, is the reference to the document information
	// dictionary.
	Info Reference

	// ID is the file identifier.  If set, this must contain two byte
	// strings.  For encrypted files, the first element must coincide with
	// the ID used to set up the encryption.  If ID is nil for an encrypted
	// file, the encryption ID is used for both elements.
	ID [][]byte

	// Encryption, if non-nil, causes all strings and streams to be
	// encrypted.
	Encryption *Encryption

	// EncryptRef is the reference to the encryption dictionary.  This is
	// required if Encryption is set.  The encryption dictionary itself
	// is never encrypted.
	EncryptRef Reference

	// MetadataRef, if non-zero, is the reference to the document-level
	// metadata stream, i.e. the /Metadata entry of the catalog.  If the
	// encryption leaves metadata unencrypted, this stream is written in
	// plain text.  All other streams are encrypted.
	MetadataRef Reference

	// Logger, if non-nil, receives debug messages.
	Logger *slog.Logger
}

// Serialize returns the PDF file representation of the objects in xref.
// See [Write] for details.
func Serialize(xref *Xref, opt *WriterOptions) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := Write(buf, xref, opt)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes a complete PDF file, containing all objects registered with
// xref, to w.
//
// Objects are written in the order of their object numbers, followed by
// the cross-reference table and the trailer.  The file is assembled in
// memory first, so nothing is written to w if an error occurs.  On success,
// the offsets of all objects are recorded in xref.
func Write(w io.Writer, xref *Xref, opt *WriterOptions) error {
	const op = "Write"
	if opt == nil {
		return Errorf(InvalidParameter, op, errors.New("missing writer options"))
	}
	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	version := opt.Version
	if version == 0 {
		version = V1_7
	}
	versionString, err := version.ToString()
	if err != nil {
		return Errorf(InvalidParameter, op, fmt.Errorf("invalid PDF version %d", int(version)))
	}

	if !xref.isSet(opt.Root) {
		return Errorf(InvalidParameter, op, errors.New("missing document catalog"))
	}
	if opt.Info != 0 && !xref.isSet(opt.Info) {
		return Errorf(InvalidParameter, op, fmt.Errorf("Info %s: %w", opt.Info, errUnknownReference))
	}

	id := opt.ID
	enc := opt.Encryption
	if enc != nil {
		err := CheckVersion(version, enc.Mode.String()+" encryption", enc.MinVersion())
		if err != nil {
			return err
		}
		if !xref.isSet(opt.EncryptRef) {
			return Errorf(InvalidParameter, op, errors.New("missing encryption dictionary"))
		}
		if id == nil {
			id = [][]byte{enc.ID, enc.ID}
		} else if len(id) > 0 && !bytes.Equal(id[0], enc.ID) {
			return Errorf(InvalidParameter, op, errors.New("file ID does not match encryption"))
		}
	}
	if id != nil && len(id) != 2 {
		return Errorf(InvalidParameter, op, fmt.Errorf("file ID must have 2 elements, not %d", len(id)))
	}

	out := memfile.New()
	pw := &posWriter{w: out, xref: xref}

	_, err = fmt.Fprintf(pw, "%%PDF-%s\n%%\x80\x80\x80\x80\n", versionString)
	if err != nil {
		return err
	}

	entries := xref.AllEntries()
	offsets := make([]int64, len(entries))
	for i, e := range entries {
		if !e.set {
			return Errorf(InvalidOperation, op,
				fmt.Errorf("%s: %w", e.Ref, errUnsetObject))
		}

		pw.crypt = nil
		if enc != nil && e.Ref != opt.EncryptRef &&
			(enc.EncryptMetadata() || e.Ref != opt.MetadataRef) {
			pw.crypt = enc.forObject(e.Ref)
		}

		offsets[i] = pw.pos
		_, err = fmt.Fprintf(pw, "%d %d obj\n", e.Ref.Number(), e.Ref.Generation())
		if err != nil {
			return err
		}
		err = e.Obj.PDF(pw)
		if err != nil {
			return fmt.Errorf("object %s: %w", e.Ref, err)
		}
		_, err = pw.Write([]byte("\nendobj\n"))
		if err != nil {
			return err
		}
	}
	pw.crypt = nil

	xRefPos := pw.pos
	_, err = fmt.Fprintf(pw, "xref\n0 %d\n", xref.Size())
	if err != nil {
		return err
	}
	_, err = pw.Write([]byte("0000000000 65535 f\r\n"))
	if err != nil {
		return err
	}
	for i, e := range entries {
		_, err = fmt.Fprintf(pw, "%010d %05d n\r\n", offsets[i], e.Ref.Generation())
		if err != nil {
			return err
		}
	}

	trailer := Dict{
		"Size": Integer(xref.Size()),
		"Root": opt.Root,
	}
	if opt.Info != 0 {
		trailer["Info"] = opt.Info
	}
	if enc != nil {
		trailer["Encrypt"] = opt.EncryptRef
	}
	if id != nil {
		trailer["ID"] = Array{String(id[0]), String(id[1])}
	}
	_, err = pw.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	err = trailer.PDF(pw)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(pw, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return err
	}

	_, err = out.WriteTo(w)
	if err != nil {
		return err
	}

	for i, e := range entries {
		e.Type = EntryInUse
		e.Offset = offsets[i]
	}

	logger.Debug("PDF file written",
		"version", versionString,
		"objects", len(entries),
		"bytes", out.Len(),
		"encrypted", enc != nil)

	return nil
}

// posWriter keeps track of the current file offset.  While an indirect
// object is being written, crypt holds the encryption context for this
// object, or nil if the object is not encrypted.
type posWriter struct {
	w    io.Writer
	pos  int64
	xref *Xref

	crypt *objectCrypt
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
