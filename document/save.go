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

package document

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/pdfa"
)

// Save serializes the document and returns the PDF file contents.
//
// Save can be called repeatedly.  Each call reflects the current state of
// the document.
func (d *Document) Save() ([]byte, error) {
	buf := &bytes.Buffer{}
	err := d.SaveTo(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SaveTo writes the document to w.  If an error occurs, nothing is
// written to w.
func (d *Document) SaveTo(w io.Writer) error {
	err := d.finish()
	if err != nil {
		return err
	}

	metadataRef, _ := d.catalog["Metadata"].(pdfgen.Reference)
	opt := &pdfgen.WriterOptions{
		Version:     d.version,
		Root:        d.catalogRef,
		Info:        d.infoRef,
		ID:          [][]byte{d.ID(), d.ID()},
		Encryption:  d.enc,
		EncryptRef:  d.encRef,
		MetadataRef: metadataRef,
		Logger:      d.logger,
	}
	return pdfgen.Write(w, d.xref, opt)
}

// SaveToFile writes the document to the named file.
//
// The file is first written to a temporary file in the same directory,
// which is renamed after all data has been written successfully.  An
// existing file is replaced.  If the directory does not exist, an error
// with code [pdfgen.FileNotFound] is returned.
func (d *Document) SaveToFile(path string) (err error) {
	const op = "SaveToFile"

	data, err := d.Save()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+"-*")
	if errors.Is(err, fs.ErrNotExist) {
		return pdfgen.Errorf(pdfgen.FileNotFound, op, err)
	} else if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	_, err = tmp.Write(data)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Chmod(0o644)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// finish brings all objects which depend on the final state of the
// document up to date.
func (d *Document) finish() error {
	for _, F := range d.fontOrder {
		if f, ok := F.(font.Finisher); ok {
			err := f.Finish()
			if err != nil {
				return err
			}
		}
	}

	if d.infoRef != 0 {
		dict, err := d.info.AsDict(d.version)
		if err != nil {
			return err
		}
		clear(d.infoObj)
		for key, val := range dict {
			d.infoObj[key] = val
		}
	}

	if d.conformance != nil {
		packet, err := pdfa.Metadata(*d.conformance, d.info, d.now())
		if err != nil {
			return err
		}
		buf := &bytes.Buffer{}
		err = packet.Write(buf, nil)
		if err != nil {
			return err
		}
		d.metadata.Content = buf.Bytes()
	}

	return nil
}
