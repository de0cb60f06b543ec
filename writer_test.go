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
	"regexp"
	"strconv"
	"testing"
)

// newTestXref returns a minimal document with an empty page tree.
func newTestXref(t *testing.T) (*Xref, Reference) {
	t.Helper()
	xref := NewXref()
	pages, err := xref.Add(Dict{
		"Type":  Name("Pages"),
		"Kids":  Array{},
		"Count": Integer(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	catalog, err := xref.Add(Dict{
		"Type":  Name("Catalog"),
		"Pages": pages,
	})
	if err != nil {
		t.Fatal(err)
	}
	return xref, catalog
}

func TestWriteEmpty(t *testing.T) {
	xref, catalog := newTestXref(t)
	data, err := Serialize(xref, &WriterOptions{Version: V1_2, Root: catalog})
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.HasPrefix(data, []byte("%PDF-1.2\n")) {
		t.Errorf("wrong header %q", data[:10])
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Error("missing end-of-file marker")
	}
	if n := bytes.Count(data, []byte("trailer")); n != 1 {
		t.Errorf("found %d trailers", n)
	}
	if !bytes.Contains(data, []byte("/Size 3")) {
		t.Error("wrong /Size")
	}
}

var startxrefRegexp = regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`)

func TestOffsets(t *testing.T) {
	xref, catalog := newTestXref(t)
	_, err := xref.Add(&Stream{
		Dict:    Dict{"Type": Name("Test")},
		Content: []byte("stream data\n"),
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = xref.Add(String("(a string)"))
	if err != nil {
		t.Fatal(err)
	}

	data, err := Serialize(xref, &WriterOptions{Root: catalog})
	if err != nil {
		t.Fatal(err)
	}

	for _, e := range xref.AllEntries() {
		offset, ok := xref.Offset(e.Ref)
		if !ok {
			t.Fatalf("%s: no offset recorded", e.Ref)
		}
		prefix := fmt.Sprintf("%d 0 obj\n", e.Ref.Number())
		if !bytes.HasPrefix(data[offset:], []byte(prefix)) {
			t.Errorf("%s: offset %d points to %q", e.Ref, offset, data[offset:offset+10])
		}
	}

	m := startxrefRegexp.FindSubmatch(data)
	if m == nil {
		t.Fatal("startxref not found")
	}
	xrefPos, _ := strconv.Atoi(string(m[1]))
	table := data[xrefPos:]
	header := fmt.Sprintf("xref\n0 %d\n", xref.Size())
	if !bytes.HasPrefix(table, []byte(header)) {
		t.Fatalf("wrong xref header %q", table[:20])
	}
	table = table[len(header):]
	if string(table[:20]) != "0000000000 65535 f\r\n" {
		t.Errorf("wrong free list head %q", table[:20])
	}
	for i, e := range xref.AllEntries() {
		line := string(table[20*(i+1) : 20*(i+2)])
		offset, _ := xref.Offset(e.Ref)
		expected := fmt.Sprintf("%010d 00000 n\r\n", offset)
		if line != expected {
			t.Errorf("%s: xref line %q, expected %q", e.Ref, line, expected)
		}
	}
}

func TestSizeInvariant(t *testing.T) {
	xref, catalog := newTestXref(t)
	for i := 0; i < 10; i++ {
		_, err := xref.Add(Integer(i))
		if err != nil {
			t.Fatal(err)
		}
	}
	data, err := Serialize(xref, &WriterOptions{Root: catalog})
	if err != nil {
		t.Fatal(err)
	}
	if xref.Size() != 13 {
		t.Errorf("wrong size %d", xref.Size())
	}
	if !bytes.Contains(data, []byte("\n/Size 13\n")) {
		t.Error("/Size not found in trailer")
	}
	if !bytes.Contains(data, []byte("xref\n0 13\n")) {
		t.Error("wrong xref subsection header")
	}
}

func TestWriteCompressed(t *testing.T) {
	xref, catalog := newTestXref(t)
	content := bytes.Repeat([]byte("BT /F1 12 Tf (Hello) Tj ET\n"), 20)
	ref, err := xref.Add(&Stream{
		Dict:    Dict{},
		Content: content,
		Filter:  FilterFlate,
	})
	if err != nil {
		t.Fatal(err)
	}
	data, err := Serialize(xref, &WriterOptions{Root: catalog})
	if err != nil {
		t.Fatal(err)
	}

	stmData, dict := extractStream(t, data, xref, ref)
	if !bytes.Contains(dict, []byte("/Filter /FlateDecode")) {
		t.Errorf("missing filter in %q", dict)
	}
	if !bytes.Contains(dict, []byte(fmt.Sprintf("/Length %d", len(stmData)))) {
		t.Errorf("wrong length in %q", dict)
	}
	decoded, err := Decode(stmData, "FlateDecode")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded, content) {
		t.Error("stream data corrupted")
	}
}

// extractStream returns the raw stream data and the stream dictionary of
// the indirect object ref.
func extractStream(t *testing.T, data []byte, xref *Xref, ref Reference) ([]byte, []byte) {
	t.Helper()
	offset, ok := xref.Offset(ref)
	if !ok {
		t.Fatalf("%s not written", ref)
	}
	obj := data[offset:]
	start := bytes.Index(obj, []byte("\nstream\n"))
	end := bytes.Index(obj, []byte("\nendstream"))
	if start < 0 || end < start {
		t.Fatalf("%s: no stream found", ref)
	}
	return obj[start+8 : end], obj[:start]
}

func TestWriteEncrypted(t *testing.T) {
	for _, mode := range []EncryptMode{EncryptR2, EncryptR3, EncryptR4, EncryptR6} {
		t.Run(mode.String(), func(t *testing.T) {
			xref, catalog := newTestXref(t)
			id := bytes.Repeat([]byte{0x80, 0x01}, 8)
			enc, err := NewEncryption(id, "user", "owner", PermPrint, mode, nil)
			if err != nil {
				t.Fatal(err)
			}
			encRef, err := xref.Add(enc.Dict())
			if err != nil {
				t.Fatal(err)
			}
			secret := []byte("secret page content")
			stmRef, err := xref.Add(&Stream{Dict: Dict{}, Content: secret})
			if err != nil {
				t.Fatal(err)
			}
			infoRef, err := xref.Add(Dict{"Title": TextString("secret title")})
			if err != nil {
				t.Fatal(err)
			}

			data, err := Serialize(xref, &WriterOptions{
				Version:    mode.MinVersion(),
				Root:       catalog,
				Info:       infoRef,
				Encryption: enc,
				EncryptRef: encRef,
			})
			if err != nil {
				t.Fatal(err)
			}

			if bytes.Contains(data, secret) || bytes.Contains(data, []byte("secret title")) {
				t.Error("plain text found in encrypted file")
			}
			if !bytes.Contains(data, []byte("/Filter /Standard")) {
				t.Error("encryption dictionary not found")
			}
			if !bytes.Contains(data, []byte("/Encrypt "+strconv.Itoa(int(encRef.Number()))+" 0 R")) {
				t.Error("missing /Encrypt in trailer")
			}
			idHex := []byte(fmt.Sprintf("<%x>", id))
			if bytes.Count(data, idHex) != 2 {
				t.Error("document ID not found in trailer")
			}

			stmData, _ := extractStream(t, data, xref, stmRef)
			plain, err := enc.DecryptBytes(stmRef, stmData)
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(plain, secret) {
				t.Errorf("decrypted %q", plain)
			}
		})
	}
}

func TestEncryptedScenarios(t *testing.T) {
	xref, catalog := newTestXref(t)
	enc, err := NewEncryption(NewID(), "user", "owner", PermPrint, EncryptR2, nil)
	if err != nil {
		t.Fatal(err)
	}
	encRef, err := xref.Add(enc.Dict())
	if err != nil {
		t.Fatal(err)
	}
	data, err := Serialize(xref, &WriterOptions{
		Version:    V1_2,
		Root:       catalog,
		Encryption: enc,
		EncryptRef: encRef,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{"/V 1", "/R 2"} {
		if !bytes.Contains(data, []byte(s)) {
			t.Errorf("%q not found", s)
		}
	}
}

func TestUnencryptedDocumentMetadata(t *testing.T) {
	xref, catalog := newTestXref(t)
	opt := &EncryptionOptions{UnencryptedMetadata: true}
	enc, err := NewEncryption(NewID(), "", "owner", PermAll, EncryptR4, opt)
	if err != nil {
		t.Fatal(err)
	}
	encRef, err := xref.Add(enc.Dict())
	if err != nil {
		t.Fatal(err)
	}

	docXMP := []byte("<x:xmpmeta>document</x:xmpmeta>")
	docMeta, err := xref.Add(&Stream{
		Dict:    Dict{"Type": Name("Metadata"), "Subtype": Name("XML")},
		Content: docXMP,
	})
	if err != nil {
		t.Fatal(err)
	}
	otherXMP := []byte("<x:xmpmeta>component</x:xmpmeta>")
	otherMeta, err := xref.Add(&Stream{
		Dict:    Dict{"Type": Name("Metadata"), "Subtype": Name("XML")},
		Content: otherXMP,
	})
	if err != nil {
		t.Fatal(err)
	}

	data, err := Serialize(xref, &WriterOptions{
		Version:     V1_6,
		Root:        catalog,
		Encryption:  enc,
		EncryptRef:  encRef,
		MetadataRef: docMeta,
	})
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Contains(data, docXMP) {
		t.Error("document metadata was encrypted")
	}
	if bytes.Contains(data, otherXMP) {
		t.Error("component metadata was not encrypted")
	}
	stmData, _ := extractStream(t, data, xref, otherMeta)
	plain, err := enc.DecryptBytes(otherMeta, stmData)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(plain, otherXMP) {
		t.Errorf("decrypted %q", plain)
	}
}

func TestWriteVersionCheck(t *testing.T) {
	xref, catalog := newTestXref(t)
	enc, err := NewEncryption(NewID(), "", "", PermAll, EncryptR4, nil)
	if err != nil {
		t.Fatal(err)
	}
	encRef, err := xref.Add(enc.Dict())
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	err = Write(buf, xref, &WriterOptions{
		Version:    V1_4,
		Root:       catalog,
		Encryption: enc,
		EncryptRef: encRef,
	})
	var verErr *VersionError
	if !errors.As(err, &verErr) {
		t.Fatalf("expected VersionError, got %v", err)
	}
	if verErr.Earliest != V1_6 {
		t.Errorf("wrong version %s", verErr.Earliest)
	}
	if buf.Len() > 0 {
		t.Error("partial output written")
	}
}

func TestWriteErrors(t *testing.T) {
	xref, catalog := newTestXref(t)
	_, err := xref.Add(Dict{"Link": NewReference(99, 0)})
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	err = Write(buf, xref, &WriterOptions{Root: catalog})
	if !errors.Is(err, errUnknownReference) {
		t.Errorf("dangling reference: %v", err)
	}
	if buf.Len() > 0 {
		t.Error("partial output written")
	}

	xref, catalog = newTestXref(t)
	xref.Alloc()
	_, err = Serialize(xref, &WriterOptions{Root: catalog})
	if !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("unset object: %v", err)
	}

	xref, _ = newTestXref(t)
	_, err = Serialize(xref, &WriterOptions{})
	if !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("missing root: %v", err)
	}

	xref, catalog = newTestXref(t)
	_, err = xref.Add(Array{&Stream{}})
	if err != nil {
		t.Fatal(err)
	}
	_, err = Serialize(xref, &WriterOptions{Root: catalog})
	if !errors.Is(err, errStreamNotIndirect) {
		t.Errorf("direct stream: %v", err)
	}
}

func TestSerializeRepeated(t *testing.T) {
	xref, catalog := newTestXref(t)
	opt := &WriterOptions{Root: catalog, ID: [][]byte{testID, testID}}
	a, err := Serialize(xref, opt)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Serialize(xref, opt)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("output is not deterministic")
	}
}
