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

// Package document assembles complete PDF documents.
//
// A [Document] owns the table of indirect objects, the page tree and the
// document catalog.  Pages, fonts, encryption and PDF/A metadata are added
// through the methods of the Document, and [Document.Save] serializes the
// result.  A Document must not be used concurrently by several goroutines.
package document

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/text/language"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/fontcache"
	"seehuhn.de/go/pdfgen/pdfa"
)

// Options control the construction of a new [Document].
type Options struct {
	// Version is the initial PDF version of the document.
	// If this is zero, PDF 1.2 is used.  Some features raise the version
	// as needed.
	Version pdfgen.Version

	// Compression selects which kinds of streams are compressed.
	Compression pdfgen.CompressionMode

	// FontCache, if non-nil, is used to load font files.  The cache can be
	// shared between documents.
	FontCache *fontcache.Cache

	// Logger, if non-nil, receives debug messages.
	Logger *slog.Logger

	// UnencryptedMetadata leaves the XMP metadata stream unencrypted, when
	// encryption is enabled.  This requires AES encryption.
	UnencryptedMetadata bool

	// Now, if set, is used instead of time.Now to obtain the current time.
	Now func() time.Time
}

// Document is a PDF document under construction.
type Document struct {
	xref        *pdfgen.Xref
	version     pdfgen.Version
	compression pdfgen.CompressionMode
	fontCache   *fontcache.Cache
	logger      *slog.Logger
	now         func() time.Time

	catalog     pdfgen.Dict
	catalogRef  pdfgen.Reference
	pageTree    pdfgen.Dict
	pageTreeRef pdfgen.Reference
	pages       []*Page

	info    *pdfgen.Info
	infoObj pdfgen.Dict
	infoRef pdfgen.Reference

	id []byte

	unencryptedMetadata bool
	enc                 *pdfgen.Encryption
	encRef              pdfgen.Reference

	conformance *pdfa.Conformance
	metadata    *pdfgen.Stream

	fonts     map[font.Font]pdfgen.Reference
	fontOrder []font.Font
}

// New creates a new, empty document.
//
// The document catalog and the root of the page tree are allocated
// immediately, as objects 1 and 2.
func New(opt *Options) (*Document, error) {
	if opt == nil {
		opt = &Options{}
	}

	version := opt.Version
	if version == 0 {
		version = pdfgen.V1_2
	}
	if _, err := version.ToString(); err != nil {
		return nil, pdfgen.Errorf(pdfgen.InvalidParameter, "New", err)
	}
	if !opt.Compression.IsValid() {
		return nil, pdfgen.Errorf(pdfgen.InvalidParameter, "New",
			fmt.Errorf("invalid compression mode %d", opt.Compression))
	}

	logger := opt.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	cache := opt.FontCache
	if cache == nil {
		cache = fontcache.New()
	}
	now := opt.Now
	if now == nil {
		now = time.Now
	}

	d := &Document{
		xref:                pdfgen.NewXref(),
		version:             version,
		compression:         opt.Compression,
		fontCache:           cache,
		logger:              logger,
		now:                 now,
		unencryptedMetadata: opt.UnencryptedMetadata,
		fonts:               make(map[font.Font]pdfgen.Reference),
	}

	d.catalog = pdfgen.Dict{
		"Type": pdfgen.Name("Catalog"),
	}
	catalogRef, err := d.xref.Add(d.catalog)
	if err != nil {
		return nil, err
	}
	d.catalogRef = catalogRef

	d.pageTree = pdfgen.Dict{
		"Type":  pdfgen.Name("Pages"),
		"Kids":  pdfgen.Array{},
		"Count": pdfgen.Integer(0),
	}
	pageTreeRef, err := d.xref.Add(d.pageTree)
	if err != nil {
		return nil, err
	}
	d.pageTreeRef = pageTreeRef
	d.catalog["Pages"] = pageTreeRef

	return d, nil
}

// Out returns the table of indirect objects of the document.
// Objects added to the table are written to the file, in the order
// in which they were allocated.
func (d *Document) Out() *pdfgen.Xref {
	return d.xref
}

// Version returns the current PDF version of the document.
func (d *Document) Version() pdfgen.Version {
	return d.version
}

// RaiseVersion increases the PDF version of the document to at least v.
// The version is never lowered.
func (d *Document) RaiseVersion(v pdfgen.Version) {
	if v > d.version {
		d.logger.Debug("raising PDF version", "from", d.version, "to", v)
		d.version = v
	}
}

// Catalog returns the document catalog.  Entries added to the catalog are
// written to the file.
func (d *Document) Catalog() pdfgen.Dict {
	return d.catalog
}

// SetCompressionMode selects which kinds of streams are compressed.
//
// The mode only applies to streams created after the call.  Streams which
// already exist keep the filter chosen when they were created.
func (d *Document) SetCompressionMode(mode pdfgen.CompressionMode) error {
	if !mode.IsValid() {
		return pdfgen.Errorf(pdfgen.InvalidParameter, "SetCompressionMode",
			fmt.Errorf("invalid compression mode %d", mode))
	}
	d.compression = mode
	return nil
}

// CompressionMode returns the current compression mode.
func (d *Document) CompressionMode() pdfgen.CompressionMode {
	return d.compression
}

// NewStream returns a new stream with the given dictionary.  The filter of
// the stream is chosen according to the current compression mode.
// The stream is not added to the document.
func (d *Document) NewStream(cat pdfgen.StreamCategory, dict pdfgen.Dict) *pdfgen.Stream {
	return &pdfgen.Stream{
		Dict:   dict,
		Filter: d.compression.Filter(cat),
	}
}

// SetInfo sets the document information dictionary.  The information is
// read when the document is saved, so later changes to info are included
// in the output.
func (d *Document) SetInfo(info *pdfgen.Info) error {
	if info == nil {
		return pdfgen.Errorf(pdfgen.InvalidParameter, "SetInfo", errors.New("missing info"))
	}
	d.info = info
	if d.infoRef == 0 {
		d.infoObj = pdfgen.Dict{}
		ref, err := d.xref.Add(d.infoObj)
		if err != nil {
			return err
		}
		d.infoRef = ref
	}
	return nil
}

// SetLanguage sets the natural language of the document text.
// This requires PDF 1.4; the version is raised as needed.
func (d *Document) SetLanguage(tag language.Tag) error {
	if tag == language.Und {
		return pdfgen.Errorf(pdfgen.InvalidParameter, "SetLanguage",
			errors.New("undefined language"))
	}
	d.RaiseVersion(pdfgen.V1_4)
	d.catalog["Lang"] = pdfgen.TextString(tag.String())
	return nil
}

// ID returns the file identifier of the document.  The identifier is
// generated on first use, and then shared by all features which need it.
func (d *Document) ID() []byte {
	if d.id == nil {
		d.id = pdfgen.NewID([]byte("seehuhn.de/go/pdfgen"))
	}
	return d.id
}

// EnableEncryption encrypts the document using the standard security
// handler.  Encryption can only be enabled once per document.
//
// The PDF version is raised to the minimum version required by the
// encryption mode.
func (d *Document) EnableEncryption(userPwd, ownerPwd string, perm pdfgen.Perm, mode pdfgen.EncryptMode) error {
	const op = "EnableEncryption"
	if d.enc != nil {
		return pdfgen.Errorf(pdfgen.InvalidOperation, op, errors.New("encryption already enabled"))
	}

	opt := &pdfgen.EncryptionOptions{UnencryptedMetadata: d.unencryptedMetadata}
	enc, err := pdfgen.NewEncryption(d.ID(), userPwd, ownerPwd, perm, mode, opt)
	if err != nil {
		return err
	}

	ref, err := d.xref.Add(enc.Dict())
	if err != nil {
		return err
	}
	d.enc = enc
	d.encRef = ref
	d.RaiseVersion(enc.MinVersion())

	d.logger.Debug("encryption enabled", "mode", mode, "version", d.version)
	return nil
}

// IsEncrypted reports whether encryption has been enabled.
func (d *Document) IsEncrypted() bool {
	return d.enc != nil
}

// SetPDFAConformance marks the document as conforming to the given part of
// the PDF/A standard.  This adds an XMP metadata stream and an output
// intent to the document catalog.  If oi is nil, the sRGB output intent is
// used.  This can only be called once per document.
//
// The XMP metadata is generated from the document information dictionary
// when the document is saved.
func (d *Document) SetPDFAConformance(c pdfa.Conformance, oi *pdfa.OutputIntent) error {
	const op = "SetPDFAConformance"
	if d.conformance != nil {
		return pdfgen.Errorf(pdfgen.InvalidOperation, op, errors.New("PDF/A conformance already set"))
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if oi == nil {
		var err error
		oi, err = pdfa.NewOutputIntent(nil, "")
		if err != nil {
			return err
		}
	}

	metadata := &pdfgen.Stream{
		Dict: pdfgen.Dict{
			"Type":    pdfgen.Name("Metadata"),
			"Subtype": pdfgen.Name("XML"),
		},
	}
	metadataRef, err := d.xref.Add(metadata)
	if err != nil {
		return err
	}

	profile := d.NewStream(pdfgen.CategoryImage, oi.ProfileDict())
	profile.Content = oi.Profile
	profileRef, err := d.xref.Add(profile)
	if err != nil {
		return err
	}

	d.catalog["Metadata"] = metadataRef
	d.catalog["OutputIntents"] = pdfgen.Array{oi.Dict(profileRef)}
	d.conformance = &c
	d.metadata = metadata
	d.ID()
	d.RaiseVersion(c.MinVersion())

	d.logger.Debug("PDF/A enabled", "conformance", c.String(), "version", d.version)
	return nil
}

// EmbedFont adds a font to the document and returns the reference to the
// font dictionary.  Each font is embedded at most once.
func (d *Document) EmbedFont(F font.Font) (pdfgen.Reference, error) {
	if F == nil {
		return 0, pdfgen.Errorf(pdfgen.InvalidParameter, "EmbedFont", errors.New("missing font"))
	}
	if ref, ok := d.fonts[F]; ok {
		return ref, nil
	}
	if _, isComposite := F.(*font.Composite); isComposite {
		d.RaiseVersion(pdfgen.V1_3)
	}
	ref, err := F.Embed(d)
	if err != nil {
		return 0, err
	}
	d.fonts[F] = ref
	d.fontOrder = append(d.fontOrder, F)
	return ref, nil
}

// LoadFont reads a TrueType font file through the font cache of the
// document.  If composite is true, the font is embedded as a composite
// font, which allows to use all glyphs of the font.  Otherwise a simple
// font with WinAnsiEncoding is used.
func (d *Document) LoadFont(path string, composite bool) (font.Font, error) {
	ttf, err := d.fontCache.FontFile(path)
	if err != nil {
		return nil, err
	}
	if composite {
		return font.NewComposite(ttf)
	}
	return font.NewSimple(ttf)
}
