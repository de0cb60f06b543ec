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

// Pdfgen writes a one-page PDF document.  It can be used to try out the
// encryption and compression options of the library.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/term"
	"golang.org/x/text/language"

	"seehuhn.de/go/pdfgen"
	"seehuhn.de/go/pdfgen/document"
	"seehuhn.de/go/pdfgen/font"
	"seehuhn.de/go/pdfgen/fontcache"
	"seehuhn.de/go/pdfgen/pdfa"
)

var (
	output    = flag.String("o", "out.pdf", "name of the output file")
	encMode   = flag.String("encrypt", "", "encryption mode: r2, r3, r4 or r6")
	userPwd   = flag.String("user", "", "user password")
	ownerPwd  = flag.String("owner", "", "owner password")
	ask       = flag.Bool("ask", false, "read the passwords from the terminal")
	compress  = flag.String("compress", "all", "comma-separated list of text, image, metadata, all or none")
	pdfaLevel = flag.String("pdfa", "", "PDF/A conformance level: 1b, 1a, 2b or 3b")
	title     = flag.String("title", "", "document title")
	lang      = flag.String("lang", "", "document language, e.g. en-GB")
	fontFile  = flag.String("font", "", "TrueType font file (default Go Regular)")
	text      = flag.String("text", "Hello, World!", "text to show on the page")
	verbose   = flag.Bool("v", false, "show debug messages")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(1)
	}

	err := run()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	mode, err := parseCompression(*compress)
	if err != nil {
		return err
	}

	cache := fontcache.New()
	opt := &document.Options{
		Compression: mode,
		FontCache:   cache,
	}
	if *verbose {
		opt.Logger = slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	doc, err := document.New(opt)
	if err != nil {
		return err
	}

	now := time.Now()
	err = doc.SetInfo(&pdfgen.Info{
		Title:        *title,
		Producer:     "seehuhn.de/go/pdfgen/cmd/pdfgen",
		CreationDate: now,
		ModDate:      now,
	})
	if err != nil {
		return err
	}
	if *lang != "" {
		tag, err := language.Parse(*lang)
		if err != nil {
			return err
		}
		err = doc.SetLanguage(tag)
		if err != nil {
			return err
		}
	}

	if *pdfaLevel != "" {
		c, err := parseConformance(*pdfaLevel)
		if err != nil {
			return err
		}
		err = doc.SetPDFAConformance(c, nil)
		if err != nil {
			return err
		}
	}

	if *encMode != "" {
		m, err := parseEncryptMode(*encMode)
		if err != nil {
			return err
		}
		user, owner := *userPwd, *ownerPwd
		if *ask {
			user, err = readPassword("user password: ")
			if err != nil {
				return err
			}
			owner, err = readPassword("owner password: ")
			if err != nil {
				return err
			}
		}
		err = doc.EnableEncryption(user, owner, pdfgen.PermPrint|pdfgen.PermCopy, m)
		if err != nil {
			return err
		}
	}

	F, err := loadFont(doc, cache)
	if err != nil {
		return err
	}

	page, err := doc.AddPage(document.A4)
	if err != nil {
		return err
	}
	const size = 24
	width := F.MeasureText(*text, size)
	x := (document.A4.URx - width) / 2
	y := document.A4.URy - 72 - F.Metrics().Ascent*size/1000
	err = page.TextAt(F, size, x, y, *text)
	if err != nil {
		return err
	}

	err = doc.SaveToFile(*output)
	if err != nil {
		return err
	}
	log.Printf("wrote %s (PDF %s)", *output, doc.Version())
	return nil
}

func loadFont(doc *document.Document, cache *fontcache.Cache) (font.Font, error) {
	if *fontFile != "" {
		return doc.LoadFont(*fontFile, true)
	}
	ttf, err := cache.Font("goregular", func() ([]byte, error) {
		return goregular.TTF, nil
	})
	if err != nil {
		return nil, err
	}
	return font.NewComposite(ttf)
}

func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	passwd, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimSpace(passwd)), nil
}

func parseCompression(s string) (pdfgen.CompressionMode, error) {
	var mode pdfgen.CompressionMode
	for _, part := range strings.Split(s, ",") {
		switch strings.TrimSpace(strings.ToLower(part)) {
		case "none", "":
		case "text":
			mode |= pdfgen.CompressText
		case "image":
			mode |= pdfgen.CompressImage
		case "metadata":
			mode |= pdfgen.CompressMetadata
		case "all":
			mode |= pdfgen.CompressAll
		default:
			return 0, fmt.Errorf("unknown compression flag %q", part)
		}
	}
	return mode, nil
}

func parseEncryptMode(s string) (pdfgen.EncryptMode, error) {
	switch strings.ToLower(s) {
	case "r2":
		return pdfgen.EncryptR2, nil
	case "r3":
		return pdfgen.EncryptR3, nil
	case "r4":
		return pdfgen.EncryptR4, nil
	case "r6":
		return pdfgen.EncryptR6, nil
	}
	return 0, fmt.Errorf("unknown encryption mode %q", s)
}

func parseConformance(s string) (pdfa.Conformance, error) {
	switch strings.ToLower(s) {
	case "1b":
		return pdfa.PDFA1B, nil
	case "1a":
		return pdfa.PDFA1A, nil
	case "2b":
		return pdfa.PDFA2B, nil
	case "3b":
		return pdfa.PDFA3B, nil
	}
	return pdfa.Conformance{}, fmt.Errorf("unknown PDF/A level %q", s)
}
