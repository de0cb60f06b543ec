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

// Package font implements TrueType fonts for use in generated PDF files.
//
// All fonts implement the [Font] interface.  There are two variants:
//   - [Simple] fonts use WinAnsiEncoding with one byte per character.
//     They lead to small files, but can only show characters from the
//     Windows-1252 character set.
//   - [Composite] fonts use the Identity-H encoding with two bytes per
//     glyph.  They can show every glyph of the font, and include a
//     ToUnicode CMap so that text can be extracted.
//
// Font programs are embedded in full.  Parsed fonts can be shared between
// documents using a [seehuhn.de/go/pdfgen/fontcache.Cache].
package font
