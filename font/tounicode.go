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

package font

import (
	"bytes"
	"fmt"
	"text/template"
	"unicode/utf16"

	"seehuhn.de/go/sfnt/glyph"
)

// bfChar is a single mapping from a two-byte character code to Unicode text.
type bfChar struct {
	Code glyph.ID
	Text []rune
}

func (m bfChar) String() string {
	var text []byte
	for _, x := range utf16.Encode(m.Text) {
		text = append(text, byte(x>>8), byte(x))
	}
	return fmt.Sprintf("<%04x> <%02X>", uint16(m.Code), text)
}

// toUnicodeCMap returns the contents of a ToUnicode CMap stream for
// the given glyphs.  The glyphs must be sorted.
func toUnicodeCMap(gids []glyph.ID, text map[glyph.ID][]rune) []byte {
	var singles []bfChar
	for _, gid := range gids {
		singles = append(singles, bfChar{Code: gid, Text: text[gid]})
	}

	buf := &bytes.Buffer{}
	err := toUnicodeTmpl.Execute(buf, singles)
	if err != nil {
		// The template only fails on write errors, and bytes.Buffer
		// never returns one.
		panic(err)
	}
	return buf.Bytes()
}

const bfCharChunkSize = 100

func chunks(x []bfChar) [][]bfChar {
	var res [][]bfChar
	for len(x) > bfCharChunkSize {
		res = append(res, x[:bfCharChunkSize])
		x = x[bfCharChunkSize:]
	}
	if len(x) > 0 {
		res = append(res, x)
	}
	return res
}

var toUnicodeTmpl = template.Must(template.New("CMap").Funcs(template.FuncMap{
	"Chunks": chunks,
}).Parse(`/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
/CMapType 2 def
/CMapName /Adobe-Identity-UCS def
/CIDSystemInfo <<
/Registry (Adobe)
/Ordering (UCS)
/Supplement 0
>> def
1 begincodespacerange
<0000> <ffff>
endcodespacerange
{{range Chunks . -}}
{{len .}} beginbfchar
{{range . -}}
{{.}}
{{end -}}
endbfchar
{{end -}}
endcmap
CMapName currentdict /CMap defineresource pop
end
end
`))
