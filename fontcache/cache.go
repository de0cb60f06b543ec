// seehuhn.de/go/pdfgen - a library for generating PDF files
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

// Package fontcache implements a cache for font data, which can be shared
// between documents and goroutines.
//
// Each entry is loaded and parsed at most once.  After an entry has been
// filled, reads do not take any locks.
package fontcache

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/pdfgen"
)

// Cache holds font data indexed by a string key.
// A Cache is safe for concurrent use by multiple goroutines.
// The zero value is an empty cache ready to use.
type Cache struct {
	entries sync.Map // string -> *entry
}

// New returns a new, empty font cache.
func New() *Cache {
	return &Cache{}
}

type entry struct {
	once sync.Once
	data []byte
	err  error

	parseOnce sync.Once
	font      *sfnt.Font
	parseErr  error
}

func (c *Cache) lookup(key string) *entry {
	if e, ok := c.entries.Load(key); ok {
		return e.(*entry)
	}
	e, _ := c.entries.LoadOrStore(key, &entry{})
	return e.(*entry)
}

// Get returns the font data stored under key.  If the key is not yet
// present, load is called to obtain the data.  Concurrent calls for the
// same key call load only once, and all callers receive the same result.
// Errors are cached as well.
//
// The returned slice must not be modified.
func (c *Cache) Get(key string, load func() ([]byte, error)) ([]byte, error) {
	e := c.lookup(key)
	e.once.Do(func() {
		e.data, e.err = load()
	})
	return e.data, e.err
}

// LoadFile returns the contents of the named font file.  The file is read
// only once.  If the file does not exist, an error with code
// [pdfgen.FileNotFound] is returned.
func (c *Cache) LoadFile(path string) ([]byte, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}
	return c.Get(key, func() ([]byte, error) {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, pdfgen.Errorf(pdfgen.FileNotFound, "fontcache.LoadFile", err)
		}
		return data, err
	})
}

// Font returns the parsed font stored under key.  The font data is
// obtained as for [Cache.Get] and parsed only once.
//
// The returned font is shared between all callers and must not be
// modified.
func (c *Cache) Font(key string, load func() ([]byte, error)) (*sfnt.Font, error) {
	data, err := c.Get(key, load)
	if err != nil {
		return nil, err
	}
	e := c.lookup(key)
	e.parseOnce.Do(func() {
		e.font, e.parseErr = sfnt.Read(bytes.NewReader(data))
	})
	return e.font, e.parseErr
}

// FontFile is like [Cache.Font], but reads the font from a file.
func (c *Cache) FontFile(path string) (*sfnt.Font, error) {
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}
	_, err = c.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return c.Font(key, nil)
}

// Len returns the number of keys in the cache.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
