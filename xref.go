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
	"errors"
	"fmt"
	"reflect"
)

// EntryType describes the state of an entry in the cross-reference table.
type EntryType int

// These are the possible entry types.
const (
	// EntryFree marks objects which have not been written (yet).
	EntryFree EntryType = iota

	// EntryInUse marks objects which have been written to the file.
	EntryInUse
)

// Entry is one entry of the cross-reference table.
type Entry struct {
	Ref    Reference
	Obj    Object
	Type   EntryType
	Offset int64 // file offset of "N G obj", valid for EntryInUse

	set bool
}

// Xref is the table of indirect objects of a PDF document.
//
// Object numbers are assigned sequentially, starting at 1, in the order
// in which objects are added or allocated.  Object number 0 is reserved
// for the head of the free list.  Objects are written in the same order.
type Xref struct {
	entries []*Entry // entries[i] has object number i+1

	dicts   map[uintptr]Reference
	arrays  map[uintptr]Reference
	streams map[*Stream]Reference
}

// NewXref returns a new, empty cross-reference table.
func NewXref() *Xref {
	return &Xref{
		dicts:   make(map[uintptr]Reference),
		arrays:  make(map[uintptr]Reference),
		streams: make(map[*Stream]Reference),
	}
}

// Add registers obj as a new indirect object and returns the reference
// to the object.  The generation number is always 0.
//
// The same Dict, Array or *Stream can only be registered once.  Arrays are
// identified by their first element, so two slices of the same backing
// array which start at the same position count as one array.  Empty
// arrays are not tracked.
func (xref *Xref) Add(obj Object) (Reference, error) {
	ref := xref.Alloc()
	err := xref.Put(ref, obj)
	if err != nil {
		xref.entries = xref.entries[:len(xref.entries)-1]
		return 0, err
	}
	return ref, nil
}

// Alloc reserves an object number.  The object must be stored using
// [Xref.Put] before the document is written.  This allows to construct
// cyclic object graphs, like the parent links in the page tree.
func (xref *Xref) Alloc() Reference {
	ref := NewReference(uint32(len(xref.entries)+1), 0)
	xref.entries = append(xref.entries, &Entry{Ref: ref, Offset: -1})
	return ref
}

// Put stores obj under a reference previously obtained from [Xref.Alloc].
func (xref *Xref) Put(ref Reference, obj Object) error {
	switch x := obj.(type) {
	case nil:
		return Errorf(InvalidParameter, "Xref.Put", errors.New("null object"))
	case Reference:
		return Errorf(InvalidParameter, "Xref.Put", errors.New("reference as indirect object"))
	case Dict:
		if x == nil {
			return Errorf(InvalidParameter, "Xref.Put", errors.New("nil dictionary"))
		}
	case *Stream:
		if x == nil {
			return Errorf(InvalidParameter, "Xref.Put", errors.New("nil stream"))
		}
	}

	e := xref.entry(ref)
	if e == nil {
		return Errorf(InvalidParameter, "Xref.Put", fmt.Errorf("%s was not allocated", ref))
	}
	if e.set {
		return Errorf(InvalidOperation, "Xref.Put", fmt.Errorf("%s already stored", ref))
	}

	switch x := obj.(type) {
	case Dict:
		key := reflect.ValueOf(x).Pointer()
		if other, seen := xref.dicts[key]; seen {
			return Errorf(InvalidOperation, "Xref.Put",
				fmt.Errorf("dictionary already registered as %s", other))
		}
		xref.dicts[key] = ref
	case Array:
		if len(x) > 0 {
			key := reflect.ValueOf(x).Pointer()
			if other, seen := xref.arrays[key]; seen {
				return Errorf(InvalidOperation, "Xref.Put",
					fmt.Errorf("array already registered as %s", other))
			}
			xref.arrays[key] = ref
		}
	case *Stream:
		if other, seen := xref.streams[x]; seen {
			return Errorf(InvalidOperation, "Xref.Put",
				fmt.Errorf("stream already registered as %s", other))
		}
		xref.streams[x] = ref
	}

	e.Obj = obj
	e.set = true
	return nil
}

// Resolve returns the object stored under ref.
func (xref *Xref) Resolve(ref Reference) (Object, error) {
	e := xref.entry(ref)
	if e == nil || !e.set {
		return nil, Errorf(InvalidParameter, "Xref.Resolve", fmt.Errorf("%s: %w", ref, errUnknownReference))
	}
	return e.Obj, nil
}

// AllEntries returns the entries of the table, in ascending order of
// object numbers.  The free-list head (object 0) is not included.
func (xref *Xref) AllEntries() []*Entry {
	res := make([]*Entry, len(xref.entries))
	copy(res, xref.entries)
	return res
}

// Size returns the value of the /Size entry of the trailer, i.e. one more
// than the highest object number in use.
func (xref *Xref) Size() int {
	return len(xref.entries) + 1
}

// Offset returns the file offset recorded for ref during the last
// serialization.  The second return value is false if the object has not
// been written.
func (xref *Xref) Offset(ref Reference) (int64, bool) {
	e := xref.entry(ref)
	if e == nil || e.Type != EntryInUse {
		return 0, false
	}
	return e.Offset, true
}

func (xref *Xref) entry(ref Reference) *Entry {
	n := int(ref.Number())
	if ref.Generation() != 0 || n < 1 || n > len(xref.entries) {
		return nil
	}
	return xref.entries[n-1]
}

func (xref *Xref) isSet(ref Reference) bool {
	e := xref.entry(ref)
	return e != nil && e.set
}
