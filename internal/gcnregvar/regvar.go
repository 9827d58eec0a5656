/*
   Regvar table: symbolic register ranges and their lexical scope chain.

   Copyright (c) 2024, Richard Cornwell

   Permission is hereby granted, free of charge, to any person obtaining a
   copy of this software and associated documentation files (the "Software"),
   to deal in the Software without restriction, including without limitation
   the rights to use, copy, modify, merge, publish, distribute, sublicense,
   and/or sell copies of the Software, and to permit persons to whom the
   Software is furnished to do so, subject to the following conditions:

   The above copyright notice and this permission notice shall be included in
   all copies or substantial portions of the Software.

   THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
   IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
   FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.  IN NO EVENT SHALL
   RICHARD CORNWELL BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
   IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
   CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*/

// Package gcnregvar implements the register-variable & usage tracker of
// §4.4: the `.regvar` symbol table with its `::`-scoped namespace, operand
// references into it, and the RegVarUsage side-stream the register
// allocator consumes.
package gcnregvar

import (
	"fmt"
	"strings"

	"github.com/gcntools/gcnasm/internal/gcnreg"
)

// Handle is a stable reference into a Table's regvar slice.
type Handle int

// Regvar is one `.regvar name:{s|v}[:size]` declaration.
type Regvar struct {
	Name string
	Kind gcnreg.Kind
	Size int
}

// Table holds the regvars declared in one assembly job, keyed by a
// `::`-separated lexical scope chain mirroring AsmRegPool's namespace model.
type Table struct {
	vars    []Regvar
	byScope map[string]Handle
}

// NewTable returns an empty regvar table.
func NewTable() *Table {
	return &Table{byScope: make(map[string]Handle)}
}

// Declare adds a new regvar visible under scope (e.g. "" for global,
// "foo::bar" for a nested lexical scope) and returns its Handle. Declare
// returns an error if name is already declared in scope.
func (t *Table) Declare(scope, name string, kind gcnreg.Kind, size int) (Handle, error) {
	if size < 1 {
		return 0, fmt.Errorf("regvar %q: size must be >= 1", name)
	}
	key := scopedKey(scope, name)
	if _, ok := t.byScope[key]; ok {
		return 0, fmt.Errorf("regvar %q already declared in scope %q", name, scope)
	}
	h := Handle(len(t.vars))
	t.vars = append(t.vars, Regvar{Name: name, Kind: kind, Size: size})
	t.byScope[key] = h
	return h, nil
}

// Resolve looks up name starting at scope and walking outward through each
// enclosing `::`-separated scope, matching AsmRegPool's scope-chain lookup.
func (t *Table) Resolve(scope, name string) (Handle, bool) {
	for {
		if h, ok := t.byScope[scopedKey(scope, name)]; ok {
			return h, true
		}
		if scope == "" {
			return 0, false
		}
		idx := strings.LastIndex(scope, "::")
		if idx < 0 {
			scope = ""
		} else {
			scope = scope[:idx]
		}
	}
}

// Get returns the Regvar a Handle names.
func (t *Table) Get(h Handle) Regvar {
	return t.vars[h]
}

func scopedKey(scope, name string) string {
	if scope == "" {
		return name
	}
	return scope + "::" + name
}

// Ref is an operand reference to a regvar, either whole (Start==0 &&
// End==regvar.Size-1), a single sub-register (Start==End), or a sub-range.
type Ref struct {
	Handle Handle
	Start  int
	End    int // inclusive
}

// Count returns the number of registers this reference spans.
func (r Ref) Count() int {
	return r.End - r.Start + 1
}

// FieldID enumerates the logical operand slots a RegVarUsage can name (§3).
type FieldID int

const (
	FieldNone FieldID = iota
	FieldSDST
	FieldSSRC0
	FieldSSRC1
	FieldSMRDSdst
	FieldSMRDSbase
	FieldSMRDSoffset
	FieldSMRDSdstH
	FieldVOPVdst
	FieldVOPSrc0
	FieldVOPVsrc1
	FieldVOPSdst
	FieldVOPSsrc1
	FieldVOPVccSsrc
	FieldVOPVccSdst0
	FieldVOPVccSdst1
	FieldVOP3Vdst
	FieldVOP3Sdst0
	FieldVOP3Sdst1
	FieldVOP3Src0
	FieldVOP3Src1
	FieldVOP3Src2
	FieldVOP3Ssrc
	FieldDPPSDWASrc0
	FieldDPPSDWASsrc0
	FieldSDWABSdst
	FieldVINTRPVdst
	FieldVINTRPVsrc0
	FieldDSVdst
	FieldDSAddr
	FieldDSData0
	FieldDSData1
	FieldMVdata
	FieldMVdataH
	FieldMVdataLast
	FieldMVaddr
	FieldMSrsrc
	FieldMSoffset
	FieldMIMGSsamp
	FieldEXPVsrc0
	FieldEXPVsrc1
	FieldEXPVsrc2
	FieldEXPVsrc3
	FieldFLATVdst
	FieldFLATVdstLast
	FieldFLATAddr
	FieldFLATData
)

// RWFlags describes whether a usage reads, writes, or both.
type RWFlags uint8

const (
	Read RWFlags = 1 << iota
	Write
)

func (f RWFlags) String() string {
	switch {
	case f&Read != 0 && f&Write != 0:
		return "rw"
	case f&Write != 0:
		return "w"
	default:
		return "r"
	}
}

// Usage is one RegVarUsage record (§3): a field of one instruction, at one
// code offset, either a literal register range or a regvar reference.
type Usage struct {
	Offset    uint64
	Regvar    *Ref // nil for a literal register field
	Literal   gcnreg.Range
	Field     FieldID
	RW        RWFlags
	Alignment int
}

// Stream is the append-only RegVarUsage side-stream the codec writes to
// and the register allocator replays via Cursor, in instruction order.
type Stream struct {
	records []Usage
}

// NewStream returns an empty usage stream.
func NewStream() *Stream {
	return &Stream{}
}

// Emit appends one usage record. The caller is responsible for keeping
// offsets non-decreasing (§5); EncodeInstruction callers emit all of one
// instruction's records together, keeping them a contiguous block (§4.4).
func (s *Stream) Emit(u Usage) {
	s.records = append(s.records, u)
}

// Len returns the number of recorded usages.
func (s *Stream) Len() int {
	return len(s.records)
}

// Cursor returns a forward reader over the stream in emission order.
func (s *Stream) Cursor() *Cursor {
	return &Cursor{s: s}
}

// Cursor replays a Stream's records in emission (== offset-non-decreasing) order.
type Cursor struct {
	s   *Stream
	pos int
}

func (c *Cursor) HasNext() bool {
	return c.pos < len(c.s.records)
}

func (c *Cursor) Next() Usage {
	u := c.s.records[c.pos]
	c.pos++
	return u
}
