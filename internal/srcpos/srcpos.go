/*
   Source-position handler: maps code offsets to (file, line, column, macro).

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

// Package srcpos implements the source-position handler of §4.6: a compact
// append-only stream mapping each emitted code offset to a (file, line,
// column, macro-substitution) tuple, consulted by diagnostics and listings.
package srcpos

// Position is one (file, macro, line, column) tuple attached to a code offset.
// Macro is the name of the macro substitution in effect, or "" outside one.
type Position struct {
	File   string
	Macro  string
	Line   uint64
	Column uint32
}

// entry is one pushed record, kept uncompressed in memory. Handler has no
// serialized form: offset, line and column are stored as pushed, with no
// delta or run-length compression; only file and macro names are interned
// into per-handler tables.
type entry struct {
	offset uint64
	pos    Position
}

// Handler accumulates source-position pushes in offset order and replays
// them through a forward cursor.
type Handler struct {
	entries    []entry
	lastOffset uint64
	fileTable  []string
	fileIndex  map[string]int
	macroTable []string
	macroIndex map[string]int
}

// NewHandler returns an empty source-position handler.
func NewHandler() *Handler {
	return &Handler{
		fileIndex:  make(map[string]int),
		macroIndex: make(map[string]int),
	}
}

// Push records that code offset maps to pos. offset must be >= the offset
// of the previous push (monotonic non-decreasing, per §5's ordering
// guarantee); Push panics otherwise since that indicates a codec bug, not
// a user-facing error.
func (h *Handler) Push(offset uint64, pos Position) {
	if len(h.entries) > 0 && offset < h.lastOffset {
		panic("srcpos: Push called with decreasing offset")
	}
	h.intern(pos.File, &h.fileTable, h.fileIndex)
	h.intern(pos.Macro, &h.macroTable, h.macroIndex)
	h.entries = append(h.entries, entry{offset: offset, pos: pos})
	h.lastOffset = offset
}

func (h *Handler) intern(s string, table *[]string, index map[string]int) {
	if s == "" {
		return
	}
	if _, ok := index[s]; ok {
		return
	}
	index[s] = len(*table)
	*table = append(*table, s)
}

// Len returns the number of pushed entries.
func (h *Handler) Len() int {
	return len(h.entries)
}

// Cursor returns a forward-only reader over the pushed entries, in push order.
func (h *Handler) Cursor() *Cursor {
	return &Cursor{h: h}
}

// Cursor replays a Handler's entries in order; it is the read-back
// counterpart described in §4.6 and used by diagnostics/listing.
type Cursor struct {
	h   *Handler
	pos int
}

// HasNext reports whether another (offset, Position) pair remains.
func (c *Cursor) HasNext() bool {
	return c.pos < len(c.h.entries)
}

// Next returns the next (offset, Position) pair and advances the cursor.
func (c *Cursor) Next() (uint64, Position) {
	e := c.h.entries[c.pos]
	c.pos++
	return e.offset, e.pos
}

// Find returns the Position most recently pushed at or before offset, and
// ok=false if offset precedes every push (used by diagnostics that only
// have a code offset, such as decode-time illegal-instruction warnings).
func (h *Handler) Find(offset uint64) (Position, bool) {
	var best Position
	found := false
	for _, e := range h.entries {
		if e.offset > offset {
			break
		}
		best = e.pos
		found = true
	}
	return best, found
}

// Reset discards every pushed entry, for reuse across assembly jobs.
func (h *Handler) Reset() {
	h.entries = h.entries[:0]
	h.lastOffset = 0
	h.fileTable = h.fileTable[:0]
	h.macroTable = h.macroTable[:0]
	for k := range h.fileIndex {
		delete(h.fileIndex, k)
	}
	for k := range h.macroIndex {
		delete(h.macroIndex, k)
	}
}
