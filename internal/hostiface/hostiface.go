/*
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

// Package hostiface defines the narrow facades between the codec and its
// collaborators (§4 "Codec host interfaces"): an ordered relocation
// iterator and label iterator consumed while formatting disassembly text,
// and builders that hand the assembler/register-allocator a fresh
// wait-handler or usage-handler for one job. None of these types hold
// codec logic themselves -- they just give gcnasm/gcndisasm a stable,
// mockable seam instead of a direct dependency on gcnwait/gcnregvar.
package hostiface

import (
	"sort"

	"github.com/gcntools/gcnasm/internal/gcnregvar"
	"github.com/gcntools/gcnasm/internal/gcnwait"
)

// Label is one disassembly-discovered branch target (§3, §4.2 stage A).
type Label struct {
	Offset uint64
	Name   string
}

// RelocationKind enumerates the symbolic forms a relocation can resolve to.
type RelocationKind int

const (
	RelocNone RelocationKind = iota
	RelocAbs32
	RelocPCRel32
)

// Relocation is one `(offset, kind, symbol, addend)` record (§3).
type Relocation struct {
	Offset uint64
	Kind   RelocationKind
	Symbol string
	Addend int64
}

// LabelIterator is a forward cursor over a set of Labels sorted by offset,
// consumed by the disassembler's stage B printer when formatting branch
// immediates (§4.2).
type LabelIterator struct {
	labels []Label
	pos    int
}

// NewLabelIterator sorts labels by offset and returns a cursor over them.
func NewLabelIterator(labels []Label) *LabelIterator {
	sorted := append([]Label(nil), labels...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
	return &LabelIterator{labels: sorted}
}

// Seek advances the cursor past any label strictly before offset and
// reports the label at exactly offset, if any.
func (it *LabelIterator) Seek(offset uint64) (Label, bool) {
	for it.pos < len(it.labels) && it.labels[it.pos].Offset < offset {
		it.pos++
	}
	if it.pos < len(it.labels) && it.labels[it.pos].Offset == offset {
		return it.labels[it.pos], true
	}
	return Label{}, false
}

// All returns every label in offset order, for listing a symbol table.
func (it *LabelIterator) All() []Label {
	return it.labels
}

// RelocationIterator is a forward cursor over Relocations sorted by offset,
// consulted when an immediate operand lands on a pending relocation (§4.2).
type RelocationIterator struct {
	relocs []Relocation
	pos    int
}

// NewRelocationIterator sorts relocs by offset and returns a cursor over them.
func NewRelocationIterator(relocs []Relocation) *RelocationIterator {
	sorted := append([]Relocation(nil), relocs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Offset < sorted[j].Offset })
	return &RelocationIterator{relocs: sorted}
}

// Seek advances past any relocation strictly before offset and reports the
// relocation at exactly offset, if any.
func (it *RelocationIterator) Seek(offset uint64) (Relocation, bool) {
	for it.pos < len(it.relocs) && it.relocs[it.pos].Offset < offset {
		it.pos++
	}
	if it.pos < len(it.relocs) && it.relocs[it.pos].Offset == offset {
		return it.relocs[it.pos], true
	}
	return Relocation{}, false
}

// WaitHandler is the facade the assembler's wait-insertion pass consumes
// (§4.5): it can only append and replay, never mutate in place.
type WaitHandler interface {
	EmitDelayed(op gcnwait.DelayedOp)
	EmitWait(w gcnwait.WaitInstr)
	Cursor() *gcnwait.Cursor
	Len() int
}

// NewWaitHandler builds a fresh per-job WaitHandler backed by gcnwait.Stream.
func NewWaitHandler() WaitHandler {
	return gcnwait.NewStream()
}

// UsageHandler is the facade the register allocator consumes (§4.4).
type UsageHandler interface {
	Emit(u gcnregvar.Usage)
	Cursor() *gcnregvar.Cursor
	Len() int
}

// NewUsageHandler builds a fresh per-job UsageHandler backed by gcnregvar.Stream.
func NewUsageHandler() UsageHandler {
	return gcnregvar.NewStream()
}
