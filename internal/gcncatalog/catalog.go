/*
   GCN instruction catalog and reverse lookup (§4.1).

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

// Package gcncatalog holds the static GCN instruction table and builds the
// two lookup structures described in §4.1: a forward name->entry map for
// the assembler, and a reverse (family,opcode,arch)->entry table for the
// disassembler. The reverse table is built once behind a sync.Once latch
// and is immutable thereafter (§5, §9).
package gcncatalog

import (
	"sync"

	"github.com/gcntools/gcnasm/internal/gcnarch"
)

// Family enumerates the GCN encoding families (§3).
type Family int

const (
	NONE Family = iota
	SOPC
	SOPP
	SOP1
	SOP2
	SOPK
	SMRD // SMEM on GCN 1.2+; same Family value, reinterpreted by arch.
	VOPC
	VOP1
	VOP2
	VOP3A
	VOP3B
	VINTRP
	DS
	MUBUF
	MTBUF
	MIMG
	EXP
	FLAT
	VOP3P

	numFamilies
)

func (f Family) String() string {
	switch f {
	case SOPC:
		return "SOPC"
	case SOPP:
		return "SOPP"
	case SOP1:
		return "SOP1"
	case SOP2:
		return "SOP2"
	case SOPK:
		return "SOPK"
	case SMRD:
		return "SMRD"
	case VOPC:
		return "VOPC"
	case VOP1:
		return "VOP1"
	case VOP2:
		return "VOP2"
	case VOP3A:
		return "VOP3A"
	case VOP3B:
		return "VOP3B"
	case VINTRP:
		return "VINTRP"
	case DS:
		return "DS"
	case MUBUF:
		return "MUBUF"
	case MTBUF:
		return "MTBUF"
	case MIMG:
		return "MIMG"
	case EXP:
		return "EXP"
	case FLAT:
		return "FLAT"
	case VOP3P:
		return "VOP3P"
	default:
		return "NONE"
	}
}

// ModeFlags are the per-instruction mode-flag overrides of §3.
type ModeFlags uint32

const (
	RegDst64 ModeFlags = 1 << iota
	RegSrc064
	RegSrc164
	VOPCDefaultVCC // VOPC: writes VCC by default
	VOP3BExtraSdst // VOP3B: additional scalar-destination field
	SOPKImmDst
	SOPKImmRel
	SOPKImmSreg
	SOPKImmMsgs
	SOPKImmLocks
	DS2VCC
	DS96
	DS128
	MUBUFD16
	MIMGSample
	MIMGVdata4
	FlatGlobal
	FlatScratch
	GDS // DS: targets the shared GDS segment rather than per-CU LDS
)

// Entry is one catalog row: (mnemonic, family, base opcode, mode flags,
// architecture mask).
type Entry struct {
	Mnemonic string
	Family   Family
	Opcode   int
	Flags    ModeFlags
	ArchMask gcnarch.Mask
}

// ValidFor reports whether e is valid for arch.
func (e *Entry) ValidFor(arch gcnarch.Arch) bool {
	return e.ArchMask.Has(arch)
}

// IllegalEntry is the distinguished "no such instruction" entry the
// disassembler falls back to (§4.1): printed as "<family>_ill_<opcode>".
var IllegalEntry = &Entry{Mnemonic: "", Family: NONE, Opcode: -1}

// archBase gives the reverse-table base offset for (family, arch); kept as
// a simple family-major, arch-minor layout since the catalog size here
// does not require the dense packing the original ~8000-slot table used.
const slotsPerFamilyArch = 2048

func baseOffset(f Family, a gcnarch.Arch) int {
	return (int(f)*int(numArchSlots) + int(a)) * slotsPerFamilyArch
}

var numArchSlots = func() gcnarch.Arch {
	return 8 // room for numArch plus headroom for future generations
}()

// Catalog holds the built forward and reverse lookup tables.
type Catalog struct {
	byName    map[string][]*Entry // one mnemonic may have arch-specific variants
	reverse   []*Entry
	rawRows   []Entry
}

var (
	once     sync.Once
	instance *Catalog
)

// Get returns the process-wide Catalog, building it on first call behind a
// sync.Once latch (§5, §9): every reader after the first observes the
// fully-published, immutable table.
func Get() *Catalog {
	once.Do(func() {
		instance = build(defaultRows)
	})
	return instance
}

func build(rows []Entry) *Catalog {
	c := &Catalog{
		byName:  make(map[string][]*Entry),
		reverse: make([]*Entry, int(numFamilies)*int(numArchSlots)*slotsPerFamilyArch),
		rawRows: rows,
	}

	for i := range c.rawRows {
		e := &c.rawRows[i]
		c.byName[e.Mnemonic] = append(c.byName[e.Mnemonic], e)

		for a := gcnarch.GCN_1_0; int(a) < int(numArchSlots); a++ {
			if !e.ArchMask.Has(a) {
				continue
			}
			slot := baseOffset(e.Family, a) + e.Opcode
			if slot < 0 || slot >= len(c.reverse) {
				continue
			}
			existing := c.reverse[slot]
			// Build policy (§4.1): first pass seeds from any match; a later,
			// more specific (narrower) architecture mask wins on exact match.
			if existing == nil || popcount(e.ArchMask) <= popcount(existing.ArchMask) {
				c.reverse[slot] = e
			}
		}
	}
	return c
}

func popcount(m gcnarch.Mask) int {
	n := 0
	for m != 0 {
		n += int(m & 1)
		m >>= 1
	}
	return n
}

// Lookup implements the forward name->entry contract the assembler uses,
// picking the first entry valid for arch.
func (c *Catalog) Lookup(mnemonic string, arch gcnarch.Arch) (*Entry, bool) {
	for _, e := range c.byName[mnemonic] {
		if e.ValidFor(arch) {
			return e, true
		}
	}
	return nil, false
}

// Decode implements the reverse (family, opcode, arch) -> entry contract
// the disassembler uses (§4.1). It returns IllegalEntry, false when no
// catalog row occupies that slot.
func (c *Catalog) Decode(family Family, opcode int, arch gcnarch.Arch) (*Entry, bool) {
	slot := baseOffset(family, arch) + opcode
	if slot < 0 || slot >= len(c.reverse) || c.reverse[slot] == nil {
		return IllegalEntry, false
	}
	return c.reverse[slot], true
}

// All returns every catalog row (used by tests and by tooling that needs to
// enumerate mnemonics, e.g. the REPL's tab completer).
func (c *Catalog) All() []Entry {
	return c.rawRows
}
