/*
   Wait/delayed-op tracker: waitcnt side-data alongside assembled code.

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

// Package gcnwait implements the wait/delayed-op tracker of §4.5: a single
// ordered stream of DelayedOp and WaitInstr records that lets the register
// allocator and a wait-insertion pass replay memory-ordering bookkeeping
// without re-parsing code.
package gcnwait

import (
	"github.com/gcntools/gcnasm/internal/gcnarch"
	"github.com/gcntools/gcnasm/internal/gcnreg"
	"github.com/gcntools/gcnasm/internal/gcnregvar"
)

// DelayClass classifies the hardware counter an outstanding operation
// contributes to.
type DelayClass int

const (
	ClassSMEM DelayClass = iota
	ClassVMLoad
	ClassVMStore
	ClassLDS
	ClassEXP
	ClassFlatGlobal
	ClassFlatScratch
	ClassVALU
)

// DelayedOp is one outstanding register range contributed by an instruction
// that completes out of order (§3).
type DelayedOp struct {
	Offset  uint64
	Regvar  *gcnregvar.Ref
	Literal gcnreg.Range
	Class   DelayClass
	RW      gcnregvar.RWFlags
}

// Waits holds the three counter ceilings an s_waitcnt blocks on, plus a
// reserved slot matching the record's 4-wide layout in §3.
type Waits struct {
	VMCnt   int
	ExpCnt  int
	LGKMCnt int
	_       int
}

// NoWait is the sentinel meaning "no wait required" for a counter.
const NoWait = 0xFFFF

// WaitInstr is the decoded form of one s_waitcnt instruction (§3).
type WaitInstr struct {
	Offset uint64
	Waits  Waits
}

// entryKind discriminates the two record shapes multiplexed onto Stream.
type entryKind int

const (
	kindDelayed entryKind = iota
	kindWait
)

type entry struct {
	kind    entryKind
	delayed DelayedOp
	wait    WaitInstr
}

// Stream is the shared, offset-ordered DelayedOp/WaitInstr side-stream.
type Stream struct {
	entries []entry
}

// NewStream returns an empty wait/delayed-op stream.
func NewStream() *Stream {
	return &Stream{}
}

// EmitDelayed appends a DelayedOp record.
func (s *Stream) EmitDelayed(op DelayedOp) {
	s.entries = append(s.entries, entry{kind: kindDelayed, delayed: op})
}

// EmitWait appends a WaitInstr record.
func (s *Stream) EmitWait(w WaitInstr) {
	s.entries = append(s.entries, entry{kind: kindWait, wait: w})
}

// Len returns the number of records (delayed ops and waits combined).
func (s *Stream) Len() int {
	return len(s.entries)
}

// Cursor returns a forward reader mirroring the usage-handler design: each
// step yields either a DelayedOp or a WaitInstr.
func (s *Stream) Cursor() *Cursor {
	return &Cursor{s: s}
}

// Cursor replays a Stream's records in emission order.
type Cursor struct {
	s   *Stream
	pos int
}

// HasNext reports whether another record remains.
func (c *Cursor) HasNext() bool {
	return c.pos < len(c.s.entries)
}

// NextInstr returns the next record: if isWait is true, wait is populated
// and delayed is the zero value; otherwise delayed is populated. This
// mirrors the §4.5 `nextInstr(&delayed_out, &wait_out) -> bool` contract.
func (c *Cursor) NextInstr() (delayed DelayedOp, wait WaitInstr, isWait bool) {
	e := c.s.entries[c.pos]
	c.pos++
	if e.kind == kindWait {
		return DelayedOp{}, e.wait, true
	}
	return e.delayed, WaitInstr{}, false
}

// EncodeImm16 packs ceilings into an s_waitcnt imm16 per the arch-specific
// layout of §4.5/§6: vmcnt low bits at 0.., expcnt at 4.., lgkmcnt at 8..,
// with GCN 1.4+ appending the top 2 vmcnt bits at 14..15.
func EncodeImm16(arch gcnarch.Arch, w Waits) uint16 {
	vmMax := (1 << gcnarch.VMCntBits(arch)) - 1
	expMax := (1 << gcnarch.ExpCntBits(arch)) - 1
	lgkmMax := (1 << gcnarch.LGKMCntBits(arch)) - 1

	vm := clampOrMax(w.VMCnt, vmMax)
	exp := clampOrMax(w.ExpCnt, expMax)
	lgkm := clampOrMax(w.LGKMCnt, lgkmMax)

	var imm uint16
	imm |= uint16(vm&0xF) << 0
	imm |= uint16(exp&0x7) << 4
	if gcnarch.AtLeast(arch, GCN_1_5_LGKM_WIDTH) {
		imm |= uint16(lgkm&0x1F) << 8
	} else {
		imm |= uint16(lgkm&0xF) << 8
	}
	if gcnarch.VMCntBits(arch) > 4 {
		imm |= uint16((vm>>4)&0x3) << 14
	}
	return imm
}

// GCN_1_5_LGKM_WIDTH is the first architecture whose lgkmcnt field widens
// to 5 bits (bit 12 joins bits 8..11); kept local to avoid gcnarch needing
// to know about imm16 bit positions beyond field widths.
const GCN_1_5_LGKM_WIDTH = gcnarch.GCN_1_5

func clampOrMax(v, max int) int {
	if v < 0 || v >= max {
		return max
	}
	return v
}

// DecodeImm16 unpacks an s_waitcnt imm16 into ceilings, substituting NoWait
// for any field at its maximum (all-ones) value.
func DecodeImm16(arch gcnarch.Arch, imm uint16) Waits {
	vmMax := (1 << gcnarch.VMCntBits(arch)) - 1
	expMax := (1 << gcnarch.ExpCntBits(arch)) - 1
	lgkmMax := (1 << gcnarch.LGKMCntBits(arch)) - 1

	vm := int(imm & 0xF)
	if gcnarch.VMCntBits(arch) > 4 {
		vm |= int((imm>>14)&0x3) << 4
	}
	exp := int((imm >> 4) & 0x7)
	var lgkm int
	if gcnarch.AtLeast(arch, GCN_1_5_LGKM_WIDTH) {
		lgkm = int((imm >> 8) & 0x1F)
	} else {
		lgkm = int((imm >> 8) & 0xF)
	}

	return Waits{
		VMCnt:   orNoWait(vm, vmMax),
		ExpCnt:  orNoWait(exp, expMax),
		LGKMCnt: orNoWait(lgkm, lgkmMax),
	}
}

func orNoWait(v, max int) int {
	if v >= max {
		return NoWait
	}
	return v
}
