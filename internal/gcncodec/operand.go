/*
   GCN per-family instruction codec: operand model and bit-packing helpers.

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

// Package gcncodec implements the per-family GCN instruction encoder and
// decoder of §4.3/§4.2: each family lays out a fixed 32- or 64-bit wire
// format and reads/writes it through the small bit-packing helpers in this
// file. Encoders are pure functions of an Instruction, decoders of its words;
// callers (the assembler and the disassembler driver) own the surrounding
// side-streams (RegVarUsage, DelayedOp/WaitInstr, source position).
package gcncodec

import (
	"github.com/gcntools/gcnasm/internal/gcnarch"
	"github.com/gcntools/gcnasm/internal/gcncatalog"
	"github.com/gcntools/gcnasm/internal/gcnerr"
	"github.com/gcntools/gcnasm/internal/gcnreg"
)

// Operand is one resolved instruction operand: a concrete register range, an
// inline or literal immediate, or a special register. Regvar identity is not
// carried here -- by the time an Operand reaches the codec it has already
// been resolved to concrete registers (the register allocator is an external
// collaborator per §2; gcnasm's trivial allocator does this resolution, see
// internal/gcnasm).
type Operand struct {
	Reg        gcnreg.Range
	IsSpecial  bool
	Special    int // gcnreg special-register code, valid when IsSpecial
	IsIntImm   bool
	IntImm     int64
	IsFloatImm bool
	FloatImm   float64
}

// RegCode returns the 8/9-bit wire field for a register or special operand.
func (o Operand) RegCode() int {
	if o.IsSpecial {
		return o.Special
	}
	return gcnreg.EncodeOperand(o.Reg, 0)
}

// field is a (bit position, bit width) pair within a 32-bit word.
type field struct {
	pos, width int
}

func put(word *uint32, f field, v int) {
	mask := uint32(1)<<uint(f.width) - 1
	*word &^= mask << uint(f.pos)
	*word |= (uint32(v) & mask) << uint(f.pos)
}

func get(word uint32, f field) int {
	mask := uint32(1)<<uint(f.width) - 1
	return int((word >> uint(f.pos)) & mask)
}

// Modifiers holds every optional per-instruction flag across all families;
// a given family's encoder/decoder reads only the subset it defines (§6).
// Printing order for the ones that co-occur follows §4.2's ordering
// contract: dmask, unorm, glc, slc, r128, tfe, lwe, da, d16.
type Modifiers struct {
	Offset   int
	Offset1  int
	IMM      bool
	GLC      bool
	SLC      bool
	TFE      bool
	LWE      bool
	DA       bool
	D16      bool
	UNORM    bool
	DMask    int
	GDS      bool
	OffEn    bool
	IdxEn    bool
	LDS      bool
	DFmt     int
	NFmt     int
	Seg      int // FLAT seg: 0 flat, 1 scratch, 2 global
	Clamp    bool
	OMod     int
	Neg      [3]bool
	Abs      [3]bool
	OpSel    [4]bool
	OpSelHi  [3]bool
	Target   int // EXP target
	Done     bool
	Compr    bool
	VM       bool
}

// Encoded is the result of encoding one instruction: the code words to
// append to the section. It carries no field usages; the caller builds the
// RegVarUsage/DelayedOp records itself.
type Encoded struct {
	Words   []uint32
	Literal bool // true if Words[len-1] is a trailing literal dword
}

// Instruction is a fully-resolved, ready-to-encode instruction: the catalog
// entry, its resolved operands in family-defined order, and modifiers.
type Instruction struct {
	Entry *gcncatalog.Entry
	Arch  gcnarch.Arch
	Dst   Operand
	Src   [3]Operand
	NSrc  int
	Mods  Modifiers
}

// checkArch is a small helper every family encoder calls first.
func checkArch(in *Instruction) error {
	if !in.Entry.ValidFor(in.Arch) {
		return gcnerr.ErrUnsupportedForArch
	}
	return nil
}

// scalarSourceCount returns how many distinct SGPR sources (by register
// index, ignoring VCC/EXEC/etc. special codes and inline constants) a VALU
// instruction's sources contain, enforcing the single-SGPR law of §3/§4.3.
func scalarSourceCount(ops []Operand) int {
	seen := map[int]bool{}
	for _, o := range ops {
		if o.IsSpecial || o.IsIntImm || o.IsFloatImm {
			continue
		}
		if o.Reg.Kind == gcnreg.Scalar {
			seen[o.Reg.First] = true
		}
	}
	return len(seen)
}

// checkSingleSGPR enforces the single-SGPR constraint (§3, §4.3) across a
// VALU instruction's source operands.
func checkSingleSGPR(ops []Operand) error {
	if scalarSourceCount(ops) > 1 {
		return gcnerr.ErrMoreThanOneSGPRToRead
	}
	return nil
}
