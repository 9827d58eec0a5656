/*
   GCN register operand space: SGPR/VGPR ranges and special registers.

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

// Package gcnreg models the GCN 9-bit register operand space: literal
// scalar and vector register ranges, the special-register aliases that
// live in the upper SGPR encoding, and inline constants.
package gcnreg

import (
	"fmt"

	"github.com/gcntools/gcnasm/internal/gcnarch"
	"github.com/gcntools/gcnasm/internal/gcnerr"
)

// Kind distinguishes scalar from vector register ranges.
type Kind int

const (
	Scalar Kind = iota
	Vector
)

func (k Kind) String() string {
	if k == Vector {
		return "v"
	}
	return "s"
}

// Special SGPR-space encodings, indices 106..255 (see §3 of the spec).
const (
	VccLo         = 106
	VccHi         = 107
	FlatScratchLo = 102 // pre-1.4; 1.4+ relocates to 102/103 shared with SGPR top
	FlatScratchHi = 103
	XnackMaskLo   = 104
	XnackMaskHi   = 105
	TBA           = 108
	TMA           = 110
	Ttmp0         = 112
	M0            = 124
	ExecLo        = 126
	ExecHi        = 127
	InlineIntLo   = 128 // 128..192: 0..64
	InlineIntMin1 = 193 // 193..208: -1..-16
	VCCZ          = 251
	EXECZ         = 252
	SCC           = 253
	LDS           = 254
	Literal       = 255
)

// Range is a register operand: either Kind/First/Count literal registers,
// occupying the flat 9-bit operand encoding (vector ranges offset by +256
// in that encoding, but Index here is always the "actual" 0..255 index).
type Range struct {
	Kind  Kind
	First int
	Count int
}

func (r Range) String() string {
	if r.Count == 1 {
		return fmt.Sprintf("%s%d", r.Kind, r.First)
	}
	return fmt.Sprintf("%s[%d:%d]", r.Kind, r.First, r.First+r.Count-1)
}

// RequiredAlignment returns the natural alignment (in registers) that a
// range of this Count must satisfy, per §3: 1 for Count 1 or 3, 2 for
// Count 2, 4 for Count 4-7, 8 for Count 8-15, 16 for Count >= 16.
func RequiredAlignment(count int) int {
	switch {
	case count >= 16:
		return 16
	case count >= 8:
		return 8
	case count >= 4:
		return 4
	case count == 3:
		return 1
	case count >= 2:
		return 2
	default:
		return 1
	}
}

// CheckAlignment validates a literal range's starting index against its
// required alignment and, for scalar ranges, against MaxSGPR(arch).
func CheckAlignment(r Range, arch gcnarch.Arch) error {
	align := RequiredAlignment(r.Count)
	if align > 1 && r.First%align != 0 {
		return fmt.Errorf("%w: %s requires %d-register alignment", gcnerr.ErrMisaligned, r, align)
	}
	if r.Kind == Scalar {
		max := gcnarch.MaxSGPR(arch)
		if r.First+r.Count > max && r.First < 106 {
			return fmt.Errorf("%w: %s exceeds MaxSGPR(%s)=%d", gcnerr.ErrOutOfRange, r, arch, max)
		}
	} else if r.First+r.Count > 256 {
		return fmt.Errorf("%w: %s exceeds VGPR space", gcnerr.ErrOutOfRange, r)
	}
	return nil
}

// EncodeOperand returns the 9-bit (or for literal scalar/special, narrower)
// wire encoding of a single register within r (sub must be 0 <= sub < r.Count).
func EncodeOperand(r Range, sub int) int {
	idx := r.First + sub
	if r.Kind == Vector {
		return 256 + idx
	}
	return idx
}

// DecodeOperand maps a raw 9/8-bit wire field back to a one-register Range.
// VGPR fields (>=256) decode to Vector; everything else is Scalar (possibly
// a special register, which callers identify via IsSpecial/SpecialName).
func DecodeOperand(code int) Range {
	if code >= 256 {
		return Range{Kind: Vector, First: code - 256, Count: 1}
	}
	return Range{Kind: Scalar, First: code, Count: 1}
}

// IsSpecial reports whether a scalar operand code names a special register
// (VCC, EXEC, M0, ttmp*, inline constant, literal marker, ...) rather than
// a plain SGPR.
func IsSpecial(code int) bool {
	return code >= 106
}

// InlineIntConstant returns the integer value of an inline-constant code
// in 128..208, and ok=false outside that range.
func InlineIntConstant(code int) (int, bool) {
	switch {
	case code >= InlineIntLo && code <= 192:
		return code - InlineIntLo, true
	case code >= InlineIntMin1 && code <= 208:
		return -(code - InlineIntMin1 + 1), true
	default:
		return 0, false
	}
}

// inlineFloats are the GCN inline floating point constants, codes 240..247,
// plus 248=1/(2*pi).
var inlineFloats = map[int]float64{
	240: 0.5,
	241: -0.5,
	242: 1.0,
	243: -1.0,
	244: 2.0,
	245: -2.0,
	246: 4.0,
	247: -4.0,
	248: 1.0 / (2.0 * 3.14159265358979323846),
}

// InlineFloatConstant returns the float64 value of an inline float-constant
// code, and ok=false if code does not name one.
func InlineFloatConstant(code int) (float64, bool) {
	v, ok := inlineFloats[code]
	return v, ok
}

// SpecialName returns the assembly mnemonic for a special scalar register
// code ("vcc_lo", "exec_hi", "m0", "scc", ...), or "" if code is a plain
// SGPR or not yet classified below.
func SpecialName(code int) string {
	switch code {
	case VccLo:
		return "vcc_lo"
	case VccHi:
		return "vcc_hi"
	case M0:
		return "m0"
	case ExecLo:
		return "exec_lo"
	case ExecHi:
		return "exec_hi"
	case VCCZ:
		return "vccz"
	case EXECZ:
		return "execz"
	case SCC:
		return "scc"
	case LDS:
		return "lds"
	case TBA:
		return "tba"
	case TBA + 1:
		return "tba_hi"
	case TMA:
		return "tma"
	case TMA + 1:
		return "tma_hi"
	}
	if code >= Ttmp0 && code < Ttmp0+16 {
		return fmt.Sprintf("ttmp%d", code-Ttmp0)
	}
	return ""
}

var specialByName = func() map[string]int {
	m := map[string]int{
		"vcc": VccLo, "vcc_lo": VccLo, "vcc_hi": VccHi,
		"m0": M0, "exec": ExecLo, "exec_lo": ExecLo, "exec_hi": ExecHi,
		"vccz": VCCZ, "execz": EXECZ, "scc": SCC, "lds": LDS,
		"tba": TBA, "tba_hi": TBA + 1, "tma": TMA, "tma_hi": TMA + 1,
		"flat_scratch": FlatScratchLo, "flat_scratch_lo": FlatScratchLo, "flat_scratch_hi": FlatScratchHi,
		"xnack_mask": XnackMaskLo, "xnack_mask_lo": XnackMaskLo, "xnack_mask_hi": XnackMaskHi,
	}
	for i := 0; i < 16; i++ {
		m[fmt.Sprintf("ttmp%d", i)] = Ttmp0 + i
	}
	return m
}()

// SpecialCode returns the scalar operand code for a special register name,
// case-sensitive lowercase as in assembly source.
func SpecialCode(name string) (int, bool) {
	c, ok := specialByName[name]
	return c, ok
}
