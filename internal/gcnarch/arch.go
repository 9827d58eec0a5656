/*
   GCN architecture enumeration and per-architecture limits.

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

// Package gcnarch enumerates the AMD GCN architecture generations the
// codec targets and the per-generation limits (max SGPR, vmcnt width,
// lgkmcnt width) that ripple through the catalog, codec and disassembler.
package gcnarch

// Arch identifies one GCN architecture generation.
type Arch int

const (
	GCN_1_0 Arch = iota
	GCN_1_1
	GCN_1_2
	GCN_1_4
	GCN_1_4_1
	GCN_1_5
	GCN_1_5_1

	numArch
)

func (a Arch) String() string {
	switch a {
	case GCN_1_0:
		return "GCN1.0"
	case GCN_1_1:
		return "GCN1.1"
	case GCN_1_2:
		return "GCN1.2"
	case GCN_1_4:
		return "GCN1.4"
	case GCN_1_4_1:
		return "GCN1.4.1"
	case GCN_1_5:
		return "GCN1.5"
	case GCN_1_5_1:
		return "GCN1.5.1"
	default:
		return "unknown"
	}
}

// Mask is a bitmask of architectures an instruction is valid for.
type Mask uint32

func MaskOf(archs ...Arch) Mask {
	var m Mask
	for _, a := range archs {
		m |= 1 << uint(a)
	}
	return m
}

// MaskFrom marks every architecture from first onward (inclusive) as set,
// the common "valid from this generation on" case in the catalog.
func MaskFrom(first Arch) Mask {
	var m Mask
	for a := first; a < numArch; a++ {
		m |= 1 << uint(a)
	}
	return m
}

// MaskAll marks every architecture as valid.
func MaskAll() Mask {
	return MaskFrom(GCN_1_0)
}

func (m Mask) Has(a Arch) bool {
	return m&(1<<uint(a)) != 0
}

// AtLeast reports whether a is at or after ref in generation order.
func AtLeast(a, ref Arch) bool {
	return a >= ref
}

// MaxSGPR returns the highest usable SGPR index (exclusive) for arch.
func MaxSGPR(a Arch) int {
	switch {
	case AtLeast(a, GCN_1_4):
		return 102
	case AtLeast(a, GCN_1_2):
		return 102
	default:
		return 104
	}
}

// VMCntBits returns the width in bits of the vmcnt field of s_waitcnt's imm16.
func VMCntBits(a Arch) int {
	if AtLeast(a, GCN_1_4) {
		return 6
	}
	return 4
}

// LGKMCntBits returns the width in bits of the lgkmcnt field of s_waitcnt's imm16.
func LGKMCntBits(a Arch) int {
	if AtLeast(a, GCN_1_5) {
		return 5
	}
	return 4
}

// ExpCntBits returns the width in bits of the expcnt field of s_waitcnt's imm16.
func ExpCntBits(Arch) int {
	return 3
}

// UsesSMEM reports whether SMRD-family encodings should be interpreted
// under SMEM semantics (two-dword, byte offsets) instead of the original
// one-dword SMRD form.
func UsesSMEM(a Arch) bool {
	return AtLeast(a, GCN_1_2)
}

// HasFlatGlobalScratch reports whether FLAT's seg field may select the
// FLAT_GLOBAL/FLAT_SCRATCH aliases.
func HasFlatGlobalScratch(a Arch) bool {
	return AtLeast(a, GCN_1_4)
}

// SDWALiteralMarkers returns the src0 byte values that mark a VOP1/VOP2/VOPC
// encoding's second dword as an SDWA suffix rather than a plain source field.
func SDWALiteralMarkers(a Arch) (sdwa, dpp byte) {
	if AtLeast(a, GCN_1_5) {
		return 0xE9, 0xEA
	}
	return 0xF9, 0xFA
}
