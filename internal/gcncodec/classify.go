/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcncodec

import (
	"github.com/gcntools/gcnasm/internal/gcnarch"
	"github.com/gcntools/gcnasm/internal/gcncatalog"
)

var (
	fTop9 = field{23, 9}
	fTop7 = field{25, 7}
	fTop6 = field{26, 6}
	fTop4 = field{28, 4}
	fTop2 = field{30, 2}
)

// ClassifyFamily identifies the encoding family of the first code word of
// an instruction (§4.2 stage A). Families sharing a bit range are checked
// from most specific (widest prefix) to least specific, mirroring how the
// prefixes were allocated in scalar.go/vop.go/mem.go: SOP1/SOPC/SOPP's
// 9-bit prefixes sit inside SOPK's 4-bit prefix, which sits inside SOP2's
// 2-bit prefix; every two-word vector/VMEM family after that occupies a
// disjoint 6- or 7-bit slot. wordCount reports how many 32-bit words the
// instruction occupies before any trailing literal dword.
func ClassifyFamily(w0 uint32, arch gcnarch.Arch) (family gcncatalog.Family, wordCount int, ok bool) {
	switch get(w0, fTop9) {
	case sop1Prefix:
		return gcncatalog.SOP1, 1, true
	case sopcPrefix:
		return gcncatalog.SOPC, 1, true
	case soppPrefix:
		return gcncatalog.SOPP, 1, true
	}
	if get(w0, fTop4) == sopkPrefix {
		return gcncatalog.SOPK, 1, true
	}
	if get(w0, fTop2) == sop2Prefix {
		return gcncatalog.SOP2, 1, true
	}

	if gcnarch.UsesSMEM(arch) {
		if get(w0, fTop6) == smemPrefix {
			return gcncatalog.SMRD, 2, true
		}
	} else if get(w0, field{27, 5}) == smrdPrefix {
		return gcncatalog.SMRD, 1, true
	}

	switch get(w0, fTop6) {
	case vintrpPrefix:
		return gcncatalog.VINTRP, 1, true
	case vop3Prefix:
		return gcncatalog.VOP3A, 2, true // VOP3B distinguished by catalog Flags, not encoding
	case vop3pPrefix:
		return gcncatalog.VOP3P, 2, true
	case dsPrefix:
		return gcncatalog.DS, 2, true
	case mubufPrefix:
		return gcncatalog.MUBUF, 2, true
	case mtbufPrefix:
		return gcncatalog.MTBUF, 2, true
	case mimgPrefix:
		return gcncatalog.MIMG, 2, true
	case expPrefix:
		return gcncatalog.EXP, 1, true // second word only when !compr
	}
	if get(w0, fTop7) == flatPrefix {
		return gcncatalog.FLAT, 2, true
	}

	// Plain 32-bit vector class: VOP2, or VOP1/VOPC via VOP2's reserved
	// opcode values (§3, §4.2).
	switch get(w0, fVOP2Op) {
	case vop1ReservedOp:
		return gcncatalog.VOP1, 1, true
	case vopcReservedOp:
		return gcncatalog.VOPC, 1, true
	}
	return gcncatalog.VOP2, 1, true
}

// HasTrailingLiteral reports whether the SRC0 field of a VOP1/VOP2/VOPC/
// SOP1/SOP2/SOPC word names the literal-constant marker (§3 code 255),
// meaning one more code word follows before the next instruction.
func HasTrailingLiteral(family gcncatalog.Family, w0 uint32) bool {
	switch family {
	case gcncatalog.VOP1:
		return get(w0, fVOPSrc0) == 0xFF
	case gcncatalog.VOP2:
		return get(w0, fVOPSrc0) == 0xFF
	case gcncatalog.VOPC:
		return get(w0, fVOPSrc0) == 0xFF
	case gcncatalog.SOP1:
		return get(w0, fSOP1Src0) == 0xFF
	case gcncatalog.SOP2:
		return get(w0, fSOP2Src0) == 0xFF || get(w0, fSOP2Src1) == 0xFF
	case gcncatalog.SOPC:
		return get(w0, fSOPCSrc0) == 0xFF || get(w0, fSOPCSrc1) == 0xFF
	}
	return false
}

// DecodeOpcode extracts the family-specific opcode field from an
// instruction's first code word (§4.2 stage B step 2).
func DecodeOpcode(family gcncatalog.Family, w0 uint32) int {
	switch family {
	case gcncatalog.SOP1:
		return get(w0, fSOP1Op)
	case gcncatalog.SOP2:
		return get(w0, fSOP2Op)
	case gcncatalog.SOPC:
		return get(w0, fSOPCOp)
	case gcncatalog.SOPP:
		return get(w0, fSOPPOp)
	case gcncatalog.SOPK:
		return get(w0, fSOPKOp)
	case gcncatalog.SMRD:
		// Caller must branch on SMEMFamily(arch) before indexing word1 vs
		// word0; this helper only covers the shared word0 opcode location
		// that differs between SMRD's 5-bit and SMEM's 8-bit field.
		if get(w0, fSMEMPrefix) == smemPrefix {
			return get(w0, fSMEMOp)
		}
		return get(w0, fSMRDOp)
	case gcncatalog.VOP1:
		return get(w0, fVOP1Op)
	case gcncatalog.VOP2:
		return get(w0, fVOP2Op)
	case gcncatalog.VOPC:
		return get(w0, fVOPCOp)
	case gcncatalog.VOP3A, gcncatalog.VOP3B, gcncatalog.VOP3P:
		return get(w0, fVOP3Op)
	case gcncatalog.VINTRP:
		return get(w0, fVINTRPOp)
	case gcncatalog.DS:
		return get(w0, fDSOp)
	case gcncatalog.MUBUF:
		return get(w0, fMUBUFOp)
	case gcncatalog.MTBUF:
		return get(w0, fMTBUFOp)
	case gcncatalog.MIMG:
		return get(w0, fMIMGOp)
	case gcncatalog.FLAT:
		return get(w0, fFLATOp)
	}
	return 0
}
