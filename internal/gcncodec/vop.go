/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcncodec

import (
	"github.com/gcntools/gcnasm/internal/gcnerr"
	"github.com/gcntools/gcnasm/internal/gcnreg"
)

// Vector-class identification: bit31=0, then bits[30:25] distinguish VOP2
// (a plain 6-bit opcode), VOP1 (reserved VOP2 opcode 0x3F), and VOPC
// (reserved VOP2 opcode 0x3E); VOP3A/VOP3B/VOP3P use a distinct 6-bit
// prefix at [31:26] with bit31=1 (§3, §4.2).
const (
	vop1ReservedOp = 0x3F
	vopcReservedOp = 0x3E
	vop3Prefix     = 0x34 // bits[31:26]
	vop3pPrefix    = 0x35 // bits[31:26], distinct from vop3Prefix
)

var (
	fVOP2Op   = field{25, 6}
	fVOPVdst  = field{17, 8}
	fVOPVsrc1 = field{9, 8}
	fVOPSrc0  = field{0, 9}

	fVOP1Op = field{9, 8}

	fVOPCOp = field{17, 8}

	// VOP3A/VOP3B word0: prefix(6)|OP(9)|VDST(8)|CLAMP(1)|OMOD(2)|ABS(3)|_(3).
	fVOP3Prefix = field{26, 6}
	fVOP3Op     = field{17, 9}
	fVOP3Vdst   = field{9, 8}
	fVOP3Clamp  = field{8, 1}
	fVOP3OMod   = field{6, 2}
	fVOP3Abs    = field{3, 3}

	// VOP3B word0 reuses VDST for the primary destination and repurposes
	// bits 1..7 (the ABS field, the OMOD field and two spare bits) as the
	// extra 7-bit scalar destination (e.g. a VOP3B add writing a carry-out
	// SGPR pair), since VOP3B never has operand abs; a VOP3B encoding
	// therefore carries no omod.
	fVOP3BSdst0 = field{1, 7}

	// VOP3A/VOP3B/VOP3P word1: SRC0(9)|SRC1(9)|SRC2(9)|NEG(3)|_(2).
	fVOP3Src0 = field{0, 9}
	fVOP3Src1 = field{9, 9}
	fVOP3Src2 = field{18, 9}
	fVOP3Neg  = field{27, 3}

	// VOP3P reinterprets word1's top spare bits as a 2-bit op_sel (one bit
	// each for source 0 and source 1); op_sel_hi and a per-operand dst op_sel are
	// outside this simplified model (documented scope decision).
	fVOP3POpSel = field{30, 2}
)

func vop3DstField(mods Modifiers) int {
	var v int
	for i, a := range mods.Abs {
		if a {
			v |= 1 << uint(i)
		}
	}
	return v
}

func vop3NegField(mods Modifiers) int {
	var v int
	for i, n := range mods.Neg {
		if n {
			v |= 1 << uint(i)
		}
	}
	return v
}

// EncodeVOP1 lays out: 0|VOP2-reserved-op(0x3F)|VDST(8)|OP(8)|SRC0(9).
func EncodeVOP1(in *Instruction) (Encoded, error) {
	if err := checkArch(in); err != nil {
		return Encoded{}, err
	}
	var w uint32
	put(&w, fVOP2Op, vop1ReservedOp)
	put(&w, fVOPVdst, in.Dst.RegCode())
	put(&w, fVOP1Op, in.Entry.Opcode)
	code, lit, err := resolveVectorSrc(in.Src[0])
	if err != nil {
		return Encoded{}, err
	}
	put(&w, fVOPSrc0, code)
	words := []uint32{w}
	if lit != nil {
		words = append(words, *lit)
	}
	return Encoded{Words: words, Literal: lit != nil}, nil
}

// DecodeVOP1 is the inverse of EncodeVOP1.
func DecodeVOP1(words []uint32) (vdst, op, src0 int) {
	w := words[0]
	return get(w, fVOPVdst), get(w, fVOP1Op), get(w, fVOPSrc0)
}

// EncodeVOP2 lays out: 0|OP(6)|VDST(8)|VSRC1(8)|SRC0(9). VSRC1 is always a
// plain VGPR. The MADAK/MADMK forms (§4.2) always carry a trailing literal;
// the catalog's Flags distinguish them only by mnemonic, so the literal
// requirement here simply follows from src0/src1 needing one.
func EncodeVOP2(in *Instruction) (Encoded, error) {
	if err := checkArch(in); err != nil {
		return Encoded{}, err
	}
	if err := checkSingleSGPR(in.Src[:in.NSrc]); err != nil {
		return Encoded{}, err
	}
	if in.Src[1].Reg.Kind != gcnreg.Vector {
		return Encoded{}, gcnerr.ErrOperandKindMismatch
	}
	var w uint32
	put(&w, fVOP2Op, in.Entry.Opcode)
	put(&w, fVOPVdst, in.Dst.RegCode())
	put(&w, fVOPVsrc1, in.Src[1].RegCode())
	code, lit, err := resolveVectorSrc(in.Src[0])
	if err != nil {
		return Encoded{}, err
	}
	put(&w, fVOPSrc0, code)
	words := []uint32{w}
	if lit != nil {
		words = append(words, *lit)
	}
	return Encoded{Words: words, Literal: lit != nil}, nil
}

// DecodeVOP2 is the inverse of EncodeVOP2.
func DecodeVOP2(words []uint32) (op, vdst, vsrc1, src0 int) {
	w := words[0]
	return get(w, fVOP2Op), get(w, fVOPVdst), get(w, fVOPVsrc1), get(w, fVOPSrc0)
}

// EncodeVOPC lays out: 0|VOP2-reserved-op(0x3E)|OP(8)|VSRC1(8)|SRC0(9).
// Destination is implicit VCC (§3's VOPCDefaultVCC mode flag); a VOPC
// writing an arbitrary SGPR pair instead is out of this codec's scope.
func EncodeVOPC(in *Instruction) (Encoded, error) {
	if err := checkArch(in); err != nil {
		return Encoded{}, err
	}
	if err := checkSingleSGPR(in.Src[:in.NSrc]); err != nil {
		return Encoded{}, err
	}
	var w uint32
	put(&w, fVOP2Op, vopcReservedOp)
	put(&w, fVOPCOp, in.Entry.Opcode)
	put(&w, fVOPVsrc1, in.Src[1].RegCode())
	code, lit, err := resolveVectorSrc(in.Src[0])
	if err != nil {
		return Encoded{}, err
	}
	put(&w, fVOPSrc0, code)
	words := []uint32{w}
	if lit != nil {
		words = append(words, *lit)
	}
	return Encoded{Words: words, Literal: lit != nil}, nil
}

// DecodeVOPC is the inverse of EncodeVOPC.
func DecodeVOPC(words []uint32) (op, vsrc1, src0 int) {
	w := words[0]
	return get(w, fVOPCOp), get(w, fVOPVsrc1), get(w, fVOPSrc0)
}

// EncodeVOP3A lays out a two-word VOP3 instruction promoting any VOP1/VOP2/
// VOPC opcode, plus native VOP3-only instructions (v_mad_f32, v_fma_f64,
// v_bfe_u32, ...): word0 prefix/op/vdst/clamp/omod/abs, word1 src0/src1/
// src2/neg (§3, §6).
func EncodeVOP3A(in *Instruction) (Encoded, error) {
	if err := checkArch(in); err != nil {
		return Encoded{}, err
	}
	if err := checkSingleSGPR(in.Src[:in.NSrc]); err != nil {
		return Encoded{}, err
	}
	var w0, w1 uint32
	put(&w0, fVOP3Prefix, vop3Prefix)
	put(&w0, fVOP3Op, in.Entry.Opcode)
	put(&w0, fVOP3Vdst, in.Dst.RegCode())
	if in.Mods.Clamp {
		put(&w0, fVOP3Clamp, 1)
	}
	put(&w0, fVOP3OMod, in.Mods.OMod)
	put(&w0, fVOP3Abs, vop3DstField(in.Mods))

	put(&w1, fVOP3Src0, in.Src[0].RegCode())
	if in.NSrc > 1 {
		put(&w1, fVOP3Src1, in.Src[1].RegCode())
	}
	if in.NSrc > 2 {
		put(&w1, fVOP3Src2, in.Src[2].RegCode())
	}
	put(&w1, fVOP3Neg, vop3NegField(in.Mods))
	return Encoded{Words: []uint32{w0, w1}}, nil
}

// DecodeVOP3A is the inverse of EncodeVOP3A.
func DecodeVOP3A(words []uint32) (op, vdst, clamp, omod, abs, src0, src1, src2, neg int) {
	w0, w1 := words[0], words[1]
	return get(w0, fVOP3Op), get(w0, fVOP3Vdst), get(w0, fVOP3Clamp), get(w0, fVOP3OMod), get(w0, fVOP3Abs),
		get(w1, fVOP3Src0), get(w1, fVOP3Src1), get(w1, fVOP3Src2), get(w1, fVOP3Neg)
}

// EncodeVOP3B lays out a two-word VOP3 instruction whose mode flags declare
// VOP3BExtraSdst (§3): word0's abs bits are repurposed as a 7-bit scalar
// destination (e.g. the carry-out SGPR pair of v_add_i32, or the two
// destinations of v_div_scale_f32/v_mad_u64_u32).
func EncodeVOP3B(in *Instruction, sdst0 gcnreg.Range) (Encoded, error) {
	if err := checkArch(in); err != nil {
		return Encoded{}, err
	}
	var w0, w1 uint32
	put(&w0, fVOP3Prefix, vop3Prefix)
	put(&w0, fVOP3Op, in.Entry.Opcode)
	put(&w0, fVOP3Vdst, in.Dst.RegCode())
	if in.Mods.Clamp {
		put(&w0, fVOP3Clamp, 1)
	}
	put(&w0, fVOP3OMod, in.Mods.OMod)
	put(&w0, fVOP3BSdst0, gcnreg.EncodeOperand(sdst0, 0))

	put(&w1, fVOP3Src0, in.Src[0].RegCode())
	if in.NSrc > 1 {
		put(&w1, fVOP3Src1, in.Src[1].RegCode())
	}
	if in.NSrc > 2 {
		put(&w1, fVOP3Src2, in.Src[2].RegCode())
	}
	put(&w1, fVOP3Neg, vop3NegField(in.Mods))
	return Encoded{Words: []uint32{w0, w1}}, nil
}

// DecodeVOP3B is the inverse of EncodeVOP3B.
func DecodeVOP3B(words []uint32) (op, vdst, sdst0, src0, src1, src2, neg int) {
	w0, w1 := words[0], words[1]
	return get(w0, fVOP3Op), get(w0, fVOP3Vdst), get(w0, fVOP3BSdst0),
		get(w1, fVOP3Src0), get(w1, fVOP3Src1), get(w1, fVOP3Src2), get(w1, fVOP3Neg)
}

// EncodeVOP3P lays out a two-word packed-math instruction (v_pk_*, §3/§6):
// same word0 shape as VOP3A; word1 adds a 2-bit op_sel in its top bits. Full
// op_sel_hi/per-operand-dst op_sel fidelity is out of this simplified
// model's bit budget (see DESIGN.md).
func EncodeVOP3P(in *Instruction) (Encoded, error) {
	if err := checkArch(in); err != nil {
		return Encoded{}, err
	}
	var w0, w1 uint32
	put(&w0, fVOP3Prefix, vop3pPrefix)
	put(&w0, fVOP3Op, in.Entry.Opcode)
	put(&w0, fVOP3Vdst, in.Dst.RegCode())

	put(&w1, fVOP3Src0, in.Src[0].RegCode())
	if in.NSrc > 1 {
		put(&w1, fVOP3Src1, in.Src[1].RegCode())
	}
	if in.NSrc > 2 {
		put(&w1, fVOP3Src2, in.Src[2].RegCode())
	}
	var opsel int
	for i := 0; i < 2 && i < len(in.Mods.OpSel); i++ {
		if in.Mods.OpSel[i] {
			opsel |= 1 << uint(i)
		}
	}
	put(&w1, fVOP3POpSel, opsel)
	return Encoded{Words: []uint32{w0, w1}}, nil
}

// DecodeVOP3P is the inverse of EncodeVOP3P.
func DecodeVOP3P(words []uint32) (op, vdst, src0, src1, src2, opsel int) {
	w0, w1 := words[0], words[1]
	return get(w0, fVOP3Op), get(w0, fVOP3Vdst), get(w1, fVOP3Src0), get(w1, fVOP3Src1), get(w1, fVOP3Src2), get(w1, fVOP3POpSel)
}

// resolveVectorSrc returns the 9-bit SRC0 field for op (SGPR, VGPR,
// special, or inline constant), and a trailing literal word when op is an
// immediate too wide for an inline constant.
func resolveVectorSrc(op Operand) (code int, literal *uint32, err error) {
	switch {
	case op.IsSpecial:
		return op.Special, nil, nil
	case op.IsIntImm:
		if c, ok := inlineIntCode(op.IntImm); ok {
			return c, nil, nil
		}
		w := uint32(op.IntImm)
		return gcnreg.Literal, &w, nil
	case op.IsFloatImm:
		if c, ok := inlineFloatCode(op.FloatImm); ok {
			return c, nil, nil
		}
		w := float32Bits(op.FloatImm)
		return gcnreg.Literal, &w, nil
	default:
		return op.RegCode(), nil, nil
	}
}

// VINTRP family: a single word, 32-bit, always one word (no literal). Layout
// (§3, our design): prefix(6)|VDST(8)|ATTRCHAN(2)|ATTR(6)|OP(2)|VSRC0(8).
// The prefix occupies the same bits[31:26] family-discrimination slot as
// VOP3A/VOP3P/DS/MUBUF/MTBUF/MIMG/EXP, each with its own distinct value.
var (
	fVINTRPPrefix = field{26, 6}
	fVINTRPVdst   = field{18, 8}
	fVINTRPChan   = field{16, 2}
	fVINTRPAttr   = field{10, 6}
	fVINTRPOp     = field{8, 2}
	fVINTRPVsrc0  = field{0, 8}
)

const vintrpPrefix = 0x31

// EncodeVINTRP lays out v_interp_p1/p2/mov instructions.
func EncodeVINTRP(in *Instruction, attr, chan_ int) (Encoded, error) {
	if err := checkArch(in); err != nil {
		return Encoded{}, err
	}
	var w uint32
	put(&w, fVINTRPPrefix, vintrpPrefix)
	put(&w, fVINTRPVdst, in.Dst.RegCode())
	put(&w, fVINTRPChan, chan_)
	put(&w, fVINTRPAttr, attr)
	put(&w, fVINTRPOp, in.Entry.Opcode)
	put(&w, fVINTRPVsrc0, in.Src[0].RegCode())
	return Encoded{Words: []uint32{w}}, nil
}

// DecodeVINTRP is the inverse of EncodeVINTRP.
func DecodeVINTRP(words []uint32) (vdst, chan_, attr, op, vsrc0 int) {
	w := words[0]
	return get(w, fVINTRPVdst), get(w, fVINTRPChan), get(w, fVINTRPAttr), get(w, fVINTRPOp), get(w, fVINTRPVsrc0)
}
