/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcncodec

import (
	"math"

	"github.com/gcntools/gcnasm/internal/gcnarch"
	"github.com/gcntools/gcnasm/internal/gcnerr"
	"github.com/gcntools/gcnasm/internal/gcnreg"
)

// Scalar-class identification prefixes (§4.2 stage A: "examine the
// next-highest bits to split SOP1/SOP2/SOPC/SOPP/SOPK").
const (
	sop1Prefix = 0x17D // bits[31:23]
	sopcPrefix = 0x17E
	soppPrefix = 0x17F
	sop2Prefix = 0x2 // bits[31:30]
	sopkPrefix = 0xB // bits[31:28]
)

var (
	fSop1Prefix = field{23, 9}
	fSopcPrefix = field{23, 9}
	fSoppPrefix = field{23, 9}
	fSop2Prefix = field{30, 2}
	fSopkPrefix = field{28, 4}

	fSOP1Sdst = field{16, 7}
	fSOP1Op   = field{8, 8}
	fSOP1Src0 = field{0, 8}

	fSOP2Op    = field{23, 7}
	fSOP2Sdst  = field{16, 7}
	fSOP2Src1  = field{8, 8}
	fSOP2Src0  = field{0, 8}

	fSOPCOp   = field{16, 7}
	fSOPCSrc1 = field{8, 8}
	fSOPCSrc0 = field{0, 8}

	fSOPPOp    = field{16, 7}
	fSOPPSimm  = field{0, 16}

	fSOPKOp    = field{23, 5}
	fSOPKSdst  = field{16, 7}
	fSOPKSimm  = field{0, 16}
)

// resolveScalarSrc returns the 8-bit scalar-source field for op, and a
// non-nil literal word when op is an immediate too wide for an inline
// constant (§3's "literal marker", code 255).
func resolveScalarSrc(op Operand) (code int, literal *uint32, err error) {
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
		if op.Reg.Kind == gcnreg.Vector {
			return 0, nil, gcnerr.ErrOperandKindMismatch
		}
		return op.RegCode(), nil, nil
	}
}

func inlineIntCode(v int64) (int, bool) {
	if v >= 0 && v <= 64 {
		return gcnreg.InlineIntLo + int(v), true
	}
	if v >= -16 && v <= -1 {
		return gcnreg.InlineIntMin1 + int(-v-1), true
	}
	return 0, false
}

func inlineFloatCode(v float64) (int, bool) {
	table := map[float64]int{0.5: 240, -0.5: 241, 1.0: 242, -1.0: 243, 2.0: 244, -2.0: 245, 4.0: 246, -4.0: 247}
	if c, ok := table[v]; ok {
		return c, true
	}
	return 0, false
}

func float32Bits(f float64) uint32 {
	return math.Float32bits(float32(f))
}

// EncodeSOP1 lays out a one-word SOP1 instruction (plus an optional trailing
// literal): (§3, §4.3) prefix | SDST(7) | OP(8) | SSRC0(8).
func EncodeSOP1(in *Instruction) (Encoded, error) {
	if err := checkArch(in); err != nil {
		return Encoded{}, err
	}
	var w uint32
	put(&w, fSop1Prefix, sop1Prefix)
	put(&w, fSOP1Op, in.Entry.Opcode)
	put(&w, fSOP1Sdst, in.Dst.RegCode())
	code, lit, err := resolveScalarSrc(in.Src[0])
	if err != nil {
		return Encoded{}, err
	}
	put(&w, fSOP1Src0, code)
	words := []uint32{w}
	if lit != nil {
		words = append(words, *lit)
	}
	return Encoded{Words: words, Literal: lit != nil}, nil
}

// DecodeSOP1 is the inverse of EncodeSOP1.
func DecodeSOP1(words []uint32) (sdst, op, src0 int) {
	w := words[0]
	return get(w, fSOP1Sdst), get(w, fSOP1Op), get(w, fSOP1Src0)
}

// EncodeSOP2 lays out: prefix(2) | OP(7) | SDST(7) | SSRC1(8) | SSRC0(8).
func EncodeSOP2(in *Instruction) (Encoded, error) {
	if err := checkArch(in); err != nil {
		return Encoded{}, err
	}
	var w uint32
	put(&w, fSop2Prefix, sop2Prefix)
	put(&w, fSOP2Op, in.Entry.Opcode)
	put(&w, fSOP2Sdst, in.Dst.RegCode())
	c1, lit1, err := resolveScalarSrc(in.Src[1])
	if err != nil {
		return Encoded{}, err
	}
	put(&w, fSOP2Src1, c1)
	c0, lit0, err := resolveScalarSrc(in.Src[0])
	if err != nil {
		return Encoded{}, err
	}
	put(&w, fSOP2Src0, c0)
	if lit0 != nil && lit1 != nil {
		return Encoded{}, gcnerr.ErrLiteralAfterLiteral
	}
	words := []uint32{w}
	lit := lit0
	if lit == nil {
		lit = lit1
	}
	if lit != nil {
		words = append(words, *lit)
	}
	return Encoded{Words: words, Literal: lit != nil}, nil
}

// DecodeSOP2 is the inverse of EncodeSOP2.
func DecodeSOP2(words []uint32) (op, sdst, src1, src0 int) {
	w := words[0]
	return get(w, fSOP2Op), get(w, fSOP2Sdst), get(w, fSOP2Src1), get(w, fSOP2Src0)
}

// EncodeSOPC lays out: prefix(9) | OP(7) | SSRC1(8) | SSRC0(8).
func EncodeSOPC(in *Instruction) (Encoded, error) {
	if err := checkArch(in); err != nil {
		return Encoded{}, err
	}
	var w uint32
	put(&w, fSopcPrefix, sopcPrefix)
	put(&w, fSOPCOp, in.Entry.Opcode)
	c1, lit1, err := resolveScalarSrc(in.Src[1])
	if err != nil {
		return Encoded{}, err
	}
	put(&w, fSOPCSrc1, c1)
	c0, lit0, err := resolveScalarSrc(in.Src[0])
	if err != nil {
		return Encoded{}, err
	}
	put(&w, fSOPCSrc0, c0)
	words := []uint32{w}
	if lit0 != nil {
		words = append(words, *lit0)
	} else if lit1 != nil {
		words = append(words, *lit1)
	}
	return Encoded{Words: words, Literal: lit0 != nil || lit1 != nil}, nil
}

// DecodeSOPC is the inverse of EncodeSOPC.
func DecodeSOPC(words []uint32) (op, src1, src0 int) {
	w := words[0]
	return get(w, fSOPCOp), get(w, fSOPCSrc1), get(w, fSOPCSrc0)
}

// EncodeSOPP lays out: prefix(9) | OP(7) | SIMM16(16) (§4.2, §6).
func EncodeSOPP(in *Instruction) (Encoded, error) {
	if err := checkArch(in); err != nil {
		return Encoded{}, err
	}
	var w uint32
	put(&w, fSoppPrefix, soppPrefix)
	put(&w, fSOPPOp, in.Entry.Opcode)
	put(&w, fSOPPSimm, int(uint16(in.Src[0].IntImm)))
	return Encoded{Words: []uint32{w}}, nil
}

// DecodeSOPP is the inverse of EncodeSOPP.
func DecodeSOPP(words []uint32) (op int, simm16 uint16) {
	w := words[0]
	return get(w, fSOPPOp), uint16(get(w, fSOPPSimm))
}

// SOPPBranchTarget computes a branch target per §6: pc_after + sext16(imm)*4,
// where pc_after is the byte offset immediately following this instruction.
func SOPPBranchTarget(pcAfter uint64, imm16 uint16) uint64 {
	return uint64(int64(pcAfter) + int64(int16(imm16))*4)
}

// SOPPImmForTarget is the inverse used by the assembler: given the byte
// offset immediately following this instruction and a target offset,
// returns the signed imm16 or an error if out of ±0x7FFF words (§8).
func SOPPImmForTarget(pcAfter, target uint64) (uint16, error) {
	delta := (int64(target) - int64(pcAfter)) / 4
	if delta > 0x7FFF || delta < -0x8000 {
		return 0, gcnerr.ErrBranchOutOfRange
	}
	return uint16(int16(delta)), nil
}

// soppBranchOpcodes is the set of SOPP opcodes whose SIMM16 names a branch
// target (§4.2 stage A): s_branch(2), s_cbranch_scc0..execnz(4..9), plus
// opcodes 21..26 (the catalog's s_cbranch_cdbg* rows sit at 23..26).
var soppBranchOpcodes = map[int]bool{
	2: true, 4: true, 5: true, 6: true, 7: true, 8: true, 9: true,
	21: true, 22: true, 23: true, 24: true, 25: true, 26: true,
}

// IsSOPPBranch reports whether opcode carries a branch-target SIMM16.
func IsSOPPBranch(opcode int) bool { return soppBranchOpcodes[opcode] }

// EncodeSOPK lays out: prefix(4) | OP(5) | SDST(7) | SIMM16(16).
func EncodeSOPK(in *Instruction) (Encoded, error) {
	if err := checkArch(in); err != nil {
		return Encoded{}, err
	}
	var w uint32
	put(&w, fSopkPrefix, sopkPrefix)
	put(&w, fSOPKOp, in.Entry.Opcode)
	put(&w, fSOPKSdst, in.Dst.RegCode())
	put(&w, fSOPKSimm, int(uint16(in.Src[0].IntImm)))
	return Encoded{Words: []uint32{w}}, nil
}

// DecodeSOPK is the inverse of EncodeSOPK.
func DecodeSOPK(words []uint32) (op, sdst int, simm16 uint16) {
	w := words[0]
	return get(w, fSOPKOp), get(w, fSOPKSdst), uint16(get(w, fSOPKSimm))
}

// HWReg packs a SOPK s_getreg/s_setreg immediate (§6): id(6) | offset(5) |
// size-1(5).
func HWReg(id, offset, sizeBits int) uint16 {
	return uint16(id&0x3F | (offset&0x1F)<<6 | ((sizeBits-1)&0x1F)<<11)
}

// DecodeHWReg is the inverse of HWReg.
func DecodeHWReg(imm uint16) (id, offset, sizeBits int) {
	id = int(imm) & 0x3F
	offset = int(imm>>6) & 0x1F
	sizeBits = int(imm>>11)&0x1F + 1
	return
}

// SendMsg packs a SOPP s_sendmsg immediate (§6): msg(4) | op(2) | stream(2).
func SendMsg(msg, op, stream int) uint16 {
	return uint16(msg&0xF | (op&0x3)<<4 | (stream&0x3)<<8)
}

// DecodeSendMsg is the inverse of SendMsg.
func DecodeSendMsg(imm uint16) (msg, op, stream int) {
	return int(imm) & 0xF, int(imm>>4) & 0x3, int(imm>>8) & 0x3
}

// HWRegIDs names the hwreg() identifiers of §6, keyed by id.
var HWRegIDs = map[int]string{
	1: "mode", 2: "status", 3: "trapsts", 4: "hw_id", 5: "gpr_alloc",
	6: "lds_alloc", 7: "ib_sts", 8: "pc_lo", 9: "pc_hi", 10: "inst_dw0",
	11: "inst_dw1", 12: "ib_dbg0", 13: "ib_dbg1", 14: "flush_ib",
	15: "sh_mem_bases", // GCN 1.2+
	16: "sq_shader_tba_lo", 17: "sq_shader_tba_hi",
	18: "sq_shader_tma_lo", 19: "sq_shader_tma_hi", // GCN 1.4+
}

// SendMsgIDs names the sendmsg() message identifiers of §6.
var SendMsgIDs = map[int]string{
	1: "interrupt", 2: "gs", 3: "gs_done", 15: "system",
	4: "savewave", 5: "stall_wave_gen", 6: "halt_waves", 7: "ordered_ps_done",
	8: "early_prim_dealloc", 9: "gs_alloc_req", 10: "get_doorbell",
}

// SMRD/SMEM family: one word on GCN 1.0-1.1 (SMRD) or two words on GCN 1.2+
// (SMEM), per §3 ("SMEM is SMRD reinterpreted for GCN 1.2+").
var (
	fSMRDPrefix = field{27, 5} // 0b11001
	fSMRDOp     = field{22, 5}
	fSMRDSdst   = field{15, 7}
	fSMRDImm    = field{8, 1}
	fSMRDOffset = field{0, 8}
	fSMRDSbase  = field{9, 6}

	fSMEMPrefix  = field{26, 6} // 0b110000
	fSMEMOp      = field{18, 8}
	fSMEMGLC     = field{16, 1}
	fSMEMSbase   = field{0, 6}
	fSMEMSdataW1 = field{20, 7}
	fSMEMImmW1   = field{27, 1}
	fSMEMOffsetW1 = field{0, 20}
)

const smrdPrefix = 0x19
const smemPrefix = 0x30

// EncodeSMRD lays out the GCN 1.0/1.1 one-word SMRD format:
// prefix(5)|OP(5)|SDST(7)|SBASE(6)|IMM(1)|OFFSET(8).
func EncodeSMRD(in *Instruction) (Encoded, error) {
	if err := checkArch(in); err != nil {
		return Encoded{}, err
	}
	var w uint32
	put(&w, fSMRDPrefix, smrdPrefix)
	put(&w, fSMRDOp, in.Entry.Opcode)
	put(&w, fSMRDSdst, in.Dst.RegCode())
	put(&w, fSMRDSbase, in.Src[0].Reg.First/2)
	if in.Mods.IMM {
		put(&w, fSMRDImm, 1)
		put(&w, fSMRDOffset, int(in.Mods.Offset))
	} else {
		put(&w, fSMRDOffset, in.Src[1].RegCode())
	}
	return Encoded{Words: []uint32{w}}, nil
}

// DecodeSMRD is the inverse of EncodeSMRD.
func DecodeSMRD(words []uint32) (op, sdst, sbase, offset int, imm bool) {
	w := words[0]
	return get(w, fSMRDOp), get(w, fSMRDSdst), get(w, fSMRDSbase) * 2, get(w, fSMRDOffset), get(w, fSMRDImm) != 0
}

// EncodeSMEM lays out the GCN 1.2+ two-word SMEM format: word0 carries
// prefix/op/glc/sbase, word1 carries offset(20)/sdata(7)/imm(1).
func EncodeSMEM(in *Instruction) (Encoded, error) {
	if err := checkArch(in); err != nil {
		return Encoded{}, err
	}
	var w0, w1 uint32
	put(&w0, fSMEMPrefix, smemPrefix)
	put(&w0, fSMEMOp, in.Entry.Opcode)
	if in.Mods.GLC {
		put(&w0, fSMEMGLC, 1)
	}
	put(&w0, fSMEMSbase, in.Src[0].Reg.First/2)
	put(&w1, fSMEMSdataW1, in.Dst.RegCode())
	if in.Mods.IMM {
		put(&w1, fSMEMImmW1, 1)
		put(&w1, fSMEMOffsetW1, in.Mods.Offset)
	} else {
		put(&w1, fSMEMOffsetW1, in.Src[1].RegCode())
	}
	return Encoded{Words: []uint32{w0, w1}}, nil
}

// DecodeSMEM is the inverse of EncodeSMEM.
func DecodeSMEM(words []uint32) (op, sbase, sdata, offset int, glc, imm bool) {
	w0, w1 := words[0], words[1]
	return get(w0, fSMEMOp), get(w0, fSMEMSbase) * 2, get(w1, fSMEMSdataW1),
		get(w1, fSMEMOffsetW1), get(w0, fSMEMGLC) != 0, get(w1, fSMEMImmW1) != 0
}

// SMEMFamily returns whether arch uses the one-word SMRD or two-word SMEM
// shape for the SMRD catalog family (§3).
func SMEMFamily(arch gcnarch.Arch) bool {
	return gcnarch.UsesSMEM(arch)
}
