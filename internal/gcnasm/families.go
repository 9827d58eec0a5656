/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcnasm

import (
	"fmt"
	"strings"

	"github.com/gcntools/gcnasm/internal/gcncatalog"
	"github.com/gcntools/gcnasm/internal/gcncodec"
	"github.com/gcntools/gcnasm/internal/gcnerr"
	"github.com/gcntools/gcnasm/internal/gcnreg"
	"github.com/gcntools/gcnasm/internal/gcnregvar"
	"github.com/gcntools/gcnasm/internal/gcnwait"
	"github.com/gcntools/gcnasm/internal/srcpos"
)

// splitOperandsAndMods divides an instruction's operand text into its
// comma-separated operand fields and the space-separated modifier tokens
// trailing the last one ("v0, v1, v2 offset:4 glc" -> operands [v0,v1,v2],
// mods [offset:4, glc]).
func splitOperandsAndMods(text string) (operands, mods []string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	fs := splitTopLevel(text, ',')
	last := fields(fs[len(fs)-1])
	if len(last) == 0 {
		return fs[:len(fs)-1], nil
	}
	operands = append(append([]string{}, fs[:len(fs)-1]...), last[0])
	mods = last[1:]
	return operands, mods
}

func splitParenCall(tok string) (name, arg string, ok bool) {
	i := strings.IndexByte(tok, '(')
	if i < 0 || !strings.HasSuffix(tok, ")") {
		return "", "", false
	}
	return tok[:i], tok[i+1 : len(tok)-1], true
}

// pushPos records the current offset's source position; a no-op outside
// pass 2, since pass 1 never commits to the code buffer.
func (as *Assembler) pushPos(pass, lineNo int) {
	if pass == 2 {
		as.pos.Push(as.offset, srcpos.Position{File: as.file, Line: uint64(lineNo)})
	}
}

func (as *Assembler) emit(pass int, res resolved, field gcnregvar.FieldID, rw gcnregvar.RWFlags, align int) {
	if pass == 2 {
		as.emitUsageNow(res, field, rw, align)
	}
}

func (as *Assembler) emitWait(pass int, res resolved, class gcnwait.DelayClass, rw gcnregvar.RWFlags) {
	if pass == 2 {
		as.emitDelayedNow(res, class, rw)
	}
}

func countOf(op gcncodec.Operand) int {
	if op.IsSpecial || op.IsIntImm || op.IsFloatImm {
		return 1
	}
	return op.Reg.Count
}

// buildFamily dispatches to the per-family instruction builder.
func (as *Assembler) buildFamily(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	switch entry.Family {
	case gcncatalog.SOP1:
		return as.buildSOP1(entry, st, pass, lineNo)
	case gcncatalog.SOP2:
		return as.buildSOP2(entry, st, pass, lineNo)
	case gcncatalog.SOPC:
		return as.buildSOPC(entry, st, pass, lineNo)
	case gcncatalog.SOPP:
		return as.buildSOPP(entry, st, pass, lineNo)
	case gcncatalog.SOPK:
		return as.buildSOPK(entry, st, pass, lineNo)
	case gcncatalog.SMRD:
		return as.buildSMRD(entry, st, pass, lineNo)
	case gcncatalog.VOP1:
		return as.buildVOP1(entry, st, pass, lineNo)
	case gcncatalog.VOP2:
		return as.buildVOP2(entry, st, pass, lineNo)
	case gcncatalog.VOPC:
		return as.buildVOPC(entry, st, pass, lineNo)
	case gcncatalog.VOP3A, gcncatalog.VOP3B:
		return as.buildVOP3(entry, st, pass, lineNo)
	case gcncatalog.VOP3P:
		return as.buildVOP3P(entry, st, pass, lineNo)
	case gcncatalog.VINTRP:
		return as.buildVINTRP(entry, st, pass, lineNo)
	case gcncatalog.DS:
		return as.buildDS(entry, st, pass, lineNo)
	case gcncatalog.MUBUF:
		return as.buildMUBUF(entry, st, pass, lineNo)
	case gcncatalog.MTBUF:
		return as.buildMTBUF(entry, st, pass, lineNo)
	case gcncatalog.MIMG:
		return as.buildMIMG(entry, st, pass, lineNo)
	case gcncatalog.EXP:
		return as.buildEXP(entry, st, pass, lineNo)
	case gcncatalog.FLAT:
		return as.buildFLAT(entry, st, pass, lineNo)
	default:
		return 0, fmt.Errorf("%w: family %s not supported", gcnerr.ErrUnknownInstruction, entry.Family)
	}
}

// ---- SOP1 ----

func (as *Assembler) buildSOP1(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, mods := splitOperandsAndMods(st.operandText)
	if len(mods) > 0 {
		return 0, fmt.Errorf("%w: %s takes no modifiers", gcnerr.ErrInvalidModifier, st.mnemonic)
	}
	var dst, src resolved
	var err error
	hasDst := len(operands) == 2
	switch len(operands) {
	case 2:
		if dst, err = as.resolveToken(operands[0]); err != nil {
			return 0, err
		}
		if src, err = as.resolveToken(operands[1]); err != nil {
			return 0, err
		}
	case 1:
		if src, err = as.resolveToken(operands[0]); err != nil {
			return 0, err
		}
	default:
		return 0, fmt.Errorf("%s: expected 1 or 2 operands", st.mnemonic)
	}

	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Dst: dst.Op, Src: [3]gcncodec.Operand{src.Op}, NSrc: 1}
	enc, err := gcncodec.EncodeSOP1(in)
	if err != nil {
		return 0, err
	}
	as.pushPos(pass, lineNo)
	if hasDst {
		as.emit(pass, dst, gcnregvar.FieldSDST, gcnregvar.Write, 1)
		as.emitWait(pass, dst, gcnwait.ClassVALU, gcnregvar.Write)
	}
	as.emit(pass, src, gcnregvar.FieldSSRC0, gcnregvar.Read, 1)
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

// ---- SOP2 ----

func (as *Assembler) buildSOP2(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, mods := splitOperandsAndMods(st.operandText)
	if len(mods) > 0 {
		return 0, fmt.Errorf("%w: %s takes no modifiers", gcnerr.ErrInvalidModifier, st.mnemonic)
	}
	if len(operands) != 3 {
		return 0, fmt.Errorf("%s: expected dst, src0, src1", st.mnemonic)
	}
	dst, err := as.resolveToken(operands[0])
	if err != nil {
		return 0, err
	}
	src0, err := as.resolveToken(operands[1])
	if err != nil {
		return 0, err
	}
	src1, err := as.resolveToken(operands[2])
	if err != nil {
		return 0, err
	}

	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Dst: dst.Op, Src: [3]gcncodec.Operand{src0.Op, src1.Op}, NSrc: 2}
	enc, err := gcncodec.EncodeSOP2(in)
	if err != nil {
		return 0, err
	}
	as.pushPos(pass, lineNo)
	as.emit(pass, dst, gcnregvar.FieldSDST, gcnregvar.Write, 1)
	as.emitWait(pass, dst, gcnwait.ClassVALU, gcnregvar.Write)
	as.emit(pass, src0, gcnregvar.FieldSSRC0, gcnregvar.Read, 1)
	as.emit(pass, src1, gcnregvar.FieldSSRC1, gcnregvar.Read, 1)
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

// ---- SOPC ----

func (as *Assembler) buildSOPC(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, mods := splitOperandsAndMods(st.operandText)
	if len(mods) > 0 {
		return 0, fmt.Errorf("%w: %s takes no modifiers", gcnerr.ErrInvalidModifier, st.mnemonic)
	}
	if len(operands) != 2 {
		return 0, fmt.Errorf("%s: expected src0, src1", st.mnemonic)
	}
	src0, err := as.resolveToken(operands[0])
	if err != nil {
		return 0, err
	}
	src1, err := as.resolveToken(operands[1])
	if err != nil {
		return 0, err
	}

	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Src: [3]gcncodec.Operand{src0.Op, src1.Op}, NSrc: 2}
	enc, err := gcncodec.EncodeSOPC(in)
	if err != nil {
		return 0, err
	}
	as.pushPos(pass, lineNo)
	as.emit(pass, src0, gcnregvar.FieldSSRC0, gcnregvar.Read, 1)
	as.emit(pass, src1, gcnregvar.FieldSSRC1, gcnregvar.Read, 1)
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

// ---- SOPP ----

func parseWaitcnt(toks []string) (gcnwait.Waits, error) {
	w := gcnwait.Waits{VMCnt: gcnwait.NoWait, ExpCnt: gcnwait.NoWait, LGKMCnt: gcnwait.NoWait}
	for _, t := range toks {
		if t == "&" {
			continue
		}
		name, arg, ok := splitParenCall(t)
		if !ok {
			return w, fmt.Errorf("s_waitcnt: bad operand %q", t)
		}
		n, ok := parseIntLiteral(arg)
		if !ok {
			return w, fmt.Errorf("s_waitcnt: bad value %q", t)
		}
		switch name {
		case "vmcnt":
			w.VMCnt = int(n)
		case "lgkmcnt":
			w.LGKMCnt = int(n)
		case "expcnt":
			w.ExpCnt = int(n)
		default:
			return w, fmt.Errorf("s_waitcnt: unknown field %q", name)
		}
	}
	return w, nil
}

func (as *Assembler) buildSOPP(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	toks := fields(st.operandText)
	var simm16 uint16
	isWaitcnt := st.mnemonic == "s_waitcnt"
	isBranch := gcncodec.IsSOPPBranch(entry.Opcode)
	var waits gcnwait.Waits

	switch {
	case isWaitcnt:
		w, err := parseWaitcnt(toks)
		if err != nil {
			return 0, err
		}
		waits = w
		simm16 = gcnwait.EncodeImm16(as.Arch, w)
	case isBranch:
		if len(toks) != 1 {
			return 0, fmt.Errorf("%s: expected a label operand", st.mnemonic)
		}
		if pass == 2 {
			target, ok := as.labels[toks[0]]
			if !ok {
				return 0, fmt.Errorf("undefined label %q", toks[0])
			}
			imm, err := gcncodec.SOPPImmForTarget(as.offset+4, target)
			if err != nil {
				return 0, err
			}
			simm16 = imm
		}
	case len(toks) == 1:
		v, ok := parseIntLiteral(toks[0])
		if !ok {
			return 0, fmt.Errorf("%s: expected an immediate operand", st.mnemonic)
		}
		simm16 = uint16(v)
	case len(toks) == 0:
		simm16 = 0
	default:
		return 0, fmt.Errorf("%s: too many operands", st.mnemonic)
	}

	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Src: [3]gcncodec.Operand{{IsIntImm: true, IntImm: int64(simm16)}}}
	enc, err := gcncodec.EncodeSOPP(in)
	if err != nil {
		return 0, err
	}
	as.pushPos(pass, lineNo)
	if pass == 2 {
		if isWaitcnt {
			as.wait.EmitWait(gcnwait.WaitInstr{Offset: as.offset, Waits: waits})
		}
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

// ---- SOPK ----

func (as *Assembler) buildSOPK(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	toks := splitTopLevel(st.operandText, ',')
	if len(toks) == 1 && toks[0] == "" {
		toks = nil
	}

	var dst resolved
	var simm16 uint16
	var rw gcnregvar.RWFlags = gcnregvar.Write

	switch st.mnemonic {
	case "s_sendmsg":
		if len(toks) != 1 {
			return 0, fmt.Errorf("s_sendmsg: expected sendmsg(...)")
		}
		name, arg, ok := splitParenCall(toks[0])
		if !ok || name != "sendmsg" {
			return 0, fmt.Errorf("s_sendmsg: bad operand %q", toks[0])
		}
		args := splitTopLevel(arg, ',')
		msg, _ := parseIntLiteral(args[0])
		var op, stream int64
		if len(args) > 1 {
			op, _ = parseIntLiteral(args[1])
		}
		if len(args) > 2 {
			stream, _ = parseIntLiteral(args[2])
		}
		simm16 = gcncodec.SendMsg(int(msg), int(op), int(stream))

	case "s_setreg_b32", "s_getreg_b32":
		if len(toks) != 2 {
			return 0, fmt.Errorf("%s: expected 2 operands", st.mnemonic)
		}
		hwTok, regTok := toks[0], toks[1]
		if st.mnemonic == "s_getreg_b32" {
			regTok, hwTok = toks[0], toks[1]
			rw = gcnregvar.Write
		} else {
			rw = gcnregvar.Read
		}
		name, arg, ok := splitParenCall(hwTok)
		if !ok || name != "hwreg" {
			return 0, fmt.Errorf("%s: bad hwreg() operand %q", st.mnemonic, hwTok)
		}
		args := splitTopLevel(arg, ',')
		id, _ := parseIntLiteral(args[0])
		offset, size := int64(0), int64(32)
		if len(args) > 1 {
			offset, _ = parseIntLiteral(args[1])
		}
		if len(args) > 2 {
			size, _ = parseIntLiteral(args[2])
		}
		simm16 = gcncodec.HWReg(int(id), int(offset), int(size))
		var err error
		if dst, err = as.resolveToken(regTok); err != nil {
			return 0, err
		}

	default:
		if len(toks) != 2 {
			return 0, fmt.Errorf("%s: expected dst, imm16", st.mnemonic)
		}
		var err error
		if dst, err = as.resolveToken(toks[0]); err != nil {
			return 0, err
		}
		v, ok := parseIntLiteral(toks[1])
		if !ok {
			return 0, fmt.Errorf("%s: bad immediate %q", st.mnemonic, toks[1])
		}
		simm16 = uint16(v)
		if strings.HasPrefix(st.mnemonic, "s_cmpk") {
			rw = gcnregvar.Read
		}
	}

	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Dst: dst.Op, Src: [3]gcncodec.Operand{{IsIntImm: true, IntImm: int64(simm16)}}}
	enc, err := gcncodec.EncodeSOPK(in)
	if err != nil {
		return 0, err
	}
	as.pushPos(pass, lineNo)
	as.emit(pass, dst, gcnregvar.FieldSDST, rw, 1)
	if rw == gcnregvar.Write {
		as.emitWait(pass, dst, gcnwait.ClassVALU, gcnregvar.Write)
	}
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

// ---- SMRD/SMEM ----

func (as *Assembler) buildSMRD(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, modTokens := splitOperandsAndMods(st.operandText)
	if len(operands) != 3 {
		return 0, fmt.Errorf("%s: expected dst, sbase, offset", st.mnemonic)
	}
	mods, err := parseModifiers(modTokens)
	if err != nil {
		return 0, err
	}
	dst, err := as.resolveToken(operands[0])
	if err != nil {
		return 0, err
	}
	sbase, err := as.resolveToken(operands[1])
	if err != nil {
		return 0, err
	}
	var soffset resolved
	if v, ok := parseIntLiteral(operands[2]); ok {
		mods.IMM = true
		mods.Offset = int(v)
	} else {
		if soffset, err = as.resolveToken(operands[2]); err != nil {
			return 0, err
		}
	}

	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Dst: dst.Op, Src: [3]gcncodec.Operand{sbase.Op, soffset.Op}, NSrc: 2, Mods: mods}
	var enc gcncodec.Encoded
	if gcncodec.SMEMFamily(as.Arch) {
		enc, err = gcncodec.EncodeSMEM(in)
	} else {
		enc, err = gcncodec.EncodeSMRD(in)
	}
	if err != nil {
		return 0, err
	}

	store := strings.Contains(st.mnemonic, "store")
	dstRW := gcnregvar.Write
	if store {
		dstRW = gcnregvar.Read
	}
	as.pushPos(pass, lineNo)
	as.emit(pass, dst, gcnregvar.FieldSMRDSdst, dstRW, 1)
	as.emit(pass, sbase, gcnregvar.FieldSMRDSbase, gcnregvar.Read, 2)
	if !mods.IMM {
		as.emit(pass, soffset, gcnregvar.FieldSMRDSoffset, gcnregvar.Read, 1)
	}
	as.emitWait(pass, dst, gcnwait.ClassSMEM, dstRW)
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

// ---- VOP1/VOP2/VOPC ----

func (as *Assembler) buildVOP1(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, mods := splitOperandsAndMods(st.operandText)
	if len(mods) > 0 {
		return 0, fmt.Errorf("%w: %s takes no modifiers", gcnerr.ErrInvalidModifier, st.mnemonic)
	}
	if len(operands) != 2 {
		return 0, fmt.Errorf("%s: expected dst, src0", st.mnemonic)
	}
	dst, err := as.resolveToken(operands[0])
	if err != nil {
		return 0, err
	}
	src0, err := as.resolveToken(operands[1])
	if err != nil {
		return 0, err
	}
	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Dst: dst.Op, Src: [3]gcncodec.Operand{src0.Op}, NSrc: 1}
	enc, err := gcncodec.EncodeVOP1(in)
	if err != nil {
		return 0, err
	}
	as.pushPos(pass, lineNo)
	as.emit(pass, dst, gcnregvar.FieldVOPVdst, gcnregvar.Write, gcnreg.RequiredAlignment(countOf(dst.Op)))
	as.emit(pass, src0, gcnregvar.FieldVOPSrc0, gcnregvar.Read, 1)
	as.emitWait(pass, dst, gcnwait.ClassVALU, gcnregvar.Write)
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

func (as *Assembler) buildVOP2(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, mods := splitOperandsAndMods(st.operandText)
	if len(mods) > 0 {
		return 0, fmt.Errorf("%w: %s takes no modifiers", gcnerr.ErrInvalidModifier, st.mnemonic)
	}
	if len(operands) != 3 {
		return 0, fmt.Errorf("%s: expected dst, src0, vsrc1", st.mnemonic)
	}
	dst, err := as.resolveToken(operands[0])
	if err != nil {
		return 0, err
	}
	src0, err := as.resolveToken(operands[1])
	if err != nil {
		return 0, err
	}
	src1, err := as.resolveToken(operands[2])
	if err != nil {
		return 0, err
	}
	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Dst: dst.Op, Src: [3]gcncodec.Operand{src0.Op, src1.Op}, NSrc: 2}
	enc, err := gcncodec.EncodeVOP2(in)
	if err != nil {
		return 0, err
	}
	as.pushPos(pass, lineNo)
	as.emit(pass, dst, gcnregvar.FieldVOPVdst, gcnregvar.Write, gcnreg.RequiredAlignment(countOf(dst.Op)))
	as.emit(pass, src0, gcnregvar.FieldVOPSrc0, gcnregvar.Read, 1)
	as.emit(pass, src1, gcnregvar.FieldVOPVsrc1, gcnregvar.Read, 1)
	as.emitWait(pass, dst, gcnwait.ClassVALU, gcnregvar.Write)
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

func (as *Assembler) buildVOPC(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, mods := splitOperandsAndMods(st.operandText)
	if len(mods) > 0 {
		return 0, fmt.Errorf("%w: %s takes no modifiers", gcnerr.ErrInvalidModifier, st.mnemonic)
	}
	if len(operands) != 2 {
		return 0, fmt.Errorf("%s: expected src0, vsrc1", st.mnemonic)
	}
	src0, err := as.resolveToken(operands[0])
	if err != nil {
		return 0, err
	}
	src1, err := as.resolveToken(operands[1])
	if err != nil {
		return 0, err
	}
	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Src: [3]gcncodec.Operand{src0.Op, src1.Op}, NSrc: 2}
	enc, err := gcncodec.EncodeVOPC(in)
	if err != nil {
		return 0, err
	}
	as.pushPos(pass, lineNo)
	as.emit(pass, src0, gcnregvar.FieldVOPSrc0, gcnregvar.Read, 1)
	as.emit(pass, src1, gcnregvar.FieldVOPVsrc1, gcnregvar.Read, 1)
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

// ---- VOP3A/VOP3B ----

func (as *Assembler) buildVOP3(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, modTokens := splitOperandsAndMods(st.operandText)
	mods, err := parseModifiers(modTokens)
	if err != nil {
		return 0, err
	}
	extraSdst := entry.Flags&gcncatalog.VOP3BExtraSdst != 0

	idx := 0
	next := func() (resolved, error) {
		if idx >= len(operands) {
			return resolved{}, fmt.Errorf("%s: not enough operands", st.mnemonic)
		}
		r, err := as.resolveToken(operands[idx])
		idx++
		return r, err
	}

	dst, err := next()
	if err != nil {
		return 0, err
	}
	var sdst0 resolved
	if extraSdst {
		if sdst0, err = next(); err != nil {
			return 0, err
		}
	}
	var srcs [3]resolved
	nsrc := 0
	for idx < len(operands) && nsrc < 3 {
		s, err := next()
		if err != nil {
			return 0, err
		}
		srcs[nsrc] = s
		nsrc++
	}

	var srcOps [3]gcncodec.Operand
	for i := 0; i < nsrc; i++ {
		srcOps[i] = srcs[i].Op
	}
	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Dst: dst.Op, Src: srcOps, NSrc: nsrc, Mods: mods}

	var enc gcncodec.Encoded
	if extraSdst {
		enc, err = gcncodec.EncodeVOP3B(in, sdst0.Op.Reg)
	} else {
		enc, err = gcncodec.EncodeVOP3A(in)
	}
	if err != nil {
		return 0, err
	}

	as.pushPos(pass, lineNo)
	as.emit(pass, dst, gcnregvar.FieldVOP3Vdst, gcnregvar.Write, gcnreg.RequiredAlignment(countOf(dst.Op)))
	as.emitWait(pass, dst, gcnwait.ClassVALU, gcnregvar.Write)
	if extraSdst {
		as.emit(pass, sdst0, gcnregvar.FieldVOP3Sdst0, gcnregvar.Write, 2)
	}
	fields := [3]gcnregvar.FieldID{gcnregvar.FieldVOP3Src0, gcnregvar.FieldVOP3Src1, gcnregvar.FieldVOP3Src2}
	for i := 0; i < nsrc; i++ {
		as.emit(pass, srcs[i], fields[i], gcnregvar.Read, 1)
	}
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

func (as *Assembler) buildVOP3P(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, modTokens := splitOperandsAndMods(st.operandText)
	mods, err := parseModifiers(modTokens)
	if err != nil {
		return 0, err
	}
	if len(operands) < 2 {
		return 0, fmt.Errorf("%s: expected dst and at least one source", st.mnemonic)
	}
	dst, err := as.resolveToken(operands[0])
	if err != nil {
		return 0, err
	}
	var srcs [3]resolved
	nsrc := 0
	for i := 1; i < len(operands) && nsrc < 3; i++ {
		s, err := as.resolveToken(operands[i])
		if err != nil {
			return 0, err
		}
		srcs[nsrc] = s
		nsrc++
	}
	var srcOps [3]gcncodec.Operand
	for i := 0; i < nsrc; i++ {
		srcOps[i] = srcs[i].Op
	}
	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Dst: dst.Op, Src: srcOps, NSrc: nsrc, Mods: mods}
	enc, err := gcncodec.EncodeVOP3P(in)
	if err != nil {
		return 0, err
	}
	as.pushPos(pass, lineNo)
	as.emit(pass, dst, gcnregvar.FieldVOP3Vdst, gcnregvar.Write, gcnreg.RequiredAlignment(countOf(dst.Op)))
	as.emitWait(pass, dst, gcnwait.ClassVALU, gcnregvar.Write)
	fields := [3]gcnregvar.FieldID{gcnregvar.FieldVOP3Src0, gcnregvar.FieldVOP3Src1, gcnregvar.FieldVOP3Src2}
	for i := 0; i < nsrc; i++ {
		as.emit(pass, srcs[i], fields[i], gcnregvar.Read, 1)
	}
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

// ---- VINTRP ----

func (as *Assembler) buildVINTRP(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, mods := splitOperandsAndMods(st.operandText)
	if len(mods) > 0 {
		return 0, fmt.Errorf("%w: %s takes no modifiers", gcnerr.ErrInvalidModifier, st.mnemonic)
	}
	if len(operands) != 3 {
		return 0, fmt.Errorf("%s: expected dst, src0, attrN.chan", st.mnemonic)
	}
	dst, err := as.resolveToken(operands[0])
	if err != nil {
		return 0, err
	}
	src0, err := as.resolveToken(operands[1])
	if err != nil {
		return 0, err
	}
	attr, chanIdx, err := parseAttr(operands[2])
	if err != nil {
		return 0, err
	}
	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Dst: dst.Op, Src: [3]gcncodec.Operand{src0.Op}, NSrc: 1}
	enc, err := gcncodec.EncodeVINTRP(in, attr, chanIdx)
	if err != nil {
		return 0, err
	}
	as.pushPos(pass, lineNo)
	as.emit(pass, dst, gcnregvar.FieldVINTRPVdst, gcnregvar.Write, 1)
	as.emit(pass, src0, gcnregvar.FieldVINTRPVsrc0, gcnregvar.Read, 1)
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

var attrChanNames = map[byte]int{'x': 0, 'y': 1, 'z': 2, 'w': 3}

func parseAttr(tok string) (attr, chanIdx int, err error) {
	if !strings.HasPrefix(tok, "attr") {
		return 0, 0, fmt.Errorf("bad attribute operand %q", tok)
	}
	dot := strings.IndexByte(tok, '.')
	if dot < 0 {
		return 0, 0, fmt.Errorf("bad attribute operand %q", tok)
	}
	n, ok := parseDigits(tok[4:dot])
	if !ok {
		return 0, 0, fmt.Errorf("bad attribute operand %q", tok)
	}
	chanName := tok[dot+1:]
	c, ok := attrChanNames[chanName[0]]
	if !ok || len(chanName) != 1 {
		return 0, 0, fmt.Errorf("bad attribute channel %q", tok)
	}
	return n, c, nil
}

// ---- DS ----

// dsShape reports whether mnemonic writes a destination VGPR and how many
// source data operands it consumes, inferred from the naming convention
// shared by every ds_* mnemonic in the catalog.
func dsShape(mnemonic string) (hasDst bool, nData int) {
	switch {
	case mnemonic == "ds_nop":
		return false, 0
	case strings.Contains(mnemonic, "_rtn"), strings.HasPrefix(mnemonic, "ds_read"):
		hasDst = true
	}
	switch {
	case strings.Contains(mnemonic, "cmpst"), strings.Contains(mnemonic, "wrxchg2"):
		nData = 2
	case strings.HasPrefix(mnemonic, "ds_write"), strings.HasPrefix(mnemonic, "ds_add") ||
		strings.HasPrefix(mnemonic, "ds_sub") || strings.HasPrefix(mnemonic, "ds_min") ||
		strings.HasPrefix(mnemonic, "ds_max") || strings.HasPrefix(mnemonic, "ds_and") ||
		strings.HasPrefix(mnemonic, "ds_or") || strings.HasPrefix(mnemonic, "ds_xor") ||
		strings.HasPrefix(mnemonic, "ds_mskor") || strings.HasPrefix(mnemonic, "ds_xchg"):
		nData = 1
	}
	return hasDst, nData
}

func (as *Assembler) buildDS(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, modTokens := splitOperandsAndMods(st.operandText)
	mods, err := parseModifiers(modTokens)
	if err != nil {
		return 0, err
	}
	hasDst, nData := dsShape(st.mnemonic)

	idx := 0
	next := func() (resolved, error) {
		if idx >= len(operands) {
			return resolved{}, fmt.Errorf("%s: not enough operands", st.mnemonic)
		}
		r, err := as.resolveToken(operands[idx])
		idx++
		return r, err
	}

	var dst, addr, data0, data1 resolved
	if hasDst {
		if dst, err = next(); err != nil {
			return 0, err
		}
	}
	if st.mnemonic != "ds_nop" {
		if addr, err = next(); err != nil {
			return 0, err
		}
	}
	if nData >= 1 {
		if data0, err = next(); err != nil {
			return 0, err
		}
	}
	if nData >= 2 {
		if data1, err = next(); err != nil {
			return 0, err
		}
	}

	nsrc := 1
	src := [3]gcncodec.Operand{addr.Op}
	if nData >= 1 {
		src[1] = data0.Op
		nsrc = 2
	}
	if nData >= 2 {
		src[2] = data1.Op
		nsrc = 3
	}

	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Dst: dst.Op, Src: src, NSrc: nsrc, Mods: mods}
	enc, err := gcncodec.EncodeDS(in)
	if err != nil {
		return 0, err
	}

	as.pushPos(pass, lineNo)
	if hasDst {
		as.emit(pass, dst, gcnregvar.FieldDSVdst, gcnregvar.Write, 1)
		as.emitWait(pass, dst, gcnwait.ClassLDS, gcnregvar.Write)
	}
	if st.mnemonic != "ds_nop" {
		as.emit(pass, addr, gcnregvar.FieldDSAddr, gcnregvar.Read, 1)
	}
	if nData >= 1 {
		as.emit(pass, data0, gcnregvar.FieldDSData0, gcnregvar.Read, 1)
		if !hasDst {
			as.emitWait(pass, data0, gcnwait.ClassLDS, gcnregvar.Read)
		}
	}
	if nData >= 2 {
		as.emit(pass, data1, gcnregvar.FieldDSData1, gcnregvar.Read, 1)
	}
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

// ---- MUBUF/MTBUF ----

func (as *Assembler) resolveOrOff(tok string) (resolved, error) {
	if strings.TrimSpace(tok) == off {
		return resolved{}, nil
	}
	return as.resolveToken(tok)
}

func (as *Assembler) buildMUBUF(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, modTokens := splitOperandsAndMods(st.operandText)
	if len(operands) != 4 {
		return 0, fmt.Errorf("%s: expected vdata, vaddr, srsrc, soffset", st.mnemonic)
	}
	mods, err := parseModifiers(modTokens)
	if err != nil {
		return 0, err
	}
	vdata, err := as.resolveOrOff(operands[0])
	if err != nil {
		return 0, err
	}
	vaddr, err := as.resolveOrOff(operands[1])
	if err != nil {
		return 0, err
	}
	srsrc, err := as.resolveToken(operands[2])
	if err != nil {
		return 0, err
	}
	var soffset resolved
	if v, ok := parseIntLiteral(operands[3]); ok {
		mods.OffEn = mods.OffEn
		_ = v
	}
	if soffset, err = as.resolveOrOff(operands[3]); err != nil {
		return 0, err
	}

	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Dst: vdata.Op, Mods: mods}
	enc, err := gcncodec.EncodeMUBUF(in, vaddr.Op, srsrc.Op, soffset.Op)
	if err != nil {
		return 0, err
	}

	store := strings.Contains(st.mnemonic, "store")
	vdataRW := gcnregvar.Write
	if store {
		vdataRW = gcnregvar.Read
	}
	as.pushPos(pass, lineNo)
	as.emit(pass, vdata, gcnregvar.FieldMVdata, vdataRW, 1)
	as.emit(pass, vaddr, gcnregvar.FieldMVaddr, gcnregvar.Read, 1)
	as.emit(pass, srsrc, gcnregvar.FieldMSrsrc, gcnregvar.Read, 4)
	as.emit(pass, soffset, gcnregvar.FieldMSoffset, gcnregvar.Read, 1)
	as.emitWait(pass, vdata, classForMUBUF(store, st.mnemonic), vdataRW)
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

func classForMUBUF(store bool, mnemonic string) gcnwait.DelayClass {
	if strings.Contains(mnemonic, "atomic") {
		return gcnwait.ClassVMStore
	}
	if store {
		return gcnwait.ClassVMStore
	}
	return gcnwait.ClassVMLoad
}

func (as *Assembler) buildMTBUF(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, modTokens := splitOperandsAndMods(st.operandText)
	if len(operands) != 4 {
		return 0, fmt.Errorf("%s: expected vdata, vaddr, srsrc, soffset", st.mnemonic)
	}
	mods, err := parseModifiers(modTokens)
	if err != nil {
		return 0, err
	}
	if mods.DFmt == 0 && mods.NFmt == 0 {
		mods.DFmt = 2 // default [16,unorm]: dfmt 2 ("16"), nfmt 0 ("unorm")
	}
	vdata, err := as.resolveOrOff(operands[0])
	if err != nil {
		return 0, err
	}
	vaddr, err := as.resolveOrOff(operands[1])
	if err != nil {
		return 0, err
	}
	srsrc, err := as.resolveToken(operands[2])
	if err != nil {
		return 0, err
	}
	soffset, err := as.resolveOrOff(operands[3])
	if err != nil {
		return 0, err
	}

	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Dst: vdata.Op, Mods: mods}
	enc, err := gcncodec.EncodeMTBUF(in, vaddr.Op, srsrc.Op, soffset.Op)
	if err != nil {
		return 0, err
	}

	store := strings.Contains(st.mnemonic, "store")
	vdataRW := gcnregvar.Write
	if store {
		vdataRW = gcnregvar.Read
	}
	as.pushPos(pass, lineNo)
	as.emit(pass, vdata, gcnregvar.FieldMVdata, vdataRW, 1)
	as.emit(pass, vaddr, gcnregvar.FieldMVaddr, gcnregvar.Read, 1)
	as.emit(pass, srsrc, gcnregvar.FieldMSrsrc, gcnregvar.Read, 4)
	as.emit(pass, soffset, gcnregvar.FieldMSoffset, gcnregvar.Read, 1)
	as.emitWait(pass, vdata, classForMUBUF(store, st.mnemonic), vdataRW)
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

// ---- MIMG ----

func (as *Assembler) buildMIMG(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, modTokens := splitOperandsAndMods(st.operandText)
	mods, err := parseModifiers(modTokens)
	if err != nil {
		return 0, err
	}
	if mods.DMask == 0 {
		mods.DMask = 0xF
	}
	hasSampler := strings.Contains(st.mnemonic, "sample") || entry.Flags&gcncatalog.MIMGSample != 0
	want := 3
	if hasSampler {
		want = 4
	}
	if len(operands) != want {
		return 0, fmt.Errorf("%s: expected %d operands", st.mnemonic, want)
	}
	vdata, err := as.resolveToken(operands[0])
	if err != nil {
		return 0, err
	}
	vaddr, err := as.resolveToken(operands[1])
	if err != nil {
		return 0, err
	}
	srsrc, err := as.resolveToken(operands[2])
	if err != nil {
		return 0, err
	}
	var ssamp resolved
	if hasSampler {
		if ssamp, err = as.resolveToken(operands[3]); err != nil {
			return 0, err
		}
	}

	store := strings.Contains(st.mnemonic, "store")
	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Dst: vdata.Op, Mods: mods}
	enc, err := gcncodec.EncodeMIMG(in, vaddr.Op, srsrc.Op, ssamp.Op)
	if err != nil {
		return 0, err
	}

	vdataRW := gcnregvar.Write
	if store {
		vdataRW = gcnregvar.Read
	} else if strings.Contains(st.mnemonic, "atomic") {
		vdataRW = gcnregvar.Read | gcnregvar.Write
	}
	as.pushPos(pass, lineNo)
	as.emit(pass, vdata, gcnregvar.FieldMVdata, vdataRW, 1)
	as.emit(pass, vaddr, gcnregvar.FieldMVaddr, gcnregvar.Read, 1)
	as.emit(pass, srsrc, gcnregvar.FieldMSrsrc, gcnregvar.Read, 4)
	if hasSampler {
		as.emit(pass, ssamp, gcnregvar.FieldMIMGSsamp, gcnregvar.Read, 4)
	}
	class := gcnwait.ClassVMLoad
	if store || strings.Contains(st.mnemonic, "atomic") {
		class = gcnwait.ClassVMStore
	}
	as.emitWait(pass, vdata, class, vdataRW)
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

// ---- EXP ----

func (as *Assembler) buildEXP(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, modTokens := splitOperandsAndMods(st.operandText)
	if len(operands) != 5 {
		return 0, fmt.Errorf("exp: expected target, vsrc0, vsrc1, vsrc2, vsrc3")
	}
	mods, err := parseModifiers(modTokens)
	if err != nil {
		return 0, err
	}
	target, ok := parseExpTarget(operands[0])
	if !ok {
		return 0, fmt.Errorf("exp: bad target %q", operands[0])
	}
	var vsrc [4]resolved
	for i := 0; i < 4; i++ {
		vsrc[i], err = as.resolveOrOff(operands[i+1])
		if err != nil {
			return 0, err
		}
	}
	var codecSrc [4]gcncodec.Operand
	for i := range vsrc {
		codecSrc[i] = vsrc[i].Op
	}
	enc := gcncodec.EncodeEXP(target, codecSrc, mods.VM, mods.Done, mods.Compr)

	as.pushPos(pass, lineNo)
	fieldIDs := [4]gcnregvar.FieldID{gcnregvar.FieldEXPVsrc0, gcnregvar.FieldEXPVsrc1, gcnregvar.FieldEXPVsrc2, gcnregvar.FieldEXPVsrc3}
	for i, v := range vsrc {
		as.emit(pass, v, fieldIDs[i], gcnregvar.Read, 1)
		as.emitWait(pass, v, gcnwait.ClassEXP, gcnregvar.Read)
	}
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}

func parseExpTarget(tok string) (int, bool) {
	switch {
	case tok == "null":
		return 9, true
	case tok == "mrtz":
		return 8, true
	case strings.HasPrefix(tok, "mrt"):
		n, ok := parseDigits(tok[3:])
		return n, ok
	case strings.HasPrefix(tok, "pos"):
		n, ok := parseDigits(tok[3:])
		return n + 12, ok
	case strings.HasPrefix(tok, "param"):
		n, ok := parseDigits(tok[5:])
		return n + 32, ok
	default:
		return 0, false
	}
}

// ---- FLAT/GLOBAL/SCRATCH ----

func (as *Assembler) buildFLAT(entry *gcncatalog.Entry, st statement, pass, lineNo int) (int, error) {
	operands, modTokens := splitOperandsAndMods(st.operandText)
	mods, err := parseModifiers(modTokens)
	if err != nil {
		return 0, err
	}
	switch {
	case strings.HasPrefix(st.mnemonic, "global_"):
		mods.Seg = 2
	case strings.HasPrefix(st.mnemonic, "scratch_"):
		mods.Seg = 1
	default:
		mods.Seg = 0
	}

	store := strings.Contains(st.mnemonic, "store")
	var vdst, addr, data, saddr resolved

	idx := 0
	next := func() (resolved, error) {
		if idx >= len(operands) {
			return resolved{}, fmt.Errorf("%s: not enough operands", st.mnemonic)
		}
		r, err := as.resolveOrOff(operands[idx])
		idx++
		return r, err
	}

	if !store {
		if vdst, err = next(); err != nil {
			return 0, err
		}
	}
	if addr, err = next(); err != nil {
		return 0, err
	}
	if store {
		if data, err = next(); err != nil {
			return 0, err
		}
	}
	if idx < len(operands) {
		if saddr, err = next(); err != nil {
			return 0, err
		}
	}

	nsrc := 1
	src := [3]gcncodec.Operand{addr.Op}
	if store {
		src[1] = data.Op
		nsrc = 2
	}
	in := &gcncodec.Instruction{Entry: entry, Arch: as.Arch, Dst: vdst.Op, Src: src, NSrc: nsrc, Mods: mods}
	enc, err := gcncodec.EncodeFLAT(in, saddr.Op)
	if err != nil {
		return 0, err
	}

	as.pushPos(pass, lineNo)
	if !store {
		as.emit(pass, vdst, gcnregvar.FieldFLATVdst, gcnregvar.Write, 1)
	}
	as.emit(pass, addr, gcnregvar.FieldFLATAddr, gcnregvar.Read, 2)
	if store {
		as.emit(pass, data, gcnregvar.FieldFLATData, gcnregvar.Read, 1)
	}
	class := gcnwait.ClassVMLoad
	switch mods.Seg {
	case 1:
		class = gcnwait.ClassFlatScratch
	case 2:
		class = gcnwait.ClassFlatGlobal
	}
	if store {
		if mods.Seg == 0 {
			class = gcnwait.ClassVMStore
		}
		as.emitWait(pass, data, class, gcnregvar.Read)
	} else {
		as.emitWait(pass, vdst, class, gcnregvar.Write)
	}
	if pass == 2 {
		as.code = append(as.code, enc.Words...)
	}
	return len(enc.Words), nil
}
