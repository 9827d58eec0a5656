/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcndisasm

import (
	"fmt"
	"strings"

	"github.com/gcntools/gcnasm/internal/gcncatalog"
	"github.com/gcntools/gcnasm/internal/gcncodec"
	"github.com/gcntools/gcnasm/internal/gcnreg"
	"github.com/gcntools/gcnasm/internal/hostiface"
)

// Family-specific operand printers (§4.2 stage B). Each returns the full
// text line (mnemonic plus operands) for one instruction; modifiers are
// appended in the canonical order of §4.2.

func (d *Disassembler) printSOP1(entry *gcncatalog.Entry, words []uint32) (string, error) {
	sdst, _, src0 := gcncodec.DecodeSOP1(words)
	return fmt.Sprintf("%s %s, %s", entry.Mnemonic, scalarOperandText(sdst), scalarSrcText(src0, words)), nil
}

func (d *Disassembler) printSOP2(entry *gcncatalog.Entry, words []uint32) (string, error) {
	_, sdst, src1, src0 := gcncodec.DecodeSOP2(words)
	return fmt.Sprintf("%s %s, %s, %s", entry.Mnemonic, scalarOperandText(sdst), scalarSrcText(src0, words), scalarSrcText(src1, words)), nil
}

func (d *Disassembler) printSOPC(entry *gcncatalog.Entry, words []uint32) (string, error) {
	_, src1, src0 := gcncodec.DecodeSOPC(words)
	return fmt.Sprintf("%s %s, %s", entry.Mnemonic, scalarSrcText(src0, words), scalarSrcText(src1, words)), nil
}

func (d *Disassembler) printSOPP(entry *gcncatalog.Entry, b Bound, words []uint32, labels *hostiface.LabelIterator) (string, error) {
	op, simm16 := gcncodec.DecodeSOPP(words)
	if gcncodec.IsSOPPBranch(op) {
		pcAfter := b.Offset + uint64(b.WordCount)*4
		target := gcncodec.SOPPBranchTarget(pcAfter, simm16)
		if lbl, ok := labels.Seek(target); ok && lbl.Offset == target {
			return fmt.Sprintf("%s %s", entry.Mnemonic, lbl.Name), nil
		}
		return fmt.Sprintf("%s L%04X", entry.Mnemonic, target), nil
	}
	if entry.Mnemonic == "s_waitcnt" {
		return fmt.Sprintf("%s %s", entry.Mnemonic, gcnwaitText(simm16)), nil
	}
	return fmt.Sprintf("%s 0x%04x", entry.Mnemonic, simm16), nil
}

func gcnwaitText(imm16 uint16) string {
	return fmt.Sprintf("vmcnt(%d) expcnt(%d) lgkmcnt(%d)",
		imm16&0xF, (imm16>>4)&0x7, (imm16>>8)&0xF)
}

func (d *Disassembler) printSOPK(entry *gcncatalog.Entry, words []uint32) (string, error) {
	op, sdst, simm16 := gcncodec.DecodeSOPK(words)
	switch entry.Mnemonic {
	case "s_getreg_b32":
		id, offset, size := gcncodec.DecodeHWReg(simm16)
		return fmt.Sprintf("%s %s, hwreg(%s, %d, %d)", entry.Mnemonic, scalarOperandText(sdst), gcncodec.HWRegIDs[id], offset, size), nil
	case "s_setreg_b32":
		id, offset, size := gcncodec.DecodeHWReg(simm16)
		return fmt.Sprintf("%s hwreg(%s, %d, %d), %s", entry.Mnemonic, gcncodec.HWRegIDs[id], offset, size, scalarOperandText(sdst)), nil
	case "s_sendmsg":
		msg, mop, stream := gcncodec.DecodeSendMsg(simm16)
		name := gcncodec.SendMsgIDs[msg]
		return fmt.Sprintf("%s sendmsg(%s, %d, %d)", entry.Mnemonic, name, mop, stream), nil
	}
	_ = op
	return fmt.Sprintf("%s %s, 0x%04x", entry.Mnemonic, scalarOperandText(sdst), simm16), nil
}

func (d *Disassembler) printSMRD(entry *gcncatalog.Entry, words []uint32) (string, error) {
	if gcncodec.SMEMFamily(d.Arch) {
		_, sbase, sdata, offset, glc, imm := gcncodec.DecodeSMEM(words)
		line := fmt.Sprintf("%s %s, s[%d:%d]", entry.Mnemonic, scalarOperandText(sdata), sbase, sbase+1)
		if imm {
			line += fmt.Sprintf(", 0x%x", offset)
		} else {
			line += fmt.Sprintf(", %s", scalarOperandText(offset))
		}
		if glc {
			line += " glc"
		}
		return line, nil
	}
	_, sdst, sbase, offset, imm := gcncodec.DecodeSMRD(words)
	line := fmt.Sprintf("%s %s, s[%d:%d]", entry.Mnemonic, scalarOperandText(sdst), sbase, sbase+1)
	if imm {
		line += fmt.Sprintf(", 0x%x", offset)
	} else {
		line += fmt.Sprintf(", %s", scalarOperandText(offset))
	}
	return line, nil
}

func (d *Disassembler) printVOP1(entry *gcncatalog.Entry, words []uint32) (string, error) {
	vdst, _, src0 := gcncodec.DecodeVOP1(words)
	return fmt.Sprintf("%s v%d, %s", entry.Mnemonic, vdst, scalarSrcText(src0, words)), nil
}

func (d *Disassembler) printVOP2(entry *gcncatalog.Entry, words []uint32) (string, error) {
	_, vdst, vsrc1, src0 := gcncodec.DecodeVOP2(words)
	return fmt.Sprintf("%s v%d, %s, v%d", entry.Mnemonic, vdst, scalarSrcText(src0, words), vsrc1), nil
}

func (d *Disassembler) printVOPC(entry *gcncatalog.Entry, words []uint32) (string, error) {
	_, vsrc1, src0 := gcncodec.DecodeVOPC(words)
	return fmt.Sprintf("%s vcc, %s, v%d", entry.Mnemonic, scalarSrcText(src0, words), vsrc1), nil
}

// printVOP3 covers both VOP3A and VOP3B; the entry's Family tells which
// shape word0's "abs" bit range carries (operand abs vs. extra scalar dest,
// §3's VOP3BExtraSdst mode flag).
func (d *Disassembler) printVOP3(entry *gcncatalog.Entry, words []uint32) (string, error) {
	if entry.Flags&gcncatalog.VOP3BExtraSdst != 0 || entry.Family == gcncatalog.VOP3B {
		op, vdst, sdst0, src0, src1, src2, neg := gcncodec.DecodeVOP3B(words)
		_ = op
		line := fmt.Sprintf("%s v%d, %s, %s", entry.Mnemonic, vdst, scalarOperandText(sdst0), vop3OperandText(src0, neg, 0))
		line += fmt.Sprintf(", %s", vop3OperandText(src1, neg, 1))
		if hasThirdSrc(entry.Mnemonic) {
			line += fmt.Sprintf(", %s", vop3OperandText(src2, neg, 2))
		}
		return line, nil
	}
	_, vdst, clamp, omod, abs, src0, src1, src2, neg := gcncodec.DecodeVOP3A(words)
	line := fmt.Sprintf("%s v%d, %s", entry.Mnemonic, vdst, vop3OperandTextAbs(src0, neg, abs, 0))
	if hasSecondSrc(entry.Mnemonic) {
		line += fmt.Sprintf(", %s", vop3OperandTextAbs(src1, neg, abs, 1))
	}
	if hasThirdSrc(entry.Mnemonic) {
		line += fmt.Sprintf(", %s", vop3OperandTextAbs(src2, neg, abs, 2))
	}
	if omod != 0 {
		line += " " + []string{"", "mul:2", "mul:4", "div:2"}[omod]
	}
	if clamp != 0 {
		line += " clamp"
	}
	return line, nil
}

// hasSecondSrc/hasThirdSrc are a small heuristic over the mnemonic's arity
// when the catalog doesn't carry an explicit operand count; every VOP3A row
// grounded on the original mnemonic list names its arity in its own name
// (v_mad_*, v_fma_*, v_bfe_*, v_cndmask_* all take three sources; most
// others take two, unary v_* take one and never reach this helper since
// promoted VOP1 opcodes keep one source).
func hasThirdSrc(mnemonic string) bool {
	for _, p := range []string{"mad", "fma", "cndmask", "bfe", "div_fmas", "alignbit", "alignbyte", "lerp", "mqsad", "sad"} {
		if strings.Contains(mnemonic, p) {
			return true
		}
	}
	return false
}

// unaryVOP3Prefixes names the VOP3-promoted VOP1 opcodes that take a single
// source operand (§3: unary conversions, transcendentals, bit scans).
var unaryVOP3Prefixes = []string{
	"v_cvt_", "v_rcp", "v_sqrt", "v_rsq", "v_log", "v_exp", "v_ffbh", "v_ffbl",
	"v_frexp", "v_fract", "v_trunc", "v_ceil", "v_floor", "v_rndne", "v_mov",
	"v_not_", "v_bfrev", "v_clrexcp", "v_nop",
}

func hasSecondSrc(mnemonic string) bool {
	for _, p := range unaryVOP3Prefixes {
		if strings.HasPrefix(mnemonic, p) {
			return false
		}
	}
	return true
}

func (d *Disassembler) printVOP3P(entry *gcncatalog.Entry, words []uint32) (string, error) {
	_, vdst, src0, src1, src2, opsel := gcncodec.DecodeVOP3P(words)
	line := fmt.Sprintf("%s v%d, %s, %s", entry.Mnemonic, vdst, scalarOperandText(src0), scalarOperandText(src1))
	if hasThirdSrc(entry.Mnemonic) {
		line += fmt.Sprintf(", %s", scalarOperandText(src2))
	}
	if opsel != 0 {
		line += fmt.Sprintf(" op_sel:[%d,%d]", opsel&1, (opsel>>1)&1)
	}
	return line, nil
}

func (d *Disassembler) printVINTRP(entry *gcncatalog.Entry, words []uint32) (string, error) {
	vdst, chan_, attr, _, vsrc0 := gcncodec.DecodeVINTRP(words)
	if entry.Mnemonic == "v_interp_mov_f32" {
		return fmt.Sprintf("%s v%d, p%d, attr%d.%s", entry.Mnemonic, vdst, vsrc0, attr, chanName(chan_)), nil
	}
	return fmt.Sprintf("%s v%d, v%d, attr%d.%s", entry.Mnemonic, vdst, vsrc0, attr, chanName(chan_)), nil
}

func chanName(c int) string {
	return []string{"x", "y", "z", "w"}[c&3]
}

func (d *Disassembler) printDS(entry *gcncatalog.Entry, words []uint32) (string, error) {
	_, gds, offset1, offset0, vdst, data1, data0, addr := gcncodec.DecodeDS(words)
	line := entry.Mnemonic
	if hasDSWrite(entry.Mnemonic) {
		line += fmt.Sprintf(" v%d", vdst)
	}
	line += fmt.Sprintf(" v%d", addr)
	if dsTakesData(entry.Mnemonic) {
		line += fmt.Sprintf(", v%d", data0)
		if strings.Contains(entry.Mnemonic, "cmpst") || strings.Contains(entry.Mnemonic, "write2") {
			line += fmt.Sprintf(", v%d", data1)
		}
	}
	if offset0 != 0 {
		line += fmt.Sprintf(" offset0:%d", offset0)
	}
	if offset1 != 0 {
		line += fmt.Sprintf(" offset1:%d", offset1)
	}
	if gds != 0 {
		line += " gds"
	}
	return line, nil
}

// hasDSWrite reports whether a DS mnemonic returns its previous value into
// VDST: the ds_read_* family always does, and any atomic op's explicit
// "_rtn" variant does; the plain (non-rtn) atomics and ds_write_* do not.
func hasDSWrite(mnemonic string) bool {
	return strings.Contains(mnemonic, "read") || strings.Contains(mnemonic, "_rtn")
}

// dsTakesData reports whether a DS mnemonic carries a DATA0 (and, for the
// two-value forms, DATA1) source operand: every DS op except the plain
// reads, gws_*, swizzle, and nop.
func dsTakesData(mnemonic string) bool {
	for _, p := range []string{"read", "gws", "swizzle", "nop"} {
		if strings.Contains(mnemonic, p) {
			return false
		}
	}
	return true
}

func (d *Disassembler) printMUBUF(entry *gcncatalog.Entry, words []uint32) (string, error) {
	_, offen, idxen, glc, lds, offset, vdata, srsrc, slc, tfe, soffset, vaddr := gcncodec.DecodeMUBUF(words)
	line := fmt.Sprintf("%s v%d, v%d, s[%d:%d], %s", entry.Mnemonic, vdata, vaddr, srsrc, srsrc+3, scalarOperandText(soffset))
	line += bufMods(offen, idxen, glc, slc, tfe, offset)
	if lds != 0 {
		line += " lds"
	}
	return line, nil
}

func (d *Disassembler) printMTBUF(entry *gcncatalog.Entry, words []uint32) (string, error) {
	_, offen, idxen, glc, nfmt, dfmt, offset, vdata, srsrc, slc, tfe, soffset, vaddr := gcncodec.DecodeMTBUF(words)
	line := fmt.Sprintf("%s v%d, v%d, s[%d:%d], %s", entry.Mnemonic, vdata, vaddr, srsrc, srsrc+3, scalarOperandText(soffset))
	line += fmt.Sprintf(" format:[%s,%s]", gcncodec.MTBUFDFmtNames[dfmt&0xF], gcncodec.MTBUFNFmtNames[nfmt&0x7])
	line += bufMods(offen, idxen, glc, slc, tfe, offset)
	return line, nil
}

func bufMods(offen, idxen, glc, slc, tfe, offset int) string {
	var b strings.Builder
	if offen != 0 {
		b.WriteString(" offen")
	}
	if idxen != 0 {
		b.WriteString(" idxen")
	}
	if offset != 0 {
		fmt.Fprintf(&b, " offset:%d", offset)
	}
	if glc != 0 {
		b.WriteString(" glc")
	}
	if slc != 0 {
		b.WriteString(" slc")
	}
	if tfe != 0 {
		b.WriteString(" tfe")
	}
	return b.String()
}

func (d *Disassembler) printMIMG(entry *gcncatalog.Entry, words []uint32) (string, error) {
	_, dmask, unorm, glc, slc, tfe, lwe, da, d16, vaddr, vdata, srsrc, ssamp := gcncodec.DecodeMIMG(words)
	line := fmt.Sprintf("%s v%d, v%d, s[%d:%d]", entry.Mnemonic, vdata, vaddr, srsrc, srsrc+7)
	if ssamp != srsrc {
		line += fmt.Sprintf(", s[%d:%d]", ssamp, ssamp+3)
	}
	line += fmt.Sprintf(" dmask:0x%x", dmask)
	// Printing order follows §4.2's modifier ordering contract.
	type flag struct {
		set  bool
		name string
	}
	for _, f := range []flag{{unorm, "unorm"}, {glc, "glc"}, {slc, "slc"}, {tfe, "tfe"}, {lwe, "lwe"}, {da, "da"}, {d16, "d16"}} {
		if f.set {
			line += " " + f.name
		}
	}
	return line, nil
}

func (d *Disassembler) printEXP(entry *gcncatalog.Entry, words []uint32) (string, error) {
	target, vm, done, compr, vsrc0, vsrc1, vsrc2, vsrc3 := gcncodec.DecodeEXP(words)
	line := fmt.Sprintf("exp %s, v%d, v%d", gcncodec.ExpTargetName(target), vsrc0, vsrc1)
	if !compr {
		line += fmt.Sprintf(", v%d, v%d", vsrc2, vsrc3)
	}
	if compr {
		line += " compr"
	}
	if vm {
		line += " vm"
	}
	if done {
		line += " done"
	}
	return line, nil
}

func (d *Disassembler) printFLAT(entry *gcncatalog.Entry, words []uint32) (string, error) {
	_, seg, glc, slc, vdst, data, saddr := gcncodec.DecodeFLAT(words)
	mnemonic := entry.Mnemonic
	switch seg {
	case 1:
		mnemonic = "scratch_" + strings.TrimPrefix(mnemonic, "flat_")
	case 2:
		mnemonic = "global_" + strings.TrimPrefix(mnemonic, "flat_")
	}
	line := mnemonic
	if strings.Contains(entry.Mnemonic, "load") {
		line += fmt.Sprintf(" v%d, v[%d:%d]", vdst, saddr, saddr+1)
	} else {
		line += fmt.Sprintf(" v[%d:%d], v%d", saddr, saddr+1, data)
	}
	if glc != 0 {
		line += " glc"
	}
	if slc != 0 {
		line += " slc"
	}
	return line, nil
}

// scalarSrcText prints a VOP1/VOP2/VOPC/SOP1/SOP2/SOPC SRC0/SRC1 field,
// resolving the literal marker to the trailing code word when present.
func scalarSrcText(code int, words []uint32) string {
	if code == gcnreg.Literal && len(words) > 1 {
		return fmt.Sprintf("0x%x", words[1])
	}
	return scalarOperandText(code)
}

func vop3OperandText(code int, neg, srcIdx int) string {
	text := scalarOperandText(code)
	if neg&(1<<uint(srcIdx)) != 0 {
		text = "-" + text
	}
	return text
}

func vop3OperandTextAbs(code int, neg, abs, srcIdx int) string {
	text := scalarOperandText(code)
	if abs&(1<<uint(srcIdx)) != 0 {
		text = "|" + text + "|"
	}
	if neg&(1<<uint(srcIdx)) != 0 {
		text = "-" + text
	}
	return text
}
