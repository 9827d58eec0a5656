/*
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

// Package gcndisasm implements the two-stage disassembler driver of §4.2:
// stage A scans code words once to find instruction boundaries and branch
// targets, stage B re-walks the code merging the discovered labels with
// caller-supplied relocations to produce text.
package gcndisasm

import (
	"fmt"
	"strings"

	"github.com/gcntools/gcnasm/internal/gcnarch"
	"github.com/gcntools/gcnasm/internal/gcncatalog"
	"github.com/gcntools/gcnasm/internal/gcncodec"
	"github.com/gcntools/gcnasm/internal/gcnerr"
	"github.com/gcntools/gcnasm/internal/gcnreg"
	"github.com/gcntools/gcnasm/internal/hostiface"
)

// Options controls stage B's text formatting (§4.2 step 1).
type Options struct {
	HexPrefix     bool // prefix each line with the raw code word(s) in hex
	CodePosPrefix bool // prefix each line with its byte offset
	LabelPrefix   string
}

// Bound is one discovered instruction boundary from stage A.
type Bound struct {
	Offset    uint64 // byte offset of this instruction's first word
	WordCount int    // words this instruction occupies, including a literal
	Family    gcncatalog.Family
}

// Disassembler holds one disassembly job's inputs: the code buffer, target
// architecture, and caller-supplied relocations (labels are discovered by
// stage A, not supplied).
type Disassembler struct {
	Code   []uint32
	Arch   gcnarch.Arch
	Relocs []hostiface.Relocation

	cat *gcncatalog.Catalog
}

// New returns a Disassembler for code under arch.
func New(code []uint32, arch gcnarch.Arch, relocs []hostiface.Relocation) *Disassembler {
	return &Disassembler{Code: code, Arch: arch, Relocs: relocs, cat: gcncatalog.Get()}
}

// ScanResult is stage A's output: instruction boundaries in offset order,
// discovered branch-target labels, and whether the scan found a truncated
// final instruction (§4.2).
type ScanResult struct {
	Bounds    []Bound
	Labels    []hostiface.Label
	Truncated bool
}

// Scan implements stage A: walk code words once, sizing each instruction
// and discovering SOPP branch-target labels. It returns gcnerr.ErrTruncated
// LastInstr alongside the partial result when the final instruction does
// not have enough code words for its family.
func (d *Disassembler) Scan() (ScanResult, error) {
	var res ScanResult
	pos := 0
	n := len(d.Code)
	for pos < n {
		offset := uint64(pos) * 4
		w0 := d.Code[pos]
		family, words, _ := gcncodec.ClassifyFamily(w0, d.Arch)

		if words == 1 && gcncodec.HasTrailingLiteral(family, w0) {
			words = 2
		}
		if family == gcncatalog.EXP {
			words = expWordCount(w0)
		}
		if pos+words > n {
			res.Truncated = true
			words = n - pos
		}

		if family == gcncatalog.SOPP {
			op := gcncodec.DecodeOpcode(family, w0)
			if gcncodec.IsSOPPBranch(op) {
				_, simm16 := gcncodec.DecodeSOPP([]uint32{w0})
				pcAfter := offset + uint64(words)*4
				target := gcncodec.SOPPBranchTarget(pcAfter, simm16)
				res.Labels = append(res.Labels, hostiface.Label{
					Offset: target,
					Name:   fmt.Sprintf("L%04X", target),
				})
			}
		}

		res.Bounds = append(res.Bounds, Bound{Offset: offset, WordCount: words, Family: family})
		pos += words
	}
	if res.Truncated {
		return res, gcnerr.ErrTruncatedLastInstr
	}
	return res, nil
}

func expWordCount(w0 uint32) int {
	// compr bit is bit17 of the EXP word per mem.go's fEXPCompr; EXP carries
	// a second word only when sending all four export components uncompressed.
	if (w0>>17)&1 != 0 {
		return 1
	}
	return 2
}

// Format implements stage B: re-walk the boundaries from a prior Scan and
// produce one text line per instruction.
func (d *Disassembler) Format(scan ScanResult, opts Options) []string {
	labels := hostiface.NewLabelIterator(scan.Labels)
	relocs := hostiface.NewRelocationIterator(d.Relocs)
	labelAt := make(map[uint64]string, len(scan.Labels))
	for _, l := range scan.Labels {
		labelAt[l.Offset] = l.Name
	}

	var lines []string
	for _, b := range scan.Bounds {
		if name, ok := labelAt[b.Offset]; ok {
			lines = append(lines, name+":")
		}
		words := d.Code[b.Offset/4 : b.Offset/4+uint64(b.WordCount)]
		line := d.formatOne(b, words, labels, relocs, opts)
		lines = append(lines, line)
	}
	return lines
}

func (d *Disassembler) formatOne(b Bound, words []uint32, labels *hostiface.LabelIterator, relocs *hostiface.RelocationIterator, opts Options) string {
	var prefix strings.Builder
	if opts.CodePosPrefix {
		fmt.Fprintf(&prefix, "%08X: ", b.Offset)
	}
	if opts.HexPrefix {
		for _, w := range words {
			fmt.Fprintf(&prefix, "%08X ", w)
		}
	}

	opcode := gcncodec.DecodeOpcode(b.Family, words[0])
	entry, found := d.decodeEntry(b.Family, opcode, words[0])
	if !found {
		return prefix.String() + fmt.Sprintf("%s_ill_%d", strings.ToLower(b.Family.String()), opcode)
	}

	body, err := d.printOperands(entry, b, words, labels, relocs)
	if err != nil {
		return prefix.String() + fmt.Sprintf("%s ; %s", entry.Mnemonic, err)
	}
	if reloc, ok := relocs.Seek(b.Offset); ok {
		body += fmt.Sprintf(" ; reloc %s%+d", reloc.Symbol, reloc.Addend)
	}
	return prefix.String() + body
}

// decodeEntry tries the classified family first and, for the VOP3 prefix
// shared by VOP3A and VOP3B (§4.1's "secondary tables ... consulted at
// decode time" for shared encoding slots), falls back to the sibling family.
func (d *Disassembler) decodeEntry(family gcncatalog.Family, opcode int, w0 uint32) (*gcncatalog.Entry, bool) {
	entry, ok := d.cat.Decode(family, opcode, d.Arch)
	if ok {
		return entry, true
	}
	if family == gcncatalog.VOP3A {
		if e, ok := d.cat.Decode(gcncatalog.VOP3B, opcode, d.Arch); ok {
			return e, true
		}
	}
	return gcncatalog.IllegalEntry, false
}

func regName(r gcnreg.Range) string {
	return r.String()
}

func (d *Disassembler) printOperands(entry *gcncatalog.Entry, b Bound, words []uint32, labels *hostiface.LabelIterator, relocs *hostiface.RelocationIterator) (string, error) {
	switch b.Family {
	case gcncatalog.SOP1:
		return d.printSOP1(entry, words)
	case gcncatalog.SOP2:
		return d.printSOP2(entry, words)
	case gcncatalog.SOPC:
		return d.printSOPC(entry, words)
	case gcncatalog.SOPP:
		return d.printSOPP(entry, b, words, labels)
	case gcncatalog.SOPK:
		return d.printSOPK(entry, words)
	case gcncatalog.SMRD:
		return d.printSMRD(entry, words)
	case gcncatalog.VOP1:
		return d.printVOP1(entry, words)
	case gcncatalog.VOP2:
		return d.printVOP2(entry, words)
	case gcncatalog.VOPC:
		return d.printVOPC(entry, words)
	case gcncatalog.VOP3A, gcncatalog.VOP3B:
		return d.printVOP3(entry, words)
	case gcncatalog.VOP3P:
		return d.printVOP3P(entry, words)
	case gcncatalog.DS:
		return d.printDS(entry, words)
	case gcncatalog.MUBUF:
		return d.printMUBUF(entry, words)
	case gcncatalog.MTBUF:
		return d.printMTBUF(entry, words)
	case gcncatalog.MIMG:
		return d.printMIMG(entry, words)
	case gcncatalog.EXP:
		return d.printEXP(entry, words)
	case gcncatalog.FLAT:
		return d.printFLAT(entry, words)
	case gcncatalog.VINTRP:
		return d.printVINTRP(entry, words)
	default:
		return entry.Mnemonic, nil
	}
}

func scalarOperandText(code int) string {
	if name := gcnreg.SpecialName(code); name != "" {
		return name
	}
	if v, ok := gcnreg.InlineIntConstant(code); ok {
		return fmt.Sprintf("%d", v)
	}
	if v, ok := gcnreg.InlineFloatConstant(code); ok {
		return fmt.Sprintf("%g", v)
	}
	if code == gcnreg.Literal {
		return "lit"
	}
	return regName(gcnreg.DecodeOperand(code))
}

