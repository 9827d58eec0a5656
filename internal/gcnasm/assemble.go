/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcnasm

import (
	"fmt"
	"strings"

	"github.com/gcntools/gcnasm/internal/gcnarch"
	"github.com/gcntools/gcnasm/internal/gcncatalog"
	"github.com/gcntools/gcnasm/internal/gcnerr"
	"github.com/gcntools/gcnasm/internal/gcnreg"
	"github.com/gcntools/gcnasm/internal/gcnregvar"
	"github.com/gcntools/gcnasm/internal/gcnwait"
	"github.com/gcntools/gcnasm/internal/hostiface"
	"github.com/gcntools/gcnasm/internal/srcpos"
)

// Assembler drives the two-pass assembly of §4.3/§4.4: pass 1 sizes every
// instruction and records label offsets (a SOPP instruction is always one
// word, so sizing never needs a resolved branch target); pass 2 re-walks
// the same statements, resolves branch immediates against the label table,
// and emits code words plus the RegVarUsage/DelayedOp/WaitInstr/source
// position side-streams through the hostiface facades.
type Assembler struct {
	Arch gcnarch.Arch

	file    string
	cat     *gcncatalog.Catalog
	regvars *gcnregvar.Table
	alloc   *regAlloc
	scope   string

	usage hostiface.UsageHandler
	wait  hostiface.WaitHandler
	pos   *srcpos.Handler

	code   []uint32
	offset uint64
	labels map[string]uint64
	diags  []*gcnerr.Diagnostic
}

// New returns an Assembler targeting arch; file names the source for
// diagnostics and source-position records.
func New(arch gcnarch.Arch, file string) *Assembler {
	return &Assembler{
		Arch:    arch,
		file:    file,
		cat:     gcncatalog.Get(),
		regvars: gcnregvar.NewTable(),
		alloc:   newRegAlloc(),
		usage:   hostiface.NewUsageHandler(),
		wait:    hostiface.NewWaitHandler(),
		pos:     srcpos.NewHandler(),
		labels:  make(map[string]uint64),
	}
}

// Result is one completed assembly job's output.
type Result struct {
	Code        []uint32
	Labels      []hostiface.Label
	Usage       hostiface.UsageHandler
	Wait        hostiface.WaitHandler
	SrcPos      *srcpos.Handler
	Diagnostics []*gcnerr.Diagnostic
}

var archByName = map[string]gcnarch.Arch{
	"gcn1.0": gcnarch.GCN_1_0, "gcn1.1": gcnarch.GCN_1_1,
	"gcn1.2": gcnarch.GCN_1_2, "gcn1.4": gcnarch.GCN_1_4,
	"gcn1.4.1": gcnarch.GCN_1_4_1, "gcn1.5": gcnarch.GCN_1_5,
	"gcn1.5.1": gcnarch.GCN_1_5_1,
}

// statement is one parsed source line: a label, a directive, an
// instruction, or blank (comment-only/empty).
type statement struct {
	label       string
	directive   string
	args        string
	mnemonic    string
	operandText string
	blank       bool
}

func (s statement) isDirective() bool { return s.directive != "" }
func (s statement) isInstr() bool     { return s.mnemonic != "" }

// parseStatement lexes one source line using the line cursor of lex.go,
// peeling off an optional leading "label:" before classifying the rest as a
// directive or an instruction.
func parseStatement(text string) statement {
	l := newLine(text)
	l.skipSpace()
	if l.isEOL() {
		return statement{blank: true}
	}

	save := l.pos
	word := l.getWord()
	var label string
	if strings.HasSuffix(word, ":") && len(word) > 1 {
		label = strings.TrimSuffix(word, ":")
	} else {
		l.pos = save
	}

	l.skipSpace()
	if l.isEOL() {
		return statement{label: label, blank: label == ""}
	}
	if l.text[l.pos] == '.' {
		directive := l.getWord()
		return statement{label: label, directive: directive, args: l.rest()}
	}
	mnemonic := strings.ToLower(l.getWord())
	return statement{label: label, mnemonic: mnemonic, operandText: l.rest()}
}

// Assemble runs both passes over src and returns the assembled job. A
// non-nil error means pass 1 or pass 2 produced at least one diagnostic;
// Result is still returned so the caller can report every collected
// diagnostic rather than just the first.
func (as *Assembler) Assemble(src string) (*Result, error) {
	lines := strings.Split(src, "\n")
	stmts := make([]statement, len(lines))
	for i, t := range lines {
		stmts[i] = parseStatement(t)
	}

	as.offset = 0
	for i, st := range stmts {
		if st.label != "" {
			as.labels[st.label] = as.offset
		}
		switch {
		case st.blank:
			continue
		case st.isDirective():
			if err := as.applyDirective(st); err != nil {
				as.addDiag(i+1, err)
			}
		case st.isInstr():
			words, err := as.processInstruction(st, i+1, 1)
			if err != nil {
				as.addDiag(i+1, err)
				continue
			}
			as.offset += uint64(words) * 4
		}
	}

	as.offset = 0
	for i, st := range stmts {
		if st.blank || st.isDirective() || !st.isInstr() {
			continue
		}
		words, err := as.processInstruction(st, i+1, 2)
		if err != nil {
			as.addDiag(i+1, err)
			continue
		}
		as.offset += uint64(words) * 4
	}

	return as.result(), as.firstErr()
}

func (as *Assembler) addDiag(line int, err error) {
	as.diags = append(as.diags, gcnerr.At(gcnerr.Position{File: as.file, Line: uint64(line)}, err))
}

func (as *Assembler) firstErr() error {
	if len(as.diags) == 0 {
		return nil
	}
	return as.diags[0]
}

func (as *Assembler) result() *Result {
	labels := make([]hostiface.Label, 0, len(as.labels))
	for name, off := range as.labels {
		labels = append(labels, hostiface.Label{Offset: off, Name: name})
	}
	return &Result{
		Code:        as.code,
		Labels:      labels,
		Usage:       as.usage,
		Wait:        as.wait,
		SrcPos:      as.pos,
		Diagnostics: as.diags,
	}
}

// applyDirective processes a `.regvar`/`.usereg`/`.rvlin`/`.arch` directive.
// Directives run only during pass 1 (Assemble skips them in pass 2): regvar
// declarations and allocation must settle before any operand in either pass
// resolves a name, and re-running them in pass 2 would double-declare.
func (as *Assembler) applyDirective(st statement) error {
	switch st.directive {
	case ".arch":
		name := strings.ToLower(strings.TrimSpace(st.args))
		a, ok := archByName[name]
		if !ok {
			return fmt.Errorf("%w: unknown architecture %q", gcnerr.ErrInvalidModifier, name)
		}
		as.Arch = a
		return nil

	case ".regvar":
		fs := fields(st.args)
		if len(fs) < 2 {
			return fmt.Errorf(".regvar requires a name and a kind")
		}
		name := fs[0]
		parts := strings.SplitN(fs[1], ":", 2)
		var kind gcnreg.Kind
		switch parts[0] {
		case "s":
			kind = gcnreg.Scalar
		case "v":
			kind = gcnreg.Vector
		default:
			return fmt.Errorf(".regvar %q: kind must be s or v", name)
		}
		size := 1
		if len(parts) == 2 {
			n, ok := parseDigits(parts[1])
			if !ok {
				return fmt.Errorf(".regvar %q: bad size %q", name, parts[1])
			}
			size = n
		}
		_, err := as.regvars.Declare(as.scope, name, kind, size)
		return err

	case ".usereg":
		for _, name := range fields(st.args) {
			res, err := as.resolveToken(name)
			if err != nil {
				return err
			}
			as.emitUsageNow(res, gcnregvar.FieldNone, gcnregvar.Read, 1)
		}
		return nil

	case ".rvlin":
		for _, name := range fields(st.args) {
			h, ok := as.regvars.Resolve(as.scope, name)
			if !ok {
				return fmt.Errorf(".rvlin: undeclared regvar %q", name)
			}
			as.alloc.reserve(h, as.regvars.Get(h))
		}
		return nil

	default:
		return fmt.Errorf("unknown directive %q", st.directive)
	}
}

// emitUsageNow pushes one RegVarUsage record for res at the assembler's
// current offset; it is a no-op for non-register operands (immediates and
// special registers carry no regvar/allocator state to track).
func (as *Assembler) emitUsageNow(res resolved, field gcnregvar.FieldID, rw gcnregvar.RWFlags, align int) {
	if res.Op.IsSpecial || res.Op.IsIntImm || res.Op.IsFloatImm {
		return
	}
	as.usage.Emit(gcnregvar.Usage{
		Offset: as.offset, Regvar: res.Ref, Literal: res.Lit, Field: field, RW: rw, Alignment: align,
	})
}

func (as *Assembler) emitDelayedNow(res resolved, class gcnwait.DelayClass, rw gcnregvar.RWFlags) {
	if res.Op.IsSpecial || res.Op.IsIntImm || res.Op.IsFloatImm {
		return
	}
	as.wait.EmitDelayed(gcnwait.DelayedOp{
		Offset: as.offset, Regvar: res.Ref, Literal: res.Lit, Class: class, RW: rw,
	})
}

// processInstruction builds and, on pass 2, emits one instruction. pass==1
// builds with branch targets unresolved (since the label table is still
// being filled) purely to learn the instruction's word count; pass==2 has
// the complete label table and performs the real emission.
func (as *Assembler) processInstruction(st statement, lineNo, pass int) (int, error) {
	entry, ok := as.cat.Lookup(st.mnemonic, as.Arch)
	if !ok {
		return 0, fmt.Errorf("%w: %q", gcnerr.ErrUnknownInstruction, st.mnemonic)
	}
	words, err := as.buildFamily(entry, st, pass, lineNo)
	if err != nil {
		return 0, err
	}
	return words, nil
}
