/*
   GCN codec error taxonomy.

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

// Package gcnerr holds the sentinel errors of the assembler/disassembler
// codec (§4.7) and a Diagnostic wrapper that attaches a source position for
// the "<file>:<line>:<col>: Error:" rendering described in §7.
package gcnerr

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownInstruction     = errors.New("unknown instruction")
	ErrOperandKindMismatch    = errors.New("operand kind mismatch")
	ErrMisaligned             = errors.New("register range misaligned")
	ErrOutOfRange             = errors.New("register index out of range")
	ErrLiteralAfterLiteral    = errors.New("only one literal dword allowed per instruction")
	ErrInvalidModifier        = errors.New("invalid modifier")
	ErrModifierConflict       = errors.New("modifier conflict")
	ErrMoreThanOneSGPRToRead  = errors.New("more than one SGPR read in a single VALU instruction")
	ErrBranchOutOfRange       = errors.New("branch target out of range")
	ErrUnsupportedForArch     = errors.New("instruction not supported for target architecture")
	ErrTruncatedLastInstr     = errors.New("truncated last instruction")
	ErrCorruptCatalog         = errors.New("corrupt instruction catalog")
)

// Severity distinguishes a fatal/recoverable diagnostic from a warning.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "Warning"
	}
	return "Error"
}

// Position is the minimal (file, line, column) triple a Diagnostic needs to
// render itself; internal/srcpos.Position satisfies this shape but gcnerr
// does not depend on srcpos to avoid a needless import cycle.
type Position struct {
	File   string
	Line   uint64
	Column uint32
}

// Diagnostic pairs an error with the source position it was raised at.
type Diagnostic struct {
	Pos      Position
	Severity Severity
	Err      error
}

func (d *Diagnostic) Error() string {
	if d.Pos.File == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Err)
	}
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.Pos.File, d.Pos.Line, d.Pos.Column, d.Severity, d.Err)
}

func (d *Diagnostic) Unwrap() error {
	return d.Err
}

// At wraps err as an error-severity Diagnostic at pos.
func At(pos Position, err error) *Diagnostic {
	return &Diagnostic{Pos: pos, Severity: SeverityError, Err: err}
}

// WarnAt wraps err as a warning-severity Diagnostic at pos.
func WarnAt(pos Position, err error) *Diagnostic {
	return &Diagnostic{Pos: pos, Severity: SeverityWarning, Err: err}
}
