/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcnasm

import (
	"fmt"
	"strings"

	"github.com/gcntools/gcnasm/internal/gcncodec"
	"github.com/gcntools/gcnasm/internal/gcnerr"
	"github.com/gcntools/gcnasm/internal/gcnreg"
	"github.com/gcntools/gcnasm/internal/gcnregvar"
)

// resolved is one parsed-and-allocated operand: the codec-ready Operand plus
// enough provenance (a regvar Ref, or the literal range it names) for the
// caller to emit a RegVarUsage record.
type resolved struct {
	Op  gcncodec.Operand
	Ref *gcnregvar.Ref // non-nil when this operand named a regvar
	Lit gcnreg.Range   // the concrete range, valid whenever Op is a plain register
}

// off is the MIMG/MUBUF placeholder naming an address component the caller
// leaves unset ("vaddr, off, s[...]").
const off = "off"

// resolveToken parses and resolves one operand token (already split out of
// its comma field) against the regvar table and register allocator.
func (as *Assembler) resolveToken(tok string) (resolved, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return resolved{}, fmt.Errorf("empty operand")
	}
	if tok == off {
		return resolved{}, nil
	}

	if code, ok := gcnreg.SpecialCode(strings.ToLower(tok)); ok {
		return resolved{Op: gcncodec.Operand{IsSpecial: true, Special: code}}, nil
	}

	if r, ok := parseLiteralRegister(tok); ok {
		return resolved{Op: gcncodec.Operand{Reg: r}, Lit: r}, nil
	}

	if v, ok := parseIntLiteral(tok); ok {
		return resolved{Op: gcncodec.Operand{IsIntImm: true, IntImm: v}}, nil
	}
	if strings.ContainsAny(tok, ".eE") && !strings.HasPrefix(tok, "0x") {
		if v, ok := parseFloatLiteral(tok); ok {
			return resolved{Op: gcncodec.Operand{IsFloatImm: true, FloatImm: v}}, nil
		}
	}

	return as.resolveRegvarToken(tok)
}

// parseLiteralRegister recognizes "s7", "v42", "s[0:3]", "v[4:7]".
func parseLiteralRegister(tok string) (gcnreg.Range, bool) {
	if len(tok) < 2 {
		return gcnreg.Range{}, false
	}
	var kind gcnreg.Kind
	switch tok[0] {
	case 's':
		kind = gcnreg.Scalar
	case 'v':
		kind = gcnreg.Vector
	default:
		return gcnreg.Range{}, false
	}
	body := tok[1:]
	if body[0] == '[' && body[len(body)-1] == ']' {
		lo, hi, ok := parseRangeBody(body[1 : len(body)-1])
		if !ok {
			return gcnreg.Range{}, false
		}
		return gcnreg.Range{Kind: kind, First: lo, Count: hi - lo + 1}, true
	}
	n, ok := parseDigits(body)
	if !ok {
		return gcnreg.Range{}, false
	}
	return gcnreg.Range{Kind: kind, First: n, Count: 1}, true
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

func parseRangeBody(s string) (lo, hi int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, ok1 := parseDigits(parts[0])
	hi, ok2 := parseDigits(parts[1])
	if !ok1 || !ok2 || hi < lo {
		return 0, 0, false
	}
	return lo, hi, true
}

// resolveRegvarToken parses "name", "name[i]", or "name[i:j]" against the
// regvar table, allocating the regvar on first use if it has not already
// been placed by a .rvlin directive.
func (as *Assembler) resolveRegvarToken(tok string) (resolved, error) {
	name := tok
	subLo, subHi := -1, -1
	if i := strings.IndexByte(tok, '['); i >= 0 && strings.HasSuffix(tok, "]") {
		name = tok[:i]
		body := tok[i+1 : len(tok)-1]
		if lo, hi, ok := parseRangeBody(body); ok {
			subLo, subHi = lo, hi
		} else if n, ok := parseDigits(body); ok {
			subLo, subHi = n, n
		} else {
			return resolved{}, fmt.Errorf("bad regvar subscript %q", tok)
		}
	}

	h, ok := as.regvars.Resolve(as.scope, name)
	if !ok {
		return resolved{}, fmt.Errorf("%w: %q", gcnerr.ErrUnknownInstruction, name)
	}
	rv := as.regvars.Get(h)
	if subLo < 0 {
		subLo, subHi = 0, rv.Size-1
	}
	if subHi >= rv.Size {
		return resolved{}, fmt.Errorf("regvar %q subscript out of range", name)
	}
	base := as.alloc.assign(h, rv)
	r := gcnreg.Range{Kind: rv.Kind, First: base + subLo, Count: subHi - subLo + 1}
	return resolved{
		Op:  gcncodec.Operand{Reg: r},
		Ref: &gcnregvar.Ref{Handle: h, Start: subLo, End: subHi},
		Lit: r,
	}, nil
}
