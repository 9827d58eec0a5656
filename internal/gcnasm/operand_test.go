/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcnasm

import (
	"testing"

	"github.com/gcntools/gcnasm/internal/gcnarch"
	"github.com/gcntools/gcnasm/internal/gcnreg"
)

func newTestAssembler() *Assembler {
	return New(gcnarch.GCN_1_2, "<test>")
}

func TestResolveTokenLiteralRegisters(t *testing.T) {
	as := newTestAssembler()

	res, err := as.resolveToken("v0")
	if err != nil {
		t.Fatalf("resolveToken(v0): %v", err)
	}
	if res.Op.Reg.Kind != gcnreg.Vector || res.Op.Reg.First != 0 || res.Op.Reg.Count != 1 {
		t.Errorf("v0 resolved to %+v", res.Op.Reg)
	}

	res, err = as.resolveToken("s[0:3]")
	if err != nil {
		t.Fatalf("resolveToken(s[0:3]): %v", err)
	}
	if res.Op.Reg.Kind != gcnreg.Scalar || res.Op.Reg.First != 0 || res.Op.Reg.Count != 4 {
		t.Errorf("s[0:3] resolved to %+v", res.Op.Reg)
	}
}

func TestResolveTokenSpecialAndImmediate(t *testing.T) {
	as := newTestAssembler()

	res, err := as.resolveToken("vcc")
	if err != nil || !res.Op.IsSpecial {
		t.Fatalf("resolveToken(vcc) = %+v, err=%v", res, err)
	}

	res, err = as.resolveToken("42")
	if err != nil || !res.Op.IsIntImm || res.Op.IntImm != 42 {
		t.Fatalf("resolveToken(42) = %+v, err=%v", res, err)
	}

	res, err = as.resolveToken("off")
	if err != nil {
		t.Fatalf("resolveToken(off) errored: %v", err)
	}
	if res.Op.IsSpecial || res.Op.IsIntImm || res.Op.IsFloatImm || res.Op.Reg.Count != 0 {
		t.Errorf("resolveToken(off) = %+v, want the zero operand", res.Op)
	}
}

func TestResolveRegvarToken(t *testing.T) {
	as := newTestAssembler()
	if _, err := as.regvars.Declare("", "dst", gcnreg.Vector, 2); err != nil {
		t.Fatalf("Declare: %v", err)
	}

	whole, err := as.resolveToken("dst")
	if err != nil {
		t.Fatalf("resolveToken(dst): %v", err)
	}
	if whole.Op.Reg.Count != 2 {
		t.Errorf("dst resolved to count %d, want 2", whole.Op.Reg.Count)
	}

	sub, err := as.resolveToken("dst[1]")
	if err != nil {
		t.Fatalf("resolveToken(dst[1]): %v", err)
	}
	if sub.Op.Reg.First != whole.Op.Reg.First+1 || sub.Op.Reg.Count != 1 {
		t.Errorf("dst[1] resolved to %+v (base %+v)", sub.Op.Reg, whole.Op.Reg)
	}

	if _, err := as.resolveToken("nosuch"); err == nil {
		t.Error("resolveToken(nosuch) should fail for an undeclared name")
	}
}
