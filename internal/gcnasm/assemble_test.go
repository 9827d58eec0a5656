/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcnasm

import (
	"testing"

	"github.com/gcntools/gcnasm/internal/gcnarch"
	"github.com/gcntools/gcnasm/internal/gcncodec"
	"github.com/gcntools/gcnasm/internal/gcnreg"
)

func assembleOK(t *testing.T, src string) *Result {
	t.Helper()
	as := New(gcnarch.GCN_1_2, "<test>")
	result, err := as.Assemble(src)
	if err != nil {
		t.Fatalf("Assemble(%q): %v (diagnostics: %v)", src, err, result.Diagnostics)
	}
	return result
}

func TestAssembleSOP1(t *testing.T) {
	result := assembleOK(t, "s_mov_b32 s1, s2\n")
	if len(result.Code) != 1 {
		t.Fatalf("word count = %d, want 1", len(result.Code))
	}
	sdst, _, src0 := gcncodec.DecodeSOP1(result.Code)
	if sdst != gcnreg.EncodeOperand(gcnreg.Range{Kind: gcnreg.Scalar, First: 1, Count: 1}, 0) {
		t.Errorf("sdst = %d, want s1", sdst)
	}
	if src0 != gcnreg.EncodeOperand(gcnreg.Range{Kind: gcnreg.Scalar, First: 2, Count: 1}, 0) {
		t.Errorf("src0 = %d, want s2", src0)
	}
}

func TestAssembleSOP2(t *testing.T) {
	result := assembleOK(t, "s_add_u32 s0, s1, s2\n")
	if len(result.Code) != 1 {
		t.Fatalf("word count = %d, want 1", len(result.Code))
	}
	_, sdst, src1, src0 := gcncodec.DecodeSOP2(result.Code)
	if sdst != gcnreg.EncodeOperand(gcnreg.Range{Kind: gcnreg.Scalar, First: 0, Count: 1}, 0) {
		t.Errorf("sdst = %d", sdst)
	}
	if src0 != gcnreg.EncodeOperand(gcnreg.Range{Kind: gcnreg.Scalar, First: 1, Count: 1}, 0) {
		t.Errorf("src0 = %d", src0)
	}
	if src1 != gcnreg.EncodeOperand(gcnreg.Range{Kind: gcnreg.Scalar, First: 2, Count: 1}, 0) {
		t.Errorf("src1 = %d", src1)
	}
}

func TestAssembleVOP1AndVOP2(t *testing.T) {
	result := assembleOK(t, "v_mov_b32 v0, v1\nv_add_f32 v2, v0, v1\n")
	if len(result.Code) != 2 {
		t.Fatalf("word count = %d, want 2", len(result.Code))
	}
	// vdst/vsrc1 are narrow VGPR-only fields that carry the plain register
	// index; src0 is the wide field that carries the full operand code
	// (distinguishing VGPR from SGPR/special/inline-constant).
	vdst, _, src0 := gcncodec.DecodeVOP1(result.Code[:1])
	if vdst != 0 {
		t.Errorf("v_mov_b32 vdst = %d, want 0", vdst)
	}
	if src0 != gcnreg.EncodeOperand(gcnreg.Range{Kind: gcnreg.Vector, First: 1, Count: 1}, 0) {
		t.Errorf("v_mov_b32 src0 = %d", src0)
	}

	_, vdst2, vsrc1, src0b := gcncodec.DecodeVOP2(result.Code[1:2])
	if vdst2 != 2 {
		t.Errorf("v_add_f32 vdst = %d, want 2", vdst2)
	}
	if src0b != gcnreg.EncodeOperand(gcnreg.Range{Kind: gcnreg.Vector, First: 0, Count: 1}, 0) {
		t.Errorf("v_add_f32 src0 = %d", src0b)
	}
	if vsrc1 != 1 {
		t.Errorf("v_add_f32 vsrc1 = %d, want 1", vsrc1)
	}
}

func TestAssembleSOPPNop(t *testing.T) {
	result := assembleOK(t, "s_nop 3\n")
	if len(result.Code) != 1 {
		t.Fatalf("word count = %d, want 1", len(result.Code))
	}
	_, simm16 := gcncodec.DecodeSOPP(result.Code)
	if simm16 != 3 {
		t.Errorf("simm16 = %d, want 3", simm16)
	}
}

func TestAssembleBranchResolvesForwardLabel(t *testing.T) {
	result := assembleOK(t, "s_branch target\ns_nop 0\ntarget:\ns_nop 0\n")
	if len(result.Code) != 3 {
		t.Fatalf("word count = %d, want 3", len(result.Code))
	}
	op, simm16 := gcncodec.DecodeSOPP(result.Code[:1])
	_ = op
	target := gcncodec.SOPPBranchTarget(4, simm16)
	if target != 8 {
		t.Errorf("branch resolved to offset %d, want 8", target)
	}
}

func TestAssembleRegvarAllocatesAndResolves(t *testing.T) {
	result := assembleOK(t, ".regvar tmp v:2\nv_mov_b32 tmp[0], v4\nv_mov_b32 tmp[1], v5\n")
	if len(result.Code) != 2 {
		t.Fatalf("word count = %d, want 2", len(result.Code))
	}
	vdst0, _, _ := gcncodec.DecodeVOP1(result.Code[:1])
	vdst1, _, _ := gcncodec.DecodeVOP1(result.Code[1:2])
	if vdst1 != vdst0+1 {
		t.Errorf("tmp[0]/tmp[1] did not allocate to adjacent registers: %d, %d", vdst0, vdst1)
	}
}

func TestAssembleUnknownMnemonicDiagnoses(t *testing.T) {
	as := New(gcnarch.GCN_1_2, "<test>")
	result, err := as.Assemble("v_bogus_op v0, v1\n")
	if err == nil {
		t.Fatal("expected an error for an unknown mnemonic")
	}
	if len(result.Diagnostics) == 0 {
		t.Error("expected at least one diagnostic")
	}
}

func TestAssembleWaitcnt(t *testing.T) {
	result := assembleOK(t, "s_waitcnt vmcnt(0) & lgkmcnt(2)\n")
	if len(result.Code) != 1 {
		t.Fatalf("word count = %d, want 1", len(result.Code))
	}
}
