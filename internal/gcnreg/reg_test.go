/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcnreg

import (
	"testing"

	"github.com/gcntools/gcnasm/internal/gcnarch"
)

func TestRequiredAlignment(t *testing.T) {
	cases := []struct{ count, want int }{
		{1, 1}, {2, 2}, {3, 1}, {4, 4}, {7, 4}, {8, 8}, {15, 8}, {16, 16}, {32, 16},
	}
	for _, c := range cases {
		if got := RequiredAlignment(c.count); got != c.want {
			t.Errorf("RequiredAlignment(%d) = %d, want %d", c.count, got, c.want)
		}
	}
}

func TestCheckAlignmentRejectsMisalignedRange(t *testing.T) {
	r := Range{Kind: Vector, First: 1, Count: 2}
	if err := CheckAlignment(r, gcnarch.GCN_1_2); err == nil {
		t.Error("CheckAlignment should reject a 2-register range starting at an odd index")
	}
}

func TestCheckAlignmentAcceptsAlignedRange(t *testing.T) {
	r := Range{Kind: Vector, First: 4, Count: 4}
	if err := CheckAlignment(r, gcnarch.GCN_1_2); err != nil {
		t.Errorf("CheckAlignment rejected a valid range: %v", err)
	}
}

func TestCheckAlignmentRejectsScalarOutOfRange(t *testing.T) {
	r := Range{Kind: Scalar, First: 100, Count: 4}
	if err := CheckAlignment(r, gcnarch.GCN_1_2); err == nil {
		t.Error("CheckAlignment should reject an SGPR range exceeding MaxSGPR")
	}
}

func TestEncodeOperand(t *testing.T) {
	if got := EncodeOperand(Range{Kind: Scalar, First: 5, Count: 1}, 0); got != 5 {
		t.Errorf("scalar EncodeOperand = %d, want 5", got)
	}
	if got := EncodeOperand(Range{Kind: Vector, First: 5, Count: 1}, 0); got != 261 {
		t.Errorf("vector EncodeOperand = %d, want 261", got)
	}
	if got := EncodeOperand(Range{Kind: Vector, First: 0, Count: 4}, 2); got != 258 {
		t.Errorf("vector EncodeOperand sub-index = %d, want 258", got)
	}
}

func TestDecodeOperand(t *testing.T) {
	r := DecodeOperand(5)
	if r.Kind != Scalar || r.First != 5 {
		t.Errorf("DecodeOperand(5) = %+v", r)
	}
	r = DecodeOperand(261)
	if r.Kind != Vector || r.First != 5 {
		t.Errorf("DecodeOperand(261) = %+v", r)
	}
}

func TestSpecialCodeRoundTrip(t *testing.T) {
	code, ok := SpecialCode("vcc")
	if !ok || code != VccLo {
		t.Fatalf("SpecialCode(vcc) = (%d, %v), want (%d, true)", code, ok, VccLo)
	}
	if name := SpecialName(VccLo); name != "vcc_lo" {
		t.Errorf("SpecialName(VccLo) = %q, want vcc_lo", name)
	}
}

func TestInlineIntConstant(t *testing.T) {
	v, ok := InlineIntConstant(128)
	if !ok || v != 0 {
		t.Errorf("InlineIntConstant(128) = (%d, %v), want (0, true)", v, ok)
	}
	v, ok = InlineIntConstant(193)
	if !ok || v != -1 {
		t.Errorf("InlineIntConstant(193) = (%d, %v), want (-1, true)", v, ok)
	}
	if _, ok := InlineIntConstant(0); ok {
		t.Error("InlineIntConstant(0) should not be an inline constant")
	}
}

func TestInlineFloatConstant(t *testing.T) {
	v, ok := InlineFloatConstant(242)
	if !ok || v != 1.0 {
		t.Errorf("InlineFloatConstant(242) = (%v, %v), want (1.0, true)", v, ok)
	}
	if _, ok := InlineFloatConstant(0); ok {
		t.Error("InlineFloatConstant(0) should not be an inline constant")
	}
}
