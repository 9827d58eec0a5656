/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcnasm

import (
	"testing"

	"github.com/gcntools/gcnasm/internal/gcnreg"
	"github.com/gcntools/gcnasm/internal/gcnregvar"
)

func TestRegAllocAssignIsStable(t *testing.T) {
	a := newRegAlloc()
	h := gcnregvar.Handle(1)
	rv := gcnregvar.Regvar{Name: "x", Kind: gcnreg.Vector, Size: 2}

	first := a.assign(h, rv)
	second := a.assign(h, rv)
	if first != second {
		t.Errorf("assign() returned %d then %d for the same handle", first, second)
	}
}

func TestRegAllocBumpsPastPriorAllocations(t *testing.T) {
	a := newRegAlloc()
	rv1 := gcnregvar.Regvar{Name: "a", Kind: gcnreg.Vector, Size: 1}
	rv2 := gcnregvar.Regvar{Name: "b", Kind: gcnreg.Vector, Size: 1}

	base1 := a.assign(gcnregvar.Handle(1), rv1)
	base2 := a.assign(gcnregvar.Handle(2), rv2)
	if base2 <= base1 {
		t.Errorf("second vector regvar based at %d, want > %d", base2, base1)
	}
}

func TestRegAllocScalarAndVectorAreIndependent(t *testing.T) {
	a := newRegAlloc()
	s := a.assign(gcnregvar.Handle(1), gcnregvar.Regvar{Kind: gcnreg.Scalar, Size: 4})
	v := a.assign(gcnregvar.Handle(2), gcnregvar.Regvar{Kind: gcnreg.Vector, Size: 4})
	if s != 0 || v != 0 {
		t.Errorf("first scalar and vector regvars should both base at 0, got s=%d v=%d", s, v)
	}
}

func TestRoundUp(t *testing.T) {
	cases := []struct{ v, align, want int }{
		{0, 4, 0},
		{1, 4, 4},
		{4, 4, 4},
		{5, 1, 5},
	}
	for _, c := range cases {
		if got := roundUp(c.v, c.align); got != c.want {
			t.Errorf("roundUp(%d, %d) = %d, want %d", c.v, c.align, got, c.want)
		}
	}
}
