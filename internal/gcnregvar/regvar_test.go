/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcnregvar

import (
	"testing"

	"github.com/gcntools/gcnasm/internal/gcnreg"
)

func TestDeclareAndResolveGlobalScope(t *testing.T) {
	tbl := NewTable()
	h, err := tbl.Declare("", "tmp", gcnreg.Vector, 2)
	if err != nil {
		t.Fatalf("Declare: %v", err)
	}
	got, ok := tbl.Resolve("", "tmp")
	if !ok || got != h {
		t.Fatalf("Resolve(\"\", tmp) = (%v, %v), want (%v, true)", got, ok, h)
	}
	rv := tbl.Get(h)
	if rv.Name != "tmp" || rv.Kind != gcnreg.Vector || rv.Size != 2 {
		t.Errorf("Get(h) = %+v", rv)
	}
}

func TestDeclareRejectsDuplicateInSameScope(t *testing.T) {
	tbl := NewTable()
	if _, err := tbl.Declare("", "tmp", gcnreg.Scalar, 1); err != nil {
		t.Fatalf("Declare: %v", err)
	}
	if _, err := tbl.Declare("", "tmp", gcnreg.Scalar, 1); err == nil {
		t.Error("Declare should reject redeclaring the same name in the same scope")
	}
}

func TestResolveWalksScopeChain(t *testing.T) {
	tbl := NewTable()
	h, err := tbl.Declare("", "outer", gcnreg.Scalar, 1)
	if err != nil {
		t.Fatalf("Declare: %v", err)
	}
	got, ok := tbl.Resolve("fn::block", "outer")
	if !ok || got != h {
		t.Errorf("Resolve from a nested scope did not find the outer declaration: %v, %v", got, ok)
	}
	if _, ok := tbl.Resolve("fn::block", "nosuch"); ok {
		t.Error("Resolve should fail for a name declared nowhere in the chain")
	}
}

func TestRefCount(t *testing.T) {
	r := Ref{Start: 2, End: 4}
	if r.Count() != 3 {
		t.Errorf("Count() = %d, want 3", r.Count())
	}
}

func TestStreamEmitAndCursor(t *testing.T) {
	s := NewStream()
	s.Emit(Usage{Offset: 0, Field: FieldVOPVdst, RW: Write})
	s.Emit(Usage{Offset: 0, Field: FieldVOPSrc0, RW: Read})
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	c := s.Cursor()
	var fields []FieldID
	for c.HasNext() {
		fields = append(fields, c.Next().Field)
	}
	if len(fields) != 2 || fields[0] != FieldVOPVdst || fields[1] != FieldVOPSrc0 {
		t.Errorf("cursor replay = %v", fields)
	}
}

func TestRWFlagsString(t *testing.T) {
	if (Read | Write).String() != "rw" {
		t.Errorf("(Read|Write).String() = %q", (Read | Write).String())
	}
	if Read.String() != "r" {
		t.Errorf("Read.String() = %q", Read.String())
	}
	if Write.String() != "w" {
		t.Errorf("Write.String() = %q", Write.String())
	}
}
