/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package hostiface

import (
	"testing"

	"github.com/gcntools/gcnasm/internal/gcnregvar"
	"github.com/gcntools/gcnasm/internal/gcnwait"
)

func TestLabelIteratorSeekInOrder(t *testing.T) {
	it := NewLabelIterator([]Label{
		{Offset: 12, Name: "c"},
		{Offset: 0, Name: "a"},
		{Offset: 4, Name: "b"},
	})
	if lbl, ok := it.Seek(4); !ok || lbl.Name != "b" {
		t.Fatalf("Seek(4) = (%+v, %v), want (b, true)", lbl, ok)
	}
	if _, ok := it.Seek(5); ok {
		t.Error("Seek(5) should miss, no label at that offset")
	}
	if lbl, ok := it.Seek(12); !ok || lbl.Name != "c" {
		t.Errorf("Seek(12) = (%+v, %v), want (c, true)", lbl, ok)
	}
}

func TestLabelIteratorAllIsSorted(t *testing.T) {
	it := NewLabelIterator([]Label{{Offset: 8, Name: "y"}, {Offset: 0, Name: "x"}})
	all := it.All()
	if len(all) != 2 || all[0].Name != "x" || all[1].Name != "y" {
		t.Errorf("All() = %+v, want sorted by offset", all)
	}
}

func TestRelocationIteratorSeek(t *testing.T) {
	it := NewRelocationIterator([]Relocation{
		{Offset: 4, Kind: RelocPCRel32, Symbol: "target"},
		{Offset: 0, Kind: RelocAbs32, Symbol: "data"},
	})
	if r, ok := it.Seek(0); !ok || r.Symbol != "data" {
		t.Fatalf("Seek(0) = (%+v, %v)", r, ok)
	}
	if r, ok := it.Seek(4); !ok || r.Symbol != "target" || r.Kind != RelocPCRel32 {
		t.Fatalf("Seek(4) = (%+v, %v)", r, ok)
	}
	if _, ok := it.Seek(100); ok {
		t.Error("Seek past the last relocation should miss")
	}
}

func TestNewWaitHandlerRoundTrips(t *testing.T) {
	h := NewWaitHandler()
	h.EmitDelayed(gcnwait.DelayedOp{Offset: 0, Class: gcnwait.ClassVMLoad})
	h.EmitWait(gcnwait.WaitInstr{Offset: 4})
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	c := h.Cursor()
	if !c.HasNext() {
		t.Fatal("cursor should have a first record")
	}
}

func TestNewUsageHandlerRoundTrips(t *testing.T) {
	h := NewUsageHandler()
	h.Emit(gcnregvar.Usage{Offset: 0, Field: gcnregvar.FieldVOPVdst, RW: gcnregvar.Write})
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	c := h.Cursor()
	u := c.Next()
	if u.Field != gcnregvar.FieldVOPVdst || u.RW != gcnregvar.Write {
		t.Errorf("Cursor().Next() = %+v", u)
	}
}
