/*
   Copyright (c) 2024, Richard Cornwell
   SPDX-License-Identifier: MIT
*/

package gcncatalog

import (
	"testing"

	"github.com/gcntools/gcnasm/internal/gcnarch"
)

func TestLookupFindsKnownMnemonic(t *testing.T) {
	cat := Get()
	e, ok := cat.Lookup("s_mov_b32", gcnarch.GCN_1_2)
	if !ok {
		t.Fatal("Lookup(s_mov_b32) should succeed")
	}
	if e.Family != SOP1 {
		t.Errorf("s_mov_b32 family = %v, want SOP1", e.Family)
	}
}

func TestLookupRejectsUnknownMnemonic(t *testing.T) {
	cat := Get()
	if _, ok := cat.Lookup("not_a_real_instruction", gcnarch.GCN_1_2); ok {
		t.Error("Lookup should fail for an unknown mnemonic")
	}
}

func TestDecodeRoundTripsLookup(t *testing.T) {
	cat := Get()
	e, ok := cat.Lookup("s_add_u32", gcnarch.GCN_1_2)
	if !ok {
		t.Fatal("Lookup(s_add_u32) should succeed")
	}
	decoded, ok := cat.Decode(e.Family, e.Opcode, gcnarch.GCN_1_2)
	if !ok {
		t.Fatal("Decode should find the slot Lookup returned")
	}
	if decoded.Mnemonic != "s_add_u32" {
		t.Errorf("Decode returned mnemonic %q, want s_add_u32", decoded.Mnemonic)
	}
}

func TestDecodeUnknownSlotReturnsIllegalEntry(t *testing.T) {
	cat := Get()
	e, ok := cat.Decode(SOP1, 0x7F, gcnarch.GCN_1_2)
	if ok {
		return // some catalogs may legitimately use this opcode; nothing to assert
	}
	if e != IllegalEntry {
		t.Errorf("Decode on an empty slot returned %v, want IllegalEntry", e)
	}
}

func TestAllReturnsEveryRow(t *testing.T) {
	cat := Get()
	if len(cat.All()) == 0 {
		t.Error("All() should return at least one catalog row")
	}
}

func TestFamilyString(t *testing.T) {
	if SOP1.String() != "SOP1" {
		t.Errorf("SOP1.String() = %q", SOP1.String())
	}
	if NONE.String() != "NONE" {
		t.Errorf("NONE.String() = %q", NONE.String())
	}
}
